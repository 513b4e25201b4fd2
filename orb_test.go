package main

import (
	"math"
	"testing"
)

func TestNewOrbInBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		o := NewOrb()
		if o.ID == "" {
			t.Fatal("orb should have an id")
		}
		if o.X < SpawnMargin || o.X > ArenaWidth-SpawnMargin ||
			o.Y < SpawnMargin || o.Y > ArenaHeight-SpawnMargin {
			t.Fatalf("orb outside spawn bounds: (%f, %f)", o.X, o.Y)
		}
	}
}

func TestOrbSpawnNotQuantized(t *testing.T) {
	// Positions should use the full float range of the spawn span, not
	// collapse onto a coarse fixed-step lattice
	span := ArenaWidth - 2*SpawnMargin
	for i := 0; i < 200; i++ {
		o := NewOrb()
		u := (o.X - SpawnMargin) / span * 10000
		if math.Abs(u-math.Round(u)) > 1e-6 {
			return
		}
	}
	t.Error("all spawn positions landed on a 1/10000 grid")
}

func TestNewPowerUpInBoundsWithValidType(t *testing.T) {
	valid := map[PowerUpType]bool{
		PowerUpShield:       true,
		PowerUpSpeed:        true,
		PowerUpDoublePoints: true,
		PowerUpMegaAttack:   true,
	}
	for i := 0; i < 100; i++ {
		pu := NewPowerUp()
		if !valid[pu.Type] {
			t.Fatalf("unexpected power-up type %q", pu.Type)
		}
		if pu.X < SpawnMargin || pu.X > ArenaWidth-SpawnMargin ||
			pu.Y < SpawnMargin || pu.Y > ArenaHeight-SpawnMargin {
			t.Fatalf("power-up outside spawn bounds: (%f, %f)", pu.X, pu.Y)
		}
	}
}

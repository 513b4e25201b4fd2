package main

import "testing"

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("p1", "Zoe", 0)
	if p.ID != "p1" {
		t.Errorf("expected ID p1, got %s", p.ID)
	}
	if p.Name != "Zoe" {
		t.Errorf("expected name Zoe, got %s", p.Name)
	}
	if p.Health != PlayerMaxHealth {
		t.Errorf("expected health %d, got %d", PlayerMaxHealth, p.Health)
	}
	if !p.Alive {
		t.Error("expected player to be alive")
	}
	if p.Score != 0 {
		t.Errorf("expected score 0, got %d", p.Score)
	}
	if p.PowerUp != PowerUpNone {
		t.Errorf("expected no power-up, got %s", p.PowerUp)
	}
	if p.Direction != DirDown {
		t.Errorf("expected direction down, got %s", p.Direction)
	}
}

func TestSpawnPosition(t *testing.T) {
	for slot := 0; slot < 4; slot++ {
		x, y := SpawnPosition(slot)
		if x != 100+float64(slot)*150 || y != 100+float64(slot)*100 {
			t.Errorf("slot %d: unexpected spawn (%f, %f)", slot, x, y)
		}
	}
}

func TestPlayerColorCycles(t *testing.T) {
	if PlayerColor(0) != "#FF6B6B" {
		t.Errorf("slot 0 color mismatch: %s", PlayerColor(0))
	}
	if PlayerColor(3) != "#A8E6CF" {
		t.Errorf("slot 3 color mismatch: %s", PlayerColor(3))
	}
	if PlayerColor(4) != PlayerColor(0) {
		t.Error("colors should cycle past slot 3")
	}
}

func TestPlayerReset(t *testing.T) {
	p := NewPlayer("p1", "Zoe", 2)
	p.Health = 20
	p.Score = 85
	p.Alive = false
	p.PowerUp = PowerUpShield
	p.X = 999
	p.Y = 999

	p.Reset(2)

	if p.Health != PlayerMaxHealth || p.Score != 0 || !p.Alive {
		t.Errorf("reset incomplete: health=%d score=%d alive=%v", p.Health, p.Score, p.Alive)
	}
	if p.PowerUp != PowerUpNone {
		t.Errorf("expected power-up cleared, got %s", p.PowerUp)
	}
	wantX, wantY := SpawnPosition(2)
	if p.X != wantX || p.Y != wantY {
		t.Errorf("expected spawn (%f, %f), got (%f, %f)", wantX, wantY, p.X, p.Y)
	}
}

func TestPlayerToState(t *testing.T) {
	p := NewPlayer("p1", "Zoe", 1)
	p.Score = 40
	p.Health = 60
	p.PowerUp = PowerUpSpeed
	s := p.ToState()
	if s.ID != "p1" || s.Name != "Zoe" || s.Score != 40 || s.Health != 60 {
		t.Error("state mismatch")
	}
	if s.PowerUp != string(PowerUpSpeed) {
		t.Errorf("expected power-up speed, got %s", s.PowerUp)
	}
	if s.Color != PlayerColor(1) {
		t.Errorf("expected slot 1 color, got %s", s.Color)
	}
}

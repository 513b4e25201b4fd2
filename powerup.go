package main

import (
	"math/rand"
	"time"
)

// PowerUpType identifies a timed buff
type PowerUpType string

const (
	PowerUpNone         PowerUpType = ""
	PowerUpShield       PowerUpType = "shield"        // damage immunity, server-enforced
	PowerUpSpeed        PowerUpType = "speed"         // x1.5 movement, client-applied
	PowerUpDoublePoints PowerUpType = "double-points" // doubles orb reward, server-enforced
	PowerUpMegaAttack   PowerUpType = "mega-attack"   // extended melee range, client-computed
)

// powerUpTypes is the spawnable set
var powerUpTypes = [4]PowerUpType{PowerUpShield, PowerUpSpeed, PowerUpDoublePoints, PowerUpMegaAttack}

// Power-up lifecycle tuning
const (
	PowerUpSpawnInterval = 15 * time.Second
	PowerUpEffectTTL     = 10 * time.Second
	MaxPowerUpsPerRoom   = 3
	SpeedMultiplier      = 1.5
)

// PowerUp is an uncollected buff object sitting in the arena
type PowerUp struct {
	ID   string
	Type PowerUpType
	X, Y float64
}

// NewPowerUp spawns a power-up of uniformly-random type at an in-bounds position
func NewPowerUp() *PowerUp {
	return &PowerUp{
		ID:   GenerateID(6),
		Type: powerUpTypes[rand.Intn(len(powerUpTypes))],
		X:    SpawnMargin + rand.Float64()*(ArenaWidth-2*SpawnMargin),
		Y:    SpawnMargin + rand.Float64()*(ArenaHeight-2*SpawnMargin),
	}
}

// ToState converts to protocol state
func (pu *PowerUp) ToState() PowerUpState {
	return PowerUpState{ID: pu.ID, Type: string(pu.Type), X: pu.X, Y: pu.Y}
}

package main

import "math/rand"

// Orb scoring and spawn tuning
const (
	OrbCount       = 10 // invariant while a match runs
	OrbValue       = 10
	OrbDoubleValue = 20
	SpawnMargin    = 50.0 // distance from each arena edge
)

// Orb is a stationary collectible granting score
type Orb struct {
	ID   string
	X, Y float64
}

// NewOrb spawns an orb at a uniform-random in-bounds position
func NewOrb() *Orb {
	return &Orb{
		ID: GenerateID(6),
		X:  SpawnMargin + rand.Float64()*(ArenaWidth-2*SpawnMargin),
		Y:  SpawnMargin + rand.Float64()*(ArenaHeight-2*SpawnMargin),
	}
}

// GenerateOrbs creates the canonical orb set for a fresh match
func GenerateOrbs(count int) []*Orb {
	orbs := make([]*Orb, 0, count)
	for i := 0; i < count; i++ {
		orbs = append(orbs, NewOrb())
	}
	return orbs
}

// ToState converts to protocol state
func (o *Orb) ToState() OrbState {
	return OrbState{ID: o.ID, X: o.X, Y: o.Y}
}

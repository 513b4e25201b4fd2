package main

// Canonical arena bounds. All positions cross the wire in these units;
// each client rescales to its own viewport.
const (
	ArenaWidth  = 1600.0
	ArenaHeight = 1200.0
)

const (
	PlayerMaxHealth = 100
	PlayerSpeed     = 200.0 // canonical units per second
	MaxNameLen      = 16
	MinNameLen      = 2
)

// Facing directions (4 cardinal values)
const (
	DirUp    = "up"
	DirDown  = "down"
	DirLeft  = "left"
	DirRight = "right"
)

// playerColors is the fixed palette, keyed by join order
var playerColors = [4]string{"#FF6B6B", "#4ECDC4", "#FFE66D", "#A8E6CF"}

// Player is one room member. All fields are owned by the hub loop.
type Player struct {
	ID        string
	Name      string
	X, Y      float64
	Direction string
	Score     int
	Health    int
	Alive     bool
	PowerUp   PowerUpType // PowerUpNone when no effect is active
	Color     string

	// Per-match counters for persisted stats
	Orbs  int
	Elims int

	AuthPlayerID int64 // 0 = guest
}

// SpawnPosition returns the deterministic spawn offset for a roster slot
func SpawnPosition(slot int) (float64, float64) {
	return 100 + float64(slot)*150, 100 + float64(slot)*100
}

// PlayerColor returns the palette entry for a roster slot, cycling past 4
func PlayerColor(slot int) string {
	return playerColors[slot%len(playerColors)]
}

// NewPlayer creates a player at the spawn offset for the given slot
func NewPlayer(id, name string, slot int) *Player {
	x, y := SpawnPosition(slot)
	return &Player{
		ID:        id,
		Name:      name,
		X:         x,
		Y:         y,
		Direction: DirDown,
		Health:    PlayerMaxHealth,
		Alive:     true,
		Color:     PlayerColor(slot),
	}
}

// Reset restores health/score/alive/power-up and moves the player back to
// the spawn offset for its current roster slot
func (p *Player) Reset(slot int) {
	p.Health = PlayerMaxHealth
	p.Score = 0
	p.Alive = true
	p.PowerUp = PowerUpNone
	p.X, p.Y = SpawnPosition(slot)
}

// ToState converts to protocol state
func (p *Player) ToState() PlayerState {
	return PlayerState{
		ID:        p.ID,
		Name:      p.Name,
		X:         p.X,
		Y:         p.Y,
		Direction: p.Direction,
		Score:     p.Score,
		Health:    p.Health,
		IsAlive:   p.Alive,
		PowerUp:   string(p.PowerUp),
		Color:     p.Color,
	}
}

package main

import (
	"math"
	"time"
)

// Client reconciliation tuning. All distances are canonical arena units.
const (
	MoveReportInterval = 50 * time.Millisecond
	MoveReportMinDelta = 1.0 // per-axis displacement before a report is due

	InterpFactor      = 0.2 // fraction of remaining distance closed per tick
	InterpSnapEpsilon = 0.5

	ArenaEdgeMargin = 20.0 // local clamp, tighter than the spawn margin

	OrbPickupRange     = 30.0
	PowerUpPickupRange = 35.0
	AttackRange        = 60.0
	MegaAttackRange    = 100.0
)

// LocalPlayer is the predicted local entity: input applies instantly, the
// server never confirms it back.
type LocalPlayer struct {
	X, Y      float64
	Direction string
	PowerUp   PowerUpType
	Alive     bool
}

// Move applies one frame of input. dx/dy are a direction vector (callers
// normalize diagonals), dt the frame duration.
func (lp *LocalPlayer) Move(dx, dy float64, dt time.Duration) {
	if !lp.Alive {
		return
	}
	speed := PlayerSpeed
	if lp.PowerUp == PowerUpSpeed {
		speed *= SpeedMultiplier
	}
	lp.X += dx * speed * dt.Seconds()
	lp.Y += dy * speed * dt.Seconds()

	lp.X = Clamp(lp.X, ArenaEdgeMargin, ArenaWidth-ArenaEdgeMargin)
	lp.Y = Clamp(lp.Y, ArenaEdgeMargin, ArenaHeight-ArenaEdgeMargin)

	switch {
	case dy < 0:
		lp.Direction = DirUp
	case dy > 0:
		lp.Direction = DirDown
	case dx < 0:
		lp.Direction = DirLeft
	case dx > 0:
		lp.Direction = DirRight
	}
}

// AttackReach returns the melee range for the current power-up
func (lp *LocalPlayer) AttackReach() float64 {
	if lp.PowerUp == PowerUpMegaAttack {
		return MegaAttackRange
	}
	return AttackRange
}

// InReach reports whether a point is inside a circular range of the player
func (lp *LocalPlayer) InReach(x, y, r float64) bool {
	return Distance(lp.X, lp.Y, x, y) < r
}

// MoveReporter throttles upstream position reports: at most one per
// interval, and only when displacement since the last report exceeds the
// per-axis threshold.
type MoveReporter struct {
	lastSent time.Time
	lastX    float64
	lastY    float64
	hasBase  bool
}

// ShouldReport decides whether to send the given position at time now,
// recording it as sent when it answers true
func (mr *MoveReporter) ShouldReport(now time.Time, x, y float64) bool {
	if !mr.lastSent.IsZero() && now.Sub(mr.lastSent) < MoveReportInterval {
		return false
	}
	if mr.hasBase {
		if math.Abs(x-mr.lastX) <= MoveReportMinDelta && math.Abs(y-mr.lastY) <= MoveReportMinDelta {
			return false
		}
	}
	mr.lastSent = now
	mr.lastX = x
	mr.lastY = y
	mr.hasBase = true
	return true
}

// RemotePlayer smooths a lossy low-frequency position feed: the rendered
// position exponentially approaches the last reported target each tick.
type RemotePlayer struct {
	X, Y             float64
	TargetX, TargetY float64
	Direction        string
}

// SetTarget records a server-reported position without snapping to it
func (rp *RemotePlayer) SetTarget(x, y float64, direction string) {
	rp.TargetX = x
	rp.TargetY = y
	rp.Direction = direction
}

// Step advances one render tick toward the target
func (rp *RemotePlayer) Step() {
	dx := rp.TargetX - rp.X
	dy := rp.TargetY - rp.Y
	if math.Abs(dx) < InterpSnapEpsilon && math.Abs(dy) < InterpSnapEpsilon {
		rp.X = rp.TargetX
		rp.Y = rp.TargetY
		return
	}
	rp.X += dx * InterpFactor
	rp.Y += dy * InterpFactor
}

// Viewport rescales between a client's rendered pixel space and the
// canonical arena grid all wire positions use.
type Viewport struct {
	Width, Height float64 // rendered size in pixels
}

// ToCanonical converts rendered coordinates to canonical arena units
func (v Viewport) ToCanonical(x, y float64) (float64, float64) {
	return x / v.Width * ArenaWidth, y / v.Height * ArenaHeight
}

// FromCanonical converts canonical arena units to rendered coordinates
func (v Viewport) FromCanonical(x, y float64) (float64, float64) {
	return x / ArenaWidth * v.Width, y / ArenaHeight * v.Height
}

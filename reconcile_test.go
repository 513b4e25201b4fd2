package main

import (
	"math"
	"testing"
	"time"
)

func TestLocalPlayerMove(t *testing.T) {
	lp := &LocalPlayer{X: 500, Y: 500, Alive: true}

	lp.Move(1, 0, time.Second)
	if lp.X != 700 || lp.Y != 500 {
		t.Errorf("expected (700, 500), got (%f, %f)", lp.X, lp.Y)
	}
	if lp.Direction != DirRight {
		t.Errorf("expected direction right, got %s", lp.Direction)
	}

	lp.Move(0, -1, 100*time.Millisecond)
	if lp.Y != 480 {
		t.Errorf("expected Y 480, got %f", lp.Y)
	}
	if lp.Direction != DirUp {
		t.Errorf("expected direction up, got %s", lp.Direction)
	}
}

func TestLocalPlayerMoveSpeedBoost(t *testing.T) {
	lp := &LocalPlayer{X: 500, Y: 500, Alive: true, PowerUp: PowerUpSpeed}
	lp.Move(1, 0, time.Second)
	if lp.X != 500+PlayerSpeed*SpeedMultiplier {
		t.Errorf("expected boosted movement, got X=%f", lp.X)
	}
}

func TestLocalPlayerMoveClamps(t *testing.T) {
	lp := &LocalPlayer{X: 30, Y: 30, Alive: true}
	lp.Move(-1, 0, time.Second)
	if lp.X != ArenaEdgeMargin {
		t.Errorf("expected clamp at %f, got %f", ArenaEdgeMargin, lp.X)
	}

	lp.X = ArenaWidth - 30
	lp.Y = ArenaHeight - 30
	lp.Move(1, 1, time.Second)
	if lp.X != ArenaWidth-ArenaEdgeMargin || lp.Y != ArenaHeight-ArenaEdgeMargin {
		t.Errorf("expected clamp at far edge, got (%f, %f)", lp.X, lp.Y)
	}
}

func TestLocalPlayerMoveDeadIsFrozen(t *testing.T) {
	lp := &LocalPlayer{X: 500, Y: 500, Alive: false}
	lp.Move(1, 0, time.Second)
	if lp.X != 500 {
		t.Error("a knocked-out player should not move")
	}
}

func TestLocalPlayerAttackReach(t *testing.T) {
	lp := &LocalPlayer{Alive: true}
	if lp.AttackReach() != AttackRange {
		t.Errorf("expected base reach %f, got %f", AttackRange, lp.AttackReach())
	}
	lp.PowerUp = PowerUpMegaAttack
	if lp.AttackReach() != MegaAttackRange {
		t.Errorf("expected mega reach %f, got %f", MegaAttackRange, lp.AttackReach())
	}
}

func TestLocalPlayerInReach(t *testing.T) {
	lp := &LocalPlayer{X: 100, Y: 100, Alive: true}
	if !lp.InReach(120, 100, OrbPickupRange) {
		t.Error("20 units away should be inside orb range")
	}
	if lp.InReach(100, 140, OrbPickupRange) {
		t.Error("40 units away should be outside orb range")
	}
}

func TestMoveReporterThrottle(t *testing.T) {
	var mr MoveReporter
	now := time.Now()

	if !mr.ShouldReport(now, 100, 100) {
		t.Fatal("first report should always send")
	}
	// Within the interval: suppressed regardless of displacement
	if mr.ShouldReport(now.Add(20*time.Millisecond), 200, 200) {
		t.Error("report inside the interval should be suppressed")
	}
	// Past the interval but displacement under threshold on both axes
	if mr.ShouldReport(now.Add(60*time.Millisecond), 100.5, 100.5) {
		t.Error("sub-threshold displacement should be suppressed")
	}
	// Past the interval with real movement on one axis
	if !mr.ShouldReport(now.Add(60*time.Millisecond), 103, 100) {
		t.Error("report past interval with displacement should send")
	}
}

func TestRemotePlayerStep(t *testing.T) {
	rp := &RemotePlayer{X: 0, Y: 0}
	rp.SetTarget(100, 0, DirRight)

	rp.Step()
	if math.Abs(rp.X-20) > 1e-9 {
		t.Errorf("expected X 20 after one step, got %f", rp.X)
	}
	rp.Step()
	if math.Abs(rp.X-36) > 1e-9 {
		t.Errorf("expected X 36 after two steps, got %f", rp.X)
	}
	if rp.Direction != DirRight {
		t.Errorf("direction should follow the target, got %s", rp.Direction)
	}
}

func TestRemotePlayerSnap(t *testing.T) {
	rp := &RemotePlayer{X: 99.8, Y: 50.1}
	rp.SetTarget(100, 50, DirDown)
	rp.Step()
	if rp.X != 100 || rp.Y != 50 {
		t.Errorf("expected snap to target, got (%f, %f)", rp.X, rp.Y)
	}
}

func TestRemotePlayerConverges(t *testing.T) {
	rp := &RemotePlayer{X: 0, Y: 0}
	rp.SetTarget(800, 600, DirDown)
	for i := 0; i < 200; i++ {
		rp.Step()
	}
	if rp.X != 800 || rp.Y != 600 {
		t.Errorf("expected convergence to target, got (%f, %f)", rp.X, rp.Y)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Width: 800, Height: 600}

	cx, cy := v.ToCanonical(400, 300)
	if cx != ArenaWidth/2 || cy != ArenaHeight/2 {
		t.Errorf("expected arena center, got (%f, %f)", cx, cy)
	}

	px, py := v.FromCanonical(cx, cy)
	if math.Abs(px-400) > 1e-9 || math.Abs(py-300) > 1e-9 {
		t.Errorf("round trip drifted: (%f, %f)", px, py)
	}
}

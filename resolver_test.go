package main

import (
	"testing"
	"time"
)

func playingRoom(t *testing.T) (*Room, *Player, *Player) {
	t.Helper()
	r := NewRoom("TEST01")
	a, err := r.AddPlayer("c1", "Ann")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.AddPlayer("c2", "Bob")
	if err != nil {
		t.Fatal(err)
	}
	r.Start(time.Now())
	return r, a, b
}

func TestResolveOrbCollect(t *testing.T) {
	r, a, _ := playingRoom(t)

	id := r.Orbs[0].ID
	msg := ResolveOrbCollect(r, a, id)
	if msg == nil {
		t.Fatal("expected a collect result")
	}
	if a.Score != OrbValue {
		t.Errorf("expected score %d, got %d", OrbValue, a.Score)
	}
	if msg.Score != a.Score || msg.OrbID != id || msg.PlayerID != a.ID {
		t.Error("payload mismatch")
	}
	if len(r.Orbs) != OrbCount {
		t.Errorf("orb count should be restored to %d, got %d", OrbCount, len(r.Orbs))
	}
	if msg.NewOrb.ID == id {
		t.Error("replacement orb should have a fresh id")
	}
}

func TestResolveOrbCollectStaleID(t *testing.T) {
	r, a, b := playingRoom(t)

	id := r.Orbs[0].ID
	if ResolveOrbCollect(r, a, id) == nil {
		t.Fatal("first collect should succeed")
	}
	// Second claim for the same orb lost the race: no score, no respawn
	if ResolveOrbCollect(r, b, id) != nil {
		t.Error("stale orb id should resolve to nil")
	}
	if b.Score != 0 {
		t.Errorf("loser should not score, got %d", b.Score)
	}
	if len(r.Orbs) != OrbCount {
		t.Errorf("orb count disturbed: %d", len(r.Orbs))
	}
}

func TestResolveOrbCollectDoublePoints(t *testing.T) {
	r, a, _ := playingRoom(t)
	a.PowerUp = PowerUpDoublePoints

	msg := ResolveOrbCollect(r, a, r.Orbs[0].ID)
	if msg == nil {
		t.Fatal("expected a collect result")
	}
	if a.Score != OrbDoubleValue {
		t.Errorf("expected score %d with double-points, got %d", OrbDoubleValue, a.Score)
	}
}

func TestResolveHitSurvivor(t *testing.T) {
	_, a, b := playingRoom(t)
	b.Score = 50

	msg := ResolveHit(a, b)
	if msg == nil {
		t.Fatal("expected a hit result")
	}
	if b.Health != PlayerMaxHealth-HitDamage {
		t.Errorf("expected health %d, got %d", PlayerMaxHealth-HitDamage, b.Health)
	}
	if a.Score != SurvivorSteal || b.Score != 45 {
		t.Errorf("expected steal of %d: attacker=%d target=%d", SurvivorSteal, a.Score, b.Score)
	}
	if !msg.TargetIsAlive {
		t.Error("target should survive")
	}
}

func TestResolveHitSurvivorLowScore(t *testing.T) {
	_, a, b := playingRoom(t)
	b.Score = 3

	msg := ResolveHit(a, b)
	if msg == nil {
		t.Fatal("expected a hit result")
	}
	if a.Score != 0 || b.Score != 3 {
		t.Errorf("no steal below %d points: attacker=%d target=%d", SurvivorSteal, a.Score, b.Score)
	}
	if b.Health != PlayerMaxHealth-HitDamage {
		t.Errorf("damage should still land, health=%d", b.Health)
	}
}

func TestResolveHitLethal(t *testing.T) {
	_, a, b := playingRoom(t)
	b.Health = 20
	b.Score = 50

	msg := ResolveHit(a, b)
	if msg == nil {
		t.Fatal("expected a hit result")
	}
	if b.Alive {
		t.Error("target should be knocked out")
	}
	if b.Health != 0 {
		t.Errorf("health should floor at 0, got %d", b.Health)
	}
	// floor(0.3 * 50) = 15
	if a.Score != 15 || b.Score != 35 {
		t.Errorf("expected 15 stolen: attacker=%d target=%d", a.Score, b.Score)
	}
	if msg.TargetIsAlive {
		t.Error("payload should report the knockout")
	}
}

func TestResolveHitOverkillFloorsAtZero(t *testing.T) {
	_, a, b := playingRoom(t)
	b.Health = 5

	if msg := ResolveHit(a, b); msg == nil || msg.TargetHealth != 0 {
		t.Fatalf("expected health floored at 0, got %+v", msg)
	}
}

func TestResolveHitDeadTarget(t *testing.T) {
	_, a, b := playingRoom(t)
	b.Alive = false
	b.Health = 0
	b.Score = 50

	if ResolveHit(a, b) != nil {
		t.Error("hitting a dead player should be a no-op")
	}
	if a.Score != 0 || b.Score != 50 {
		t.Error("no score should move")
	}
}

func TestResolveHitShield(t *testing.T) {
	_, a, b := playingRoom(t)
	b.PowerUp = PowerUpShield
	b.Score = 50

	if ResolveHit(a, b) != nil {
		t.Error("a shielded target should soak the hit silently")
	}
	if b.Health != PlayerMaxHealth || b.Score != 50 || a.Score != 0 {
		t.Error("shielded hit should change nothing")
	}
}

func TestResolvePowerUpCollect(t *testing.T) {
	r, a, _ := playingRoom(t)
	pu := NewPowerUp()
	r.PowerUps = append(r.PowerUps, pu)

	msg := ResolvePowerUpCollect(r, a, pu.ID)
	if msg == nil {
		t.Fatal("expected a collect result")
	}
	if a.PowerUp != pu.Type {
		t.Errorf("expected effect %s, got %s", pu.Type, a.PowerUp)
	}
	if len(r.PowerUps) != 0 {
		t.Error("power-up should leave the arena")
	}
	if ResolvePowerUpCollect(r, a, pu.ID) != nil {
		t.Error("stale power-up id should resolve to nil")
	}
}

func TestResolvePowerUpCollectSupersedes(t *testing.T) {
	r, a, _ := playingRoom(t)
	a.PowerUp = PowerUpShield
	pu := &PowerUp{ID: "pu1", Type: PowerUpSpeed, X: 100, Y: 100}
	r.PowerUps = append(r.PowerUps, pu)

	if ResolvePowerUpCollect(r, a, "pu1") == nil {
		t.Fatal("expected a collect result")
	}
	if a.PowerUp != PowerUpSpeed {
		t.Errorf("new effect should replace the old one, got %s", a.PowerUp)
	}
}

func TestExpirePowerUp(t *testing.T) {
	p := NewPlayer("p1", "Zoe", 0)
	p.PowerUp = PowerUpShield

	if !ExpirePowerUp(p, PowerUpShield) {
		t.Error("matching expiry should clear the effect")
	}
	if p.PowerUp != PowerUpNone {
		t.Errorf("effect not cleared: %s", p.PowerUp)
	}

	// A stale timer for an effect that was since replaced must not fire
	p.PowerUp = PowerUpSpeed
	if ExpirePowerUp(p, PowerUpShield) {
		t.Error("stale expiry should be a no-op")
	}
	if p.PowerUp != PowerUpSpeed {
		t.Errorf("active effect disturbed: %s", p.PowerUp)
	}
}

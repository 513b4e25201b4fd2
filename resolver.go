package main

// Combat tuning
const (
	HitDamage        = 20
	SurvivorSteal    = 5   // flat steal on a non-lethal hit
	LethalStealShare = 0.3 // fraction of target score on a kill, floored
)

// ResolveOrbCollect removes the claimed orb, credits the collector and
// restores the set to its canonical size. Returns nil for stale orb ids,
// a benign race rather than an error.
func ResolveOrbCollect(room *Room, collector *Player, orbID string) *OrbCollectedMsg {
	if !room.TakeOrb(orbID) {
		return nil
	}

	value := OrbValue
	if collector.PowerUp == PowerUpDoublePoints {
		value = OrbDoubleValue
	}
	collector.Score += value

	replacement := NewOrb()
	room.Orbs = append(room.Orbs, replacement)

	return &OrbCollectedMsg{
		PlayerID: collector.ID,
		OrbID:    orbID,
		Score:    collector.Score,
		NewOrb:   replacement.ToState(),
	}
}

// ResolveHit applies flat damage and the score-theft rules. Returns nil
// when the hit has no effect: dead target, or a shield soaking it (the
// attack animation was already broadcast separately).
func ResolveHit(attacker, target *Player) *PlayerHitMsg {
	if !target.Alive || target.PowerUp == PowerUpShield {
		return nil
	}

	target.Health -= HitDamage
	if target.Health <= 0 {
		target.Health = 0
		target.Alive = false
		stolen := int(float64(target.Score) * LethalStealShare)
		attacker.Score += stolen
		target.Score -= stolen
	} else if target.Score >= SurvivorSteal {
		attacker.Score += SurvivorSteal
		target.Score -= SurvivorSteal
	}

	return &PlayerHitMsg{
		AttackerID:    attacker.ID,
		TargetID:      target.ID,
		AttackerScore: attacker.Score,
		TargetHealth:  target.Health,
		TargetScore:   target.Score,
		TargetIsAlive: target.Alive,
	}
}

// ResolvePowerUpCollect assigns the power-up's type to the collector,
// superseding any previous effect. Returns nil for stale ids.
func ResolvePowerUpCollect(room *Room, collector *Player, powerUpID string) *PowerUpCollectedMsg {
	pu := room.TakePowerUp(powerUpID)
	if pu == nil {
		return nil
	}
	collector.PowerUp = pu.Type
	return &PowerUpCollectedMsg{
		PlayerID:    collector.ID,
		PowerUpID:   pu.ID,
		PowerUpType: string(pu.Type),
	}
}

// ExpirePowerUp clears the effect granted by a specific pickup. The guard
// re-checks the active type at fire time: a later pickup of a different
// type silently invalidates the stale timer.
func ExpirePowerUp(p *Player, granted PowerUpType) bool {
	if p.PowerUp != granted {
		return false
	}
	p.PowerUp = PowerUpNone
	return true
}

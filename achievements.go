package main

// AchievementDef describes one unlockable award
type AchievementDef struct {
	ID          string
	Name        string
	Description string
}

var Achievements = []AchievementDef{
	{"first_win", "First Win", "Win your first match"},
	{"champion", "Champion", "Win 10 matches"},
	{"dynasty", "Dynasty", "Win 50 matches"},
	{"collector", "Collector", "Collect 100 orbs in total"},
	{"hoarder", "Hoarder", "Collect 1000 orbs in total"},
	{"brawler", "Brawler", "Knock out 10 players in total"},
	{"executioner", "Executioner", "Knock out 100 players in total"},
	{"high_roller", "High Roller", "Finish a match with 200+ points"},
	{"regular", "Regular", "Play 25 matches"},
}

// CheckAchievements unlocks any awards the player's accumulated stats now
// satisfy. Returns the newly unlocked definitions.
func CheckAchievements(db *DB, playerID int64) []AchievementDef {
	if db == nil || playerID == 0 {
		return nil
	}

	stats, err := db.GetStats(playerID)
	if err != nil || stats == nil {
		return nil
	}

	existing, err := db.GetAchievements(playerID)
	if err != nil {
		return nil
	}
	has := make(map[string]bool, len(existing))
	for _, a := range existing {
		has[a] = true
	}

	check := func(id string) bool {
		if has[id] {
			return false
		}
		switch id {
		case "first_win":
			return stats.Wins >= 1
		case "champion":
			return stats.Wins >= 10
		case "dynasty":
			return stats.Wins >= 50
		case "collector":
			return stats.Orbs >= 100
		case "hoarder":
			return stats.Orbs >= 1000
		case "brawler":
			return stats.Eliminations >= 10
		case "executioner":
			return stats.Eliminations >= 100
		case "high_roller":
			return stats.BestScore >= 200
		case "regular":
			return stats.Matches >= 25
		}
		return false
	}

	var unlocked []AchievementDef
	for _, def := range Achievements {
		if check(def.ID) {
			if newlyUnlocked, err := db.UnlockAchievement(playerID, def.ID); err == nil && newlyUnlocked {
				unlocked = append(unlocked, def)
			}
		}
	}
	return unlocked
}

package main

import (
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSettingsRoundTrip(t *testing.T) {
	db := testDB(t)

	if got := db.GetSetting("missing"); got != "" {
		t.Errorf("expected empty for missing key, got %q", got)
	}
	if err := db.SetSetting("k", "v1"); err != nil {
		t.Fatal(err)
	}
	if err := db.SetSetting("k", "v2"); err != nil {
		t.Fatal(err)
	}
	if got := db.GetSetting("k"); got != "v2" {
		t.Errorf("expected v2, got %q", got)
	}
}

func TestCreatePlayerAndStats(t *testing.T) {
	db := testDB(t)

	id, err := db.CreatePlayer("zoe", "hash")
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Fatal("expected a player id")
	}

	exists, err := db.UsernameExists("zoe")
	if err != nil || !exists {
		t.Errorf("username should exist: %v", err)
	}

	stats, err := db.GetStats(id)
	if err != nil {
		t.Fatal(err)
	}
	if stats == nil || stats.Matches != 0 || stats.Wins != 0 {
		t.Errorf("fresh stats row expected, got %+v", stats)
	}

	if _, err := db.CreatePlayer("zoe", "hash2"); err == nil {
		t.Error("duplicate username should fail")
	}
}

func TestUpdateStats(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreatePlayer("zoe", "hash")

	if err := db.UpdateStats(id, 120, 8, 2, true); err != nil {
		t.Fatal(err)
	}
	if err := db.UpdateStats(id, 40, 3, 0, false); err != nil {
		t.Fatal(err)
	}

	stats, err := db.GetStats(id)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Wins != 1 || stats.Losses != 1 || stats.Matches != 2 {
		t.Errorf("win/loss/matches wrong: %+v", stats)
	}
	if stats.Orbs != 11 || stats.Eliminations != 2 {
		t.Errorf("counters wrong: %+v", stats)
	}
	if stats.BestScore != 120 {
		t.Errorf("best score should keep the max, got %d", stats.BestScore)
	}
}

func TestRecordMatchWithGuest(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreatePlayer("zoe", "hash")

	matchID, err := db.RecordMatch("ABC123", "zoe", 95.5)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.RecordParticipant(matchID, id, "zoe", 120, 8, 2, true); err != nil {
		t.Fatal(err)
	}
	// Guests store a NULL player_id
	if err := db.RecordParticipant(matchID, 0, "Guest_a3f2", 40, 3, 0, false); err != nil {
		t.Fatal(err)
	}
}

func TestAchievementUnlock(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreatePlayer("zoe", "hash")

	fresh, err := db.UnlockAchievement(id, "first_win")
	if err != nil || !fresh {
		t.Fatalf("first unlock should be new: %v", err)
	}
	again, err := db.UnlockAchievement(id, "first_win")
	if err != nil || again {
		t.Errorf("second unlock should be a no-op: %v", err)
	}

	got, err := db.GetAchievements(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "first_win" {
		t.Errorf("unexpected achievements: %v", got)
	}
}

func TestCheckAchievementsFromStats(t *testing.T) {
	db := testDB(t)
	id, _ := db.CreatePlayer("zoe", "hash")

	db.UpdateStats(id, 210, 5, 1, true)

	unlocked := CheckAchievements(db, id)
	ids := make(map[string]bool)
	for _, def := range unlocked {
		ids[def.ID] = true
	}
	if !ids["first_win"] {
		t.Error("first_win should unlock after a win")
	}
	if !ids["high_roller"] {
		t.Error("high_roller should unlock at 200+ points")
	}
	if ids["champion"] {
		t.Error("champion needs 10 wins")
	}

	// Second pass unlocks nothing new
	if again := CheckAchievements(db, id); len(again) != 0 {
		t.Errorf("repeat check should unlock nothing, got %v", again)
	}
}

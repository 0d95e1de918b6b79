package storage

import (
	"sync"
	"testing"
	"time"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	for _, s := range []struct {
		game, player string
		score        int
	}{
		{"spacejump", "ada", 100},
		{"spacejump", "bob", 50},
		{"spacejump", "cy", 200},
		{"spacerace", "ada", 75},
	} {
		if _, err := store.SaveScore(s.game, s.player, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("spacejump", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}
	if scores[0].Player != "cy" {
		t.Errorf("scores[0].Player = %q, expected cy", scores[0].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("spacejump", "p", 10)
	}
	first, _ := store.SaveScore("spacejump", "first", 20)
	store.SaveScore("spacejump", "second", 20)

	scores, err := store.TopScores("spacejump", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("TopScores() returned %d entries, expected 3", len(scores))
	}
	if scores[0].ID != first {
		t.Errorf("equal scores should keep entry order, got %q first", scores[0].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore("spacejump")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d on an empty board, expected 0", high)
	}

	store.SaveScore("spacejump", "a", 30)
	store.SaveScore("spacejump", "b", 90)

	if high, _ := store.HighScore("spacejump"); high != 90 {
		t.Errorf("HighScore() = %d, expected 90", high)
	}
}

func TestStoreIsPerProcess(t *testing.T) {
	a := openStore(t)
	b := openStore(t)

	a.SaveScore("spacejump", "a", 10)

	if high, _ := b.HighScore("spacejump"); high != 0 {
		t.Error("separate stores should not share records")
	}
}

func TestStoreRaceResults(t *testing.T) {
	store := openStore(t)

	results := []RaceResult{
		{Player: "ada", Winner: "Nova", Placement: 2, Score: 75, Duration: 41 * time.Second},
		{Player: "ada", Winner: "", Placement: 0, Score: 0, Eliminated: true, Duration: 12 * time.Second},
		{Player: "bob", Winner: "bob", Placement: 1, Score: 100, Duration: 38500 * time.Millisecond},
	}
	for _, r := range results {
		if _, err := store.SaveRaceResult(r); err != nil {
			t.Fatalf("SaveRaceResult() failed: %v", err)
		}
	}

	recent, err := store.RecentRaces(2)
	if err != nil {
		t.Fatalf("RecentRaces() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentRaces() returned %d, expected 2", len(recent))
	}
	if recent[0].Player != "bob" || recent[0].Duration != 38500*time.Millisecond {
		t.Errorf("recent[0] = %+v, expected bob's race first", recent[0])
	}
	if !recent[1].Eliminated || recent[1].Winner != "" {
		t.Errorf("recent[1] = %+v, expected the eliminated race", recent[1])
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openStore(t)

	stats, err := store.GetGameStats("spacejump")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("stats = %+v, expected empty", stats)
	}

	store.SaveScore("spacejump", "a", 10)
	store.SaveScore("spacejump", "b", 30)

	stats, err = store.GetGameStats("spacejump")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v, expected count 2, high 30, avg 20", stats)
	}
}

func TestStoreConcurrentSessions(t *testing.T) {
	store := openStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, err := store.SaveScore("spacejump", "p", n); err != nil {
				t.Errorf("SaveScore() failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	stats, _ := store.GetGameStats("spacejump")
	if stats.GamesCount != 8 {
		t.Errorf("GamesCount = %d, expected 8", stats.GamesCount)
	}
}

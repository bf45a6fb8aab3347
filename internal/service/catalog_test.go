package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"cs2analytics/internal/config"
	"cs2analytics/internal/models"
	"cs2analytics/internal/predictor"
	"cs2analytics/internal/repository"
	memoryrepository "cs2analytics/internal/repository/memory"
	"cs2analytics/internal/stream"
)

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []stream.Event
}

func (p *recordingPublisher) Publish(ev stream.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

func seededStore(t *testing.T, data SeedData) *memoryrepository.Store {
	t.Helper()
	store := memoryrepository.New()
	seed := &SeedService{Repo: store, Clock: func() time.Time { return testNow }, Data: func(time.Time) SeedData { return data }}
	if err := seed.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

func TestSeed_DefaultDataOnce(t *testing.T) {
	store := memoryrepository.New()
	seed := &SeedService{Repo: store, Clock: func() time.Time { return testNow }}
	ctx := context.Background()

	if seed.Seeded() {
		t.Fatalf("seeded before Seed")
	}
	if err := seed.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := seed.Seed(ctx); !errors.Is(err, ErrAlreadySeeded) {
		t.Fatalf("second seed err=%v want ErrAlreadySeeded", err)
	}

	teams, _ := store.ListTeams(ctx)
	if len(teams) != 28 {
		t.Fatalf("teams=%d want 28", len(teams))
	}
	seen := map[string]bool{}
	for _, team := range teams {
		if team.ID == "" || seen[team.ID] {
			t.Fatalf("bad team id %q", team.ID)
		}
		seen[team.ID] = true
		if !team.CreatedAt.Equal(testNow) {
			t.Fatalf("team %s created_at=%s", team.ID, team.CreatedAt)
		}
	}

	live := models.StatusLive
	n, _ := store.CountMatches(ctx, repository.ListMatchesParams{Status: &live})
	if n != 3 {
		t.Fatalf("live=%d want 3", n)
	}
	total, _ := store.CountMatches(ctx, repository.ListMatchesParams{})
	if total != 10 {
		t.Fatalf("matches=%d want 10", total)
	}
}

func TestSeed_DefaultDataReferencesKnownTeams(t *testing.T) {
	data := DefaultSeedData(testNow)
	ids := map[string]bool{}
	for _, team := range data.Teams {
		ids[team.ID] = true
	}
	for _, m := range data.Matches {
		if !ids[m.Team1ID] || !ids[m.Team2ID] {
			t.Fatalf("match %s references unknown team", m.ID)
		}
		if m.OddsTeam1 != nil && len(strings.SplitN(*m.OddsTeam1, ".", 2)[1]) != 2 {
			t.Fatalf("match %s odds %q not 2dp", m.ID, *m.OddsTeam1)
		}
	}
}

func TestQuery_ListMatchesJoinsAndCounts(t *testing.T) {
	store := seededStore(t, SeedData{
		Teams: []models.Team{{ID: "1", Name: "Alpha"}, {ID: "2", Name: "Beta"}},
		Matches: []models.Match{
			{ID: "m1", Team1ID: "1", Team2ID: "2", Status: models.StatusLive, StartTime: testNow},
			{ID: "m2", Team1ID: "2", Team2ID: "ghost", Status: models.StatusUpcoming, StartTime: testNow},
			{ID: "m3", Team1ID: "1", Team2ID: "2", Status: models.StatusFinished, StartTime: testNow},
		},
	})
	q := &CatalogQueryService{Repo: store}

	res, err := q.ListMatches(context.Background(), repository.ListMatchesParams{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 3 || res.LiveCount != 1 || res.UpcomingCount != 1 {
		t.Fatalf("total=%d live=%d upcoming=%d", res.Total, res.LiveCount, res.UpcomingCount)
	}
	m1 := res.Items[0]
	if m1.Team1 == nil || m1.Team1.Name != "Alpha" || m1.Team2 == nil || m1.Team2.Name != "Beta" {
		t.Fatalf("m1 join wrong: %+v %+v", m1.Team1, m1.Team2)
	}
	m2 := res.Items[1]
	if m2.Team1 == nil || m2.Team1.Name != "Beta" || m2.Team2 != nil {
		t.Fatalf("m2 join wrong: %+v %+v", m2.Team1, m2.Team2)
	}

	teams, err := q.ListTeams(context.Background())
	if err != nil || teams.Total != 2 {
		t.Fatalf("teams total=%d err=%v", teams.Total, err)
	}
}

func TestQuery_GetMatch(t *testing.T) {
	store := seededStore(t, SeedData{
		Teams:   []models.Team{{ID: "1", Name: "Alpha"}},
		Matches: []models.Match{{ID: "m1", Team1ID: "1", Team2ID: "2", Status: models.StatusLive}},
	})
	q := &CatalogQueryService{Repo: store}

	m, err := q.GetMatch(context.Background(), "m1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if m.Team1 == nil || m.Team2 != nil {
		t.Fatalf("join wrong: %+v", m)
	}
	if _, err := q.GetMatch(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

func TestRefresh_AppendsWithoutTouchingExisting(t *testing.T) {
	store := seededStore(t, DefaultSeedData(testNow))
	ctx := context.Background()
	before, _ := store.ListMatches(ctx, repository.ListMatchesParams{})

	pub := &recordingPublisher{}
	svc := &RefreshService{
		Repo:      store,
		Rand:      predictor.NewRand(11),
		Clock:     func() time.Time { return testNow },
		Publisher: pub,
	}
	res, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if res.NewMatches != 3 || len(res.Matches) != 3 {
		t.Fatalf("new=%d len=%d want 3", res.NewMatches, len(res.Matches))
	}
	if res.TotalMatches != int64(len(before))+3 {
		t.Fatalf("total=%d want %d", res.TotalMatches, len(before)+3)
	}

	after, _ := store.ListMatches(ctx, repository.ListMatchesParams{})
	if !reflect.DeepEqual(before, after[:len(before)]) {
		t.Fatalf("existing matches changed by refresh")
	}

	ids := map[string]bool{}
	for i, m := range res.Matches {
		if m.Team1ID == m.Team2ID {
			t.Fatalf("match %s plays itself", m.ID)
		}
		if m.Status != models.StatusUpcoming {
			t.Fatalf("status=%s", m.Status)
		}
		if !m.StartTime.Equal(testNow.Add(time.Duration(6+i) * time.Hour)) {
			t.Fatalf("start=%s", m.StartTime)
		}
		prefix := fmt.Sprintf("new_match_%d_%d_", testNow.Unix(), i)
		if !strings.HasPrefix(m.ID, prefix) || len(m.ID) != len(prefix)+8 {
			t.Fatalf("id=%q want prefix %q + 8 chars", m.ID, prefix)
		}
		if ids[m.ID] {
			t.Fatalf("duplicate id %s", m.ID)
		}
		ids[m.ID] = true
		for _, odds := range []*string{m.OddsTeam1, m.OddsTeam2} {
			if odds == nil {
				t.Fatalf("missing odds")
			}
			var v float64
			if _, err := fmt.Sscanf(*odds, "%f", &v); err != nil || v < 1.6 || v > 2.8 {
				t.Fatalf("odds %q out of range", *odds)
			}
		}
	}
	if got := pub.types(); len(got) != 1 || got[0] != stream.EventMatchesRefreshed {
		t.Fatalf("events=%v", got)
	}
}

func TestRefresh_SameSecondTwiceKeepsIDsUnique(t *testing.T) {
	store := seededStore(t, DefaultSeedData(testNow))
	svc := &RefreshService{Repo: store, Clock: func() time.Time { return testNow }}
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := svc.Refresh(ctx); err != nil {
			t.Fatalf("refresh %d: %v", i, err)
		}
	}
	total, _ := store.CountMatches(ctx, repository.ListMatchesParams{})
	if total != 16 {
		t.Fatalf("total=%d want 16", total)
	}
}

func TestRefresh_NeedsTwoTeams(t *testing.T) {
	store := seededStore(t, SeedData{Teams: []models.Team{{ID: "1", Name: "Solo"}}})
	svc := &RefreshService{Repo: store}
	if _, err := svc.Refresh(context.Background()); !errors.Is(err, ErrNotEnoughTeams) {
		t.Fatalf("err=%v want ErrNotEnoughTeams", err)
	}
}

func TestLifecycle_SweepTransitionsAndCooldown(t *testing.T) {
	store := seededStore(t, SeedData{
		Teams: []models.Team{{ID: "1", Name: "Alpha"}, {ID: "2", Name: "Beta"}},
		Matches: []models.Match{
			{ID: "stale", Team1ID: "1", Team2ID: "2", Status: models.StatusLive, StartTime: testNow.Add(-4 * time.Hour)},
			{ID: "started", Team1ID: "1", Team2ID: "2", Status: models.StatusUpcoming, StartTime: testNow.Add(-time.Minute)},
			{ID: "later", Team1ID: "1", Team2ID: "2", Status: models.StatusUpcoming, StartTime: testNow.Add(time.Hour)},
			{ID: "playing", Team1ID: "1", Team2ID: "2", Status: models.StatusLive, StartTime: testNow.Add(-time.Hour)},
		},
	})
	pub := &recordingPublisher{}
	svc := &LifecycleService{
		Repo:      store,
		Config:    config.LifecycleConfig{LiveTimeout: 3 * time.Hour, Cooldown: 30 * time.Minute},
		Publisher: pub,
	}
	ctx := context.Background()

	res, err := svc.Sweep(ctx, testNow)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	want := []StatusChange{
		{MatchID: "stale", From: models.StatusLive, To: models.StatusFinished},
		{MatchID: "started", From: models.StatusUpcoming, To: models.StatusLive},
	}
	if !reflect.DeepEqual(res.Changes, want) {
		t.Fatalf("changes=%+v want %+v", res.Changes, want)
	}
	if svc.ArchivedCount() != 1 {
		t.Fatalf("archived=%d want 1", svc.ArchivedCount())
	}
	if len(pub.types()) != 2 {
		t.Fatalf("events=%v", pub.types())
	}

	res, err = svc.Sweep(ctx, testNow.Add(10*time.Minute))
	if err != nil || !res.Skipped {
		t.Fatalf("expected skipped sweep, got %+v err=%v", res, err)
	}

	// Past the cooldown and the live timeout of "playing" and "started".
	res, err = svc.Sweep(ctx, testNow.Add(3*time.Hour))
	if err != nil || res.Skipped {
		t.Fatalf("sweep: %+v err=%v", res, err)
	}
	if svc.ArchivedCount() != 3 {
		t.Fatalf("archived=%d want 3", svc.ArchivedCount())
	}
	finished := models.StatusFinished
	n, _ := store.CountMatches(ctx, repository.ListMatchesParams{Status: &finished})
	if n != 3 {
		t.Fatalf("finished=%d want 3", n)
	}
}

func TestRefresh_ReportsArchivedCount(t *testing.T) {
	store := seededStore(t, SeedData{
		Teams:   []models.Team{{ID: "1", Name: "Alpha"}, {ID: "2", Name: "Beta"}},
		Matches: []models.Match{{ID: "stale", Team1ID: "1", Team2ID: "2", Status: models.StatusLive, StartTime: testNow.Add(-5 * time.Hour)}},
	})
	lc := &LifecycleService{Repo: store}
	if _, err := lc.Sweep(context.Background(), testNow); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	svc := &RefreshService{Repo: store, Lifecycle: lc, Clock: func() time.Time { return testNow }}
	res, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if res.ArchivedCount != 1 {
		t.Fatalf("archived_count=%d want 1", res.ArchivedCount)
	}
}

func TestAnalyze(t *testing.T) {
	store := seededStore(t, SeedData{
		Teams:   []models.Team{{ID: "1", Name: "Alpha"}, {ID: "2", Name: "Beta"}},
		Matches: []models.Match{{ID: "m1", Team1ID: "1", Team2ID: "2", Status: models.StatusLive}, {ID: "m2", Team1ID: "x", Team2ID: "y"}},
	})
	svc := &AnalysisService{Repo: store, Predictor: predictor.New(predictor.StrategyRandom, predictor.NewRand(3), "Go/Gin")}
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		a, err := svc.Analyze(ctx, "m1")
		if err != nil {
			t.Fatalf("analyze: %v", err)
		}
		if a.PredictedWinner != "Alpha" && a.PredictedWinner != "Beta" {
			t.Fatalf("winner=%q", a.PredictedWinner)
		}
		if a.WinProbability < 0 || a.WinProbability > 1 || a.Confidence < 0 || a.Confidence > 1 {
			t.Fatalf("probabilities out of range: %+v", a)
		}
	}

	a, err := svc.Analyze(ctx, "m2")
	if err != nil {
		t.Fatalf("analyze unresolved: %v", err)
	}
	if a.PredictedWinner != predictor.UnresolvedTeamName {
		t.Fatalf("winner=%q want TBD", a.PredictedWinner)
	}

	if _, err := svc.Analyze(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}

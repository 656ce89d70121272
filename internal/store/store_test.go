package store

import (
	"context"
	"testing"
	"time"

	"github.com/studymap/studymap/internal/knowledge"
	"github.com/studymap/studymap/internal/leitner"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestGraphRepo_EmptyClass(t *testing.T) {
	s := openTestStore(t)
	nodes, edges, err := s.GraphRepo().LoadGraph(context.Background(), "cls-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(nodes) != 0 || len(edges) != 0 {
		t.Errorf("expected empty graph, got %d nodes %d edges", len(nodes), len(edges))
	}
}

func TestGraphRepo_SaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.GraphRepo()
	ctx := context.Background()

	nodes := []knowledge.Node{{ID: "n1", Label: "Algebra"}, {ID: "n2", Label: "Calculus"}}
	edges := []knowledge.Edge{{Source: "n1", Target: "n2"}}

	if err := repo.SaveGraph(ctx, "cls-1", nodes, edges); err != nil {
		t.Fatalf("save: %v", err)
	}

	gotNodes, gotEdges, err := repo.LoadGraph(ctx, "cls-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(gotNodes) != 2 || len(gotEdges) != 1 {
		t.Fatalf("got %d nodes %d edges", len(gotNodes), len(gotEdges))
	}
	if gotNodes[0] != nodes[0] || gotNodes[1] != nodes[1] {
		t.Errorf("nodes = %v, want %v", gotNodes, nodes)
	}
	if gotEdges[0] != edges[0] {
		t.Errorf("edges = %v, want %v", gotEdges, edges)
	}
}

func TestGraphRepo_SaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.GraphRepo()
	ctx := context.Background()

	first := []knowledge.Node{{ID: "n1", Label: "Algebra"}}
	if err := repo.SaveGraph(ctx, "cls-1", first, nil); err != nil {
		t.Fatalf("save first: %v", err)
	}
	second := []knowledge.Node{{ID: "n2", Label: "Calculus"}}
	if err := repo.SaveGraph(ctx, "cls-1", second, nil); err != nil {
		t.Fatalf("save second: %v", err)
	}

	nodes, _, err := repo.LoadGraph(ctx, "cls-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(nodes) != 1 || nodes[0].ID != "n2" {
		t.Errorf("nodes = %v, want just n2", nodes)
	}
}

func TestGraphRepo_ClassesAreIsolated(t *testing.T) {
	s := openTestStore(t)
	repo := s.GraphRepo()
	ctx := context.Background()

	if err := repo.SaveGraph(ctx, "cls-1", []knowledge.Node{{ID: "n1", Label: "A"}}, nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	nodes, _, err := repo.LoadGraph(ctx, "cls-2")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(nodes) != 0 {
		t.Errorf("cls-2 nodes = %v, want empty", nodes)
	}
}

func TestScheduleRepo_GetMissingReturnsNil(t *testing.T) {
	s := openTestStore(t)
	e, err := s.ScheduleRepo().GetEntry(context.Background(), "stu-1", "cls-1", "top-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e != nil {
		t.Errorf("entry = %v, want nil", e)
	}
}

func TestScheduleRepo_UpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScheduleRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	e := &leitner.Entry{
		ID: "e1", StudentID: "stu-1", ClassID: "cls-1", TopicID: "top-1",
		TopicLabel: "Algebra", Box: 2, Streak: 1,
		TotalAttempts: 4, TotalCorrect: 3,
		LastQuizAttempts: 4, LastQuizCorrect: 3,
		LastReviewed: now, NextReview: now.AddDate(0, 0, 3),
	}
	if err := repo.UpsertEntry(ctx, e); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.GetEntry(ctx, "stu-1", "cls-1", "top-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected entry")
	}
	if got.Box != 2 || got.TotalAttempts != 4 || got.TopicLabel != "Algebra" {
		t.Errorf("got %+v", got)
	}
	if !got.NextReview.Equal(e.NextReview) {
		t.Errorf("NextReview = %v, want %v", got.NextReview, e.NextReview)
	}

	// Upsert again updates in place.
	e.Box = 3
	if err := repo.UpsertEntry(ctx, e); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	all, err := repo.ListEntries(ctx, "stu-1", "cls-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("entries = %d, want 1", len(all))
	}
	if all[0].Box != 3 {
		t.Errorf("Box = %d, want 3", all[0].Box)
	}
}

func TestScheduleRepo_ListScopedToStudentAndClass(t *testing.T) {
	s := openTestStore(t)
	repo := s.ScheduleRepo()
	ctx := context.Background()

	for i, ids := range [][3]string{
		{"stu-1", "cls-1", "top-1"},
		{"stu-1", "cls-2", "top-1"},
		{"stu-2", "cls-1", "top-1"},
	} {
		e := &leitner.Entry{
			ID: "e" + string(rune('a'+i)), StudentID: ids[0], ClassID: ids[1], TopicID: ids[2], Box: 1,
		}
		if err := repo.UpsertEntry(ctx, e); err != nil {
			t.Fatalf("upsert %d: %v", i, err)
		}
	}

	all, err := repo.ListEntries(ctx, "stu-1", "cls-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("entries = %d, want 1", len(all))
	}
}

func TestAttemptRepo_AppendAndAggregate(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	attempts := []AttemptData{
		{StudentID: "stu-1", ClassID: "cls-1", TopicID: "top-1", TopicLabel: "Algebra", Correct: true},
		{StudentID: "stu-1", ClassID: "cls-1", TopicID: "top-1", TopicLabel: "Algebra", Correct: false},
		{StudentID: "stu-1", ClassID: "cls-1", TopicID: "top-2", TopicLabel: "Calculus", Correct: false},
		{StudentID: "stu-2", ClassID: "cls-1", TopicID: "top-1", TopicLabel: "Algebra", Correct: true},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.TopicStats(ctx, "stu-1", "cls-1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %v, want 2 topics", stats)
	}
	if stats[0].TopicID != "top-1" || stats[0].Attempts != 2 || stats[0].Correct != 1 {
		t.Errorf("top-1 stats = %+v", stats[0])
	}
	if stats[1].TopicID != "top-2" || stats[1].Attempts != 1 || stats[1].Correct != 0 {
		t.Errorf("top-2 stats = %+v", stats[1])
	}
	if stats[0].Label != "Algebra" {
		t.Errorf("label = %q", stats[0].Label)
	}
}

func TestAttemptRepo_LatestLabelWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for _, label := range []string{"Old Name", "New Name"} {
		err := repo.AppendAttempt(ctx, AttemptData{
			StudentID: "stu-1", ClassID: "cls-1", TopicID: "top-1",
			TopicLabel: label, Correct: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.TopicStats(ctx, "stu-1", "cls-1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats[0].Label != "New Name" {
		t.Errorf("label = %q, want rename to win", stats[0].Label)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSessionOverStore(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess, err := knowledge.OpenSession(ctx, s.GraphRepo(), "cls-1")
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	a, err := sess.AddNode("Algebra")
	if err != nil {
		t.Fatalf("add node: %v", err)
	}
	b, err := sess.AddNode("Calculus")
	if err != nil {
		t.Fatalf("add node: %v", err)
	}
	if err := sess.Connect(a.ID, b.ID); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := sess.Save(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	reopened, err := knowledge.OpenSession(ctx, s.GraphRepo(), "cls-1")
	if err != nil {
		t.Fatalf("reopen session: %v", err)
	}
	if reopened.Graph().NodeCount() != 2 || reopened.Graph().EdgeCount() != 1 {
		t.Errorf("reopened graph has %d nodes %d edges",
			reopened.Graph().NodeCount(), reopened.Graph().EdgeCount())
	}
	if !reopened.Graph().HasEdge(a.ID, b.ID) {
		t.Error("edge lost across save/reload")
	}
}

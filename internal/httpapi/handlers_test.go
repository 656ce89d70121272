package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/studymap/studymap/internal/knowledge"
	"github.com/studymap/studymap/internal/leitner"
	"github.com/studymap/studymap/internal/remediate"
	"github.com/studymap/studymap/internal/store"
)

type fakeGraphs struct {
	docs map[string]knowledge.Document
}

func (f *fakeGraphs) LoadGraph(_ context.Context, classID string) ([]knowledge.Node, []knowledge.Edge, error) {
	doc, ok := f.docs[classID]
	if !ok {
		return nil, nil, nil
	}
	return doc.Nodes, doc.Edges, nil
}

func (f *fakeGraphs) SaveGraph(_ context.Context, classID string, nodes []knowledge.Node, edges []knowledge.Edge) error {
	f.docs[classID] = knowledge.Document{Nodes: nodes, Edges: edges}
	return nil
}

type fakeScheduleRepo struct {
	entries map[string]*leitner.Entry
}

func schedKey(studentID, classID, topicID string) string {
	return studentID + "/" + classID + "/" + topicID
}

func (f *fakeScheduleRepo) GetEntry(_ context.Context, studentID, classID, topicID string) (*leitner.Entry, error) {
	e, ok := f.entries[schedKey(studentID, classID, topicID)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeScheduleRepo) UpsertEntry(_ context.Context, e *leitner.Entry) error {
	cp := *e
	f.entries[schedKey(e.StudentID, e.ClassID, e.TopicID)] = &cp
	return nil
}

func (f *fakeScheduleRepo) ListEntries(_ context.Context, studentID, classID string) ([]*leitner.Entry, error) {
	var out []*leitner.Entry
	for _, e := range f.entries {
		if e.StudentID == studentID && e.ClassID == classID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeAttempts struct {
	appended []store.AttemptData
	stats    []remediate.TopicStats
}

func (f *fakeAttempts) AppendAttempt(_ context.Context, data store.AttemptData) error {
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeAttempts) TopicStats(_ context.Context, _, _ string) ([]remediate.TopicStats, error) {
	return f.stats, nil
}

type testEnv struct {
	graphs   *fakeGraphs
	sched    *fakeScheduleRepo
	attempts *fakeAttempts
	handler  http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		graphs:   &fakeGraphs{docs: make(map[string]knowledge.Document)},
		sched:    &fakeScheduleRepo{entries: make(map[string]*leitner.Entry)},
		attempts: &fakeAttempts{},
	}
	srv := New(env.graphs, leitner.NewScheduler(env.sched, leitner.DefaultConfig()), env.attempts, remediate.DefaultConfig())
	env.handler = srv.Router()
	return env
}

func (env *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetGraph_EmptyClass(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/classes/cls-1/graph", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc knowledge.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.NotNil(t, doc.Nodes)
	require.NotNil(t, doc.Edges)
	require.Empty(t, doc.Nodes)
}

func TestPutGraph_SavesDocument(t *testing.T) {
	env := newTestEnv(t)
	doc := knowledge.Document{
		Nodes: []knowledge.Node{{ID: "1", Label: "Algebra"}, {ID: "2", Label: "Calculus"}},
		Edges: []knowledge.Edge{{Source: "1", Target: "2"}},
	}

	rec := env.do(t, http.MethodPut, "/api/classes/cls-1/graph", doc)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, env.graphs.docs["cls-1"].Nodes, 2)

	rec = env.do(t, http.MethodGet, "/api/classes/cls-1/graph", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got knowledge.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, doc.Edges, got.Edges)
}

func TestPutGraph_RejectsCycle(t *testing.T) {
	env := newTestEnv(t)
	doc := knowledge.Document{
		Nodes: []knowledge.Node{{ID: "1", Label: "A"}, {ID: "2", Label: "B"}},
		Edges: []knowledge.Edge{{Source: "1", Target: "2"}, {Source: "2", Target: "1"}},
	}

	rec := env.do(t, http.MethodPut, "/api/classes/cls-1/graph", doc)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Cycle []knowledge.Edge `json:"cycle"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Cycle, 2)
	require.NotContains(t, env.graphs.docs, "cls-1")
}

func TestPutGraph_RejectsMalformedDocument(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodPut, "/api/classes/cls-1/graph",
		bytes.NewBufferString(`{"nodes": [{"label": "missing id"}], "edges": []}`))
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateGraph(t *testing.T) {
	env := newTestEnv(t)

	acyclic := knowledge.Document{
		Nodes: []knowledge.Node{{ID: "1", Label: "A"}, {ID: "2", Label: "B"}},
		Edges: []knowledge.Edge{{Source: "1", Target: "2"}},
	}
	rec := env.do(t, http.MethodPost, "/api/classes/cls-1/graph/validate", acyclic)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Valid bool             `json:"valid"`
		Cycle []knowledge.Edge `json:"cycle"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Valid)

	cyclic := acyclic
	cyclic.Edges = append(cyclic.Edges, knowledge.Edge{Source: "2", Target: "1"})
	rec = env.do(t, http.MethodPost, "/api/classes/cls-1/graph/validate", cyclic)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Valid)
	require.Len(t, resp.Cycle, 2)
	// Validation never persists.
	require.NotContains(t, env.graphs.docs, "cls-1")
}

func TestPostAttempt(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/classes/cls-1/students/stu-1/attempts", AttemptRequest{
		TopicID:    "top-1",
		TopicLabel: "Algebra",
		Correct:    true,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var entry leitner.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	require.Equal(t, 2, entry.Box)
	require.Equal(t, 1, entry.TotalAttempts)

	require.Len(t, env.attempts.appended, 1)
	require.Equal(t, "stu-1", env.attempts.appended[0].StudentID)
	require.True(t, env.attempts.appended[0].Correct)
}

func TestPostAttempt_MissingTopic(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/classes/cls-1/students/stu-1/attempts", AttemptRequest{
		TopicID: "",
		Correct: true,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, env.attempts.appended)
}

func TestGetDue(t *testing.T) {
	env := newTestEnv(t)
	asOf := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	env.sched.entries[schedKey("stu-1", "cls-1", "top-1")] = &leitner.Entry{
		StudentID: "stu-1", ClassID: "cls-1", TopicID: "top-1",
		TopicLabel: "Algebra", Box: 2, NextReview: asOf.AddDate(0, 0, -1),
	}
	env.sched.entries[schedKey("stu-1", "cls-1", "top-2")] = &leitner.Entry{
		StudentID: "stu-1", ClassID: "cls-1", TopicID: "top-2",
		TopicLabel: "Calculus", Box: 2, NextReview: asOf.AddDate(0, 0, 5),
	}

	rec := env.do(t, http.MethodGet, "/api/classes/cls-1/students/stu-1/due?as_of="+asOf.Format(time.RFC3339), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Due []leitner.Entry `json:"due"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Due, 1)
	require.Equal(t, "Algebra", resp.Due[0].TopicLabel)
}

func TestGetDue_BadAsOf(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/classes/cls-1/students/stu-1/due?as_of=yesterday", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRemediation(t *testing.T) {
	env := newTestEnv(t)
	env.attempts.stats = []remediate.TopicStats{
		{TopicID: "t1", Label: "Fractions", Attempts: 2, Correct: 0},
		{TopicID: "t2", Label: "Decimals", Attempts: 5, Correct: 1},
	}

	rec := env.do(t, http.MethodGet, "/api/classes/cls-1/students/stu-1/remediation", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Topics   []RemediationTopic `json:"topics"`
		Fallback bool               `json:"fallback"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Fallback)
	require.Len(t, resp.Topics, 1)
	require.Equal(t, "Decimals", resp.Topics[0].Label)
	require.InDelta(t, 0.2, resp.Topics[0].Accuracy, 1e-9)
}

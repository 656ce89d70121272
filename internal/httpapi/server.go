// Package httpapi exposes the graph and review engines over a narrow JSON
// API. One route group per class; students are scoped under their class.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/studymap/studymap/internal/knowledge"
	"github.com/studymap/studymap/internal/leitner"
	"github.com/studymap/studymap/internal/remediate"
	"github.com/studymap/studymap/internal/store"
)

// AttemptLog is the event-log collaborator: append attempts, aggregate them
// per topic for remediation.
type AttemptLog interface {
	AppendAttempt(ctx context.Context, data store.AttemptData) error
	TopicStats(ctx context.Context, studentID, classID string) ([]remediate.TopicStats, error)
}

// Server holds the HTTP server dependencies.
type Server struct {
	graphs   knowledge.SnapshotStore
	sched    *leitner.Scheduler
	attempts AttemptLog
	remCfg   remediate.Config
}

// New creates a new API server.
func New(graphs knowledge.SnapshotStore, sched *leitner.Scheduler, attempts AttemptLog, remCfg remediate.Config) *Server {
	return &Server{graphs: graphs, sched: sched, attempts: attempts, remCfg: remCfg}
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", s.Health)

	r.Route("/api/classes/{classID}", func(r chi.Router) {
		r.Get("/graph", s.GetGraph)
		r.Put("/graph", s.PutGraph)
		r.Post("/graph/validate", s.ValidateGraph)

		r.Route("/students/{studentID}", func(r chi.Router) {
			r.Post("/attempts", s.PostAttempt)
			r.Get("/due", s.GetDue)
			r.Get("/remediation", s.GetRemediation)
		})
	})
	return r
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetGraph handles GET /api/classes/{classID}/graph. A class with no saved
// graph returns an empty document.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classID")

	sess, err := knowledge.OpenSession(r.Context(), s.graphs, classID)
	if err != nil {
		writeKnowledgeError(w, err)
		return
	}
	nodes, edges := sess.Graph().Snapshot()
	writeJSON(w, http.StatusOK, documentPayload(nodes, edges))
}

// PutGraph handles PUT /api/classes/{classID}/graph. The whole document is
// validated (schema, dangling edges, cycles) and then saved wholesale,
// overwriting the previous snapshot. A cycle-introducing document is rejected
// with 422 and the offending cycle.
func (s *Server) PutGraph(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classID")
	if classID == "" {
		http.Error(w, "empty class id", http.StatusBadRequest)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	doc, err := knowledge.ParseDocument(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g := knowledge.NewGraph()
	if err := g.Load(doc.Nodes, doc.Edges); err != nil {
		var cycleErr *knowledge.ErrCycle
		if errors.As(err, &cycleErr) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error": cycleErr.Error(),
				"cycle": cycleErr.Cycle,
			})
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.graphs.SaveGraph(r.Context(), classID, doc.Nodes, doc.Edges); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ValidateGraph handles POST /api/classes/{classID}/graph/validate. It runs
// the same checks as PutGraph without saving anything.
func (s *Server) ValidateGraph(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	doc, err := knowledge.ParseDocument(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g := knowledge.NewGraph()
	if err := g.Load(doc.Nodes, doc.Edges); err != nil {
		var cycleErr *knowledge.ErrCycle
		if errors.As(err, &cycleErr) {
			writeJSON(w, http.StatusOK, map[string]any{
				"valid": false,
				"cycle": cycleErr.Cycle,
			})
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}

// AttemptRequest is the request body for recording an attempt.
type AttemptRequest struct {
	TopicID    string `json:"topic_id"`
	TopicLabel string `json:"topic_label"`
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
}

// PostAttempt handles POST /api/classes/{classID}/students/{studentID}/attempts.
// It moves the Leitner entry and appends the attempt to the event log.
func (s *Server) PostAttempt(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classID")
	studentID := chi.URLParam(r, "studentID")

	var req AttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := s.sched.RecordAttempt(r.Context(), studentID, classID, req.TopicID, req.TopicLabel, req.Correct, time.Now().UTC())
	if err != nil {
		var bad *leitner.ErrBadIdentifier
		if errors.As(err, &bad) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	err = s.attempts.AppendAttempt(r.Context(), store.AttemptData{
		StudentID:  studentID,
		ClassID:    classID,
		TopicID:    req.TopicID,
		TopicLabel: req.TopicLabel,
		QuestionID: req.QuestionID,
		Correct:    req.Correct,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// GetDue handles GET /api/classes/{classID}/students/{studentID}/due.
// An optional as_of query parameter (RFC3339) overrides the evaluation time.
func (s *Server) GetDue(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classID")
	studentID := chi.URLParam(r, "studentID")

	asOf := time.Now().UTC()
	if v := r.URL.Query().Get("as_of"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			http.Error(w, "invalid as_of parameter (use RFC3339 format)", http.StatusBadRequest)
			return
		}
		asOf = t
	}

	entries, err := s.sched.DueEntries(r.Context(), studentID, classID, asOf)
	if err != nil {
		var bad *leitner.ErrBadIdentifier
		if errors.As(err, &bad) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []*leitner.Entry{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"due": entries})
}

// RemediationTopic is one ranked topic in the remediation response.
type RemediationTopic struct {
	TopicID  string  `json:"topic_id"`
	Label    string  `json:"label"`
	Attempts int     `json:"attempts"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// GetRemediation handles GET /api/classes/{classID}/students/{studentID}/remediation.
// Topics are ranked worst first from the attempt log.
func (s *Server) GetRemediation(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classID")
	studentID := chi.URLParam(r, "studentID")

	stats, err := s.attempts.TopicStats(r.Context(), studentID, classID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ranking := remediate.Rank(stats, s.remCfg)
	top := ranking.Top(s.remCfg.TopK)
	topics := make([]RemediationTopic, len(top))
	for i, t := range top {
		topics[i] = RemediationTopic{
			TopicID:  t.TopicID,
			Label:    t.Label,
			Attempts: t.Attempts,
			Correct:  t.Correct,
			Accuracy: t.Accuracy(),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"topics":   topics,
		"fallback": ranking.Fallback,
	})
}

func documentPayload(nodes []knowledge.Node, edges []knowledge.Edge) knowledge.Document {
	if nodes == nil {
		nodes = []knowledge.Node{}
	}
	if edges == nil {
		edges = []knowledge.Edge{}
	}
	return knowledge.Document{Nodes: nodes, Edges: edges}
}

func writeKnowledgeError(w http.ResponseWriter, err error) {
	var (
		validationErr *knowledge.ErrValidation
		corruptErr    *knowledge.ErrCorruptSnapshot
	)
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &corruptErr):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pdiddy/paper-formatter/internal/render"
	"github.com/pdiddy/paper-formatter/internal/store"
	"github.com/pdiddy/paper-formatter/pkg/types"
)

// FormatResponse summarizes one formatting run for API clients. The full
// result, documents included, stays behind GET /papers/{id}.
type FormatResponse struct {
	ID         string                `json:"id"`
	Status     string                `json:"status"`
	Compliance types.ComplianceScore `json:"compliance"`
	Issues     []types.Issue         `json:"issues"`
	FixCount   int                   `json:"fix_count"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "paper-formatter",
		"features": []string{
			"section_classification",
			"citation_conversion",
			"grammar_correction",
			"compliance_scoring",
			"change_tracking",
			"artifact_rendering",
		},
	})
}

// handleFormat accepts a multipart upload: "file" holds the manuscript,
// optional "edits" holds a UserEdits JSON object.
// POST /papers
func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		http.Error(w, "invalid multipart upload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "reading upload", http.StatusBadRequest)
		return
	}

	var edits *types.UserEdits
	if raw := r.FormValue("edits"); raw != "" {
		edits = &types.UserEdits{}
		if err := json.Unmarshal([]byte(raw), edits); err != nil {
			http.Error(w, "invalid edits JSON", http.StatusBadRequest)
			return
		}
	}

	res, err := s.pipe.Process(r.Context(), header.Filename, data, edits)
	if err != nil {
		s.logger.Error("pipeline failed", "filename", header.Filename, "error", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	id := uuid.NewString()
	if err := s.papers.SaveResult(r.Context(), id, header.Filename, res); err != nil {
		s.logger.Error("saving result", "id", id, "error", err)
		http.Error(w, "storing result", http.StatusInternalServerError)
		return
	}

	s.logger.Info("paper formatted",
		"id", id,
		"filename", header.Filename,
		"score", res.Compliance.Score,
		"issues", len(res.Issues),
		"fixes", len(res.Fixes))

	writeJSON(w, http.StatusCreated, FormatResponse{
		ID:         id,
		Status:     res.Status,
		Compliance: res.Compliance,
		Issues:     res.Issues,
		FixCount:   len(res.Fixes),
	})
}

// GET /papers
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := s.papers.List(r.Context())
	if err != nil {
		s.logger.Error("listing papers", "error", err)
		http.Error(w, "listing papers", http.StatusInternalServerError)
		return
	}
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		out = append(out, map[string]any{
			"id":         rec.ID,
			"filename":   rec.Filename,
			"status":     rec.Status,
			"score":      rec.Score,
			"created_at": rec.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// GET /papers/{id}
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	res, ok := s.loadResult(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleArtifact re-renders the stored formatted document.
// GET /papers/{id}/artifact?kind=docx|html
func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	kind := render.Kind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = render.KindDocx
	}

	res, ok := s.loadResult(w, r)
	if !ok {
		return
	}

	artifact, err := render.Render(res.After, kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", kind.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "paper-"+chi.URLParam(r, "id")+"."+string(kind)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact)
}

func (s *Server) loadResult(w http.ResponseWriter, r *http.Request) (*types.Result, bool) {
	id := chi.URLParam(r, "id")
	res, err := s.papers.GetResult(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "paper not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		s.logger.Error("loading paper", "id", id, "error", err)
		http.Error(w, "loading paper", http.StatusInternalServerError)
		return nil, false
	}
	return res, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jonathan/roommate-matcher/internal/schemas"
	"github.com/jonathan/roommate-matcher/internal/types"
	schemafiles "github.com/jonathan/roommate-matcher/schemas"
)

// sessionID parses the {id} path value.
func sessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "invalid session ID"}
	}
	return id, nil
}

// readBody reads a bounded request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return body, nil
}

// decodeBody reads a bounded JSON request body into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return nil
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	state, err := s.service.Create(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, types.CreateSessionResponse{SessionID: state.ID})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	state, err := s.service.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, state)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.service.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleImportProfile replaces the session profile with a schema-valid document.
func (s *Server) handleImportProfile(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !json.Valid(body) {
		s.writeError(w, r, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := schemas.Validate(schemafiles.PreferenceProfile, body); err != nil {
		s.writeError(w, r, err)
		return
	}

	var profile types.PreferenceProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		s.writeError(w, r, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}

	state, err := s.service.ImportProfile(r.Context(), id, &profile)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, state)
}

func (s *Server) handleSwipe(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req types.SwipeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}
	direction, err := types.ParseDirection(req.Direction)
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "direction", Message: err.Error()})
		return
	}

	state, count, err := s.service.Swipe(r.Context(), id, &req.Candidate, direction)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.SwipeResponse{
		Profile:    state.Profile,
		Counters:   state.Counters,
		SwipeCount: count,
	})
}

func (s *Server) handleBootstrap(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var answers types.OnboardingAnswers
	if err := decodeBody(w, r, &answers); err != nil {
		s.writeError(w, r, err)
		return
	}

	state, err := s.service.Bootstrap(r.Context(), id, &answers)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, state)
}

func (s *Server) handleAmplify(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	state, err := s.service.Amplify(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, state)
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req types.ScoreRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	explanation, err := s.service.Score(r.Context(), id, &req.Candidate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, explanation)
}

func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req types.RankRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	ranked, err := s.service.Rank(r.Context(), id, req.Candidates)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ranked)
}

// handleFeatures lists the strongest features of a category. Query parameters:
// limit (default engine.feature_limit) and direction=top|bottom.
func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	category, err := types.ParseCategory(r.PathValue("category"))
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "category", Message: err.Error()})
		return
	}

	limit := s.engine.FeatureLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			s.writeError(w, r, &ErrValidation{Field: "limit", Message: "must be a non-negative integer"})
			return
		}
	}

	direction := r.URL.Query().Get("direction")
	if direction == "" {
		direction = "top"
	}
	if direction != "top" && direction != "bottom" {
		s.writeError(w, r, &ErrValidation{Field: "direction", Message: "must be top or bottom"})
		return
	}

	features, err := s.service.Features(r.Context(), id, category, direction == "bottom", limit)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.FeaturesResponse{
		Category:  category,
		Direction: direction,
		Features:  features,
	})
}

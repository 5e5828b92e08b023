package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/usersvc/internal/server/services"
)

const maxBodyBytes = 1 << 20

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports false when the request must stop here.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, codeInvalidJSON, "Request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, codeInvalidJSON, "Invalid JSON body")
		return false
	}

	if err := s.validate.Struct(dst); err != nil {
		if fields := fieldErrors(err); fields != nil {
			writeValidation(w, fields)
			return false
		}
		writeInternal(w, err)
		return false
	}
	return true
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !s.decode(w, r, &req) {
		return
	}

	outcome, err := s.users.Register(r.Context(), req.input())
	if err != nil {
		s.log.Error(r.Context(), "register failed", "error", err)
		writeInternal(w, err)
		return
	}
	if outcome == services.OutcomeCreated {
		s.log.Debug(r.Context(), "user registered", "email", req.Email)
	}
	writeOutcome(w, outcome)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !s.decode(w, r, &req) {
		return
	}

	res, err := s.users.Login(r.Context(), req.input())
	if err != nil {
		s.log.Error(r.Context(), "login failed", "error", err)
		writeInternal(w, err)
		return
	}
	if res.Outcome != services.OutcomeAuthenticated {
		writeOutcome(w, res.Outcome)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Code:    http.StatusOK,
		Message: res.Outcome.Message(),
		Token:   res.Token,
		User:    *res.User,
	})
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	acting, ok := UserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req UpdateRequest
	if !s.decode(w, r, &req) {
		return
	}

	outcome, err := s.users.Update(r.Context(), acting, req.input())
	if err != nil {
		s.log.Error(r.Context(), "update failed", "user_id", acting.ID, "error", err)
		writeInternal(w, err)
		return
	}
	writeOutcome(w, outcome)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	acting, ok := UserFromContext(r.Context())
	if !ok {
		writeUnauthorized(w)
		return
	}

	id := chi.URLParam(r, "id")
	outcome, err := s.users.Delete(r.Context(), acting, id)
	if err != nil {
		s.log.Error(r.Context(), "delete failed", "user_id", acting.ID, "target", id, "error", err)
		writeInternal(w, err)
		return
	}
	if outcome == services.OutcomeDeleted {
		s.log.Info(r.Context(), "user deleted", "user_id", id)
	}
	writeOutcome(w, outcome)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.PingContext(r.Context()); err != nil {
			s.log.Warn(r.Context(), "health check failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

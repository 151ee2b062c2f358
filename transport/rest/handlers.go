package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-local/internal/announce"
	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

var errBadRequest = errors.New("bad request")

type moveRequest struct {
	Cell *int `json:"cell"`
}

type sessionResponse struct {
	*entity.Session
	StatusText   string `json:"status_text"`
	Announcement string `json:"announcement"`
	ThemeToggle  string `json:"theme_toggle"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newSessionResponse(session *entity.Session) sessionResponse {
	return sessionResponse{
		Session:      session,
		StatusText:   announce.StatusLine(session.Game),
		Announcement: announce.Status(session.Game),
		ThemeToggle:  announce.ThemeToggle(session.Theme),
	}
}

func (that *Server) createSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.uSession.CreateSession(r.Context())
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusCreated, newSessionResponse(session))
}

func (that *Server) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.uSession.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, newSessionResponse(session))
}

func (that *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := that.uSession.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.sendError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) makeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.sendError(w, r, errBadRequest)
		return
	}

	session, err := that.uSession.MakeMove(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, newSessionResponse(session))
}

func (that *Server) restart(w http.ResponseWriter, r *http.Request) {
	session, err := that.uSession.Restart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, newSessionResponse(session))
}

func (that *Server) toggleTheme(w http.ResponseWriter, r *http.Request) {
	session, err := that.uSession.ToggleTheme(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, newSessionResponse(session))
}

func (that *Server) getScore(w http.ResponseWriter, r *http.Request) {
	score, err := that.uSession.GetScore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.sendError(w, r, err)
		return
	}

	that.sendJSON(w, http.StatusOK, score)
}

func (that *Server) sendJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

// sendError - maps domain errors onto HTTP status codes.
func (that *Server) sendError(w http.ResponseWriter, r *http.Request, err error) {
	var status int

	switch {
	case errors.Is(err, errBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, apperror.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidCell):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrGameOver):
		status = http.StatusConflict
	default:
		that.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		that.sendJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})

		return
	}

	that.sendJSON(w, status, errorResponse{Error: err.Error()})
}

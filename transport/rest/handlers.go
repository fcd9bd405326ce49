package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var errBadRequest = errors.New("bad request")

type handlers struct {
	logger   *slog.Logger
	manager  gameManager
	defaults Defaults
}

type createSessionRequest struct {
	Mode    string `json:"mode"`
	AIMark  string `json:"ai_mark"`
	PlayerX string `json:"player_x"`
	PlayerO string `json:"player_o"`
}

type moveRequest struct {
	Cell *int   `json:"cell"`
	Mark string `json:"mark"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	mode := that.defaults.Mode
	if req.Mode != "" {
		parsed, err := entity.ParseMode(req.Mode)
		if err != nil {
			that.writeError(w, r, err)
			return
		}
		mode = parsed
	}

	aiMark := that.defaults.AIMark
	if req.AIMark != "" {
		parsed, err := entity.ParseMark(req.AIMark)
		if err != nil {
			that.writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
			return
		}
		aiMark = parsed
	}

	names := map[entity.Mark]string{
		entity.PlayerX: req.PlayerX,
		entity.PlayerO: req.PlayerO,
	}

	session, err := that.manager.NewSession(r.Context(), mode, aiMark, names)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, session)
}

func (that *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.manager.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		that.writeError(w, r, err)
		return
	}

	if req.Cell == nil {
		that.writeError(w, r, fmt.Errorf("%w: cell is required", errBadRequest))
		return
	}

	mark := entity.EmptyCell
	if req.Mark != "" {
		parsed, err := entity.ParseMark(req.Mark)
		if err != nil {
			that.writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
			return
		}
		mark = parsed
	}

	session, err := that.manager.MakeTurn(r.Context(), chi.URLParam(r, "id"), mark, *req.Cell)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) newRound(w http.ResponseWriter, r *http.Request) {
	session, err := that.manager.NewRound(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) restart(w http.ResponseWriter, r *http.Request) {
	session, err := that.manager.Restart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, session)
}

func (that *handlers) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := that.manager.DeleteSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBody reads a JSON body. An empty body leaves v at its zero value.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: malformed JSON body: %w", errBadRequest, err)
	}

	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrIllegalMove), errors.Is(err, apperror.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, errBadRequest), errors.Is(err, apperror.ErrUnknownMode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (that *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := that.logger.With("method", "writeError")

	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error("request failed", "path", r.URL.Path, "error", err)
		message = http.StatusText(status)
	} else {
		log.Debug("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: message})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

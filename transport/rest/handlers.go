package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-plus/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-plus/internal/entity"
	"github.com/rocketscienceinc/tictactoe-plus/transport/view"
)

type selectRequest struct {
	Side entity.Side `json:"side"`
	Rank *int        `json:"rank"`
}

type placeRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type response struct {
	Game  *view.Game `json:"game,omitempty"`
	Error string     `json:"error,omitempty"`
}

func (that *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.CreateGame(r.Context())
	if err != nil {
		that.writeError(w, "create", nil, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, response{Game: view.FromGame(game)})
}

func (that *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.GetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "get", nil, err)
		return
	}

	that.writeJSON(w, http.StatusOK, response{Game: view.FromGame(game)})
}

func (that *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.uGame.DeleteGame(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, "delete", nil, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, response{Error: "invalid request body"})
		return
	}

	if req.Side == "" || req.Rank == nil {
		that.writeJSON(w, http.StatusBadRequest, response{Error: "side and rank are required"})
		return
	}

	game, err := that.uGame.SelectPiece(r.Context(), r.PathValue("id"), req.Side, *req.Rank)
	if err != nil {
		that.writeError(w, "select", game, err)
		return
	}

	that.writeJSON(w, http.StatusOK, response{Game: view.FromGame(game)})
}

func (that *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, response{Error: "invalid request body"})
		return
	}

	if req.Row == nil || req.Col == nil {
		that.writeJSON(w, http.StatusBadRequest, response{Error: "row and col are required"})
		return
	}

	game, err := that.uGame.PlacePiece(r.Context(), r.PathValue("id"), *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, "place", game, err)
		return
	}

	that.writeJSON(w, http.StatusOK, response{Game: view.FromGame(game)})
}

func (that *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	game, err := that.uGame.RestartGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "restart", nil, err)
		return
	}

	that.writeJSON(w, http.StatusOK, response{Game: view.FromGame(game)})
}

// writeError - maps rejections to 409 with the unchanged game, unknown games to 404 and
// everything else to 500.
func (that *Server) writeError(w http.ResponseWriter, action string, game *entity.Game, err error) {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		that.writeJSON(w, http.StatusNotFound, response{Error: err.Error()})
	case apperror.IsRejection(err):
		resp := response{Error: err.Error()}
		if game != nil {
			resp.Game = view.FromGame(game)
		}
		that.writeJSON(w, http.StatusConflict, resp)
	default:
		that.logger.Error("request failed", "action", action, "error", err)
		that.writeJSON(w, http.StatusInternalServerError, response{Error: "internal error"})
	}
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-plus/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-plus/internal/entity"
	"github.com/rocketscienceinc/tictactoe-plus/transport/view"
)

var (
	errGameIDRequired   = errors.New("game_id is required")
	errSideRankRequired = errors.New("side and rank are required")
	errRowColRequired   = errors.New("row and col are required")
)

func (that *Server) handleNewGame(ctx context.Context, _ *Payload) (*entity.Game, error) {
	return that.uGame.CreateGame(ctx)
}

func (that *Server) handleState(ctx context.Context, payload *Payload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	return that.uGame.GetGame(ctx, payload.GameID)
}

func (that *Server) handleSelect(ctx context.Context, payload *Payload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	if payload.Side == "" || payload.Rank == nil {
		return nil, errSideRankRequired
	}

	return that.uGame.SelectPiece(ctx, payload.GameID, payload.Side, *payload.Rank)
}

func (that *Server) handlePlace(ctx context.Context, payload *Payload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	if payload.Row == nil || payload.Col == nil {
		return nil, errRowColRequired
	}

	return that.uGame.PlacePiece(ctx, payload.GameID, *payload.Row, *payload.Col)
}

func (that *Server) handleRestart(ctx context.Context, payload *Payload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, errGameIDRequired
	}

	return that.uGame.RestartGame(ctx, payload.GameID)
}

func gameResponse(action string, game *entity.Game) Response {
	return Response{
		Action:  action,
		Payload: ResponsePayload{Game: view.FromGame(game)},
	}
}

func errorResponse(action, errorMsg string) Response {
	return Response{
		Action:  action,
		Payload: ResponsePayload{Error: errorMsg},
	}
}

// errorResponse - rejections carry the unchanged game so the client can redraw; internal
// failures are logged and hidden.
func (that *Server) errorResponse(action string, game *entity.Game, err error) Response {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound),
		errors.Is(err, errGameIDRequired),
		errors.Is(err, errSideRankRequired),
		errors.Is(err, errRowColRequired):
		return errorResponse(action, err.Error())
	case apperror.IsRejection(err):
		resp := errorResponse(action, err.Error())
		if game != nil {
			resp.Payload.Game = view.FromGame(game)
		}
		return resp
	default:
		that.logger.Error("failed to process message", "action", action, "error", err)
		return errorResponse(action, "internal error")
	}
}

package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-plus/internal/entity"
	"github.com/rocketscienceinc/tictactoe-plus/transport/view"
)

const (
	actionNewGame = "game:new"
	actionState   = "game:state"
	actionSelect  = "game:select"
	actionPlace   = "game:place"
	actionRestart = "game:restart"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is the request body of every action; only the fields an action needs are read.
type Payload struct {
	GameID string      `json:"game_id,omitempty"`
	Side   entity.Side `json:"side,omitempty"`
	Rank   *int        `json:"rank,omitempty"`
	Row    *int        `json:"row,omitempty"`
	Col    *int        `json:"col,omitempty"`
}

type ResponsePayload struct {
	Game  *view.Game `json:"game,omitempty"`
	Error string     `json:"error,omitempty"`
}

type Response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}

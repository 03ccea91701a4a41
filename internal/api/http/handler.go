package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"micattix/internal/game"
	"micattix/internal/room"
)

// fail maps room and engine rejections onto HTTP statuses. Anything
// unrecognized is the caller's fault.
func fail(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		status = http.StatusNotFound
	case errors.Is(err, room.ErrRoomFull),
		errors.Is(err, room.ErrRoomNotFull),
		errors.Is(err, game.ErrWrongPhase):
		status = http.StatusConflict
	case errors.Is(err, room.ErrUnknownPlayer),
		errors.Is(err, room.ErrNotYourTurn):
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// @Summary Create new room
// @Description Open a room and seat the creator; returns the join code
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Creator and table setup"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "player_name required"})
			return
		}
		state, player, err := rm.CreateRoom(req.PlayerName, game.BoardSize(req.Size), game.GameMode(req.Mode))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room_code": state.Code, "room": state, "player": player})
	}
}

// @Summary Join a room
// @Description Claim the next free seat in an open room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Room code and player name"
// @Success 200 {object} map[string]interface{}
// @Router /join-room [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room_code and player_name required"})
			return
		}
		state, player, err := rm.JoinRoom(req.RoomCode, req.PlayerName)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": state, "player": player})
	}
}

// @Summary Start the game
// @Description Deal the first round once every seat is taken
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.StartGameRequest true "Room code and requesting player"
// @Success 200 {object} map[string]interface{}
// @Router /start-game [post]
func StartGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartGameRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := rm.StartGame(req.RoomCode, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		state, err := rm.GetState(req.RoomCode)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": state})
	}
}

// @Summary Player makes a move
// @Description Slide the active cross to (row, col), capturing any occupant
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := rm.ApplyMove(req.RoomCode, req.PlayerID, game.Coord{Row: req.Row, Col: req.Col}); err != nil {
			fail(c, err)
			return
		}
		state, err := rm.GetState(req.RoomCode)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "room": state})
	}
}

// @Summary Deal the next round
// @Description Fold round scores into totals and deal a fresh board
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.NextRoundRequest true "Room code and requesting player"
// @Success 200 {object} map[string]interface{}
// @Router /next-round [post]
func NextRoundHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NextRoundRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		if err := rm.NextRound(req.RoomCode, req.PlayerID); err != nil {
			fail(c, err)
			return
		}
		state, err := rm.GetState(req.RoomCode)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": state})
	}
}

// @Summary End the game
// @Description Close the game and report standings over all rounds
// @Tags Game
// @Accept json
// @Produce json
// @Param request body http.EndGameRequest true "Room code and requesting player"
// @Success 200 {object} map[string]interface{}
// @Router /end-game [post]
func EndGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EndGameRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		standings, err := rm.EndGame(req.RoomCode, req.PlayerID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"standings": standings})
	}
}

// @Summary Get room state
// @Description Returns the room roster and the current game snapshot
// @Tags Room
// @Produce json
// @Param room_code query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("room_code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room_code required"})
			return
		}
		state, err := rm.GetState(code)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": state})
	}
}

// @Summary Get legal moves
// @Description Returns the active seat's reachable cells and which capture
// @Tags Game
// @Produce json
// @Param room_code query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /legal-moves [get]
func LegalMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("room_code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room_code required"})
			return
		}
		targets, captures, err := rm.LegalMoves(code)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"targets": targets, "captures": captures})
	}
}

// @Summary Liveness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /healthz [get]
func HealthHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "rooms": rm.OpenRooms()})
	}
}

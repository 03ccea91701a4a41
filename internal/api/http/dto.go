package http

// CreateRoomRequest is the payload for /create-room. Size and mode fall
// back to the server defaults when omitted.
type CreateRoomRequest struct {
	PlayerName string `json:"player_name"`
	Size       string `json:"size"`
	Mode       string `json:"mode"`
}

// JoinRoomRequest seats a player in an existing room.
type JoinRoomRequest struct {
	RoomCode   string `json:"room_code"`
	PlayerName string `json:"player_name"`
}

// StartGameRequest begins play once every seat is taken.
type StartGameRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
}

// MoveRequest slides the active player's cross to (row, col).
type MoveRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// NextRoundRequest deals the following round after a round closes.
type NextRoundRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
}

// EndGameRequest closes the game and reports final standings.
type EndGameRequest struct {
	RoomCode string `json:"room_code"`
	PlayerID string `json:"player_id"`
}

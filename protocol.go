package main

import "encoding/json"

// Client -> Server message types
const (
	MsgCreateRoom     = "create-room"
	MsgJoinRoom       = "join-room"
	MsgStartGame      = "start-game"
	MsgPlayerMove     = "player-move"
	MsgPlayerAttack   = "player-attack"
	MsgCollectOrb     = "collect-orb"
	MsgHitPlayer      = "hit-player"
	MsgCollectPowerUp = "collect-powerup"
	MsgPauseGame      = "pause-game"
	MsgResumeGame     = "resume-game"
	MsgQuitGame       = "quit-game"
	MsgRestartGame    = "restart-game"
	MsgGameOver       = "game-over"
	MsgRegister       = "register"
	MsgLogin          = "login"
	MsgAuth           = "auth"
	MsgProfile        = "profile"
)

// Server -> Client message types
const (
	MsgRoomCreated     = "room-created"
	MsgRoomJoined      = "room-joined"
	MsgPlayerJoined    = "player-joined"
	MsgPlayerLeft      = "player-left"
	MsgGameStarted     = "game-started"
	MsgPlayerMoved     = "player-moved"
	MsgPlayerAttacked  = "player-attacked"
	MsgOrbCollected    = "orb-collected"
	MsgPlayerHit       = "player-hit"
	MsgPowerUpSpawned  = "powerup-spawned"
	MsgPowerUpGot      = "powerup-collected"
	MsgPowerUpExpired  = "powerup-expired"
	MsgGamePaused      = "game-paused"
	MsgGameResumed     = "game-resumed"
	MsgPlayerQuit      = "player-quit"
	MsgPlayerRestarted = "player-restarted"
	MsgGameEnded       = "game-ended"
	MsgError           = "error"
	MsgAuthOK          = "auth-ok"
	MsgProfileData     = "profile-data"
)

// Envelope wraps all outgoing messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// CreateRoomMsg requests a new room with the sender as host
type CreateRoomMsg struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomMsg requests membership in an existing room
type JoinRoomMsg struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// RoomAck answers create-room and join-room requests
type RoomAck struct {
	Success  bool   `json:"success"`
	RoomCode string `json:"roomCode,omitempty"`
	PlayerID string `json:"playerId,omitempty"`
	Error    string `json:"error,omitempty"`
}

// PlayerState is the wire form of a player, positions in canonical arena units
type PlayerState struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Direction string  `json:"direction"`
	Score     int     `json:"score"`
	Health    int     `json:"health"`
	IsAlive   bool    `json:"isAlive"`
	PowerUp   string  `json:"powerUp,omitempty"`
	Color     string  `json:"color"`
}

// RosterMsg is broadcast whenever room membership grows
type RosterMsg struct {
	Players []PlayerState `json:"players"`
}

// PlayerLeftMsg carries the departure plus the surviving roster
type PlayerLeftMsg struct {
	PlayerID   string        `json:"playerId"`
	PlayerName string        `json:"playerName"`
	Players    []PlayerState `json:"players"`
	NewHost    string        `json:"newHost"`
}

// OrbState is the wire form of an orb
type OrbState struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// PowerUpState is the wire form of an uncollected power-up
type PowerUpState struct {
	ID   string  `json:"id"`
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// ArenaState is the per-match object state sent on game start
type ArenaState struct {
	Orbs      []OrbState     `json:"orbs"`
	PowerUps  []PowerUpState `json:"powerUps"`
	StartTime int64          `json:"startTime"` // unix millis
	Duration  int            `json:"duration"`  // seconds
}

// GameStartedMsg is broadcast when the host starts the match
type GameStartedMsg struct {
	Players   []PlayerState `json:"players"`
	GameState ArenaState    `json:"gameState"`
}

// MoveMsg reports a client-authoritative position in canonical units.
// Also the msgpack payload of the binary move fast path.
type MoveMsg struct {
	X         float64 `json:"x" msgpack:"x"`
	Y         float64 `json:"y" msgpack:"y"`
	Direction string  `json:"direction" msgpack:"d"`
}

// PlayerMovedMsg relays a move to everyone except the mover
type PlayerMovedMsg struct {
	PlayerID  string  `json:"playerId"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Direction string  `json:"direction"`
}

// PlayerAttackedMsg tells peers to play the attack animation
type PlayerAttackedMsg struct {
	PlayerID string `json:"playerId"`
}

// CollectOrbMsg claims an orb by id
type CollectOrbMsg struct {
	OrbID string `json:"orbId"`
}

// OrbCollectedMsg is broadcast after a successful collection; NewOrb is the replacement
type OrbCollectedMsg struct {
	PlayerID string   `json:"playerId"`
	OrbID    string   `json:"orbId"`
	Score    int      `json:"score"`
	NewOrb   OrbState `json:"newOrb"`
}

// HitPlayerMsg claims a melee hit on another player
type HitPlayerMsg struct {
	TargetID string `json:"targetId"`
}

// PlayerHitMsg carries the full combat outcome in one atomic broadcast
type PlayerHitMsg struct {
	AttackerID    string `json:"attackerId"`
	TargetID      string `json:"targetId"`
	AttackerScore int    `json:"attackerScore"`
	TargetHealth  int    `json:"targetHealth"`
	TargetScore   int    `json:"targetScore"`
	TargetIsAlive bool   `json:"targetIsAlive"`
}

// CollectPowerUpMsg claims a power-up by id
type CollectPowerUpMsg struct {
	PowerUpID string `json:"powerUpId"`
}

// PowerUpCollectedMsg is broadcast when a player picks up a power-up
type PowerUpCollectedMsg struct {
	PlayerID    string `json:"playerId"`
	PowerUpID   string `json:"powerUpId"`
	PowerUpType string `json:"powerUpType"`
}

// PowerUpExpiredMsg is broadcast when an effect times out
type PowerUpExpiredMsg struct {
	PlayerID string `json:"playerId"`
}

// PlayerNoticeMsg names the player behind pause/resume/quit/restart broadcasts
type PlayerNoticeMsg struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
}

// FinalScore is one row of the end-of-match ranking
type FinalScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// GameEndedMsg is broadcast when the match ends
type GameEndedMsg struct {
	Winner      string       `json:"winner"`
	FinalScores []FinalScore `json:"finalScores"`
	Reason      string       `json:"reason,omitempty"`
}

// ErrorMsg sends an error string to one client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginMsg authenticates an existing account
type LoginMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthMsg resumes a session from a stored token
type AuthMsg struct {
	Token string `json:"token"`
}

// AuthOKMsg confirms register/login/auth
type AuthOKMsg struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	PlayerID int64  `json:"playerId"`
}

// ProfileDataMsg returns persisted stats for the authenticated account
type ProfileDataMsg struct {
	Username     string   `json:"username"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Matches      int      `json:"matches"`
	Orbs         int      `json:"orbs"`
	Eliminations int      `json:"eliminations"`
	BestScore    int      `json:"bestScore"`
	Achievements []string `json:"achievements"`
}

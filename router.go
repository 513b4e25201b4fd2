package main

import (
	"encoding/json"
	"log"
	"strings"
	"time"
)

// dispatch validates and applies one inbound action. Runs on the hub loop;
// anything invalid or unauthorized degrades to a no-op unless the event
// contract calls for an ack (create-room / join-room).
func (h *Hub) dispatch(c *Client, env InEnvelope) {
	switch env.T {
	case MsgCreateRoom:
		h.handleCreateRoom(c, env.D)
	case MsgJoinRoom:
		h.handleJoinRoom(c, env.D)
	case MsgStartGame:
		h.handleStartGame(c)
	case MsgPlayerMove:
		var move MoveMsg
		if err := json.Unmarshal(env.D, &move); err != nil {
			return
		}
		h.handleMove(c, move)
	case MsgPlayerAttack:
		h.handleAttack(c)
	case MsgCollectOrb:
		h.handleCollectOrb(c, env.D)
	case MsgHitPlayer:
		h.handleHitPlayer(c, env.D)
	case MsgCollectPowerUp:
		h.handleCollectPowerUp(c, env.D)
	case MsgPauseGame:
		h.handleNotice(c, MsgGamePaused)
	case MsgResumeGame:
		h.handleNotice(c, MsgGameResumed)
	case MsgQuitGame:
		h.handleQuit(c)
	case MsgRestartGame:
		h.handleRestart(c)
	case MsgGameOver:
		h.handleGameOver(c)
	}
}

// cleanName trims and caps a display name
func cleanName(name string) string {
	name = strings.TrimSpace(name)
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	return name
}

func (h *Hub) handleCreateRoom(c *Client, data json.RawMessage) {
	var msg CreateRoomMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	if c.roomCode != "" {
		return // already in a room
	}
	name := cleanName(msg.PlayerName)
	if len(name) < MinNameLen {
		name = GenerateGuestName()
	}

	room := h.rooms.Create()
	if room == nil {
		c.SendJSON(Envelope{T: MsgRoomCreated, Data: RoomAck{Success: false, Error: "Too many active rooms"}})
		return
	}

	player, err := room.AddPlayer(c.connID, name)
	if err != nil {
		// Cannot happen on a fresh room, but keep the ack contract honest
		h.rooms.Remove(room.Code)
		c.SendJSON(Envelope{T: MsgRoomCreated, Data: RoomAck{Success: false, Error: err.Error()}})
		return
	}
	player.AuthPlayerID = c.authPlayerID

	c.roomCode = room.Code
	c.playerID = player.ID
	h.members[player.ID] = c

	c.SendJSON(Envelope{T: MsgRoomCreated, Data: RoomAck{Success: true, RoomCode: room.Code, PlayerID: player.ID}})
	if h.analytics != nil {
		h.analytics.Track(EvtRoomCreated, c.authPlayerID, room.Code, "")
	}
	log.Printf("room %s created by %s", room.Code, name)
}

func (h *Hub) handleJoinRoom(c *Client, data json.RawMessage) {
	var msg JoinRoomMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	if c.roomCode != "" {
		return
	}
	name := cleanName(msg.PlayerName)
	if len(name) < MinNameLen {
		name = GenerateGuestName()
	}

	room := h.rooms.Get(msg.RoomCode)
	if room == nil {
		c.SendJSON(Envelope{T: MsgRoomJoined, Data: RoomAck{Success: false, Error: ErrRoomNotFound.Error()}})
		return
	}

	player, err := room.AddPlayer(c.connID, name)
	if err != nil {
		c.SendJSON(Envelope{T: MsgRoomJoined, Data: RoomAck{Success: false, Error: err.Error()}})
		return
	}
	player.AuthPlayerID = c.authPlayerID

	c.roomCode = room.Code
	c.playerID = player.ID
	h.members[player.ID] = c

	c.SendJSON(Envelope{T: MsgRoomJoined, Data: RoomAck{Success: true, PlayerID: player.ID}})
	h.broadcastRoom(room, Envelope{T: MsgPlayerJoined, Data: RosterMsg{Players: room.RosterStates()}})
	if h.analytics != nil {
		h.analytics.Track(EvtPlayerJoin, c.authPlayerID, room.Code, "")
	}
	log.Printf("%s joined room %s", name, room.Code)
}

func (h *Hub) handleStartGame(c *Client) {
	room := h.rooms.Get(c.roomCode)
	if room == nil || room.HostID != c.playerID || room.Phase == PhasePlaying {
		return
	}
	if room.PlayerCount() < MinPlayersToStart {
		c.SendJSON(Envelope{T: MsgError, Data: ErrorMsg{Msg: "Need at least 2 players to start"}})
		return
	}

	room.Start(time.Now())
	for i, p := range room.Players() {
		p.Reset(i)
		p.Orbs = 0
		p.Elims = 0
	}
	h.schedule(time.Duration(room.Duration)*time.Second, deferredTask{
		kind:     taskMatchTimeUp,
		roomCode: room.Code,
		startT:   room.StartT.UnixMilli(),
	})

	h.broadcastRoom(room, Envelope{T: MsgGameStarted, Data: GameStartedMsg{
		Players:   room.RosterStates(),
		GameState: room.ArenaState(),
	}})
	if h.analytics != nil {
		h.analytics.Track(EvtMatchStart, 0, room.Code, "")
	}
	log.Printf("game started in room %s", room.Code)
}

// alivePlayer resolves the sender to an alive player in a playing room
func (h *Hub) alivePlayer(c *Client) (*Room, *Player) {
	room := h.rooms.Get(c.roomCode)
	if room == nil || room.Phase != PhasePlaying {
		return nil, nil
	}
	p := room.Player(c.playerID)
	if p == nil || !p.Alive {
		return nil, nil
	}
	return room, p
}

func (h *Hub) handleMove(c *Client, move MoveMsg) {
	room, p := h.alivePlayer(c)
	if p == nil {
		return
	}
	// Positions are client-authoritative; no plausibility check
	p.X = move.X
	p.Y = move.Y
	p.Direction = move.Direction

	h.broadcastOthers(room, p.ID, Envelope{T: MsgPlayerMoved, Data: PlayerMovedMsg{
		PlayerID:  p.ID,
		X:         p.X,
		Y:         p.Y,
		Direction: p.Direction,
	}})
}

func (h *Hub) handleAttack(c *Client) {
	room, p := h.alivePlayer(c)
	if p == nil {
		return
	}
	h.broadcastRoom(room, Envelope{T: MsgPlayerAttacked, Data: PlayerAttackedMsg{PlayerID: p.ID}})
}

func (h *Hub) handleCollectOrb(c *Client, data json.RawMessage) {
	var msg CollectOrbMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	room, p := h.alivePlayer(c)
	if p == nil {
		return
	}
	result := ResolveOrbCollect(room, p, msg.OrbID)
	if result == nil {
		return // stale orb id
	}
	p.Orbs++
	h.broadcastRoom(room, Envelope{T: MsgOrbCollected, Data: *result})
}

func (h *Hub) handleHitPlayer(c *Client, data json.RawMessage) {
	var msg HitPlayerMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	room, attacker := h.alivePlayer(c)
	if attacker == nil {
		return
	}
	target := room.Player(msg.TargetID)
	if target == nil || target.ID == attacker.ID {
		return
	}
	result := ResolveHit(attacker, target)
	if result == nil {
		return // dead target or shield soak
	}
	if !result.TargetIsAlive {
		attacker.Elims++
		if h.analytics != nil {
			h.analytics.Track(EvtElimination, attacker.AuthPlayerID, room.Code, "")
		}
	}
	h.broadcastRoom(room, Envelope{T: MsgPlayerHit, Data: *result})
}

func (h *Hub) handleCollectPowerUp(c *Client, data json.RawMessage) {
	var msg CollectPowerUpMsg
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}
	room, p := h.alivePlayer(c)
	if p == nil {
		return
	}
	result := ResolvePowerUpCollect(room, p, msg.PowerUpID)
	if result == nil {
		return // stale power-up id
	}
	h.broadcastRoom(room, Envelope{T: MsgPowerUpGot, Data: *result})

	h.schedule(PowerUpEffectTTL, deferredTask{
		kind:     taskExpirePowerUp,
		roomCode: room.Code,
		playerID: p.ID,
		powerUp:  PowerUpType(result.PowerUpType),
	})
}

// handleNotice covers pause-game and resume-game: pure relays, any phase
func (h *Hub) handleNotice(c *Client, outType string) {
	room := h.rooms.Get(c.roomCode)
	if room == nil {
		return
	}
	name := "Unknown"
	if p := room.Player(c.playerID); p != nil {
		name = p.Name
	}
	h.broadcastRoom(room, Envelope{T: outType, Data: PlayerNoticeMsg{PlayerID: c.playerID, PlayerName: name}})
}

func (h *Hub) handleQuit(c *Client) {
	room := h.rooms.Get(c.roomCode)
	if room == nil {
		return
	}
	name := "Unknown"
	if p := room.Player(c.playerID); p != nil {
		name = p.Name
	}
	h.broadcastRoom(room, Envelope{T: MsgPlayerQuit, Data: PlayerNoticeMsg{PlayerID: c.playerID, PlayerName: name}})
	h.leaveRoom(c)
}

func (h *Hub) handleRestart(c *Client) {
	room := h.rooms.Get(c.roomCode)
	if room == nil {
		return
	}
	p := room.Player(c.playerID)
	if p == nil {
		return
	}
	h.broadcastRoom(room, Envelope{T: MsgPlayerRestarted, Data: PlayerNoticeMsg{PlayerID: p.ID, PlayerName: p.Name}})
	p.Reset(room.Slot(p.ID))
}

func (h *Hub) handleGameOver(c *Client) {
	room := h.rooms.Get(c.roomCode)
	if room == nil || room.HostID != c.playerID || room.Phase != PhasePlaying {
		return
	}
	h.endGame(room, "")
}

// endGame declares the winner, broadcasts the ranking and records the match
func (h *Hub) endGame(room *Room, reason string) {
	winner := room.Winner()
	if winner == nil {
		room.End()
		return
	}
	h.broadcastRoom(room, Envelope{T: MsgGameEnded, Data: GameEndedMsg{
		Winner:      winner.Name,
		FinalScores: room.FinalScores(),
		Reason:      reason,
	}})
	duration := time.Since(room.StartT).Seconds()
	room.End()

	h.recordMatch(room, winner, duration)
	if h.analytics != nil {
		h.analytics.Track(EvtMatchEnd, winner.AuthPlayerID, room.Code, reason)
	}
	log.Printf("game ended in room %s, winner %s", room.Code, winner.Name)
}

// dropFromRoom handles a disconnect exactly like quit-game minus the notice
func (h *Hub) dropFromRoom(c *Client) {
	if c.roomCode == "" {
		return
	}
	if h.rooms.Get(c.roomCode) == nil {
		return
	}
	h.leaveRoom(c)
}

// leaveRoom removes the sender from its room, transferring host role and
// tearing the room down when it empties. If a playing room drops to one
// member, the survivor wins on the spot.
func (h *Hub) leaveRoom(c *Client) {
	room := h.rooms.Get(c.roomCode)
	if room == nil {
		return
	}
	removed := room.RemovePlayer(c.playerID)
	delete(h.members, c.playerID)
	c.roomCode = ""
	c.playerID = ""
	if removed == nil {
		return
	}

	if room.PlayerCount() == 0 {
		h.rooms.Remove(room.Code)
		log.Printf("room %s deleted (empty)", room.Code)
		return
	}

	h.broadcastRoom(room, Envelope{T: MsgPlayerLeft, Data: PlayerLeftMsg{
		PlayerID:   removed.ID,
		PlayerName: removed.Name,
		Players:    room.RosterStates(),
		NewHost:    room.HostID,
	}})

	if room.Phase == PhasePlaying && room.PlayerCount() == 1 {
		h.endGame(room, "All other players left the game")
	}
}

// recordMatch persists the result and per-player stats for account holders
func (h *Hub) recordMatch(room *Room, winner *Player, duration float64) {
	if h.db == nil {
		return
	}
	matchID, err := h.db.RecordMatch(room.Code, winner.Name, duration)
	if err != nil {
		log.Printf("record match: %v", err)
		return
	}
	for _, p := range room.Players() {
		won := p.ID == winner.ID
		if err := h.db.RecordParticipant(matchID, p.AuthPlayerID, p.Name, p.Score, p.Orbs, p.Elims, won); err != nil {
			log.Printf("record participant: %v", err)
			continue
		}
		if p.AuthPlayerID != 0 {
			if err := h.db.UpdateStats(p.AuthPlayerID, p.Score, p.Orbs, p.Elims, won); err != nil {
				log.Printf("update stats: %v", err)
				continue
			}
			CheckAchievements(h.db, p.AuthPlayerID)
		}
	}
}

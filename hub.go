package main

import (
	"log"
	"sync"
	"time"
)

const (
	maxConnsPerIP = 5
	maxTotalConns = 1000
	commandBuf    = 256
)

// taskKind distinguishes deferred tasks fed back into the hub loop
type taskKind int

const (
	taskExpirePowerUp taskKind = iota
	taskMatchTimeUp
)

// clientCommand is one parsed inbound action awaiting the hub loop
type clientCommand struct {
	c   *Client
	env InEnvelope
}

// deferredTask carries only immutable identifiers; current state is
// re-resolved when the hub loop executes it, so a task scheduled against
// state that has since changed degrades to a no-op.
type deferredTask struct {
	kind     taskKind
	roomCode string
	playerID string
	powerUp  PowerUpType // expected active type (power-up expiry)
	startT   int64       // unix millis of the match it belongs to (match timer)
}

// Hub owns all connected clients and all room state. Every room mutation
// happens inside Run, so rooms and players need no locks of their own.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	commands   chan clientCommand
	tasks      chan deferredTask

	rooms   *RoomRegistry
	members map[string]*Client // playerID -> client, hub loop only

	// Connection limiting (mutex-protected, accessed from HTTP handlers)
	connMu     sync.Mutex
	ipConns    map[string]int
	totalConns int

	// Persistence & telemetry (nil-tolerant for tests)
	db        *DB
	auth      *Auth
	analytics *Analytics
}

// NewHub creates a new Hub. db may be nil (no persistence).
func NewHub(db *DB) *Hub {
	h := &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		commands:   make(chan clientCommand, commandBuf),
		tasks:      make(chan deferredTask, commandBuf),
		rooms:      NewRoomRegistry(),
		members:    make(map[string]*Client),
		ipConns:    make(map[string]int),
		db:         db,
	}
	if db != nil {
		h.auth = NewAuth(db)
		h.analytics = NewAnalytics(db)
	}
	return h
}

func (h *Hub) CanAccept(ip string) bool {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	if h.totalConns >= maxTotalConns {
		return false
	}
	if h.ipConns[ip] >= maxConnsPerIP {
		return false
	}
	return true
}

func (h *Hub) TrackConnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]++
	h.totalConns++
}

func (h *Hub) TrackDisconnect(ip string) {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	h.ipConns[ip]--
	if h.ipConns[ip] <= 0 {
		delete(h.ipConns, ip)
	}
	h.totalConns--
}

// Run is the single execution context for all room state. One inbound
// action is fully processed (validated, applied, broadcasts enqueued)
// before the next is handled.
func (h *Hub) Run() {
	spawnTicker := time.NewTicker(PowerUpSpawnInterval)
	defer spawnTicker.Stop()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			// Disconnect cleans up like quit-game, minus the quit notice
			h.dropFromRoom(client)

		case cmd := <-h.commands:
			h.dispatch(cmd.c, cmd.env)

		case task := <-h.tasks:
			h.runTask(task)

		case <-spawnTicker.C:
			h.spawnPowerUps()
		}
	}
}

// schedule arranges for a deferred task to re-enter the hub loop after d
func (h *Hub) schedule(d time.Duration, task deferredTask) {
	time.AfterFunc(d, func() {
		select {
		case h.tasks <- task:
		default:
			log.Printf("task queue full, dropping %v for room %s", task.kind, task.roomCode)
		}
	})
}

// runTask re-validates a deferred task's guard against current state
func (h *Hub) runTask(task deferredTask) {
	room := h.rooms.Get(task.roomCode)
	if room == nil {
		return
	}
	switch task.kind {
	case taskExpirePowerUp:
		p := room.Player(task.playerID)
		if p == nil {
			return
		}
		if ExpirePowerUp(p, task.powerUp) {
			h.broadcastRoom(room, Envelope{T: MsgPowerUpExpired, Data: PowerUpExpiredMsg{PlayerID: p.ID}})
		}
	case taskMatchTimeUp:
		if room.Phase != PhasePlaying || room.StartT.UnixMilli() != task.startT {
			return // a newer match superseded this timer
		}
		h.endGame(room, "Time's up")
	}
}

// spawnPowerUps offers one power-up into every playing room below the cap
func (h *Hub) spawnPowerUps() {
	for _, room := range h.rooms.Rooms() {
		if room.Phase != PhasePlaying || len(room.PowerUps) >= MaxPowerUpsPerRoom {
			continue
		}
		pu := NewPowerUp()
		room.PowerUps = append(room.PowerUps, pu)
		h.broadcastRoom(room, Envelope{T: MsgPowerUpSpawned, Data: pu.ToState()})
	}
}

// broadcastRoom sends a message to every member of a room
func (h *Hub) broadcastRoom(room *Room, msg Envelope) {
	for _, p := range room.Players() {
		if c, ok := h.members[p.ID]; ok {
			c.SendJSON(msg)
		}
	}
}

// broadcastOthers sends a message to every member except one
func (h *Hub) broadcastOthers(room *Room, exceptID string, msg Envelope) {
	for _, p := range room.Players() {
		if p.ID == exceptID {
			continue
		}
		if c, ok := h.members[p.ID]; ok {
			c.SendJSON(msg)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// TotalConns returns the tracked connection count
func (h *Hub) TotalConns() int {
	h.connMu.Lock()
	defer h.connMu.Unlock()
	return h.totalConns
}

package main

import (
	"errors"
	"time"
)

// RoomPhase is the room's coarse state-machine position
type RoomPhase int

const (
	PhaseLobby   RoomPhase = 0
	PhasePlaying RoomPhase = 1
	PhaseEnded   RoomPhase = 2
)

const (
	MaxPlayersPerRoom = 4
	MinPlayersToStart = 2
	MatchDuration     = 180 // seconds
)

// Join failures surfaced to the requester via the ack payload
var (
	ErrRoomNotFound   = errors.New("Room not found")
	ErrGameInProgress = errors.New("Game already in progress")
	ErrRoomFull       = errors.New("Room is full")
	ErrNameTaken      = errors.New("Name already taken")
)

// Room is one isolated match session. It owns its players, orbs and
// power-ups exclusively; all mutation happens on the hub loop.
type Room struct {
	Code     string
	HostID   string
	Phase    RoomPhase
	players  map[string]*Player
	order    []string // player IDs by join time
	Orbs     []*Orb
	PowerUps []*PowerUp
	StartT   time.Time
	Duration int // seconds
}

// NewRoom creates an empty Lobby-phase room
func NewRoom(code string) *Room {
	return &Room{
		Code:    code,
		Phase:   PhaseLobby,
		players: make(map[string]*Player),
	}
}

// AddPlayer appends a player at the next roster slot. The first player
// becomes host.
func (r *Room) AddPlayer(id, name string) (*Player, error) {
	if r.Phase != PhaseLobby {
		return nil, ErrGameInProgress
	}
	if len(r.players) >= MaxPlayersPerRoom {
		return nil, ErrRoomFull
	}
	for _, pid := range r.order {
		if r.players[pid].Name == name {
			return nil, ErrNameTaken
		}
	}

	p := NewPlayer(id, name, len(r.order))
	r.players[id] = p
	r.order = append(r.order, id)
	if len(r.order) == 1 {
		r.HostID = id
	}
	return p, nil
}

// RemovePlayer drops a player from the roster, transferring host role to
// the insertion-order-earliest remaining member if needed. Returns the
// removed player, or nil if the id is unknown.
func (r *Room) RemovePlayer(id string) *Player {
	p, ok := r.players[id]
	if !ok {
		return nil
	}
	delete(r.players, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.HostID == id && len(r.order) > 0 {
		r.HostID = r.order[0]
	}
	return p
}

// Player returns a member by id, nil if absent
func (r *Room) Player(id string) *Player {
	return r.players[id]
}

// Players returns members in join order
func (r *Room) Players() []*Player {
	out := make([]*Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out
}

// PlayerCount returns the roster size
func (r *Room) PlayerCount() int {
	return len(r.players)
}

// Slot returns a player's current index in join order, -1 if absent
func (r *Room) Slot(id string) int {
	for i, pid := range r.order {
		if pid == id {
			return i
		}
	}
	return -1
}

// Start transitions Lobby/Ended -> Playing with a fresh arena
func (r *Room) Start(now time.Time) {
	r.Phase = PhasePlaying
	r.Orbs = GenerateOrbs(OrbCount)
	r.PowerUps = nil
	r.StartT = now
	r.Duration = MatchDuration
}

// End transitions Playing -> Ended. The arena objects stay visible until
// the host starts the next match.
func (r *Room) End() {
	r.Phase = PhaseEnded
}

// Winner returns the highest scorer, earliest joiner on ties
func (r *Room) Winner() *Player {
	var best *Player
	for _, id := range r.order {
		p := r.players[id]
		if best == nil || p.Score > best.Score {
			best = p
		}
	}
	return best
}

// FinalScores returns the end-of-match ranking payload in join order
func (r *Room) FinalScores() []FinalScore {
	out := make([]FinalScore, 0, len(r.order))
	for _, id := range r.order {
		p := r.players[id]
		out = append(out, FinalScore{Name: p.Name, Score: p.Score})
	}
	return out
}

// RosterStates returns wire states for all members in join order
func (r *Room) RosterStates() []PlayerState {
	out := make([]PlayerState, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id].ToState())
	}
	return out
}

// ArenaState returns the wire form of the current match objects
func (r *Room) ArenaState() ArenaState {
	orbs := make([]OrbState, 0, len(r.Orbs))
	for _, o := range r.Orbs {
		orbs = append(orbs, o.ToState())
	}
	pups := make([]PowerUpState, 0, len(r.PowerUps))
	for _, pu := range r.PowerUps {
		pups = append(pups, pu.ToState())
	}
	return ArenaState{
		Orbs:      orbs,
		PowerUps:  pups,
		StartTime: r.StartT.UnixMilli(),
		Duration:  r.Duration,
	}
}

// TakeOrb removes an orb by id, returning false for stale ids
func (r *Room) TakeOrb(id string) bool {
	for i, o := range r.Orbs {
		if o.ID == id {
			r.Orbs = append(r.Orbs[:i], r.Orbs[i+1:]...)
			return true
		}
	}
	return false
}

// TakePowerUp removes a power-up by id, returning nil for stale ids
func (r *Room) TakePowerUp(id string) *PowerUp {
	for i, pu := range r.PowerUps {
		if pu.ID == id {
			r.PowerUps = append(r.PowerUps[:i], r.PowerUps[i+1:]...)
			return pu
		}
	}
	return nil
}

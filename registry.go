package main

import "sync"

const maxRooms = 500

// RoomRegistry maps room codes to live rooms. The hub loop owns all room
// mutation; the mutex only covers the map itself so HTTP handlers (QR
// invites) can do existence lookups.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRoomRegistry creates an empty registry
func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[string]*Room)}
}

// Create generates a code not held by any live room and inserts a fresh
// Lobby-phase room under it. Returns nil if the room limit is reached.
func (rr *RoomRegistry) Create() *Room {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	if len(rr.rooms) >= maxRooms {
		return nil
	}
	for {
		code := GenerateRoomCode()
		if _, exists := rr.rooms[code]; exists {
			continue
		}
		room := NewRoom(code)
		rr.rooms[code] = room
		return room
	}
}

// Get returns the room for a code, nil if absent
func (rr *RoomRegistry) Get(code string) *Room {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	return rr.rooms[code]
}

// Remove tears down an empty room
func (rr *RoomRegistry) Remove(code string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()
	delete(rr.rooms, code)
}

// Rooms returns a snapshot of all live rooms (spawner iteration)
func (rr *RoomRegistry) Rooms() []*Room {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	out := make([]*Room, 0, len(rr.rooms))
	for _, r := range rr.rooms {
		out = append(out, r)
	}
	return out
}

// Count returns the number of live rooms
func (rr *RoomRegistry) Count() int {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	return len(rr.rooms)
}

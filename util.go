package main

import (
	"crypto/rand"
	"encoding/hex"
	"math"
	"math/big"
)

// roomCodeChars is the alphabet for room codes (uppercase alphanumeric)
const roomCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const roomCodeLen = 6

// GenerateID returns a random hex string of the given byte length
func GenerateID(byteLen int) string {
	b := make([]byte, byteLen)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// GenerateRoomCode returns a random 6-character uppercase alphanumeric code.
// Uniqueness against live rooms is the registry's job.
func GenerateRoomCode() string {
	b := make([]byte, roomCodeLen)
	for i := range b {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(roomCodeChars))))
		b[i] = roomCodeChars[n.Int64()]
	}
	return string(b)
}

// Clamp restricts v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Distance returns the distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

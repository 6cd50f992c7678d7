package room

import (
	"errors"
	"math/rand"

	"gomoku/internal/shared"
)

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerMismatch = errors.New("player does not belong to this room")
)

type Store interface {
	GetRoom(code string) (*shared.Room, bool)
	// SaveIfAbsent stores r unless its code is taken and reports whether it did.
	SaveIfAbsent(r *shared.Room) bool
	DeleteRoom(code string)
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

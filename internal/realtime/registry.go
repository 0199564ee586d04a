package realtime

import (
	"sync"

	"github.com/google/uuid"
)

// ConnID identifies one live client connection.
type ConnID string

// Registry tracks which connections are subscribed to which boards.
// It holds volatile state only; clients re-join after a reconnect.
type Registry struct {
	mu      sync.RWMutex
	members map[uuid.UUID]map[ConnID]struct{}
	joined  map[ConnID]map[uuid.UUID]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		members: make(map[uuid.UUID]map[ConnID]struct{}),
		joined:  make(map[ConnID]map[uuid.UUID]struct{}),
	}
}

// Join subscribes conn to board. Joining twice is a no-op.
func (r *Registry) Join(conn ConnID, board uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.members[board]
	if !ok {
		set = make(map[ConnID]struct{})
		r.members[board] = set
	}
	set[conn] = struct{}{}

	boards, ok := r.joined[conn]
	if !ok {
		boards = make(map[uuid.UUID]struct{})
		r.joined[conn] = boards
	}
	boards[board] = struct{}{}
}

// Leave unsubscribes conn from board. Leaving a board the connection never
// joined is a no-op.
func (r *Registry) Leave(conn ConnID, board uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leaveLocked(conn, board)
}

// LeaveAll removes conn from every board and returns the boards it left.
func (r *Registry) LeaveAll(conn ConnID) []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	boards := make([]uuid.UUID, 0, len(r.joined[conn]))
	for b := range r.joined[conn] {
		boards = append(boards, b)
	}
	for _, b := range boards {
		r.leaveLocked(conn, b)
	}
	return boards
}

func (r *Registry) leaveLocked(conn ConnID, board uuid.UUID) {
	if set, ok := r.members[board]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(r.members, board)
		}
	}
	if boards, ok := r.joined[conn]; ok {
		delete(boards, board)
		if len(boards) == 0 {
			delete(r.joined, conn)
		}
	}
}

// SubscribersOf returns a snapshot of the connections subscribed to board.
func (r *Registry) SubscribersOf(board uuid.UUID) []ConnID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.members[board]
	out := make([]ConnID, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

// Boards returns the boards conn is currently subscribed to.
func (r *Registry) Boards(conn ConnID) []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]uuid.UUID, 0, len(r.joined[conn]))
	for b := range r.joined[conn] {
		out = append(out, b)
	}
	return out
}

// IsMember reports whether conn is subscribed to board.
func (r *Registry) IsMember(conn ConnID, board uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.members[board][conn]
	return ok
}

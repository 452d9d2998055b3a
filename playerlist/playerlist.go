// Package playerlist holds the roster of players currently admitted to the
// server: a capacity-bounded set keyed by UUID.
package playerlist

import (
	"fmt"

	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
)

// Player is an admitted connection's identity and allocated entity id.
type Player struct {
	UUID     ns.UUID
	Username string
	EntityID int32
}

// List is an ordered roster of players with a maximum capacity. No two
// entries may share a UUID; insertion is rejected once the list is full.
// Callers are expected to serialize access externally (see serverctx).
type List struct {
	capacity int
	order    []ns.UUID
	byUUID   map[ns.UUID]Player
}

// New creates an empty list bounded to capacity entries.
func New(capacity int) *List {
	return &List{capacity: capacity, byUUID: map[ns.UUID]Player{}}
}

// Len reports the number of admitted players.
func (l *List) Len() int {
	return len(l.order)
}

// Capacity reports the maximum number of players this list admits.
func (l *List) Capacity() int {
	return l.capacity
}

// Contains reports whether uuid is already admitted.
func (l *List) Contains(uuid ns.UUID) bool {
	_, ok := l.byUUID[uuid]
	return ok
}

// Insert admits a player. It fails if the UUID is already present or the
// list is at capacity.
func (l *List) Insert(p Player) error {
	if _, exists := l.byUUID[p.UUID]; exists {
		return fmt.Errorf("player %s is already connected", p.UUID)
	}
	if len(l.order) >= l.capacity {
		return fmt.Errorf("player list is full (capacity %d)", l.capacity)
	}
	l.byUUID[p.UUID] = p
	l.order = append(l.order, p.UUID)
	return nil
}

// Lookup returns the player registered under uuid, if any.
func (l *List) Lookup(uuid ns.UUID) (Player, bool) {
	p, ok := l.byUUID[uuid]
	return p, ok
}

// Remove evicts the player registered under uuid, if present.
func (l *List) Remove(uuid ns.UUID) {
	if _, ok := l.byUUID[uuid]; !ok {
		return
	}
	delete(l.byUUID, uuid)
	for i, id := range l.order {
		if id == uuid {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

// Players returns a snapshot of admitted players in insertion order.
func (l *List) Players() []Player {
	out := make([]Player, len(l.order))
	for i, id := range l.order {
		out[i] = l.byUUID[id]
	}
	return out
}

package service

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrPlateNotFound = errors.New("plate not found")

// PlateItem is an item on an open plate. Name and price are resolved from
// the catalog when the item is added.
type PlateItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Plate is a dine-in tab. Plates are ephemeral session state and are never
// persisted; the total is always derived from the items.
type Plate struct {
	ID     string      `json:"id"`
	Number int         `json:"number"`
	Items  []PlateItem `json:"items"`
}

func (p *Plate) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.Price)
	}
	return total
}

type plateSession struct {
	plates   []*Plate
	lastSeen time.Time
}

// PlateStore keeps the open-plate set for each client session. A session is
// created on first use and pruned after sitting idle for the TTL.
type PlateStore struct {
	mu       sync.Mutex
	sessions map[string]*plateSession
	idleTTL  time.Duration
	now      func() time.Time
}

func NewPlateStore(idleTTL time.Duration) *PlateStore {
	return &PlateStore{
		sessions: make(map[string]*plateSession),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Open creates a new plate numbered one past the highest open plate number,
// or 1 when the session has no open plates.
func (s *PlateStore) Open(sessionID string) Plate {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.touch(sessionID)
	next := 1
	for _, p := range sess.plates {
		if p.Number >= next {
			next = p.Number + 1
		}
	}
	plate := &Plate{ID: uuid.NewString(), Number: next, Items: []PlateItem{}}
	sess.plates = append(sess.plates, plate)
	return copyPlate(plate)
}

// AddItem appends a resolved catalog line to an open plate.
func (s *PlateStore) AddItem(sessionID, plateID string, item PlateItem) (Plate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.touch(sessionID)
	for _, p := range sess.plates {
		if p.ID == plateID {
			p.Items = append(p.Items, item)
			return copyPlate(p), nil
		}
	}
	return Plate{}, ErrPlateNotFound
}

// Close removes a plate from the open set. Closing an unknown or already
// closed plate is a no-op.
func (s *PlateStore) Close(sessionID, plateID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.touch(sessionID)
	for i, p := range sess.plates {
		if p.ID == plateID {
			sess.plates = append(sess.plates[:i], sess.plates[i+1:]...)
			return
		}
	}
}

// List returns the session's open plates in opening order.
func (s *PlateStore) List(sessionID string) []Plate {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.touch(sessionID)
	out := make([]Plate, 0, len(sess.plates))
	for _, p := range sess.plates {
		out = append(out, copyPlate(p))
	}
	return out
}

// EndSession discards a session and all of its open plates.
func (s *PlateStore) EndSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// touch returns the session, creating it if needed, and prunes sessions that
// have been idle longer than the TTL. Callers must hold the lock.
func (s *PlateStore) touch(sessionID string) *plateSession {
	now := s.now()
	for id, sess := range s.sessions {
		if id != sessionID && now.Sub(sess.lastSeen) > s.idleTTL {
			delete(s.sessions, id)
		}
	}
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &plateSession{}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = now
	return sess
}

func copyPlate(p *Plate) Plate {
	cp := *p
	cp.Items = append([]PlateItem(nil), p.Items...)
	return cp
}

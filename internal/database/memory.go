// Package database provides an in-memory implementation of the Store interface.
package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/scamshield/railshield/internal/models"
)

// MemoryStore implements Store with an in-process map. It is used by the
// "memory" database driver and by tests. All returned complaints are copies,
// so callers can mutate them freely before persisting with UpdateComplaint.
type MemoryStore struct {
	mu         sync.RWMutex
	complaints map[int64]*models.Complaint
	order      []int64
	nextID     int64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		complaints: make(map[int64]*models.Complaint),
		nextID:     1,
	}
}

// Migrate is a no-op for the in-memory store.
func (s *MemoryStore) Migrate() error { return nil }

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

// CreateComplaint stores a complaint and assigns its identity fields.
func (s *MemoryStore) CreateComplaint(_ context.Context, c *models.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	c.ID = s.nextID
	s.nextID++
	c.TicketID = TicketID(c.ID)
	c.Status = models.StatusFiled
	c.Timestamp = now
	c.History = []models.StatusEvent{{Status: models.StatusFiled, Timestamp: now}}
	if c.Comments == nil {
		c.Comments = []models.Comment{}
	}

	s.complaints[c.ID] = copyComplaint(c)
	s.order = append(s.order, c.ID)
	return nil
}

// GetComplaint returns a copy of the complaint, or (nil, nil) if absent.
func (s *MemoryStore) GetComplaint(_ context.Context, id int64) (*models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.complaints[id]
	if !ok {
		return nil, nil
	}
	return copyComplaint(c), nil
}

// ListComplaints returns copies of all complaints in insertion order.
func (s *MemoryStore) ListComplaints(_ context.Context) ([]*models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	complaints := make([]*models.Complaint, 0, len(s.order))
	for _, id := range s.order {
		if c, ok := s.complaints[id]; ok {
			complaints = append(complaints, copyComplaint(c))
		}
	}
	return complaints, nil
}

// UpdateComplaint replaces the stored complaint with the given state.
func (s *MemoryStore) UpdateComplaint(_ context.Context, c *models.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.complaints[c.ID]; !ok {
		return fmt.Errorf("complaint %d not found", c.ID)
	}
	s.complaints[c.ID] = copyComplaint(c)
	return nil
}

// DeleteComplaint removes a complaint. Deleting an absent ID is a no-op.
func (s *MemoryStore) DeleteComplaint(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.complaints, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func copyComplaint(c *models.Complaint) *models.Complaint {
	cp := *c
	if c.ReportedPrice != nil {
		v := *c.ReportedPrice
		cp.ReportedPrice = &v
	}
	if c.MRP != nil {
		v := *c.MRP
		cp.MRP = &v
	}
	if c.Geolocation != nil {
		v := *c.Geolocation
		cp.Geolocation = &v
	}
	if c.ValidationStatus != nil {
		v := *c.ValidationStatus
		cp.ValidationStatus = &v
	}
	if c.User != nil {
		v := *c.User
		cp.User = &v
	}
	cp.History = append([]models.StatusEvent(nil), c.History...)
	cp.Comments = append([]models.Comment(nil), c.Comments...)
	return &cp
}

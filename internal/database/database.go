// Package database provides the data access layer with support for multiple backends.
package database

import (
	"context"
	"fmt"

	"github.com/scamshield/railshield/internal/models"
)

// TicketPrefix is embedded in every generated ticket ID.
const TicketPrefix = "SCAM-2024"

// Store defines the interface for complaint persistence. Get returns
// (nil, nil) when the complaint does not exist.
type Store interface {
	// CreateComplaint persists a new complaint, assigning its ID, ticket
	// ID, timestamp and initial history entry.
	CreateComplaint(ctx context.Context, c *models.Complaint) error
	GetComplaint(ctx context.Context, id int64) (*models.Complaint, error)
	ListComplaints(ctx context.Context) ([]*models.Complaint, error)
	UpdateComplaint(ctx context.Context, c *models.Complaint) error
	DeleteComplaint(ctx context.Context, id int64) error

	// Lifecycle
	Close() error
	Migrate() error
}

// TicketID formats the zero-padded ticket identifier for a complaint ID.
func TicketID(id int64) string {
	return fmt.Sprintf("%s-%06d", TicketPrefix, id)
}

// Package database provides SQLite implementation of the Store interface.
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/scamshield/railshield/internal/models"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// Migrate runs database migrations.
func (s *SQLiteStore) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS complaints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ticket_id TEXT NOT NULL,
			train_no TEXT NOT NULL DEFAULT '',
			vendor_name TEXT NOT NULL DEFAULT '',
			item_name TEXT NOT NULL DEFAULT '',
			reported_price REAL,
			mrp REAL,
			description TEXT NOT NULL,
			evidence_url TEXT NOT NULL DEFAULT '',
			geolocation TEXT,
			status TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			upvotes INTEGER NOT NULL DEFAULT 0,
			downvotes INTEGER NOT NULL DEFAULT 0,
			validation_status TEXT,
			reporter TEXT,
			history TEXT NOT NULL,
			comments TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_complaints_train ON complaints(train_no)`,
		`CREATE INDEX IF NOT EXISTS idx_complaints_status ON complaints(status)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateComplaint inserts a complaint and assigns its identity fields.
func (s *SQLiteStore) CreateComplaint(ctx context.Context, c *models.Complaint) error {
	now := time.Now().UTC()
	c.Status = models.StatusFiled
	c.Timestamp = now
	c.History = []models.StatusEvent{{Status: models.StatusFiled, Timestamp: now}}
	if c.Comments == nil {
		c.Comments = []models.Comment{}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO complaints (ticket_id, train_no, vendor_name, item_name, reported_price, mrp,
			description, evidence_url, geolocation, status, timestamp, upvotes, downvotes,
			validation_status, reporter, history, comments)
		VALUES ('', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.TrainNo, c.VendorName, c.ItemName, c.ReportedPrice, c.MRP,
		c.Description, c.EvidenceURL, marshalJSON(c.Geolocation), c.Status, c.Timestamp,
		c.Upvotes, c.Downvotes, marshalJSON(c.ValidationStatus), marshalJSON(c.User),
		mustMarshal(c.History), mustMarshal(c.Comments),
	)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = id
	c.TicketID = TicketID(id)

	if _, err := tx.ExecContext(ctx, `UPDATE complaints SET ticket_id = ? WHERE id = ?`, c.TicketID, id); err != nil {
		return err
	}

	return tx.Commit()
}

// GetComplaint retrieves a complaint by ID.
func (s *SQLiteStore) GetComplaint(ctx context.Context, id int64) (*models.Complaint, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` FROM complaints WHERE id = ?`, id)
	c, err := scanComplaint(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListComplaints returns all complaints in insertion order.
func (s *SQLiteStore) ListComplaints(ctx context.Context) ([]*models.Complaint, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` FROM complaints ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var complaints []*models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}

// UpdateComplaint persists the mutable fields of a complaint.
func (s *SQLiteStore) UpdateComplaint(ctx context.Context, c *models.Complaint) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE complaints SET train_no = ?, vendor_name = ?, item_name = ?, reported_price = ?,
			mrp = ?, evidence_url = ?, geolocation = ?, status = ?, upvotes = ?, downvotes = ?,
			validation_status = ?, history = ?, comments = ?
		WHERE id = ?`,
		c.TrainNo, c.VendorName, c.ItemName, c.ReportedPrice, c.MRP,
		c.EvidenceURL, marshalJSON(c.Geolocation), c.Status, c.Upvotes, c.Downvotes,
		marshalJSON(c.ValidationStatus), mustMarshal(c.History), mustMarshal(c.Comments),
		c.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("complaint %d not found", c.ID)
	}
	return nil
}

// DeleteComplaint removes a complaint.
func (s *SQLiteStore) DeleteComplaint(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM complaints WHERE id = ?`, id)
	return err
}

const selectColumns = `SELECT id, ticket_id, train_no, vendor_name, item_name, reported_price, mrp,
	description, evidence_url, geolocation, status, timestamp, upvotes, downvotes,
	validation_status, reporter, history, comments`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanComplaint(row rowScanner) (*models.Complaint, error) {
	var c models.Complaint
	var geoJSON, statusJSON, reporterJSON sql.NullString
	var historyJSON, commentsJSON string

	err := row.Scan(&c.ID, &c.TicketID, &c.TrainNo, &c.VendorName, &c.ItemName,
		&c.ReportedPrice, &c.MRP, &c.Description, &c.EvidenceURL, &geoJSON,
		&c.Status, &c.Timestamp, &c.Upvotes, &c.Downvotes, &statusJSON,
		&reporterJSON, &historyJSON, &commentsJSON)
	if err != nil {
		return nil, err
	}

	if geoJSON.Valid && geoJSON.String != "" {
		c.Geolocation = &models.Geolocation{}
		json.Unmarshal([]byte(geoJSON.String), c.Geolocation)
	}
	if statusJSON.Valid && statusJSON.String != "" {
		c.ValidationStatus = &models.ValidationStatus{}
		json.Unmarshal([]byte(statusJSON.String), c.ValidationStatus)
	}
	if reporterJSON.Valid && reporterJSON.String != "" {
		c.User = &models.User{}
		json.Unmarshal([]byte(reporterJSON.String), c.User)
	}
	json.Unmarshal([]byte(historyJSON), &c.History)
	json.Unmarshal([]byte(commentsJSON), &c.Comments)

	return &c, nil
}

// marshalJSON serializes a nullable value, keeping NULL for nil pointers.
func marshalJSON[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	data, _ := json.Marshal(v)
	return string(data)
}

func mustMarshal(v interface{}) string {
	data, _ := json.Marshal(v)
	return string(data)
}

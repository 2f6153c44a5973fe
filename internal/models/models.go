// Package models defines the core data structures used throughout the application.
package models

import (
	"time"
)

// ComplaintStatus represents the lifecycle state of a complaint.
type ComplaintStatus string

const (
	StatusFiled     ComplaintStatus = "Filed"
	StatusValidated ComplaintStatus = "Validated"
	StatusEscalated ComplaintStatus = "Escalated"
	StatusResolved  ComplaintStatus = "Resolved"
)

// VoteType is the direction of a community vote.
type VoteType string

const (
	VoteUp   VoteType = "up"
	VoteDown VoteType = "down"
)

// ValidationLevel is the community-derived confidence tier for a complaint.
type ValidationLevel string

const (
	LevelPending   ValidationLevel = "pending"
	LevelVerified  ValidationLevel = "verified"
	LevelEscalated ValidationLevel = "escalated"
	LevelDisputed  ValidationLevel = "disputed"
)

// Badge is a display badge attached to a validation status.
type Badge struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ValidationStatus is the snapshot computed from a complaint's net votes.
// It is recomputed on every vote and stale between votes.
type ValidationStatus struct {
	Level        ValidationLevel `json:"level"`
	Label        string          `json:"label"`
	Badge        *Badge          `json:"badge,omitempty"`
	AutoEscalate bool            `json:"autoEscalate"`
}

// TrustFactor is a single named contribution to a trust score.
type TrustFactor struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"`
}

// TrustScore is a bounded heuristic confidence measure for a complaint.
type TrustScore struct {
	Score   float64       `json:"score"`
	Rating  string        `json:"rating"` // High, Medium, Low
	Factors []TrustFactor `json:"factors"`
}

// User identifies the reporter of a complaint.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Geolocation is an optional GPS fix attached to a complaint.
type Geolocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// StatusEvent records one lifecycle transition of a complaint.
type StatusEvent struct {
	Status    ComplaintStatus `json:"status"`
	Timestamp time.Time       `json:"timestamp"`
	Notes     string          `json:"notes,omitempty"`
}

// Comment is a community comment on a complaint.
type Comment struct {
	ID        int64     `json:"id"`
	User      User      `json:"user"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Complaint is a structured passenger complaint about an onboard vendor.
// IDs, ticket IDs and timestamps are assigned by the store.
type Complaint struct {
	ID               int64             `json:"id"`
	TicketID         string            `json:"ticketId"`
	TrainNo          string            `json:"trainNo,omitempty"`
	VendorName       string            `json:"vendorName,omitempty"`
	ItemName         string            `json:"itemName,omitempty"`
	ReportedPrice    *float64          `json:"reportedPrice,omitempty"`
	MRP              *float64          `json:"mrp,omitempty"`
	Description      string            `json:"description"`
	EvidenceURL      string            `json:"evidenceUrl,omitempty"`
	Geolocation      *Geolocation      `json:"geolocation,omitempty"`
	Status           ComplaintStatus   `json:"status"`
	Timestamp        time.Time         `json:"timestamp"`
	Upvotes          int               `json:"upvotes"`
	Downvotes        int               `json:"downvotes"`
	ValidationStatus *ValidationStatus `json:"validationStatus,omitempty"`
	User             *User             `json:"user,omitempty"`
	History          []StatusEvent     `json:"history"`
	Comments         []Comment         `json:"comments"`
}

// NetVotes returns upvotes minus downvotes.
func (c *Complaint) NetVotes() int {
	return c.Upvotes - c.Downvotes
}

// TrainInfo is the result of a train-schedule lookup. A lookup always
// returns one; Valid distinguishes known from unknown train numbers.
type TrainInfo struct {
	Valid           bool     `json:"valid"`
	Number          string   `json:"number"`
	Name            string   `json:"name"`
	Route           string   `json:"route,omitempty"`
	Type            string   `json:"type,omitempty"`
	PantryAvailable *bool    `json:"pantryAvailable"`
	MealIncluded    *bool    `json:"mealIncluded,omitempty"`
	Stops           []string `json:"stops,omitempty"`
}

// MenuItem is one entry of the official IRCTC menu catalog.
type MenuItem struct {
	Price    float64 `json:"price"`
	Item     string  `json:"item"`
	Category string  `json:"category"`
}

// AnalysisResult is the output of analyzing a complaint description.
// Entity keys are present only when the underlying extraction succeeded.
type AnalysisResult struct {
	Summary           string                 `json:"summary"`
	Entities          map[string]interface{} `json:"entities"`
	Category          string                 `json:"category"`
	TrainInfo         *TrainInfo             `json:"trainInfo,omitempty"`
	IRCTCPrice        *float64               `json:"irctcPrice,omitempty"`
	IRCTCPriceDetails *MenuItem              `json:"irctcPriceDetails,omitempty"`
}

// SimilarComplaint is a peer complaint that scored at or above the
// similarity threshold, with its upvote count at query time.
type SimilarComplaint struct {
	ID              int64  `json:"id"`
	TicketID        string `json:"ticketId"`
	TrainNo         string `json:"trainNo,omitempty"`
	VendorName      string `json:"vendorName,omitempty"`
	ItemName        string `json:"itemName,omitempty"`
	Upvotes         int    `json:"upvotes"`
	SimilarityScore int    `json:"similarityScore"`
}

// ValidationInsights is the read-only validation report for a complaint.
type ValidationInsights struct {
	ValidationStatus  ValidationStatus   `json:"validationStatus"`
	TrustScore        TrustScore         `json:"trustScore"`
	NetVotes          int                `json:"netVotes"`
	SimilarComplaints []SimilarComplaint `json:"similarComplaints"`
	SimilarCount      int                `json:"similarComplaintsCount"`
	Recommendations   []string           `json:"recommendations"`
}

// AnalyzeRequest is the request body for the analyze endpoint.
type AnalyzeRequest struct {
	Description string `json:"description"`
	TrainNo     string `json:"trainNo,omitempty"`
	ItemName    string `json:"itemName,omitempty"`
}

// VoteRequest is the request body for the vote endpoint.
type VoteRequest struct {
	Type VoteType `json:"type"`
}

// CreateComplaintRequest is the request body for filing a complaint.
type CreateComplaintRequest struct {
	TrainNo       string       `json:"trainNo,omitempty"`
	VendorName    string       `json:"vendorName,omitempty"`
	ItemName      string       `json:"itemName,omitempty"`
	ReportedPrice *float64     `json:"reportedPrice,omitempty"`
	MRP           *float64     `json:"mrp,omitempty"`
	Description   string       `json:"description"`
	EvidenceURL   string       `json:"evidenceUrl,omitempty"`
	Geolocation   *Geolocation `json:"geolocation,omitempty"`
	User          *User        `json:"user,omitempty"`
}

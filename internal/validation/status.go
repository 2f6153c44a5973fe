// Package validation implements the community validation and trust engine:
// vote registration, the net-vote state machine, trust scoring, similarity
// clustering and reviewer recommendations.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scamshield/railshield/internal/catalog"
	"github.com/scamshield/railshield/internal/models"
)

// Display badges attached to validation statuses.
var (
	BadgeVerified = models.Badge{Label: "Community Verified", Icon: "✓", Color: "green"}
	BadgeDisputed = models.Badge{Label: "Disputed", Icon: "?", Color: "orange"}
	BadgeTrending = models.Badge{Label: "Trending", Icon: "🔥", Color: "red"}
)

// StatusForNetVotes derives the validation status from net votes. Guards are
// evaluated in order; the first match wins.
func StatusForNetVotes(netVotes int, t catalog.Thresholds) models.ValidationStatus {
	switch {
	case netVotes >= t.Escalated:
		badge := BadgeTrending
		return models.ValidationStatus{
			Level:        models.LevelEscalated,
			Label:        "Auto-Escalated",
			Badge:        &badge,
			AutoEscalate: true,
		}
	case netVotes >= t.Verified:
		badge := BadgeVerified
		return models.ValidationStatus{
			Level: models.LevelVerified,
			Label: "Community Verified",
			Badge: &badge,
		}
	case netVotes <= t.Disputed:
		badge := BadgeDisputed
		return models.ValidationStatus{
			Level: models.LevelDisputed,
			Label: "Disputed Complaint",
			Badge: &badge,
		}
	default:
		return models.ValidationStatus{
			Level: models.LevelPending,
			Label: "Pending Validation",
		}
	}
}

// ComputeTrustScore derives the bounded trust score for a complaint from its
// vote ratio and attached evidence. The result is always within [0,100].
func ComputeTrustScore(c *models.Complaint) models.TrustScore {
	score := 50.0
	factors := []models.TrustFactor{}

	totalVotes := c.Upvotes + c.Downvotes
	if totalVotes > 0 {
		voteScore := float64(c.Upvotes) / float64(totalVotes) * 30
		score += voteScore
		factors = append(factors, models.TrustFactor{
			Factor: "Vote Ratio",
			Impact: fmt.Sprintf("%.1f", voteScore),
		})
	}

	if c.EvidenceURL != "" {
		score += 15
		factors = append(factors, models.TrustFactor{Factor: "Photo Evidence", Impact: "+15"})
	}

	if c.Geolocation != nil {
		score += 10
		factors = append(factors, models.TrustFactor{Factor: "GPS Location", Impact: "+10"})
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	rating := "Low"
	switch {
	case score >= 80:
		rating = "High"
	case score >= 60:
		rating = "Medium"
	}

	return models.TrustScore{Score: score, Rating: rating, Factors: factors}
}

// similarityThreshold is the minimum accumulated score for a peer to count
// as similar.
const similarityThreshold = 40

// SimilarComplaints scores every peer against the complaint and returns the
// qualifying ones sorted by descending similarity, ties keeping encounter
// order. The caller truncates for display.
func SimilarComplaints(c *models.Complaint, all []*models.Complaint) []models.SimilarComplaint {
	var similar []models.SimilarComplaint

	for _, other := range all {
		if other.ID == c.ID {
			continue
		}

		score := 0
		if other.TrainNo == c.TrainNo {
			score += 30
		}
		if strings.EqualFold(other.VendorName, c.VendorName) {
			score += 25
		}
		if strings.EqualFold(other.ItemName, c.ItemName) {
			score += 20
		}

		if score >= similarityThreshold {
			similar = append(similar, models.SimilarComplaint{
				ID:              other.ID,
				TicketID:        other.TicketID,
				TrainNo:         other.TrainNo,
				VendorName:      other.VendorName,
				ItemName:        other.ItemName,
				Upvotes:         other.Upvotes,
				SimilarityScore: score,
			})
		}
	}

	sort.SliceStable(similar, func(i, j int) bool {
		return similar[i].SimilarityScore > similar[j].SimilarityScore
	})
	return similar
}

// recommendations builds the ordered advisory lines for a complaint. Each
// line is independent and included only when its condition holds.
func recommendations(c *models.Complaint, status models.ValidationStatus, trust models.TrustScore, similarCount int, t catalog.Thresholds) []string {
	recs := []string{}

	if c.NetVotes() <= t.Disputed {
		recs = append(recs, "⚠️ This complaint has more downvotes than upvotes. Review carefully.")
	}
	if similarCount >= 3 {
		recs = append(recs, fmt.Sprintf("✓ %d similar complaints found - pattern detected!", similarCount))
	}
	if c.EvidenceURL == "" {
		recs = append(recs, "📷 Photo evidence would strengthen this complaint.")
	}
	if trust.Score >= 80 {
		recs = append(recs, "⭐ High trust score - reliable complaint.")
	}
	if status.AutoEscalate {
		recs = append(recs, fmt.Sprintf("🚨 Auto-escalated: %s", status.Label))
	}

	return recs
}

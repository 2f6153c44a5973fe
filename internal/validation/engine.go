package validation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/scamshield/railshield/internal/catalog"
	"github.com/scamshield/railshield/internal/database"
	"github.com/scamshield/railshield/internal/models"
)

var (
	// ErrInvalidVoteType is returned for vote types other than up/down.
	ErrInvalidVoteType = errors.New("invalid vote type")
	// ErrComplaintNotFound is returned when the referenced complaint is absent.
	ErrComplaintNotFound = errors.New("complaint not found")
)

// Engine computes validation statuses, trust scores and insights over the
// complaint store. It holds no complaint state itself; vote registration is
// serialized per complaint.
type Engine struct {
	store      database.Store
	thresholds catalog.Thresholds

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewEngine creates a validation engine backed by the given store.
func NewEngine(store database.Store, thresholds catalog.Thresholds) *Engine {
	return &Engine{
		store:      store,
		thresholds: thresholds,
		locks:      make(map[int64]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing votes on one complaint.
func (e *Engine) lockFor(id int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[id]
	if !ok {
		l = &sync.Mutex{}
		e.locks[id] = l
	}
	return l
}

// RegisterVote applies a single up or down vote to a complaint, recomputes
// its validation status and performs the one-way auto-escalation transition
// when the escalation threshold is crossed while the complaint is still
// Filed. An invalid vote type is rejected before any state is touched.
func (e *Engine) RegisterVote(ctx context.Context, id int64, vote models.VoteType) (*models.Complaint, error) {
	if vote != models.VoteUp && vote != models.VoteDown {
		return nil, ErrInvalidVoteType
	}

	l := e.lockFor(id)
	l.Lock()
	defer l.Unlock()

	c, err := e.store.GetComplaint(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrComplaintNotFound
	}

	if vote == models.VoteUp {
		c.Upvotes++
	} else {
		c.Downvotes++
	}

	status := StatusForNetVotes(c.NetVotes(), e.thresholds)
	c.ValidationStatus = &status

	// Escalation is sticky: once the threshold has flipped a Filed
	// complaint, later votes never revert its lifecycle status.
	if status.AutoEscalate && c.Status == models.StatusFiled {
		c.Status = models.StatusEscalated
		c.History = append(c.History, models.StatusEvent{
			Status:    models.StatusEscalated,
			Timestamp: time.Now().UTC(),
			Notes:     "Auto-escalated by community votes.",
		})
		log.Info().
			Int64("id", c.ID).
			Int("net_votes", c.NetVotes()).
			Msg("Complaint auto-escalated")
	}

	if err := e.store.UpdateComplaint(ctx, c); err != nil {
		return nil, err
	}

	log.Debug().
		Int64("id", c.ID).
		Str("vote", string(vote)).
		Str("level", string(status.Level)).
		Msg("Vote registered")

	return c, nil
}

// Insights builds the read-only validation report for a complaint:
// recomputed status, trust score, similar peers and recommendations.
func (e *Engine) Insights(ctx context.Context, id int64) (*models.ValidationInsights, error) {
	c, err := e.store.GetComplaint(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrComplaintNotFound
	}

	all, err := e.store.ListComplaints(ctx)
	if err != nil {
		return nil, err
	}

	similar := SimilarComplaints(c, all)
	similarCount := len(similar)
	if len(similar) > 5 {
		similar = similar[:5]
	}

	status := StatusForNetVotes(c.NetVotes(), e.thresholds)
	trust := ComputeTrustScore(c)

	return &models.ValidationInsights{
		ValidationStatus:  status,
		TrustScore:        trust,
		NetVotes:          c.NetVotes(),
		SimilarComplaints: similar,
		SimilarCount:      similarCount,
		Recommendations:   recommendations(c, status, trust, similarCount, e.thresholds),
	}, nil
}

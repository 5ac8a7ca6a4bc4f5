package service

import (
	"context"
	"time"

	"auctionhouse/internal/models"
	"auctionhouse/internal/repository"

	"github.com/google/uuid"
)

// SweeperService watches the ledger and records an AUCTION_ENDED audit event
// once per auction whose deadline has passed. It never mutates the auctions
// themselves: closedness stays a derived property of EndTime.
type SweeperService struct {
	auctions repository.Auctions
	events   repository.EventRepo

	// seen holds auctions observed while still active; only the Run
	// goroutine touches it.
	seen map[string]models.Auction
}

func NewSweeperService(auctions repository.Auctions, events repository.EventRepo) *SweeperService {
	return &SweeperService{
		auctions: auctions,
		events:   events,
		seen:     make(map[string]models.Auction),
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SweeperService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.sweep(ctx, now.UTC())
		}
	}
}

// sweep diffs the active set against the previously observed one: anything
// that dropped out has ended since the last tick.
func (s *SweeperService) sweep(ctx context.Context, now time.Time) {
	active := make(map[string]struct{})
	for _, a := range s.auctions.ListActive(now) {
		active[a.ID] = struct{}{}
		s.seen[a.ID] = a
	}

	for id, a := range s.seen {
		if _, stillActive := active[id]; stillActive {
			continue
		}
		delete(s.seen, id)

		// Re-read for the final price; the cached copy may predate late bids.
		final, ok := s.auctions.Get(id)
		if !ok {
			final = a
		}
		_ = s.events.Append(ctx, models.AuditEvent{
			EventID:     uuid.NewString(),
			OccurredAt:  now,
			Type:        "AUCTION_ENDED",
			Description: "Auction ended for " + final.Item,
			Metadata: map[string]any{
				"auction_id":  id,
				"seller":      final.Seller,
				"final_price": final.CurrentPrice,
				"bid_count":   len(final.Bids),
			},
		})
	}
}

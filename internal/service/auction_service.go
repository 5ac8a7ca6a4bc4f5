package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auctionhouse/internal/models"
	"auctionhouse/internal/repository"

	"github.com/google/uuid"
)

var (
	errEmptyItem       = errors.New("item is required")
	errInvalidPrice    = errors.New("start_price must be greater than zero")
	errInvalidDuration = errors.New("duration_sec must be greater than zero")
)

type AuctionService struct {
	auctions repository.Auctions
	events   repository.EventRepo
}

func NewAuctionService(auctions repository.Auctions, events repository.EventRepo) *AuctionService {
	return &AuctionService{auctions: auctions, events: events}
}

// Create opens a new auction ending DurationSec from now and logs
// AUCTION_CREATED.
func (s *AuctionService) Create(ctx context.Context, p CreateAuctionParams) (string, error) {
	if p.Item == "" {
		return "", errEmptyItem
	}
	if p.StartPrice <= 0 {
		return "", errInvalidPrice
	}
	if p.DurationSec <= 0 {
		return "", errInvalidDuration
	}

	now := time.Now().UTC()
	endTime := now.Add(time.Duration(p.DurationSec) * time.Second)
	id, err := s.auctions.CreateAuction(p.Item, p.StartPrice, endTime, p.Seller)
	if err != nil {
		return "", fmt.Errorf("create auction for %q: %w", p.Item, err)
	}

	return id, s.events.Append(ctx, models.AuditEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        "AUCTION_CREATED",
		Description: "Auction created for " + p.Item,
		Metadata: map[string]any{
			"auction_id":  id,
			"seller":      p.Seller,
			"start_price": p.StartPrice,
			"end_time":    endTime,
		},
	})
}

// PlaceBid submits a bid. The check-then-act against the current price and
// deadline happens atomically inside the store; the audit event is written
// only for accepted bids.
func (s *AuctionService) PlaceBid(ctx context.Context, auctionID, bidder string, amount float64) error {
	if err := s.auctions.PlaceBid(auctionID, bidder, amount); err != nil {
		return err
	}

	return s.events.Append(ctx, models.AuditEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        "BID_PLACED",
		Description: fmt.Sprintf("Bid of %.2f placed on auction %s", amount, auctionID),
		Metadata: map[string]any{
			"auction_id": auctionID,
			"bidder":     bidder,
			"amount":     amount,
		},
	})
}

// Get looks up a single auction by id.
func (s *AuctionService) Get(auctionID string) (models.Auction, error) {
	a, ok := s.auctions.Get(auctionID)
	if !ok {
		return models.Auction{}, repository.ErrAuctionNotFound
	}
	return a, nil
}

// ListActive returns all auctions still open at the given instant.
func (s *AuctionService) ListActive(now time.Time) []models.Auction {
	return s.auctions.ListActive(now)
}

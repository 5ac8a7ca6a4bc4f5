package service

import (
	"context"
	"time"

	"auctionhouse/internal/models"
	"auctionhouse/internal/repository"
)

// Authorization covers the full auth flow: registration, credential login
// issuing a session token, and token resolution for privileged requests.
type Authorization interface {
	SignUp(ctx context.Context, username, password string) error
	SignIn(ctx context.Context, username, password string) (string, error)
	ResolveToken(token string) (string, error)
}

// Auctions exposes auction lifecycle operations: create, bid, read.
type Auctions interface {
	Create(ctx context.Context, p CreateAuctionParams) (string, error)
	PlaceBid(ctx context.Context, auctionID, bidder string, amount float64) error
	Get(auctionID string) (models.Auction, error)
	ListActive(now time.Time) []models.Auction
}

// EventLog exposes the append-only audit trail with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.AuditEvent, error)
}

// Sweeper runs the background loop that records AUCTION_ENDED audit events.
// Stop via context cancellation in main() for graceful shutdown.
type Sweeper interface {
	Run(ctx context.Context, tick time.Duration)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Auctions
	EventLog
	Sweeper
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, repos.Sessions, repos.Events),
		Auctions:      NewAuctionService(repos.Auctions, repos.Events),
		EventLog:      NewEventLogService(repos.Events),
		Sweeper:       NewSweeperService(repos.Auctions, repos.Events),
	}
}

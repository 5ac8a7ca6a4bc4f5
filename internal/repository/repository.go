package repository

import (
	"context"
	"database/sql"
	"time"

	"auctionhouse/internal/models"
)

type Users interface {
	Register(username, password string) error
	Authenticate(username, password string) bool
}

type Sessions interface {
	Login(username string) (string, error)
	Resolve(token string) (string, bool)
}

type Auctions interface {
	CreateAuction(item string, startPrice float64, endTime time.Time, seller string) (string, error)
	PlaceBid(auctionID, bidder string, amount float64) error
	Get(auctionID string) (models.Auction, bool)
	ListActive(now time.Time) []models.Auction
}

type EventRepo interface {
	Append(ctx context.Context, e models.AuditEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.AuditEvent, error)
}

type Repository struct {
	Users    Users
	Sessions Sessions
	Auctions Auctions
	Events   EventRepo
}

// NewRepository wires the in-memory auction store (users, sessions, auctions)
// and the SQLite-backed audit log. The store is memory-resident on purpose:
// only audit events survive a restart.
func NewRepository(db *sql.DB) *Repository {
	store := NewMemoryStore()
	return &Repository{
		Users:    store,
		Sessions: store,
		Auctions: store,
		Events:   NewAuditSQLite(db),
	}
}

package service

import (
	"context"
	"time"

	"auctionhouse/internal/models"
)

// Lightweight in-test mocks for the repository interfaces,
// with function fields and call recording.

type mockUsers struct {
	RegisterFn     func(username, password string) error
	AuthenticateFn func(username, password string) bool

	registerCalls []struct {
		username string
		password string
	}
	authCalls []string
}

func (m *mockUsers) Register(username, password string) error {
	m.registerCalls = append(m.registerCalls, struct {
		username string
		password string
	}{username: username, password: password})
	return m.RegisterFn(username, password)
}

func (m *mockUsers) Authenticate(username, password string) bool {
	m.authCalls = append(m.authCalls, username)
	return m.AuthenticateFn(username, password)
}

type mockSessions struct {
	LoginFn   func(username string) (string, error)
	ResolveFn func(token string) (string, bool)

	loginCalls []string
}

func (m *mockSessions) Login(username string) (string, error) {
	m.loginCalls = append(m.loginCalls, username)
	return m.LoginFn(username)
}

func (m *mockSessions) Resolve(token string) (string, bool) {
	return m.ResolveFn(token)
}

type mockAuctions struct {
	CreateAuctionFn func(item string, startPrice float64, endTime time.Time, seller string) (string, error)
	PlaceBidFn      func(auctionID, bidder string, amount float64) error
	GetFn           func(auctionID string) (models.Auction, bool)
	ListActiveFn    func(now time.Time) []models.Auction

	createCalls []struct {
		item    string
		price   float64
		endTime time.Time
		seller  string
	}
	bidCalls []struct {
		auctionID string
		bidder    string
		amount    float64
	}
}

func (m *mockAuctions) CreateAuction(item string, startPrice float64, endTime time.Time, seller string) (string, error) {
	m.createCalls = append(m.createCalls, struct {
		item    string
		price   float64
		endTime time.Time
		seller  string
	}{item: item, price: startPrice, endTime: endTime, seller: seller})
	return m.CreateAuctionFn(item, startPrice, endTime, seller)
}

func (m *mockAuctions) PlaceBid(auctionID, bidder string, amount float64) error {
	m.bidCalls = append(m.bidCalls, struct {
		auctionID string
		bidder    string
		amount    float64
	}{auctionID: auctionID, bidder: bidder, amount: amount})
	return m.PlaceBidFn(auctionID, bidder, amount)
}

func (m *mockAuctions) Get(auctionID string) (models.Auction, bool) {
	return m.GetFn(auctionID)
}

func (m *mockAuctions) ListActive(now time.Time) []models.Auction {
	return m.ListActiveFn(now)
}

type mockEvents struct {
	AppendFn func(ctx context.Context, e models.AuditEvent) error
	ListFn   func(ctx context.Context, from, to time.Time, typ string) ([]models.AuditEvent, error)

	appended []models.AuditEvent
}

func (m *mockEvents) Append(ctx context.Context, e models.AuditEvent) error {
	m.appended = append(m.appended, e)
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	return nil
}

func (m *mockEvents) List(ctx context.Context, from, to time.Time, typ string) ([]models.AuditEvent, error) {
	return m.ListFn(ctx, from, to, typ)
}

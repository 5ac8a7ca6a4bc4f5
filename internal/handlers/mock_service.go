package handlers

import (
	"context"
	"net/http"
	"time"

	"auctionhouse/internal/models"
	"auctionhouse/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpErr   error
	signInToken string
	signInErr   error
	resolveUser string
	resolveErr  error

	lastSignUpUsername string
	lastSignUpPassword string
	lastSignInUsername string
	lastResolveToken   string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) error {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpErr
}
func (m *mockAuth) SignIn(ctx context.Context, username, password string) (string, error) {
	m.lastSignInUsername = username
	return m.signInToken, m.signInErr
}
func (m *mockAuth) ResolveToken(token string) (string, error) {
	m.lastResolveToken = token
	return m.resolveUser, m.resolveErr
}

type mockAuctions struct {
	createID   string
	createErr  error
	bidErr     error
	getAuction models.Auction
	getErr     error
	active     []models.Auction

	lastCreate service.CreateAuctionParams
	lastBidID  string
	lastBidder string
	lastAmount float64
	bidCalls   int
}

func (m *mockAuctions) Create(ctx context.Context, p service.CreateAuctionParams) (string, error) {
	m.lastCreate = p
	return m.createID, m.createErr
}
func (m *mockAuctions) PlaceBid(ctx context.Context, auctionID, bidder string, amount float64) error {
	m.bidCalls++
	m.lastBidID = auctionID
	m.lastBidder = bidder
	m.lastAmount = amount
	return m.bidErr
}
func (m *mockAuctions) Get(auctionID string) (models.Auction, error) {
	return m.getAuction, m.getErr
}
func (m *mockAuctions) ListActive(now time.Time) []models.Auction {
	return m.active
}

type mockEventLog struct {
	resp     []models.AuditEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.AuditEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

package receipts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gulpcr/digitalslips-sub001/internal/authority"
	"github.com/gulpcr/digitalslips-sub001/internal/notification"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// Authority is the upstream receipt source. Satisfied by *authority.Client.
type Authority interface {
	GetReceipt(ctx context.Context, transactionID string) (authority.Receipt, error)
	VerifyReceipt(ctx context.Context, transactionID string) (authority.VerificationResult, error)
}

// Service fronts the receipt authority and keeps the per-user activity log.
type Service struct {
	authority Authority
	repo      Repository
	notifier  notification.Notifier
	logger    *slog.Logger
}

// NewService wires the gateway receipt service.
func NewService(auth Authority, repo Repository, notifier notification.Notifier, logger *slog.Logger) (*Service, error) {
	if auth == nil {
		return nil, fmt.Errorf("receipt authority is required")
	}
	if repo == nil {
		return nil, fmt.Errorf("activity repository is required")
	}
	return &Service{authority: auth, repo: repo, notifier: notifier, logger: logger}, nil
}

// Get fetches a receipt from the authority and records the view. An activity
// log failure does not fail the fetch.
func (s *Service) Get(ctx context.Context, userID, transactionID string) (authority.Receipt, error) {
	if strings.TrimSpace(transactionID) == "" {
		return authority.Receipt{}, fmt.Errorf("transaction id is required")
	}

	receipt, err := s.authority.GetReceipt(ctx, transactionID)
	if err != nil {
		return authority.Receipt{}, err
	}

	s.record(ctx, Event{
		ID:            uuid.NewString(),
		UserID:        userID,
		TransactionID: receipt.TransactionID,
		ReceiptNumber: receipt.ReceiptNumber,
		Action:        ActionViewed,
		CreatedAt:     time.Now().UTC(),
	})

	return receipt, nil
}

// Verify triggers verification upstream, records the outcome and notifies.
// The upstream call is passed through as-is: no retry, no deduplication.
func (s *Service) Verify(ctx context.Context, userID, transactionID string) (authority.VerificationResult, error) {
	if strings.TrimSpace(transactionID) == "" {
		return authority.VerificationResult{}, fmt.Errorf("transaction id is required")
	}

	result, err := s.authority.VerifyReceipt(ctx, transactionID)
	if err != nil {
		return authority.VerificationResult{}, err
	}

	s.record(ctx, Event{
		ID:            uuid.NewString(),
		UserID:        userID,
		TransactionID: transactionID,
		Action:        ActionVerified,
		VerifiedCount: result.VerifiedCount,
		CreatedAt:     time.Now().UTC(),
	})

	if s.notifier != nil && result.Success {
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        notification.KindReceiptVerified,
			Destination: userID,
			Body:        fmt.Sprintf("receipt for transaction %s verified (%d total)", transactionID, result.VerifiedCount),
		})
	}

	return result, nil
}

// Recent lists the newest activity events for the user.
func (s *Service) Recent(ctx context.Context, userID string, limit int) ([]Event, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.repo.ListRecent(ctx, userID, limit)
}

func (s *Service) record(ctx context.Context, event Event) {
	if err := s.repo.Record(ctx, event); err != nil && s.logger != nil {
		s.logger.Warn("record receipt event", "action", event.Action, "transaction_id", event.TransactionID, "error", err)
	}
}

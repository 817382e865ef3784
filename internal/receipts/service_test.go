package receipts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gulpcr/digitalslips-sub001/internal/authority"
	"github.com/gulpcr/digitalslips-sub001/internal/logging"
	"github.com/gulpcr/digitalslips-sub001/internal/notification"
)

type stubAuthority struct {
	receipt authority.Receipt
	result  authority.VerificationResult
	err     error
}

func (s *stubAuthority) GetReceipt(_ context.Context, transactionID string) (authority.Receipt, error) {
	if s.err != nil {
		return authority.Receipt{}, s.err
	}
	r := s.receipt
	r.TransactionID = transactionID
	return r, nil
}

func (s *stubAuthority) VerifyReceipt(_ context.Context, _ string) (authority.VerificationResult, error) {
	if s.err != nil {
		return authority.VerificationResult{}, s.err
	}
	return s.result, nil
}

type captureNotifier struct {
	messages []notification.Message
}

func (n *captureNotifier) Send(_ context.Context, message notification.Message) error {
	n.messages = append(n.messages, message)
	return nil
}

func newTestService(t *testing.T, auth Authority, notifier notification.Notifier) (*Service, Repository) {
	t.Helper()
	repo := NewMemoryRepository()
	svc, err := NewService(auth, repo, notifier, logging.Discard())
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, repo
}

func TestGetRecordsView(t *testing.T) {
	stub := &stubAuthority{receipt: authority.Receipt{ID: "r1", ReceiptNumber: "RCP-1", ReceiptType: "transfer", CreatedAt: time.Now().UTC()}}
	svc, _ := newTestService(t, stub, nil)

	ctx := context.Background()
	receipt, err := svc.Get(ctx, "user-1", "tx-123")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if receipt.TransactionID != "tx-123" {
		t.Fatalf("expected tx-123, got %s", receipt.TransactionID)
	}

	events, err := svc.Recent(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Action != ActionViewed || events[0].ReceiptNumber != "RCP-1" {
		t.Fatalf("unexpected event %+v", events[0])
	}
}

func TestVerifyRecordsAndNotifies(t *testing.T) {
	stub := &stubAuthority{result: authority.VerificationResult{Success: true, Message: "verified", VerifiedCount: 3}}
	notifier := &captureNotifier{}
	svc, _ := newTestService(t, stub, notifier)

	ctx := context.Background()
	result, err := svc.Verify(ctx, "user-1", "tx-123")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if result.VerifiedCount != 3 {
		t.Fatalf("expected verified_count 3, got %d", result.VerifiedCount)
	}

	events, err := svc.Recent(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 1 || events[0].Action != ActionVerified || events[0].VerifiedCount != 3 {
		t.Fatalf("unexpected events %+v", events)
	}

	if len(notifier.messages) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.messages))
	}
	if notifier.messages[0].Kind != notification.KindReceiptVerified {
		t.Fatalf("unexpected notification kind %s", notifier.messages[0].Kind)
	}
}

func TestVerifyFailureIsNotRecorded(t *testing.T) {
	stub := &stubAuthority{err: &authority.StatusError{StatusCode: 404, Body: "receipt not found"}}
	notifier := &captureNotifier{}
	svc, _ := newTestService(t, stub, notifier)

	ctx := context.Background()
	_, err := svc.Verify(ctx, "user-1", "tx-missing")
	if err == nil {
		t.Fatalf("expected upstream error")
	}
	var statusErr *authority.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 404 {
		t.Fatalf("expected status error to propagate, got %v", err)
	}

	events, err := svc.Recent(ctx, "user-1", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
	if len(notifier.messages) != 0 {
		t.Fatalf("expected no notifications, got %d", len(notifier.messages))
	}
}

func TestEmptyTransactionID(t *testing.T) {
	svc, _ := newTestService(t, &stubAuthority{}, nil)
	ctx := context.Background()

	if _, err := svc.Get(ctx, "user-1", ""); err == nil {
		t.Fatalf("expected error for empty transaction id")
	}
	if _, err := svc.Verify(ctx, "user-1", "   "); err == nil {
		t.Fatalf("expected error for blank transaction id")
	}
}

func TestRecentNewestFirstWithLimit(t *testing.T) {
	stub := &stubAuthority{receipt: authority.Receipt{ID: "r1", ReceiptNumber: "RCP-1"}}
	svc, _ := newTestService(t, stub, nil)
	ctx := context.Background()

	for _, tx := range []string{"tx-1", "tx-2", "tx-3"} {
		if _, err := svc.Get(ctx, "user-1", tx); err != nil {
			t.Fatalf("get %s: %v", tx, err)
		}
	}

	events, err := svc.Recent(ctx, "user-1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].TransactionID != "tx-3" || events[1].TransactionID != "tx-2" {
		t.Fatalf("expected newest first, got %+v", events)
	}
}

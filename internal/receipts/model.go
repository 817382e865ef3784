package receipts

import "time"

// Event actions recorded in the activity log.
const (
	ActionViewed   = "viewed"
	ActionVerified = "verified"
)

// Event captures one gateway interaction with a receipt, feeding the
// dashboard's recent-activity list.
type Event struct {
	ID            string
	UserID        string
	TransactionID string
	ReceiptNumber string
	Action        string
	VerifiedCount int
	CreatedAt     time.Time
}

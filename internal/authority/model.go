package authority

import (
	"fmt"
	"time"
)

// Receipt is the authority's record of proof for a bank transaction. It is
// immutable once issued; the gateway only ever re-fetches it.
type Receipt struct {
	ID              string    `json:"id"`
	TransactionID   string    `json:"transaction_id"`
	ReceiptNumber   string    `json:"receipt_number"`
	ReceiptType     string    `json:"receipt_type"`
	VerificationURL *string   `json:"verification_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// VerificationResult is the transient outcome of a verify call.
type VerificationResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	VerifiedCount int    `json:"verified_count"`
}

// StatusError reports a non-2xx response from the authority, carrying the
// upstream status code and response body when available.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("receipt authority returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("receipt authority returned status %d: %s", e.StatusCode, e.Body)
}

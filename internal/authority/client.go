package authority

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the receipt authority over its versioned REST API. It
// performs no retries, no caching and no request deduplication: every call
// maps to exactly one HTTP round trip.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New builds a client for the given base URL, e.g. "http://localhost:8001/api".
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetReceipt fetches the receipt recorded for the given transaction.
func (c *Client) GetReceipt(ctx context.Context, transactionID string) (Receipt, error) {
	if strings.TrimSpace(transactionID) == "" {
		return Receipt{}, fmt.Errorf("transaction id is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/receipts/"+url.PathEscape(transactionID), nil)
	if err != nil {
		return Receipt{}, err
	}

	var receipt Receipt
	if err := c.do(req, &receipt); err != nil {
		return Receipt{}, err
	}
	return receipt, nil
}

// VerifyReceipt asks the authority to verify the receipt for the given
// transaction. The call is not idempotent upstream: each POST may increment
// the verified count again.
func (c *Client) VerifyReceipt(ctx context.Context, transactionID string) (VerificationResult, error) {
	if strings.TrimSpace(transactionID) == "" {
		return VerificationResult{}, fmt.Errorf("transaction id is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/receipts/"+url.PathEscape(transactionID)+"/verify", nil)
	if err != nil {
		return VerificationResult{}, err
	}

	var result VerificationResult
	if err := c.do(req, &result); err != nil {
		return VerificationResult{}, err
	}
	return result, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("receipt authority: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode receipt authority response: %w", err)
	}
	return nil
}

package receipts

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gulpcr/digitalslips-sub001/internal/authority"
)

// Handler exposes receipt HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a receipt HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type receiptResponse struct {
	ID              string    `json:"id"`
	TransactionID   string    `json:"transaction_id"`
	ReceiptNumber   string    `json:"receipt_number"`
	ReceiptType     string    `json:"receipt_type"`
	VerificationURL *string   `json:"verification_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type eventResponse struct {
	TransactionID string    `json:"transaction_id"`
	ReceiptNumber string    `json:"receipt_number,omitempty"`
	Action        string    `json:"action"`
	VerifiedCount int       `json:"verified_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Get fetches a single receipt by transaction id.
func (h *Handler) Get(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	receipt, err := h.service.Get(c.UserContext(), uid, c.Params("transactionId"))
	if err != nil {
		return upstreamError(err)
	}
	return c.Status(http.StatusOK).JSON(receiptResponse{
		ID:              receipt.ID,
		TransactionID:   receipt.TransactionID,
		ReceiptNumber:   receipt.ReceiptNumber,
		ReceiptType:     receipt.ReceiptType,
		VerificationURL: receipt.VerificationURL,
		CreatedAt:       receipt.CreatedAt,
	})
}

// Verify triggers verification for a receipt.
func (h *Handler) Verify(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	result, err := h.service.Verify(c.UserContext(), uid, c.Params("transactionId"))
	if err != nil {
		return upstreamError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success":        result.Success,
		"message":        result.Message,
		"verified_count": result.VerifiedCount,
	})
}

// Recent lists the authenticated user's latest receipt activity.
func (h *Handler) Recent(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	limit, _ := strconv.Atoi(c.Query("limit"))
	events, err := h.service.Recent(c.UserContext(), uid, limit)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	out := make([]eventResponse, 0, len(events))
	for _, event := range events {
		out = append(out, eventResponse{
			TransactionID: event.TransactionID,
			ReceiptNumber: event.ReceiptNumber,
			Action:        event.Action,
			VerifiedCount: event.VerifiedCount,
			CreatedAt:     event.CreatedAt,
		})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"events": out})
}

// upstreamError maps authority failures onto gateway responses: status
// failures pass through with the upstream code, transport failures become a
// 502, anything else a 400.
func upstreamError(err error) error {
	var statusErr *authority.StatusError
	if errors.As(err, &statusErr) {
		return fiber.NewError(statusErr.StatusCode, statusErr.Error())
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fiber.NewError(http.StatusBadGateway, err.Error())
	}
	return fiber.NewError(http.StatusBadRequest, err.Error())
}

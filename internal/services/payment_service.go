package services

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PaymentService simulates charging for an order. Real payment-gateway
// integration is out of scope; the stub succeeds after a fixed delay.
type PaymentService struct {
	delay time.Duration
}

// NewPaymentService creates the stubbed payment processor.
func NewPaymentService() *PaymentService {
	return &PaymentService{delay: 2 * time.Second}
}

// Charge processes a payment for the given order. It blocks for the
// configured delay and always succeeds, unless the context is cancelled.
func (s *PaymentService) Charge(ctx context.Context, orderID uuid.UUID, amount float64) error {
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

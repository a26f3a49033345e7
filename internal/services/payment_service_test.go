package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPaymentChargeAlwaysSucceeds(t *testing.T) {
	svc := &PaymentService{delay: 10 * time.Millisecond}

	if err := svc.Charge(context.Background(), uuid.New(), 100); err != nil {
		t.Fatalf("stub charge should succeed, got %v", err)
	}
}

func TestPaymentChargeHonorsCancellation(t *testing.T) {
	svc := &PaymentService{delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.Charge(ctx, uuid.New(), 100); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

package entity

import (
	"testing"
	"time"
)

func TestDeletionStatusTerminal(t *testing.T) {
	tests := []struct {
		status   DeletionStatus
		terminal bool
	}{
		{DeletionStatusPending, false},
		{DeletionStatusApproved, true},
		{DeletionStatusExpired, true},
		{DeletionStatusRejected, true},
	}

	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.terminal {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}

func TestDeletionRequestExpiredAt(t *testing.T) {
	now := time.Now()
	r := DeletionRequest{ExpiresAt: now}

	if r.ExpiredAt(now) {
		t.Error("a request is not expired at the exact deadline")
	}
	if !r.ExpiredAt(now.Add(time.Second)) {
		t.Error("a request past its deadline must be expired")
	}
	if r.ExpiredAt(now.Add(-time.Second)) {
		t.Error("a request before its deadline must not be expired")
	}
}

func TestPropertyStatusDeletionAllowed(t *testing.T) {
	tests := []struct {
		status  PropertyStatus
		allowed bool
	}{
		{PropertyStatusAvailable, false},
		{PropertyStatusPending, false},
		{PropertyStatusSold, true},
		{PropertyStatusNotAvailable, true},
		{PropertyStatusTesting, false},
	}

	for _, tt := range tests {
		if got := tt.status.DeletionAllowed(); got != tt.allowed {
			t.Errorf("%s.DeletionAllowed() = %v, want %v", tt.status, got, tt.allowed)
		}
	}
}

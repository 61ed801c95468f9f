package services

import (
	"errors"
	"testing"

	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
)

func TestSplitAmountDefaultRate(t *testing.T) {
	split, err := SplitAmount(1500, DefaultCommissionRate)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if split.Rate != 0.10 {
		t.Fatalf("expected rate 0.10, got %v", split.Rate)
	}
	if split.Commission != 150 {
		t.Fatalf("expected commission 150, got %v", split.Commission)
	}
	if split.Seller != 1350 {
		t.Fatalf("expected seller amount 1350, got %v", split.Seller)
	}
}

func TestSplitAmountRoundsToCents(t *testing.T) {
	split, err := SplitAmount(10.99, DefaultCommissionRate)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if split.Commission != 1.10 {
		t.Fatalf("expected commission 1.10, got %v", split.Commission)
	}
	if split.Seller != 9.89 {
		t.Fatalf("expected seller amount 9.89, got %v", split.Seller)
	}
}

func TestSplitAmountRejectsNonPositiveAmount(t *testing.T) {
	if _, err := SplitAmount(0, DefaultCommissionRate); !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for zero, got %v", err)
	}
	if _, err := SplitAmount(-25, DefaultCommissionRate); !errors.Is(err, domainerrors.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for negative, got %v", err)
	}
}

func TestSplitAmountNormalizesRate(t *testing.T) {
	split, err := SplitAmount(100, 0)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if split.Rate != DefaultCommissionRate {
		t.Fatalf("expected fallback to default rate, got %v", split.Rate)
	}

	split, err = SplitAmount(100, 2)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if split.Rate != 1 || split.Commission != 100 || split.Seller != 0 {
		t.Fatalf("expected capped rate to take full amount, got %+v", split)
	}
}

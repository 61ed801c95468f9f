package services

import (
	"math"

	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
)

// DefaultCommissionRate is the platform cut applied to marketplace purchases.
const DefaultCommissionRate = 0.10

// CommissionSplit is the resolved division of one purchase amount between the
// platform and the seller. Commission + Seller always reconstructs Amount.
type CommissionSplit struct {
	Rate       float64
	Commission float64
	Seller     float64
}

// SplitAmount divides amount by the given commission rate, rounding the
// platform cut to cents and leaving the remainder with the seller. A rate of
// zero or below falls back to the platform default; rates above 1 are capped.
func SplitAmount(amount float64, rate float64) (CommissionSplit, error) {
	if amount <= 0 {
		return CommissionSplit{}, domainerrors.ErrInvalidAmount
	}
	rate = normalizeRate(rate)
	commission := round2(amount * rate)
	return CommissionSplit{
		Rate:       rate,
		Commission: commission,
		Seller:     round2(amount - commission),
	}, nil
}

func normalizeRate(rate float64) float64 {
	if rate <= 0 {
		return DefaultCommissionRate
	}
	if rate > 1 {
		return 1
	}
	return rate
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

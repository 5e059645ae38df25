package types

import (
	"cosmossdk.io/math"
)

// Pair is one liquidity pool for exactly two distinct assets. AssetLow and
// AssetHigh are stored in canonical order and never change after creation;
// only the reserves mutate, and only as the atomic side effect of a swap.
type Pair struct {
	AssetLow    string   `json:"asset_low"`
	AssetHigh   string   `json:"asset_high"`
	ReserveLow  math.Int `json:"reserve_low"`
	ReserveHigh math.Int `json:"reserve_high"`
}

// NewPair builds a pair from assets and amounts in any order, reassigning the
// amounts to the canonical low/high sides.
func NewPair(assetA, assetB string, amountA, amountB math.Int) Pair {
	if assetA > assetB {
		assetA, assetB = assetB, assetA
		amountA, amountB = amountB, amountA
	}
	return Pair{
		AssetLow:    assetA,
		AssetHigh:   assetB,
		ReserveLow:  amountA,
		ReserveHigh: amountB,
	}
}

// Key returns the canonical storage key for the pair.
func (p Pair) Key() string {
	return PairKey(p.AssetLow, p.AssetHigh)
}

// InvariantProduct returns reserveLow * reserveHigh, the quantity that must
// never decrease across a completed swap.
func (p Pair) InvariantProduct() math.Int {
	return p.ReserveLow.Mul(p.ReserveHigh)
}

// ReservesFor orients the pair's reserves for a swap of assetIn into assetOut.
// Returns ErrInvalidAssetPair if the assets are not this pair's assets.
func (p Pair) ReservesFor(assetIn, assetOut string) (reserveIn, reserveOut math.Int, err error) {
	switch {
	case assetIn == p.AssetLow && assetOut == p.AssetHigh:
		return p.ReserveLow, p.ReserveHigh, nil
	case assetIn == p.AssetHigh && assetOut == p.AssetLow:
		return p.ReserveHigh, p.ReserveLow, nil
	default:
		return math.Int{}, math.Int{}, ErrInvalidAssetPair.Wrapf(
			"expected %s/%s, got %s/%s", p.AssetLow, p.AssetHigh, assetIn, assetOut)
	}
}

// Validate checks the structural invariants of a pair record.
func (p Pair) Validate() error {
	if p.AssetLow == "" || p.AssetHigh == "" {
		return ErrInvalidPairState.Wrap("asset identifiers cannot be empty")
	}
	if p.AssetLow == p.AssetHigh {
		return ErrInvalidPairState.Wrapf("identical assets %s", p.AssetLow)
	}
	if p.AssetLow > p.AssetHigh {
		return ErrInvalidPairState.Wrapf("assets not in canonical order: %s > %s", p.AssetLow, p.AssetHigh)
	}
	if p.ReserveLow.IsNil() || p.ReserveHigh.IsNil() {
		return ErrInvalidPairState.Wrap("reserves not initialized")
	}
	if !p.ReserveLow.IsPositive() {
		return ErrInvalidPairState.Wrapf("reserve of %s must be positive, got %s", p.AssetLow, p.ReserveLow)
	}
	if !p.ReserveHigh.IsPositive() {
		return ErrInvalidPairState.Wrapf("reserve of %s must be positive, got %s", p.AssetHigh, p.ReserveHigh)
	}
	return nil
}

package types

import (
	"cosmossdk.io/math"
)

// Default swap fee: 3/1000 = 0.30%, the 997/1000 multiplier.
const (
	DefaultFeeNumerator   = 3
	DefaultFeeDenominator = 1000

	// DefaultMinLiquidity only requires both deposits to be positive;
	// operators can raise it to reject dust pools.
	DefaultMinLiquidity = 1
)

// Params holds the engine configuration. The fee is a module-wide setting,
// not per pair.
type Params struct {
	FeeNumerator   math.Int `json:"fee_numerator"`
	FeeDenominator math.Int `json:"fee_denominator"`
	MinLiquidity   math.Int `json:"min_liquidity"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		FeeNumerator:   math.NewInt(DefaultFeeNumerator),
		FeeDenominator: math.NewInt(DefaultFeeDenominator),
		MinLiquidity:   math.NewInt(DefaultMinLiquidity),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if p.FeeNumerator.IsNil() || p.FeeDenominator.IsNil() || p.MinLiquidity.IsNil() {
		return ErrInvalidParams.Wrap("params not initialized")
	}
	if !p.FeeDenominator.IsPositive() {
		return ErrInvalidParams.Wrapf("fee denominator must be positive, got %s", p.FeeDenominator)
	}
	if p.FeeNumerator.IsNegative() {
		return ErrInvalidParams.Wrapf("fee numerator cannot be negative, got %s", p.FeeNumerator)
	}
	if p.FeeNumerator.GTE(p.FeeDenominator) {
		return ErrInvalidParams.Wrapf("fee %s/%s must be below 100%%", p.FeeNumerator, p.FeeDenominator)
	}
	if p.MinLiquidity.LT(math.OneInt()) {
		return ErrInvalidParams.Wrapf("min liquidity must be at least 1, got %s", p.MinLiquidity)
	}
	return nil
}

package types

import (
	"context"

	"cosmossdk.io/math"
)

// TokenLedger is the capability interface the engine depends on for moving
// value between accounts. One adapter implements it per surrounding system;
// the engine itself never touches balances directly.
//
// Transfer failures are reported with the shared sentinels
// ErrInsufficientBalance / ErrInsufficientAllowance and propagate to the
// engine's caller unchanged.
type TokenLedger interface {
	// TotalSupply reports the total issued supply of an asset. Used once, as
	// the registration validity probe.
	TotalSupply(ctx context.Context, asset string) (math.Int, error)

	// TransferFrom moves amount of asset from a caller account into to,
	// consuming the caller's allowance.
	TransferFrom(ctx context.Context, asset, from, to string, amount math.Int) error

	// Transfer moves amount of asset out of the pool account into to.
	Transfer(ctx context.Context, asset, to string, amount math.Int) error
}

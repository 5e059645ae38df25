package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrDuplicateAsset        = errors.Register(ModuleName, 1, "asset already registered")
	ErrInvalidAsset          = errors.Register(ModuleName, 2, "invalid asset")
	ErrIdenticalAssets       = errors.Register(ModuleName, 3, "cannot create pair with identical assets")
	ErrAssetNotRegistered    = errors.Register(ModuleName, 4, "asset not registered")
	ErrPairAlreadyExists     = errors.Register(ModuleName, 5, "pair already exists")
	ErrPairNotFound          = errors.Register(ModuleName, 6, "pair not found")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 7, "insufficient liquidity")
	ErrInvalidAssetPair      = errors.Register(ModuleName, 8, "invalid asset pair")
	ErrInsufficientInput     = errors.Register(ModuleName, 9, "insufficient input amount")
	ErrInsufficientOutput    = errors.Register(ModuleName, 10, "insufficient output amount")
	ErrReentrancy            = errors.Register(ModuleName, 11, "reentrancy detected")
	ErrInvariantViolation    = errors.Register(ModuleName, 12, "invariant violation")
	ErrInvalidPairState      = errors.Register(ModuleName, 13, "invalid pair state")
	ErrInvalidParams         = errors.Register(ModuleName, 14, "invalid params")

	// Ledger sentinel errors, shared with TokenLedger adapters so the engine
	// can propagate collaborator failures unchanged.
	ErrInsufficientBalance   = errors.Register(ModuleName, 15, "insufficient balance")
	ErrInsufficientAllowance = errors.Register(ModuleName, 16, "insufficient allowance")
)

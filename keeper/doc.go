// Package keeper implements the AMM engine keeper.
//
// The engine maintains two-asset liquidity pairs and exchanges one registered
// asset for another at a price set by the constant-product formula, with a
// fixed fee retained by the pair.
//
// # Core Functionality
//
// Asset Registry: Assets are registered once, after a supply probe through the
// TokenLedger; the set grows monotonically.
//
// Pairs: Each unordered asset combination has at most one pair, stored under a
// canonical low/high ordering so both argument orders resolve to the same
// record. A pair is seeded by the creator's initial deposit and never deleted.
//
// Swaps: Executed with the constant-product formula (x * y = k) in integer
// arithmetic that always rounds in the pair's favor, so k never decreases.
// Transfers run before the reserve commit; a failed outbound transfer rolls
// the inbound one back and the whole call aborts with no state change.
//
// Security: A fail-fast reentrancy guard rejects ledger callbacks that
// re-enter the engine on the same pair before the original operation commits.
//
// # Key Types
//
// Keeper: owns the asset set and pair records, the TokenLedger and EventSink
// collaborators, the reentrancy guard, logging and metrics.
//
// # Usage Patterns
//
// Creating a pair:
//
//	pair, err := k.CreatePair(ctx, creator, "uatom", "upaw", amountA, amountB)
//
// Executing a swap:
//
//	amountOut, err := k.Swap(ctx, caller, assetIn, assetOut, amountIn)
//
// # Metrics
//
// The keeper exposes Prometheus metrics for swaps, pairs and registered
// assets via Metrics.
package keeper

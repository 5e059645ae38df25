package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"

	"github.com/paw-chain/amm/types"
)

// CalculateSwapOutput computes the swap output from the current reserves
// using the constant product formula with the fee deducted from the input:
//
//	effectiveIn = amountIn * (feeDenominator - feeNumerator)
//	amountOut   = floor(effectiveIn * reserveOut / (reserveIn * feeDenominator + effectiveIn))
//
// All arithmetic is integer-only and rounding is toward zero, so the pool
// never gives away more than the formula entitles the trader to. The function
// is monotonically non-decreasing in amountIn for fixed reserves.
func CalculateSwapOutput(amountIn, reserveIn, reserveOut, feeNumerator, feeDenominator math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), types.ErrInsufficientInput.Wrap("input amount must be positive")
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrap("pair reserves must be positive")
	}

	effectiveIn := amountIn.Mul(feeDenominator.Sub(feeNumerator))
	numerator := effectiveIn.Mul(reserveOut)
	denominator := reserveIn.Mul(feeDenominator).Add(effectiveIn)

	amountOut := numerator.Quo(denominator)

	if amountOut.IsZero() {
		return math.ZeroInt(), types.ErrInsufficientOutput.Wrap("output amount rounds to zero")
	}
	// The denominator structure guarantees amountOut < reserveOut; checked
	// anyway because reserveOut is an invariant this function must not break.
	if amountOut.GTE(reserveOut) {
		return math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf("output %s >= reserve %s", amountOut, reserveOut)
	}

	return amountOut, nil
}

// Swap exchanges amountIn of assetIn for assetOut at the price set by the
// pair's reserves, as one atomic state transition: either both transfers and
// the reserve update happen, or none of them do. A ledger callback that
// re-enters the engine on the same pair fails with ErrReentrancy.
func (k *Keeper) Swap(ctx context.Context, caller, assetIn, assetOut string, amountIn math.Int) (math.Int, error) {
	start := time.Now()
	defer func() {
		k.metrics.SwapLatency.Observe(time.Since(start).Seconds())
	}()

	key := types.PairKey(assetIn, assetOut)

	if amountIn.IsNil() || amountIn.IsZero() {
		k.metrics.SwapsTotal.WithLabelValues(key, assetIn, "failed").Inc()
		return math.ZeroInt(), types.ErrInsufficientInput.Wrap("swap amount must be positive")
	}
	if amountIn.IsNegative() {
		k.metrics.SwapsTotal.WithLabelValues(key, assetIn, "failed").Inc()
		return math.ZeroInt(), types.ErrInsufficientInput.Wrapf("swap amount %s is negative", amountIn)
	}
	if assetIn == assetOut {
		k.metrics.SwapsTotal.WithLabelValues(key, assetIn, "failed").Inc()
		return math.ZeroInt(), types.ErrInvalidAssetPair.Wrap("cannot swap identical assets")
	}

	var amountOut math.Int
	err := k.withGuard("pair:"+key, func() error {
		pair, ok := k.store.getPair(key)
		if !ok {
			return types.ErrPairNotFound.Wrapf("pair %s", key)
		}

		reserveIn, reserveOut, err := pair.ReservesFor(assetIn, assetOut)
		if err != nil {
			return err
		}

		amountOut, err = CalculateSwapOutput(amountIn, reserveIn, reserveOut, k.params.FeeNumerator, k.params.FeeDenominator)
		if err != nil {
			return err
		}

		// Build the post-swap record and check the constant product before
		// touching the ledger, so an invariant failure aborts with no effects.
		oldK := pair.InvariantProduct()
		updated := pair
		if assetIn == pair.AssetLow {
			updated.ReserveLow = reserveIn.Add(amountIn)
			updated.ReserveHigh = reserveOut.Sub(amountOut)
		} else {
			updated.ReserveHigh = reserveIn.Add(amountIn)
			updated.ReserveLow = reserveOut.Sub(amountOut)
		}
		if err := ValidatePairInvariant(updated, oldK); err != nil {
			return err
		}
		if err := updated.Validate(); err != nil {
			return err
		}

		// Interactions: pull the input, push the output. Ledger failures
		// propagate unchanged; a failed push rolls back the pull.
		if err := k.ledger.TransferFrom(ctx, assetIn, caller, types.PoolAccount, amountIn); err != nil {
			return err
		}
		if err := k.ledger.Transfer(ctx, assetOut, caller, amountOut); err != nil {
			if revertErr := k.ledger.Transfer(ctx, assetIn, caller, amountIn); revertErr != nil {
				k.logger.Error("failed to revert input transfer after output transfer failure",
					"original_error", err,
					"revert_error", revertErr,
					"caller", caller,
					"asset_in", assetIn,
					"amount_in", amountIn.String(),
				)
			}
			return err
		}

		// Commit only after both transfers succeeded.
		k.store.putPair(updated)

		k.emitSwapEvent(caller, pair, assetIn, amountIn, amountOut)
		k.recordSwapMetrics(key, assetIn, amountIn)
		k.logger.Info("swap executed",
			"pair", key,
			"caller", caller,
			"asset_in", assetIn,
			"amount_in", amountIn.String(),
			"asset_out", assetOut,
			"amount_out", amountOut.String(),
		)
		return nil
	})
	if err != nil {
		k.metrics.SwapsTotal.WithLabelValues(key, assetIn, "failed").Inc()
		return math.ZeroInt(), err
	}
	return amountOut, nil
}

// SimulateSwap calculates the expected output without executing the swap.
func (k *Keeper) SimulateSwap(ctx context.Context, assetIn, assetOut string, amountIn math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.ZeroInt(), types.ErrInsufficientInput.Wrap("swap amount must be positive")
	}
	if assetIn == assetOut {
		return math.ZeroInt(), types.ErrInvalidAssetPair.Wrap("cannot swap identical assets")
	}

	pair, err := k.GetPair(ctx, assetIn, assetOut)
	if err != nil {
		return math.ZeroInt(), err
	}
	reserveIn, reserveOut, err := pair.ReservesFor(assetIn, assetOut)
	if err != nil {
		return math.ZeroInt(), err
	}
	return CalculateSwapOutput(amountIn, reserveIn, reserveOut, k.params.FeeNumerator, k.params.FeeDenominator)
}

// SpotPrice returns the instantaneous price of assetOut in terms of assetIn,
// reserveOut / reserveIn.
func (k *Keeper) SpotPrice(ctx context.Context, assetIn, assetOut string) (math.LegacyDec, error) {
	pair, err := k.GetPair(ctx, assetIn, assetOut)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	reserveIn, reserveOut, err := pair.ReservesFor(assetIn, assetOut)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return math.LegacyZeroDec(), types.ErrInsufficientLiquidity.Wrap("pair reserves must be positive")
	}
	return math.LegacyNewDecFromInt(reserveOut).Quo(math.LegacyNewDecFromInt(reserveIn)), nil
}

// emitSwapEvent reports the four directional amounts; the two sides that did
// not move are reported as zero.
func (k *Keeper) emitSwapEvent(caller string, pair types.Pair, assetIn string, amountIn, amountOut math.Int) {
	zero := math.ZeroInt()
	if assetIn == pair.AssetLow {
		k.sink.SwapExecuted(caller, amountIn, zero, zero, amountOut)
	} else {
		k.sink.SwapExecuted(caller, zero, amountIn, amountOut, zero)
	}
}

func (k *Keeper) recordSwapMetrics(key, assetIn string, amountIn math.Int) {
	k.metrics.SwapsTotal.WithLabelValues(key, assetIn, "success").Inc()
	if amountIn.IsInt64() {
		k.metrics.SwapVolume.WithLabelValues(key, assetIn).Add(float64(amountIn.Int64()))
		fee := amountIn.Mul(k.params.FeeNumerator).Quo(k.params.FeeDenominator)
		k.metrics.SwapFeesRetained.WithLabelValues(key, assetIn).Add(float64(fee.Int64()))
	}
}

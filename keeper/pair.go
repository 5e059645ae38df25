package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/paw-chain/amm/types"
)

// CreatePair creates a new liquidity pair seeded with the creator's initial
// deposit. Assets are stored in canonical order; both supplied amounts are
// pulled from the creator before the record is committed, and the whole call
// is all-or-nothing.
func (k *Keeper) CreatePair(ctx context.Context, creator, assetA, assetB string, amountA, amountB math.Int) (*types.Pair, error) {
	// 1. Input validation against the state observed at entry
	if assetA == assetB {
		return nil, types.ErrIdenticalAssets.Wrapf("asset %s", assetA)
	}
	if amountA.IsNil() || amountA.LT(k.params.MinLiquidity) {
		return nil, types.ErrInsufficientLiquidity.Wrapf(
			"amount of %s below minimum initial liquidity %s", assetA, k.params.MinLiquidity)
	}
	if amountB.IsNil() || amountB.LT(k.params.MinLiquidity) {
		return nil, types.ErrInsufficientLiquidity.Wrapf(
			"amount of %s below minimum initial liquidity %s", assetB, k.params.MinLiquidity)
	}
	if !k.store.hasAsset(assetA) {
		return nil, types.ErrAssetNotRegistered.Wrapf("asset %s", assetA)
	}
	if !k.store.hasAsset(assetB) {
		return nil, types.ErrAssetNotRegistered.Wrapf("asset %s", assetB)
	}

	key := types.PairKey(assetA, assetB)
	var created types.Pair

	err := k.withGuard("pair:"+key, func() error {
		if k.store.hasPair(key) {
			return types.ErrPairAlreadyExists.Wrapf("pair %s", key)
		}

		// 2. Pull both deposits from the creator. Ledger failures propagate
		// unchanged; a failed second pull rolls back the first.
		if err := k.ledger.TransferFrom(ctx, assetA, creator, types.PoolAccount, amountA); err != nil {
			return err
		}
		if err := k.ledger.TransferFrom(ctx, assetB, creator, types.PoolAccount, amountB); err != nil {
			if revertErr := k.ledger.Transfer(ctx, assetA, creator, amountA); revertErr != nil {
				k.logger.Error("failed to revert first deposit after second deposit failure",
					"original_error", err,
					"revert_error", revertErr,
					"creator", creator,
					"asset", assetA,
					"amount", amountA.String(),
				)
			}
			return err
		}

		// 3. Commit the canonical record only after both transfers succeeded
		created = types.NewPair(assetA, assetB, amountA, amountB)
		if err := created.Validate(); err != nil {
			return err
		}
		k.store.putPair(created)

		k.sink.PairCreated(created.AssetLow, created.AssetHigh)
		k.metrics.PairCreations.Inc()
		k.metrics.PairsTotal.Set(float64(k.store.pairCount()))
		k.logger.Info("pair created",
			"pair", key,
			"creator", creator,
			"reserve_low", created.ReserveLow.String(),
			"reserve_high", created.ReserveHigh.String(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetPair returns the pair for two assets in either order.
func (k *Keeper) GetPair(ctx context.Context, assetA, assetB string) (types.Pair, error) {
	pair, ok := k.store.getPair(types.PairKey(assetA, assetB))
	if !ok {
		return types.Pair{}, types.ErrPairNotFound.Wrapf("pair %s", types.PairKey(assetA, assetB))
	}
	return pair, nil
}

// Pairs returns all pair records in deterministic order.
func (k *Keeper) Pairs(ctx context.Context) []types.Pair {
	return k.store.pairList()
}

// PairCount returns the number of pairs.
func (k *Keeper) PairCount(ctx context.Context) int {
	return k.store.pairCount()
}

package keeper

import (
	"context"

	"github.com/paw-chain/amm/types"
)

// RegisterAsset adds an asset to the registered set after a one-time validity
// probe of its total supply through the ledger. Registration is permanent;
// there is no removal.
func (k *Keeper) RegisterAsset(ctx context.Context, asset string) error {
	if asset == "" {
		return types.ErrInvalidAsset.Wrap("asset identifier cannot be empty")
	}

	return k.withGuard("register:"+asset, func() error {
		if k.store.hasAsset(asset) {
			return types.ErrDuplicateAsset.Wrapf("asset %s", asset)
		}

		// Validity probe: an asset with no issued supply cannot back a pool.
		supply, err := k.ledger.TotalSupply(ctx, asset)
		if err != nil {
			return types.ErrInvalidAsset.Wrapf("supply query for %s failed: %v", asset, err)
		}
		if supply.IsNil() || !supply.IsPositive() {
			return types.ErrInvalidAsset.Wrapf("asset %s has no issued supply", asset)
		}

		k.store.putAsset(asset)
		k.sink.AssetRegistered(asset)
		k.metrics.AssetsRegistered.Inc()
		k.logger.Info("asset registered", "asset", asset, "supply", supply.String())
		return nil
	})
}

// IsAssetRegistered reports whether the asset has been registered.
func (k *Keeper) IsAssetRegistered(ctx context.Context, asset string) bool {
	return k.store.hasAsset(asset)
}

// RegisteredAssets returns the registered asset set in deterministic order.
func (k *Keeper) RegisteredAssets(ctx context.Context) []string {
	return k.store.assetList()
}

package keeper

import (
	"context"
	"fmt"

	"github.com/paw-chain/amm/types"
)

// InitGenesis replaces the engine's state from a genesis state. Any previous
// records are dropped.
func (k *Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid genesis state: %w", err)
	}

	if err := k.SetParams(genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	k.store.reset()
	for _, asset := range genState.Assets {
		k.store.putAsset(asset)
	}
	for _, pair := range genState.Pairs {
		k.store.putPair(pair)
	}

	k.metrics.AssetsRegistered.Set(float64(len(genState.Assets)))
	k.metrics.PairsTotal.Set(float64(len(genState.Pairs)))
	k.logger.Info("genesis state loaded",
		"assets", len(genState.Assets),
		"pairs", len(genState.Pairs),
	)
	return nil
}

// ExportGenesis dumps the engine's state for checkpointing by the
// surrounding system.
func (k *Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	return &types.GenesisState{
		Params: k.GetParams(),
		Assets: k.store.assetList(),
		Pairs:  k.store.pairList(),
	}
}

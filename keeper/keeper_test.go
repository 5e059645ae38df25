package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/keeper"
	"github.com/paw-chain/amm/testutil"
	"github.com/paw-chain/amm/types"
)

const (
	assetA = "uatom"
	assetB = "upaw"
	trader = "trader"
)

// recordingSink captures emitted events for assertions.
type recordingSink struct {
	assets []string
	pairs  [][2]string
	swaps  []swapEvent
}

type swapEvent struct {
	caller                                             string
	amountLowIn, amountHighIn, amountLowOut, amountHighOut math.Int
}

func (s *recordingSink) AssetRegistered(asset string) {
	s.assets = append(s.assets, asset)
}

func (s *recordingSink) PairCreated(assetLow, assetHigh string) {
	s.pairs = append(s.pairs, [2]string{assetLow, assetHigh})
}

func (s *recordingSink) SwapExecuted(caller string, amountLowIn, amountHighIn, amountLowOut, amountHighOut math.Int) {
	s.swaps = append(s.swaps, swapEvent{caller, amountLowIn, amountHighIn, amountLowOut, amountHighOut})
}

func newTestKeeper(t *testing.T) (*keeper.Keeper, *testutil.Ledger, *recordingSink) {
	t.Helper()
	ledger := testutil.NewLedger()
	sink := &recordingSink{}
	k, err := keeper.NewKeeper(ledger, sink, log.NewNopLogger(), types.DefaultParams())
	require.NoError(t, err)
	return k, ledger, sink
}

// registerAssets mints supply for the given assets and registers them.
func registerAssets(t *testing.T, k *keeper.Keeper, ledger *testutil.Ledger, assets ...string) {
	t.Helper()
	ctx := context.Background()
	for _, asset := range assets {
		ledger.SetSupply(asset, math.NewInt(1_000_000_000))
		require.NoError(t, k.RegisterAsset(ctx, asset))
	}
}

// setupPair registers both assets, funds and approves the trader, and creates
// a 1000/2000 pair, the worked-example fixture.
func setupPair(t *testing.T, k *keeper.Keeper, ledger *testutil.Ledger) {
	t.Helper()
	ctx := context.Background()
	registerAssets(t, k, ledger, assetA, assetB)

	ledger.Mint(trader, assetA, math.NewInt(1_000_000))
	ledger.Mint(trader, assetB, math.NewInt(1_000_000))
	ledger.Approve(trader, assetA, math.NewInt(1_000_000))
	ledger.Approve(trader, assetB, math.NewInt(1_000_000))

	_, err := k.CreatePair(ctx, trader, assetA, assetB, math.NewInt(1000), math.NewInt(2000))
	require.NoError(t, err)
}

package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/amm/types"
)

func TestCreatePair_Valid(t *testing.T) {
	k, ledger, sink := newTestKeeper(t)
	ctx := context.Background()
	registerAssets(t, k, ledger, assetA, assetB)

	ledger.Mint(trader, assetA, math.NewInt(5000))
	ledger.Mint(trader, assetB, math.NewInt(5000))
	ledger.Approve(trader, assetA, math.NewInt(5000))
	ledger.Approve(trader, assetB, math.NewInt(5000))

	pair, err := k.CreatePair(ctx, trader, assetA, assetB, math.NewInt(1000), math.NewInt(2000))
	require.NoError(t, err)
	require.Equal(t, assetA, pair.AssetLow)
	require.Equal(t, assetB, pair.AssetHigh)
	require.Equal(t, math.NewInt(1000), pair.ReserveLow)
	require.Equal(t, math.NewInt(2000), pair.ReserveHigh)

	// Deposits moved into the pool account.
	require.Equal(t, math.NewInt(4000), ledger.BalanceOf(trader, assetA))
	require.Equal(t, math.NewInt(3000), ledger.BalanceOf(trader, assetB))
	require.Equal(t, math.NewInt(1000), ledger.BalanceOf(types.PoolAccount, assetA))
	require.Equal(t, math.NewInt(2000), ledger.BalanceOf(types.PoolAccount, assetB))

	require.Equal(t, [][2]string{{assetA, assetB}}, sink.pairs)
	require.Equal(t, 1, k.PairCount(ctx))
}

func TestCreatePair_ReversedArgumentsCanonicalize(t *testing.T) {
	k, ledger, _ := newTestKeeper(t)
	ctx := context.Background()
	registerAssets(t, k, ledger, assetA, assetB)

	ledger.Mint(trader, assetA, math.NewInt(5000))
	ledger.Mint(trader, assetB, math.NewInt(5000))
	ledger.Approve(trader, assetA, math.NewInt(5000))
	ledger.Approve(trader, assetB, math.NewInt(5000))

	// Supply the pair high-asset first; amounts follow their assets.
	pair, err := k.CreatePair(ctx, trader, assetB, assetA, math.NewInt(2000), math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, assetA, pair.AssetLow)
	require.Equal(t, math.NewInt(1000), pair.ReserveLow)
	require.Equal(t, math.NewInt(2000), pair.ReserveHigh)
}

func TestCreatePair_IdenticalAssets(t *testing.T) {
	k, ledger, _ := newTestKeeper(t)
	registerAssets(t, k, ledger, assetA)

	_, err := k.CreatePair(context.Background(), trader, assetA, assetA, math.NewInt(1000), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrIdenticalAssets)
}

func TestCreatePair_UnregisteredAsset(t *testing.T) {
	k, ledger, _ := newTestKeeper(t)
	registerAssets(t, k, ledger, assetA)

	_, err := k.CreatePair(context.Background(), trader, assetA, assetB, math.NewInt(1000), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrAssetNotRegistered)
}

func TestCreatePair_ZeroAmount(t *testing.T) {
	k, ledger, _ := newTestKeeper(t)
	registerAssets(t, k, ledger, assetA, assetB)

	_, err := k.CreatePair(context.Background(), trader, assetA, assetB, math.ZeroInt(), math.NewInt(1000))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)

	_, err = k.CreatePair(context.Background(), trader, assetA, assetB, math.NewInt(1000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestCreatePair_AlreadyExists(t *testing.T) {
	k, ledger, _ := newTestKeeper(t)
	ctx := context.Background()
	setupPair(t, k, ledger)

	// Same pair under both argument orders resolves to one record.
	_, err := k.CreatePair(ctx, trader, assetA, assetB, math.NewInt(10), math.NewInt(10))
	require.ErrorIs(t, err, types.ErrPairAlreadyExists)

	_, err = k.CreatePair(ctx, trader, assetB, assetA, math.NewInt(10), math.NewInt(10))
	require.ErrorIs(t, err, types.ErrPairAlreadyExists)
}

func TestCreatePair_AllowanceFailurePropagates(t *testing.T) {
	k, ledger, _ := newTestKeeper(t)
	ctx := context.Background()
	registerAssets(t, k, ledger, assetA, assetB)

	ledger.Mint(trader, assetA, math.NewInt(5000))
	ledger.Mint(trader, assetB, math.NewInt(5000))
	// No approvals granted.

	_, err := k.CreatePair(ctx, trader, assetA, assetB, math.NewInt(1000), math.NewInt(2000))
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)

	// No state change, no record.
	require.Equal(t, 0, k.PairCount(ctx))
	require.Equal(t, math.NewInt(5000), ledger.BalanceOf(trader, assetA))
}

func TestCreatePair_SecondDepositFailureRollsBackFirst(t *testing.T) {
	k, ledger, _ := newTestKeeper(t)
	ctx := context.Background()
	registerAssets(t, k, ledger, assetA, assetB)

	ledger.Mint(trader, assetA, math.NewInt(5000))
	ledger.Mint(trader, assetB, math.NewInt(5000))
	ledger.Approve(trader, assetA, math.NewInt(5000))
	// Only the second deposit lacks an approval, so the first pull succeeds
	// and must be compensated.

	_, err := k.CreatePair(ctx, trader, assetA, assetB, math.NewInt(1000), math.NewInt(2000))
	require.ErrorIs(t, err, types.ErrInsufficientAllowance)

	require.Equal(t, 0, k.PairCount(ctx))
	require.Equal(t, math.NewInt(5000), ledger.BalanceOf(trader, assetA))
	require.Equal(t, math.NewInt(5000), ledger.BalanceOf(trader, assetB))
	require.True(t, ledger.BalanceOf(types.PoolAccount, assetA).IsZero())
}

func TestGetPair_OrderInsensitive(t *testing.T) {
	k, ledger, _ := newTestKeeper(t)
	ctx := context.Background()
	setupPair(t, k, ledger)

	forward, err := k.GetPair(ctx, assetA, assetB)
	require.NoError(t, err)
	reversed, err := k.GetPair(ctx, assetB, assetA)
	require.NoError(t, err)
	require.Equal(t, forward, reversed)
}

func TestGetPair_NotFound(t *testing.T) {
	k, _, _ := newTestKeeper(t)

	_, err := k.GetPair(context.Background(), assetA, assetB)
	require.ErrorIs(t, err, types.ErrPairNotFound)
}

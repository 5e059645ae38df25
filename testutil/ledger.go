// Package testutil provides an in-memory TokenLedger for tests.
package testutil

import (
	"context"
	"sync"

	"cosmossdk.io/math"

	"github.com/paw-chain/amm/types"
)

// Ledger is an in-memory TokenLedger with per-account balances, engine
// allowances and total supplies. The hooks run before a transfer is applied
// and can abort it or re-enter the engine, which is how reentrancy and
// rollback scenarios are scripted.
type Ledger struct {
	mu         sync.Mutex
	supplies   map[string]math.Int
	balances   map[string]map[string]math.Int // account -> asset -> amount
	allowances map[string]map[string]math.Int // owner -> asset -> amount approved to the engine

	// TotalSupplyHook, when set, replaces the supply lookup entirely.
	TotalSupplyHook func(ctx context.Context, asset string) (math.Int, error)
	// TransferFromHook runs before an inbound (caller -> pool) transfer is
	// applied; returning an error aborts the transfer.
	TransferFromHook func(ctx context.Context, asset, from, to string, amount math.Int) error
	// TransferHook runs before an outbound (pool -> caller) transfer is
	// applied; returning an error aborts the transfer.
	TransferHook func(ctx context.Context, asset, to string, amount math.Int) error
}

var _ types.TokenLedger = (*Ledger)(nil)

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		supplies:   make(map[string]math.Int),
		balances:   make(map[string]map[string]math.Int),
		allowances: make(map[string]map[string]math.Int),
	}
}

// SetSupply sets the reported total supply of an asset without minting.
func (l *Ledger) SetSupply(asset string, supply math.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.supplies[asset] = supply
}

// Mint credits an account and grows the asset's total supply.
func (l *Ledger) Mint(account, asset string, amount math.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credit(account, asset, amount)
	supply, ok := l.supplies[asset]
	if !ok {
		supply = math.ZeroInt()
	}
	l.supplies[asset] = supply.Add(amount)
}

// Approve grants the engine an allowance over the owner's asset.
func (l *Ledger) Approve(owner, asset string, amount math.Int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.allowances[owner] == nil {
		l.allowances[owner] = make(map[string]math.Int)
	}
	l.allowances[owner][asset] = amount
}

// BalanceOf returns the account's balance of an asset.
func (l *Ledger) BalanceOf(account, asset string) math.Int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balanceOf(account, asset)
}

// TotalSupply implements types.TokenLedger.
func (l *Ledger) TotalSupply(ctx context.Context, asset string) (math.Int, error) {
	if l.TotalSupplyHook != nil {
		return l.TotalSupplyHook(ctx, asset)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	supply, ok := l.supplies[asset]
	if !ok {
		return math.ZeroInt(), nil
	}
	return supply, nil
}

// TransferFrom implements types.TokenLedger.
func (l *Ledger) TransferFrom(ctx context.Context, asset, from, to string, amount math.Int) error {
	if l.TransferFromHook != nil {
		if err := l.TransferFromHook(ctx, asset, from, to, amount); err != nil {
			return err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	allowance := math.ZeroInt()
	if l.allowances[from] != nil {
		if a, ok := l.allowances[from][asset]; ok {
			allowance = a
		}
	}
	if allowance.LT(amount) {
		return types.ErrInsufficientAllowance.Wrapf("allowance %s < %s %s", allowance, amount, asset)
	}
	if l.balanceOf(from, asset).LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("balance %s < %s %s", l.balanceOf(from, asset), amount, asset)
	}

	l.allowances[from][asset] = allowance.Sub(amount)
	l.debit(from, asset, amount)
	l.credit(to, asset, amount)
	return nil
}

// Transfer implements types.TokenLedger; moves funds out of the pool account.
func (l *Ledger) Transfer(ctx context.Context, asset, to string, amount math.Int) error {
	if l.TransferHook != nil {
		if err := l.TransferHook(ctx, asset, to, amount); err != nil {
			return err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balanceOf(types.PoolAccount, asset).LT(amount) {
		return types.ErrInsufficientBalance.Wrapf(
			"pool balance %s < %s %s", l.balanceOf(types.PoolAccount, asset), amount, asset)
	}
	l.debit(types.PoolAccount, asset, amount)
	l.credit(to, asset, amount)
	return nil
}

func (l *Ledger) balanceOf(account, asset string) math.Int {
	if l.balances[account] == nil {
		return math.ZeroInt()
	}
	balance, ok := l.balances[account][asset]
	if !ok {
		return math.ZeroInt()
	}
	return balance
}

func (l *Ledger) credit(account, asset string, amount math.Int) {
	if l.balances[account] == nil {
		l.balances[account] = make(map[string]math.Int)
	}
	l.balances[account][asset] = l.balanceOf(account, asset).Add(amount)
}

func (l *Ledger) debit(account, asset string, amount math.Int) {
	l.balances[account][asset] = l.balanceOf(account, asset).Sub(amount)
}

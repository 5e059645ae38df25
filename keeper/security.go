package keeper

import (
	"sync"

	"cosmossdk.io/math"

	"github.com/paw-chain/amm/types"
)

// ReentrancyGuard provides fail-fast named locks. A ledger transfer may call
// back into the engine before the original operation has committed; a
// reentrant attempt on the same key must fail immediately rather than block
// or proceed.
type ReentrancyGuard struct {
	mu    sync.Mutex
	locks map[string]struct{}
}

// NewReentrancyGuard creates a new guard instance.
func NewReentrancyGuard() *ReentrancyGuard {
	return &ReentrancyGuard{locks: make(map[string]struct{})}
}

// Lock acquires a named lock or returns ErrReentrancy if already held.
func (g *ReentrancyGuard) Lock(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.locks[key]; exists {
		return types.ErrReentrancy.Wrapf("reentrancy detected for %s", key)
	}

	g.locks[key] = struct{}{}
	return nil
}

// Unlock releases a named lock.
func (g *ReentrancyGuard) Unlock(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.locks, key)
}

// withGuard runs fn under the named lock, releasing it on every exit path
// including panics.
func (k *Keeper) withGuard(key string, fn func() error) error {
	if err := k.guard.Lock(key); err != nil {
		return err
	}
	defer k.guard.Unlock(key)
	return fn()
}

// ValidatePairInvariant checks the constant product invariant k = x * y
// against the value observed before the operation. k may increase through fee
// retention but must never decrease.
func ValidatePairInvariant(pair types.Pair, oldK math.Int) error {
	newK := pair.InvariantProduct()
	if newK.LT(oldK) {
		return types.ErrInvariantViolation.Wrapf(
			"constant product invariant violated: old_k=%s, new_k=%s",
			oldK.String(), newK.String(),
		)
	}
	return nil
}

package keeper

import (
	"cosmossdk.io/log"

	"github.com/paw-chain/amm/types"
)

// Keeper owns the AMM state and performs every state transition: asset
// registration, pair creation and swaps. External value movement goes through
// the TokenLedger and notifications through the EventSink; the keeper itself
// is the single source of truth for registered assets and pool reserves.
type Keeper struct {
	store   *store
	ledger  types.TokenLedger
	sink    types.EventSink
	logger  log.Logger
	guard   *ReentrancyGuard
	metrics *Metrics
	params  types.Params
}

// NewKeeper creates a new AMM Keeper instance.
func NewKeeper(ledger types.TokenLedger, sink types.EventSink, logger log.Logger, params types.Params) (*Keeper, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		sink = types.NoopEventSink{}
	}
	return &Keeper{
		store:   newStore(),
		ledger:  ledger,
		sink:    sink,
		logger:  logger.With("module", types.ModuleName),
		guard:   NewReentrancyGuard(),
		metrics: GetMetrics(),
		params:  params,
	}, nil
}

// GetParams returns the current engine parameters.
func (k *Keeper) GetParams() types.Params {
	return k.params
}

// SetParams replaces the engine parameters after validation.
func (k *Keeper) SetParams(params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	k.params = params
	return nil
}

// Logger returns the keeper's logger.
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

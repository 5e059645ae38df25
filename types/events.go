package types

import (
	"cosmossdk.io/log"
	"cosmossdk.io/math"
)

// Event types for the AMM module
const (
	EventTypeAssetRegistered = "asset_registered"
	EventTypePairCreated     = "pair_created"
	EventTypeSwap            = "swap"

	// Event attribute keys
	AttributeKeyAsset         = "asset"
	AttributeKeyAssetLow      = "asset_low"
	AttributeKeyAssetHigh     = "asset_high"
	AttributeKeyCaller        = "caller"
	AttributeKeyAmountLowIn   = "amount_low_in"
	AttributeKeyAmountHighIn  = "amount_high_in"
	AttributeKeyAmountLowOut  = "amount_low_out"
	AttributeKeyAmountHighOut = "amount_high_out"
)

// EventSink receives engine notifications. Calls are fire-and-forget: the
// engine never inspects a result, and a sink must not call back into the
// engine.
type EventSink interface {
	AssetRegistered(asset string)
	PairCreated(assetLow, assetHigh string)
	SwapExecuted(caller string, amountLowIn, amountHighIn, amountLowOut, amountHighOut math.Int)
}

// NoopEventSink discards all events.
type NoopEventSink struct{}

func (NoopEventSink) AssetRegistered(string)                                     {}
func (NoopEventSink) PairCreated(string, string)                                 {}
func (NoopEventSink) SwapExecuted(string, math.Int, math.Int, math.Int, math.Int) {}

// LogEventSink writes events to a structured logger.
type LogEventSink struct {
	logger log.Logger
}

// NewLogEventSink creates a sink that logs every event at info level.
func NewLogEventSink(logger log.Logger) LogEventSink {
	return LogEventSink{logger: logger.With("module", ModuleName)}
}

func (s LogEventSink) AssetRegistered(asset string) {
	s.logger.Info(EventTypeAssetRegistered, AttributeKeyAsset, asset)
}

func (s LogEventSink) PairCreated(assetLow, assetHigh string) {
	s.logger.Info(EventTypePairCreated,
		AttributeKeyAssetLow, assetLow,
		AttributeKeyAssetHigh, assetHigh,
	)
}

func (s LogEventSink) SwapExecuted(caller string, amountLowIn, amountHighIn, amountLowOut, amountHighOut math.Int) {
	s.logger.Info(EventTypeSwap,
		AttributeKeyCaller, caller,
		AttributeKeyAmountLowIn, amountLowIn.String(),
		AttributeKeyAmountHighIn, amountHighIn.String(),
		AttributeKeyAmountLowOut, amountLowOut.String(),
		AttributeKeyAmountHighOut, amountHighOut.String(),
	)
}

package types

import (
	"fmt"
)

// GenesisState is the abstract persisted state of the engine: the registered
// asset set and the canonical pair records. The surrounding system owns
// checkpointing; the engine only loads and dumps this structure.
type GenesisState struct {
	Params Params   `json:"params"`
	Assets []string `json:"assets"`
	Pairs  []Pair   `json:"pairs"`
}

// DefaultGenesis returns the default genesis state for the AMM module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Assets: []string{},
		Pairs:  []Pair{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	registered := make(map[string]struct{}, len(gs.Assets))
	for _, asset := range gs.Assets {
		if asset == "" {
			return fmt.Errorf("registered asset cannot be empty")
		}
		if _, ok := registered[asset]; ok {
			return fmt.Errorf("duplicate registered asset %s", asset)
		}
		registered[asset] = struct{}{}
	}

	seen := make(map[string]struct{}, len(gs.Pairs))
	for _, pair := range gs.Pairs {
		if err := pair.Validate(); err != nil {
			return fmt.Errorf("pair %s: %w", pair.Key(), err)
		}
		if _, ok := registered[pair.AssetLow]; !ok {
			return fmt.Errorf("pair %s references unregistered asset %s", pair.Key(), pair.AssetLow)
		}
		if _, ok := registered[pair.AssetHigh]; !ok {
			return fmt.Errorf("pair %s references unregistered asset %s", pair.Key(), pair.AssetHigh)
		}
		if _, ok := seen[pair.Key()]; ok {
			return fmt.Errorf("duplicate pair %s", pair.Key())
		}
		seen[pair.Key()] = struct{}{}
	}

	return nil
}

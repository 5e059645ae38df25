package keeper

import (
	"sort"
	"sync"

	"github.com/paw-chain/amm/types"
)

// store holds the registered asset set and the canonical pair records. There
// is exactly one record per unordered asset pair; both call orders resolve to
// it through the canonical key. Persistence is the surrounding system's job
// (genesis export/import); in process the records live in memory.
type store struct {
	mu     sync.RWMutex
	assets map[string]struct{}
	pairs  map[string]types.Pair
}

func newStore() *store {
	return &store{
		assets: make(map[string]struct{}),
		pairs:  make(map[string]types.Pair),
	}
}

func (s *store) hasAsset(asset string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.assets[asset]
	return ok
}

func (s *store) putAsset(asset string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets[asset] = struct{}{}
}

// assetList returns the registered assets in deterministic order.
func (s *store) assetList() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.assets))
	for asset := range s.assets {
		out = append(out, asset)
	}
	sort.Strings(out)
	return out
}

func (s *store) getPair(key string) (types.Pair, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pair, ok := s.pairs[key]
	return pair, ok
}

func (s *store) hasPair(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pairs[key]
	return ok
}

func (s *store) putPair(pair types.Pair) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pairs[pair.Key()] = pair
}

// pairList returns all pair records in deterministic key order.
func (s *store) pairList() []types.Pair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.pairs))
	for key := range s.pairs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]types.Pair, 0, len(keys))
	for _, key := range keys {
		out = append(out, s.pairs[key])
	}
	return out
}

func (s *store) pairCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pairs)
}

// reset drops all records. Used when loading a genesis state.
func (s *store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assets = make(map[string]struct{})
	s.pairs = make(map[string]types.Pair)
}

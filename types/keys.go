package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// PoolAccount is the ledger account that holds pool reserves
	PoolAccount = ModuleName
)

// CanonicalOrder returns the two assets in the fixed low/high ordering that
// forms a pair's permanent identity. Ordering is lexicographic, matching the
// ordering used for pair storage keys.
func CanonicalOrder(assetA, assetB string) (low, high string) {
	if assetA > assetB {
		return assetB, assetA
	}
	return assetA, assetB
}

// PairKey returns the storage key for a pair, insensitive to argument order.
func PairKey(assetA, assetB string) string {
	low, high := CanonicalOrder(assetA, assetB)
	return low + "/" + high
}

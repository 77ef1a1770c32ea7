// Package memory implements the order core's repositories in process memory.
// It backs local development and tests; every conditional update holds the
// owning map's mutex, which gives the same atomicity as the SQL store.
package memory

// Store bundles the in-memory repositories.
type Store struct {
	Counters     *Counters
	Catalog      *Catalog
	Coupons      *Coupons
	Orders       *Orders
	Transactions *Transactions
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		Counters:     NewCounters(),
		Catalog:      NewCatalog(),
		Coupons:      NewCoupons(),
		Orders:       NewOrders(),
		Transactions: NewTransactions(),
	}
}

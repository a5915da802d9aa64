package constants

// Cache keys for the concert catalog. The catalog document is small enough to
// cache whole; every successful purchase invalidates it.
const (
	CacheKeyConcertCatalog = "sonicseats:concerts:catalog"
)

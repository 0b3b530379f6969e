package indexer

type IIndexer interface {
	// RefreshStaleListeningData refreshes listening data for every
	// recently active user whose rows have gone stale.
	RefreshStaleListeningData() error
}

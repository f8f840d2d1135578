package citizen

import "context"

// Source supplies a batch of people for bulk loading.
type Source interface {
	People(ctx context.Context) ([]*Person, error)
}

// Metrics records index activity. A nil Metrics disables recording.
type Metrics interface {
	ObserveInsert(result string)
	ObserveRemove(result string)
	ObserveQuery(query string, results int)
	SetSize(n int)
}

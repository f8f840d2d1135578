package citizen

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Metric result labels.
const (
	ResultOK        = "ok"
	ResultInvalid   = "invalid"
	ResultDuplicate = "duplicate"
	ResultNotFound  = "not_found"
)

// Service handles citizen registry operations over an Index. It serializes
// writers and lets readers share the index.
type Service struct {
	mu      sync.RWMutex
	index   *Index
	metrics Metrics
	logger  *slog.Logger
}

// NewService creates a new citizen service. metrics and logger may be nil.
func NewService(index *Index, metrics Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{index: index, metrics: metrics, logger: logger}
	s.setSize()
	return s
}

// Register adds a citizen.
func (s *Service) Register(p *Person) error {
	if p == nil {
		s.observeInsert(ResultInvalid)
		return ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.index.Insert(p) {
		s.observeInsert(ResultDuplicate)
		return fmt.Errorf("%w: %d", ErrDuplicateID, p.ID)
	}
	s.observeInsert(ResultOK)
	s.setSize()
	s.logger.Debug("citizen registered", "id", p.ID, "last_name", p.LastName)
	return nil
}

// Deregister removes the citizen with the given id.
func (s *Service) Deregister(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.index.Remove(id) {
		s.observeRemove(ResultNotFound)
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.observeRemove(ResultOK)
	s.setSize()
	s.logger.Debug("citizen deregistered", "id", id)
	return nil
}

// Get returns the citizen with the given id.
func (s *Service) Get(id int) (*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.index.FindByID(id)
	s.observeQuery("id", boolCount(ok))
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return p, nil
}

// Rename changes a citizen's last name.
func (s *Service) Rename(id int, lastName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.index.Rename(id, lastName) {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	s.logger.Debug("citizen renamed", "id", id, "last_name", lastName)
	return nil
}

// ByAge returns citizens aged minAge through maxAge inclusive.
func (s *Service) ByAge(minAge, maxAge int) []*Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := s.index.FindByAgeRange(minAge, maxAge)
	s.observeQuery("age_range", len(res))
	return res
}

// ByLastName returns citizens with the given last name, ignoring case.
func (s *Service) ByLastName(lastName string) []*Person {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := s.index.FindByLastName(lastName)
	s.observeQuery("last_name", len(res))
	return res
}

// List returns every citizen in the given order.
func (s *Service) List(order Order) ([]*Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.index.Sorted(order)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, order)
	}
	s.observeQuery("list_"+string(order), len(res))
	return res, nil
}

// Count returns the number of registered citizens.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Len()
}

// Load bulk-loads every person the source yields.
func (s *Service) Load(ctx context.Context, src Source) (LoadResult, error) {
	batch, err := src.People(ctx)
	if err != nil {
		return LoadResult{}, fmt.Errorf("reading source: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := LoadResult{BatchID: uuid.NewString()}
	res.Added, res.Rejected = s.index.Load(batch)
	s.setSize()

	if res.Rejected > 0 {
		s.logger.Warn("rejected citizens during load", "batch", res.BatchID, "rejected", res.Rejected)
	}
	s.logger.Info("citizens loaded", "batch", res.BatchID, "added", res.Added, "total", s.index.Len())
	return res, nil
}

func (s *Service) observeInsert(result string) {
	if s.metrics != nil {
		s.metrics.ObserveInsert(result)
	}
}

func (s *Service) observeRemove(result string) {
	if s.metrics != nil {
		s.metrics.ObserveRemove(result)
	}
}

func (s *Service) observeQuery(query string, results int) {
	if s.metrics != nil {
		s.metrics.ObserveQuery(query, results)
	}
}

func (s *Service) setSize() {
	if s.metrics != nil {
		s.metrics.SetSize(s.index.Len())
	}
}

func boolCount(ok bool) int {
	if ok {
		return 1
	}
	return 0
}

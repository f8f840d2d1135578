package mocks

import (
	"context"
	"time"

	"github.com/rpggio/citizens/internal/domain/citizen"
	"github.com/stretchr/testify/mock"
)

// Clock is a mock for citizen.Clock.
type Clock struct {
	mock.Mock
}

func (m *Clock) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

// Source is a mock for citizen.Source.
type Source struct {
	mock.Mock
}

func (m *Source) People(ctx context.Context) ([]*citizen.Person, error) {
	args := m.Called(ctx)
	if people, ok := args.Get(0).([]*citizen.Person); ok {
		return people, args.Error(1)
	}
	return nil, args.Error(1)
}

// Metrics is a mock for citizen.Metrics.
type Metrics struct {
	mock.Mock
}

func (m *Metrics) ObserveInsert(result string) {
	m.Called(result)
}

func (m *Metrics) ObserveRemove(result string) {
	m.Called(result)
}

func (m *Metrics) ObserveQuery(query string, results int) {
	m.Called(query, results)
}

func (m *Metrics) SetSize(n int) {
	m.Called(n)
}

package repository

import (
	"context"

	"github.com/rpggio/citizens/internal/domain/citizen"
)

// PersonRepository provides durable storage of citizens that can be used to
// bulk-load an index.
type PersonRepository interface {
	citizen.Source
	Create(ctx context.Context, p *citizen.Person) error
	Get(ctx context.Context, id int) (*citizen.Person, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]*citizen.Person, error)
}

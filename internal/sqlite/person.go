package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rpggio/citizens/internal/domain/citizen"
	"github.com/rpggio/citizens/internal/repository"
)

var _ repository.PersonRepository = (*PersonRepository)(nil)

// PersonRepository stores citizens in the people table. It also serves as a
// citizen.Source for bulk loading.
type PersonRepository struct {
	db *DB
}

// NewPersonRepository creates a new PersonRepository
func NewPersonRepository(db *DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Create stores a new person
func (r *PersonRepository) Create(ctx context.Context, p *citizen.Person) error {
	if p == nil {
		return repository.ErrInvalidInput
	}
	query := `
		INSERT INTO people (id, first_name, last_name, birth_date)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.FirstName,
		p.LastName,
		p.BirthDate.Format(time.DateOnly),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrAlreadyExists
		}
		if isCheckViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to create person: %w", err)
	}

	return nil
}

// Get retrieves a person by ID
func (r *PersonRepository) Get(ctx context.Context, id int) (*citizen.Person, error) {
	query := `
		SELECT id, first_name, last_name, birth_date
		FROM people
		WHERE id = ?
	`

	p, err := scanPerson(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	return p, nil
}

// Delete removes a person by ID
func (r *PersonRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List returns every stored person ordered by ID
func (r *PersonRepository) List(ctx context.Context) ([]*citizen.Person, error) {
	query := `
		SELECT id, first_name, last_name, birth_date
		FROM people
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []*citizen.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

// People implements citizen.Source.
func (r *PersonRepository) People(ctx context.Context) ([]*citizen.Person, error) {
	return r.List(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPerson(s scanner) (*citizen.Person, error) {
	var p citizen.Person
	var born string
	if err := s.Scan(&p.ID, &p.FirstName, &p.LastName, &born); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.DateOnly, born)
	if err != nil {
		return nil, fmt.Errorf("invalid birth_date %q: %w", born, err)
	}
	p.BirthDate = t
	return &p, nil
}

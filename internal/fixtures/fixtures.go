// Package fixtures reads batches of citizens from YAML files.
//
// A fixture file lists people under a top-level "people" key:
//
//	people:
//	  - id: 1
//	    first_name: Alex
//	    last_name: Wolfson
//	    birth_date: 1993-06-15
package fixtures

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rpggio/citizens/internal/domain/citizen"
	"github.com/rpggio/citizens/internal/repository"
	"gopkg.in/yaml.v3"
)

type document struct {
	People []personRecord `yaml:"people"`
}

type personRecord struct {
	ID        *int   `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	BirthDate string `yaml:"birth_date"`
}

// File is a citizen.Source backed by a YAML fixture file.
type File struct {
	Path string
}

// People reads and decodes the fixture file.
func (f File) People(ctx context.Context) ([]*citizen.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open fixture file: %w", err)
	}
	defer file.Close()
	return Decode(file)
}

// Decode parses a fixture document.
func Decode(r io.Reader) ([]*citizen.Person, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parse fixture file: %w", err)
	}

	people := make([]*citizen.Person, 0, len(doc.People))
	for i, rec := range doc.People {
		p, err := rec.person()
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", i, err)
		}
		people = append(people, p)
	}
	return people, nil
}

func (r personRecord) person() (*citizen.Person, error) {
	if r.ID == nil {
		return nil, fmt.Errorf("%w: missing id", repository.ErrInvalidInput)
	}
	born, err := time.Parse(time.DateOnly, r.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("%w: birth_date %q", repository.ErrInvalidInput, r.BirthDate)
	}
	return &citizen.Person{
		ID:        *r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: born,
	}, nil
}

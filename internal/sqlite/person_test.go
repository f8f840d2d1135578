package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/citizens/internal/domain/citizen"
	"github.com/rpggio/citizens/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestPersonRepository_CreateAndGet(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPersonRepository(db)
	ctx := context.Background()

	p := citizen.NewPerson(2, "Emma", "Johnson", 1999, time.June, 15)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, p, got)

	_, err = repo.Get(ctx, 3)
	require.Equal(t, repository.ErrNotFound, err)
}

func TestPersonRepository_Create_Errors(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPersonRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, citizen.NewPerson(1, "Alex", "Wolfson", 1993, time.June, 15)))
	require.Equal(t, repository.ErrAlreadyExists, repo.Create(ctx, citizen.NewPerson(1, "Other", "Name", 2000, time.January, 1)))
	require.Equal(t, repository.ErrInvalidInput, repo.Create(ctx, nil))
}

func TestPersonRepository_Delete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPersonRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, citizen.NewPerson(1, "Alex", "Wolfson", 1993, time.June, 15)))
	require.NoError(t, repo.Delete(ctx, 1))
	require.Equal(t, repository.ErrNotFound, repo.Delete(ctx, 1))
}

func TestPersonRepository_ListFeedsIndex(t *testing.T) {
	db := NewTestDB(t)
	repo := NewPersonRepository(db)
	ctx := context.Background()

	for _, p := range []*citizen.Person{
		citizen.NewPerson(5, "Noah", "Davis", 1989, time.June, 15),
		citizen.NewPerson(1, "Alex", "Wolfson", 1993, time.June, 15),
		citizen.NewPerson(4, "Sophia", "Brown", 2002, time.June, 15),
	} {
		require.NoError(t, repo.Create(ctx, p))
	}

	people, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, people, 3)
	require.Equal(t, 1, people[0].ID)
	require.Equal(t, 5, people[2].ID)

	var src citizen.Source = repo
	svc := citizen.NewService(citizen.NewIndex(citizen.FixedClock(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)), nil), nil, nil)
	res, err := svc.Load(ctx, src)
	require.NoError(t, err)
	require.Equal(t, 3, res.Added)

	young := svc.ByAge(20, 31)
	require.Len(t, young, 2)
	require.Equal(t, 4, young[0].ID)
	require.Equal(t, 1, young[1].ID)
}

package citizen_test

import (
	"testing"
	"time"

	"github.com/rpggio/citizens/internal/domain/citizen"
	"github.com/stretchr/testify/require"
)

func TestPerson_Age(t *testing.T) {
	p := citizen.NewPerson(1, "Alex", "Wolfson", 1990, time.March, 10)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "day before birthday", now: time.Date(2020, time.March, 9, 23, 59, 0, 0, time.UTC), want: 29},
		{name: "on birthday", now: time.Date(2020, time.March, 10, 0, 0, 0, 0, time.UTC), want: 30},
		{name: "later in year", now: time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC), want: 30},
		{name: "birth day itself", now: time.Date(1990, time.March, 10, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "before birth", now: time.Date(1989, time.March, 10, 0, 0, 0, 0, time.UTC), want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, p.Age(tt.now))
		})
	}
}

func TestPerson_Age_LeapDay(t *testing.T) {
	p := citizen.NewPerson(1, "Leap", "Year", 2000, time.February, 29)

	require.Equal(t, 0, p.Age(time.Date(2001, time.February, 28, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 1, p.Age(time.Date(2001, time.March, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 4, p.Age(time.Date(2004, time.February, 29, 0, 0, 0, 0, time.UTC)))
}

func TestPerson_Equal(t *testing.T) {
	a := citizen.NewPerson(1, "Alex", "Wolfson", 1990, time.March, 10)
	b := citizen.NewPerson(1, "Other", "Name", 2001, time.May, 2)
	c := citizen.NewPerson(2, "Alex", "Wolfson", 1990, time.March, 10)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
}

func TestPerson_View(t *testing.T) {
	p := citizen.NewPerson(2, "Emma", "Johnson", 1999, time.June, 15)

	v := p.View(time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC))
	require.Equal(t, citizen.PersonView{
		ID:        2,
		FirstName: "Emma",
		LastName:  "Johnson",
		BirthDate: "1999-06-15",
		Age:       25,
	}, v)
}

func TestParseOrder(t *testing.T) {
	o, err := citizen.ParseOrder("age")
	require.NoError(t, err)
	require.Equal(t, citizen.OrderByAge, o)

	_, err = citizen.ParseOrder("height")
	require.ErrorIs(t, err, citizen.ErrUnknownOrder)
}

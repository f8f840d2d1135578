package citizen

import (
	"cmp"
	"fmt"
	"time"
)

// Person is a citizen record. ID and BirthDate identify the record and are
// treated as immutable once it is handed to an Index.
type Person struct {
	ID        int       `json:"id" yaml:"id"`
	FirstName string    `json:"first_name" yaml:"first_name"`
	LastName  string    `json:"last_name" yaml:"last_name"`
	BirthDate time.Time `json:"birth_date" yaml:"birth_date"`
}

// NewPerson creates a person born on the given calendar date.
func NewPerson(id int, firstName, lastName string, year int, month time.Month, day int) *Person {
	return &Person{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}
}

// Age returns the number of whole years between the birth date and now.
func (p *Person) Age(now time.Time) int {
	return newDate(p.BirthDate).yearsUntil(newDate(now))
}

// Equal reports whether both records carry the same id.
func (p *Person) Equal(other *Person) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}

func (p *Person) String() string {
	return fmt.Sprintf("Person{id=%d, firstName=%q, lastName=%q, birthDate=%s}",
		p.ID, p.FirstName, p.LastName, p.BirthDate.Format(time.DateOnly))
}

// PersonView is a person with its age resolved at a point in time.
type PersonView struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Age       int    `json:"age"`
}

// View resolves the person's age against now.
func (p *Person) View(now time.Time) PersonView {
	return PersonView{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		BirthDate: p.BirthDate.Format(time.DateOnly),
		Age:       p.Age(now),
	}
}

// date is a calendar date with no time of day or location.
type date struct {
	year  int
	month time.Month
	day   int
}

func newDate(t time.Time) date {
	y, m, d := t.Date()
	return date{year: y, month: m, day: d}
}

// yearsUntil counts completed years from d to later. A birthday that has not
// yet come round in later's year does not count.
func (d date) yearsUntil(later date) int {
	years := later.year - d.year
	if later.month < d.month || (later.month == d.month && later.day < d.day) {
		years--
	}
	return years
}

func (d date) compare(other date) int {
	if c := cmp.Compare(d.year, other.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, other.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, other.day)
}

package citizen

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// entry is the index's handle on one record. The same entry is shared by all
// three views. Keys are captured at insertion so that later edits to the
// Person cannot reorder a view behind the index's back.
type entry struct {
	id      int
	born    date
	lastKey string
	person  *Person
}

func newEntry(p *Person) *entry {
	return &entry{
		id:      p.ID,
		born:    newDate(p.BirthDate),
		lastKey: foldName(p.LastName),
		person:  p,
	}
}

// foldName returns the case-insensitive comparison key for a last name.
func foldName(name string) string {
	return cases.Fold().String(name)
}

func compareByID(a, b *entry) int {
	return cmp.Compare(a.id, b.id)
}

func compareByLastName(a, b *entry) int {
	if c := strings.Compare(a.lastKey, b.lastKey); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

// compareByBirth orders youngest first. Age is non-decreasing along this order
// on any date, so the view never has to be re-sorted as time passes.
func compareByBirth(a, b *entry) int {
	if c := b.born.compare(a.born); c != 0 {
		return c
	}
	return cmp.Compare(a.id, b.id)
}

// view is one sorted ordering of the index's entries.
type view struct {
	name    string
	compare func(a, b *entry) int
	entries []*entry
}

func newView(name string, compare func(a, b *entry) int) view {
	return view{name: name, compare: compare}
}

func (v *view) search(e *entry) (int, bool) {
	return slices.BinarySearchFunc(v.entries, e, v.compare)
}

// locate returns the position of an entry known to be indexed. A miss means
// the views have diverged, which is unrecoverable.
func (v *view) locate(e *entry) int {
	i, found := v.search(e)
	if !found || v.entries[i] != e {
		panic(fmt.Sprintf("citizen: %s view out of sync at id %d", v.name, e.id))
	}
	return i
}

func (v *view) insertAt(i int, e *entry) {
	v.entries = slices.Insert(v.entries, i, e)
}

func (v *view) removeAt(i int) {
	v.entries = slices.Delete(v.entries, i, i+1)
}

func (v *view) reset(entries []*entry) {
	v.entries = entries
	slices.SortFunc(v.entries, v.compare)
}

func persons(entries []*entry) []*Person {
	out := make([]*Person, len(entries))
	for i, e := range entries {
		out[i] = e.person
	}
	return out
}

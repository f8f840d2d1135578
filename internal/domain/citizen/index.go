package citizen

import (
	"cmp"
	"slices"
	"sort"
	"time"
)

// Index holds a set of people, unique by id, in three sorted views: by id,
// by case-insensitive last name and by age. Point lookups and range queries
// are binary searches over the relevant view.
//
// Ages are computed from the clock at query time, so the same contents can
// answer age queries differently on different days.
//
// An Index is not safe for concurrent use; see Service for a locked wrapper.
// Every slice it returns is a fresh copy owned by the caller.
type Index struct {
	clock      Clock
	byID       view
	byLastName view
	byAge      view
}

// NewIndex creates an index over people, sorting each view once. Nil entries
// and repeated ids are skipped; the first occurrence of an id wins, as it
// would with sequential Insert calls.
func NewIndex(clock Clock, people []*Person) *Index {
	if clock == nil {
		clock = SystemClock{}
	}
	x := &Index{
		clock:      clock,
		byID:       newView("id", compareByID),
		byLastName: newView("last name", compareByLastName),
		byAge:      newView("age", compareByBirth),
	}
	x.bulk(people)
	return x
}

// Insert adds p to every view. It reports false, leaving the index
// unchanged, if p is nil or its id is already present.
func (x *Index) Insert(p *Person) bool {
	if p == nil {
		return false
	}
	e := newEntry(p)
	i, found := x.byID.search(e)
	if found {
		return false
	}
	// All positions are resolved before any view changes.
	j, _ := x.byLastName.search(e)
	k, _ := x.byAge.search(e)

	x.byID.insertAt(i, e)
	x.byLastName.insertAt(j, e)
	x.byAge.insertAt(k, e)
	return true
}

// Remove deletes the record with the given id from every view.
func (x *Index) Remove(id int) bool {
	i, found := x.byID.search(&entry{id: id})
	if !found {
		return false
	}
	e := x.byID.entries[i]
	j := x.byLastName.locate(e)
	k := x.byAge.locate(e)

	x.byID.removeAt(i)
	x.byLastName.removeAt(j)
	x.byAge.removeAt(k)
	return true
}

// FindByID returns the record with the given id.
func (x *Index) FindByID(id int) (*Person, bool) {
	i, found := x.byID.search(&entry{id: id})
	if !found {
		return nil, false
	}
	return x.byID.entries[i].person, true
}

// FindByAgeRange returns everyone whose current age lies in [minAge, maxAge],
// ordered by age then id.
func (x *Index) FindByAgeRange(minAge, maxAge int) []*Person {
	if minAge > maxAge {
		return []*Person{}
	}
	today := newDate(x.clock.Now())
	entries := x.byAge.entries
	age := func(i int) int { return entries[i].born.yearsUntil(today) }

	lo := sort.Search(len(entries), func(i int) bool { return age(i) >= minAge })
	hi := sort.Search(len(entries), func(i int) bool { return age(i) > maxAge })
	if lo >= hi {
		return []*Person{}
	}
	return byAgeAt(entries[lo:hi], today)
}

// FindByLastName returns everyone whose last name equals lastName ignoring
// case, ordered by id. Matching uses the last name the record had when it was
// inserted or last renamed through the index.
func (x *Index) FindByLastName(lastName string) []*Person {
	key := foldName(lastName)
	entries := x.byLastName.entries

	lo := sort.Search(len(entries), func(i int) bool { return entries[i].lastKey >= key })
	hi := sort.Search(len(entries), func(i int) bool { return entries[i].lastKey > key })
	return persons(entries[lo:hi])
}

// Rename changes a record's last name and moves it within the last name view.
func (x *Index) Rename(id int, lastName string) bool {
	i, found := x.byID.search(&entry{id: id})
	if !found {
		return false
	}
	e := x.byID.entries[i]
	x.byLastName.removeAt(x.byLastName.locate(e))

	e.person.LastName = lastName
	e.lastKey = foldName(lastName)
	j, _ := x.byLastName.search(e)
	x.byLastName.insertAt(j, e)
	return true
}

// SortedByID lists every record by ascending id.
func (x *Index) SortedByID() []*Person {
	return persons(x.byID.entries)
}

// SortedByLastName lists every record by last name, ignoring case, then id.
func (x *Index) SortedByLastName() []*Person {
	return persons(x.byLastName.entries)
}

// SortedByAge lists every record by current age, then id.
func (x *Index) SortedByAge() []*Person {
	return byAgeAt(x.byAge.entries, newDate(x.clock.Now()))
}

// Sorted lists every record in the given order.
func (x *Index) Sorted(order Order) ([]*Person, bool) {
	switch order {
	case OrderByID:
		return x.SortedByID(), true
	case OrderByAge:
		return x.SortedByAge(), true
	case OrderByLastName:
		return x.SortedByLastName(), true
	}
	return nil, false
}

// Load inserts a batch of people and reports how many were added and how
// many were rejected as nil or duplicate. An empty index is built with a
// single sort per view.
func (x *Index) Load(people []*Person) (added, rejected int) {
	if x.Len() == 0 {
		added = x.bulk(people)
		return added, len(people) - added
	}
	for _, p := range people {
		if x.Insert(p) {
			added++
		} else {
			rejected++
		}
	}
	return added, rejected
}

// Len returns the number of records.
func (x *Index) Len() int {
	return len(x.byID.entries)
}

// Now returns the index clock's current time.
func (x *Index) Now() time.Time {
	return x.clock.Now()
}

func (x *Index) bulk(people []*Person) int {
	seen := make(map[int]struct{}, len(people))
	entries := make([]*entry, 0, len(people))
	for _, p := range people {
		if p == nil {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		entries = append(entries, newEntry(p))
	}
	x.byID.reset(entries)
	x.byLastName.reset(slices.Clone(entries))
	x.byAge.reset(slices.Clone(entries))
	return len(entries)
}

// byAgeAt orders a youngest-first run of entries by age on today, breaking
// ties by id. Entries of equal age are adjacent but may differ in birth date.
func byAgeAt(entries []*entry, today date) []*Person {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b *entry) int {
		if c := cmp.Compare(a.born.yearsUntil(today), b.born.yearsUntil(today)); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	return persons(sorted)
}

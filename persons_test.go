package search

import (
	"strconv"
	"testing"
)

// buildPersonsEngine wires the six-row persons fixture: name, zipcode
// and pet as hash indices (zipcode and pet multi-valued), city as a
// hash index, age as an ordered range index, and permission as a
// multi-valued prefix tree.
func buildPersonsEngine(t *testing.T) *Engine[int] {
	t.Helper()

	name := NewStringHashIndex[int]()
	zipcode := NewStringHashIndex[int]()
	city := NewStringHashIndex[int]()
	pet := NewStringHashIndex[int]()
	age := NewRangeIndex[int, int](strconv.Atoi)
	permission := NewPrefixIndex[int]()

	name.Insert(0, "Alice")
	zipcode.Insert(0, "12345")
	city.Insert(0, "New York")
	age.Insert(0, 27)
	permission.Insert(0, "finances.read")

	name.Insert(1, "Bob")
	zipcode.Insert(1, "12345")
	city.Insert(1, "New York")
	pet.Insert(1, "Cat")
	pet.Insert(1, "Dog")
	pet.Insert(1, "Bees")
	age.Insert(1, 27)
	permission.Insert(1, "finances.write")

	name.Insert(2, "Eve")
	zipcode.Insert(2, "12345")
	zipcode.Insert(2, "54321")
	city.Insert(2, "Berlin")
	pet.Insert(2, "Cat")
	age.Insert(2, 23)
	permission.Insert(2, "admin.users")

	name.Insert(3, "Victor")
	city.Insert(3, "Prag")
	pet.Insert(3, "Dog")
	age.Insert(3, 25)
	permission.Insert(3, "guest")

	name.Insert(4, "Hans")
	city.Insert(4, "New York")
	zipcode.Insert(4, "12345")
	pet.Insert(4, "Dog")
	age.Insert(4, 34)
	permission.Insert(4, "finances.audit")

	name.Insert(5, "Peter")
	city.Insert(5, "New York")
	zipcode.Insert(5, "12345")
	pet.Insert(5, "Dog")
	pet.Insert(5, "Cat")
	age.Insert(5, 51)
	permission.Insert(5, "finances.read")

	e := NewEngine[int]()
	e.AddIndex("name", name)
	e.AddIndex("zipcode", zipcode)
	e.AddIndex("city", city)
	e.AddIndex("pet", pet)
	e.AddIndex("age", age)
	e.AddIndex("permission", permission)
	return e
}

func TestPersonsExactAge(t *testing.T) {
	e := buildPersonsEngine(t)
	got, err := e.Search(Exact("age", "27"))
	assertPosting(t, got, err, 0, 1)
}

func TestPersonsAgeInRange(t *testing.T) {
	e := buildPersonsEngine(t)
	got, err := e.Search(InRange("age", "24", "34"))
	assertPosting(t, got, err, 0, 1, 3, 4)
}

func TestPersonsAgeOutRange(t *testing.T) {
	e := buildPersonsEngine(t)
	got, err := e.Search(OutRange("age", "25", "34"))
	assertPosting(t, got, err, 2, 5)
}

func TestPersonsExactIndices(t *testing.T) {
	e := buildPersonsEngine(t)

	got, err := e.Search(Exact("name", "Bob"))
	assertPosting(t, got, err, 1)

	got, err = e.Search(Exact("zipcode", "12345"))
	assertPosting(t, got, err, 0, 1, 2, 4, 5)

	got, err = e.Search(Exact("city", "Frankfurt"))
	assertPosting(t, got, err)
}

func TestPersonsExcludeAndAndOr(t *testing.T) {
	e := buildPersonsEngine(t)

	q := Exclude(
		And(Exact("zipcode", "12345"), Exact("pet", "Dog")),
		Exact("name", "Hans"),
	)
	got, err := e.Search(q)
	assertPosting(t, got, err, 1, 5)

	q = Exclude(
		Or(Exact("zipcode", "12345"), Exact("pet", "Dog")),
		Exact("name", "Hans"),
	)
	got, err = e.Search(q)
	assertPosting(t, got, err, 0, 1, 2, 3, 5)
}

func TestPersonsQueryFromString(t *testing.T) {
	e := buildPersonsEngine(t)

	q, freetext, err := e.QueryFromString("+zipcode:12345 +pet:Dog -name:Hans")
	if err != nil {
		t.Fatalf("QueryFromString: %v", err)
	}
	if len(freetext) != 0 {
		t.Errorf("freetext = %v, want none", freetext)
	}
	got, err := e.Search(q)
	assertPosting(t, got, err, 1, 5)

	q, _, err = e.QueryFromString("+age:27")
	if err != nil {
		t.Fatalf("QueryFromString: %v", err)
	}
	got, err = e.Search(q)
	assertPosting(t, got, err, 0, 1)
}

func TestPersonsPrefixPermission(t *testing.T) {
	e := buildPersonsEngine(t)

	got, err := e.Search(Prefix("permission", "finances"))
	assertPosting(t, got, err, 0, 1, 4, 5)

	got, err = e.Search(Prefix("permission", ""))
	assertPosting(t, got, err, 0, 1, 2, 3, 4, 5)
}

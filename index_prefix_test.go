package search

import "testing"

func TestPrefixIndexExactAndPrefix(t *testing.T) {
	idx := NewPrefixIndex[int]()
	idx.Insert(0, "finances.read")
	idx.Insert(1, "finances.write")
	idx.Insert(4, "finances.read")
	idx.Insert(5, "admin")

	got, err := idx.Search(Exact("permission", "finances.read"))
	assertPosting(t, got, err, 0, 4)

	got, err = idx.Search(Prefix("permission", "finances"))
	assertPosting(t, got, err, 0, 1, 4)

	got, err = idx.Search(Prefix("permission", ""))
	assertPosting(t, got, err, 0, 1, 4, 5)
}

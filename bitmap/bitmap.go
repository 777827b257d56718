package bitmap

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/roaring64"
)

// Bitmap is a set of transaction ids backed by a roaring bitmap. It also
// counts ids that were added more than once.
type Bitmap struct {
	ids        *roaring64.Bitmap
	duplicates uint64
}

func New() *Bitmap {
	return &Bitmap{ids: roaring64.New()}
}

// Add inserts x and reports whether it was not already present.
func (b *Bitmap) Add(x uint64) bool {
	if b.ids.CheckedAdd(x) {
		return true
	}
	b.duplicates++
	return false
}

func (b *Bitmap) Contains(x uint64) bool {
	if b == nil {
		return false
	}
	return b.ids.Contains(x)
}

func (b *Bitmap) GetCardinality() uint64 {
	if b == nil {
		return 0
	}
	return b.ids.GetCardinality()
}

func (b *Bitmap) IsEmpty() bool {
	return b == nil || b.ids.IsEmpty()
}

// Minimum panics if empty (to mimic roaring)
func (b *Bitmap) Minimum() uint64 {
	return b.ids.Minimum()
}

// Maximum panics if empty (to mimic roaring)
func (b *Bitmap) Maximum() uint64 {
	return b.ids.Maximum()
}

// Duplicates is the number of Add calls that hit an id already in the set.
func (b *Bitmap) Duplicates() uint64 {
	return b.duplicates
}

// MissingCount returns how many ids are absent from [Minimum, Maximum].
func (b *Bitmap) MissingCount() uint64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Maximum() - b.Minimum() + 1 - b.GetCardinality()
}

// FirstMissing returns up to n of the absent ids, ascending. Only the
// returned ids are materialized, so a huge gap stays cheap.
func (b *Bitmap) FirstMissing(n int) []uint64 {
	missing := []uint64{}
	if b.IsEmpty() || n <= 0 {
		return missing
	}
	it := b.ids.Iterator()
	next := b.Minimum()
	for it.HasNext() && len(missing) < n {
		id := it.Next()
		for ; next < id && len(missing) < n; next++ {
			missing = append(missing, next)
		}
		next = id + 1
	}
	return missing
}

// IsContiguous reports whether the set is one gap-free run and no id was
// added twice. An empty set is contiguous.
func (b *Bitmap) IsContiguous() bool {
	if b.IsEmpty() {
		return true
	}
	return b.duplicates == 0 && b.MissingCount() == 0
}

func (b *Bitmap) ToArray() []uint64 {
	if b == nil {
		return []uint64{}
	}
	return b.ids.ToArray()
}

// String for debugging
func (b *Bitmap) String() string {
	if b.IsEmpty() {
		return "Bitmap{}"
	}
	return fmt.Sprintf("Bitmap{%d ids in [%d, %d], %d duplicates}",
		b.GetCardinality(), b.Minimum(), b.Maximum(), b.duplicates)
}

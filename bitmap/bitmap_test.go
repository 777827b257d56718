package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContiguousRun(t *testing.T) {
	b := New()
	for id := uint64(1000); id < 1010; id++ {
		assert.True(t, b.Add(id))
	}

	assert.True(t, b.IsContiguous())
	assert.Equal(t, uint64(10), b.GetCardinality())
	assert.Equal(t, uint64(1000), b.Minimum())
	assert.Equal(t, uint64(1009), b.Maximum())
	assert.Zero(t, b.MissingCount())
	assert.Empty(t, b.FirstMissing(5))
}

func TestGapIsReported(t *testing.T) {
	b := New()
	for _, id := range []uint64{5, 6, 8, 9, 12} {
		b.Add(id)
	}

	assert.False(t, b.IsContiguous())
	assert.Equal(t, uint64(3), b.MissingCount())
	assert.Equal(t, []uint64{7, 10, 11}, b.FirstMissing(10))
	assert.Equal(t, []uint64{7, 10}, b.FirstMissing(2))
	assert.Empty(t, b.FirstMissing(0))
}

func TestHugeGapIsCounted(t *testing.T) {
	b := New()
	b.Add(1)
	b.Add(1 << 40)

	assert.Equal(t, uint64(1<<40-2), b.MissingCount())
	assert.Equal(t, []uint64{2, 3, 4}, b.FirstMissing(3))
	assert.False(t, b.IsContiguous())
}

func TestDuplicateBreaksContiguity(t *testing.T) {
	b := New()
	b.Add(1)
	b.Add(2)
	assert.False(t, b.Add(2))

	assert.Equal(t, uint64(1), b.Duplicates())
	assert.Equal(t, uint64(2), b.GetCardinality())
	assert.False(t, b.IsContiguous())
}

func TestEmpty(t *testing.T) {
	b := New()
	assert.True(t, b.IsEmpty())
	assert.True(t, b.IsContiguous())
	assert.Zero(t, b.MissingCount())
	assert.Empty(t, b.FirstMissing(3))
	assert.Equal(t, "Bitmap{}", b.String())

	var nilBitmap *Bitmap
	assert.False(t, nilBitmap.Contains(3))
	assert.Equal(t, uint64(0), nilBitmap.GetCardinality())
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadlens/leadlens-cli/internal/model"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

func ratedBusinesses() []model.Business {
	return []model.Business{
		{Name: "Low", Rating: fptr(3.9), ReviewCount: iptr(200)},
		{Name: "Edge", Rating: fptr(4.0), ReviewCount: iptr(10)},
		{Name: "Unrated", ReviewCount: iptr(500)},
		{Name: "High", Rating: fptr(4.5)},
	}
}

func TestFilter_RatingFloor(t *testing.T) {
	t.Parallel()

	got := Filter{MinRating: fptr(4.0)}.Apply(ratedBusinesses())

	require.Len(t, got, 2)
	assert.Equal(t, "Edge", got[0].Name)
	assert.Equal(t, "High", got[1].Name)
}

func TestFilter_ReviewFloorExcludesAbsent(t *testing.T) {
	t.Parallel()

	got := Filter{MinReviews: iptr(10)}.Apply(ratedBusinesses())

	// "High" has no review count: excluded once a floor is set.
	require.Len(t, got, 3)
	for _, b := range got {
		assert.NotEqual(t, "High", b.Name)
	}
}

func TestFilter_BothFloors(t *testing.T) {
	t.Parallel()

	got := Filter{MinRating: fptr(4.0), MinReviews: iptr(100)}.Apply(ratedBusinesses())
	assert.Empty(t, got)
}

func TestFilter_NoFloorsPassesThrough(t *testing.T) {
	t.Parallel()

	in := ratedBusinesses()
	got := Filter{}.Apply(in)
	assert.Equal(t, in, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := ratedBusinesses()
	_ = Filter{MinRating: fptr(4.0)}.Apply(in)
	assert.Len(t, in, 4)
	assert.Equal(t, "Low", in[0].Name)
}

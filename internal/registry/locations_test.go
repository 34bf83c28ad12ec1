package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.NotEmpty(t, r.Countries)
	for _, c := range r.Countries {
		assert.NotEmpty(t, c.Code)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, r.CitiesFor(c.Code), "country %s has no cities", c.Code)
	}
}

func TestCountryName(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "United States", r.CountryName("US"))
	assert.Equal(t, "United Kingdom", r.CountryName("GB"))
	// Unknown codes fall back to the code itself.
	assert.Equal(t, "ZZ", r.CountryName("ZZ"))
}

func TestCitiesForOrderIsStable(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	first := r.CitiesFor("US")
	second := r.CitiesFor("US")
	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, "New York", first[0])
}

func TestCitiesForUnknownCountry(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)
	assert.Empty(t, r.CitiesFor("ZZ"))
}

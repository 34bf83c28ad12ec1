package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadlens/leadlens-cli/internal/model"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"scrape", "deepdive", "bulk", "whatsapp", "rank"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "leadlens", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestScrapeCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"category", "custom-category", "country", "city", "near-me", "lat", "lng", "radius", "pages", "min-rating", "min-reviews", "output"} {
		flag := scrapeCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "scrape should have --%s flag", flagName)
	}
	assert.Equal(t, "1", scrapeCmd.Flags().Lookup("pages").DefValue)
	assert.Equal(t, "US", scrapeCmd.Flags().Lookup("country").DefValue)
}

func TestBulkCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"category", "custom-category", "country", "output"} {
		flag := bulkCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "bulk should have --%s flag", flagName)
	}
}

func TestBulkProgressLine(t *testing.T) {
	line := bulkProgressLine(model.BulkProgress{
		Current:    3,
		Total:      20,
		CityName:   "Houston",
		TotalFound: 1250,
	})

	assert.Equal(t, "[3/20] Houston - 1,250 businesses so far", line)
	for _, r := range line {
		assert.Less(t, r, rune(128), "progress lines stay ASCII")
	}
}

func TestWhatsappCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"numbers", "file"} {
		flag := whatsappCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "whatsapp should have --%s flag", flagName)
	}
}

func TestRankCommand_Flags(t *testing.T) {
	for _, flagName := range []string{"business", "identifier", "keyword", "country", "city", "image-out"} {
		flag := rankCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "rank should have --%s flag", flagName)
	}
}

func TestResultFilter_FromFlags(t *testing.T) {
	scrapeMinRating = 4.0
	scrapeMinReviews = -1
	t.Cleanup(func() {
		scrapeMinRating = -1
		scrapeMinReviews = -1
	})

	f := resultFilter()
	require.NotNil(t, f.MinRating)
	assert.Equal(t, 4.0, *f.MinRating)
	assert.Nil(t, f.MinReviews)
}

func TestEmitResult_CSVFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	res := &model.ScrapeResult{Businesses: []model.Business{{Name: "Acme"}}}
	require.NoError(t, emitResult(res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `"Acme"`))
}

func TestEmitResult_UnsupportedExtension(t *testing.T) {
	res := &model.ScrapeResult{}
	err := emitResult(res, filepath.Join(t.TempDir(), "out.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output extension")
}

package whatsapp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/leadlens/leadlens-cli/internal/config"
	"github.com/leadlens/leadlens-cli/internal/engine"
	"github.com/leadlens/leadlens-cli/internal/model"
	"github.com/leadlens/leadlens-cli/pkg/gemini"
	"github.com/leadlens/leadlens-cli/pkg/gemini/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Gemini: config.GeminiConfig{FlashModel: "gemini-2.5-flash"},
	}
}

func TestCheckAll(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("GenerateContent", mock.Anything, mock.MatchedBy(func(req gemini.GenerateRequest) bool {
		return req.Schema != nil && strings.Contains(req.Prompt, "+14155552671")
	})).Return(&gemini.GenerateResponse{
		Text: `{"status": "Likely Active", "reason": "Listed on the business site."}`,
	}, nil).Once()
	client.On("GenerateContent", mock.Anything, mock.MatchedBy(func(req gemini.GenerateRequest) bool {
		return strings.Contains(req.Prompt, "+442079460958")
	})).Return(&gemini.GenerateResponse{
		Text: `{"status": "Likely Inactive", "reason": "No public evidence."}`,
	}, nil).Once()

	var progress [][2]int
	c := New(client, testConfig(), OnProgress(func(done, total int) {
		progress = append(progress, [2]int{done, total})
	}))

	rows, err := c.CheckAll(context.Background(), []string{
		"+1 (415) 555-2671", // cleaned before the call
		"+442079460958",
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "+14155552671", rows[0].Number)
	assert.Equal(t, model.StatusLikelyActive, rows[0].Result.Status)
	assert.Equal(t, "https://wa.me/14155552671", rows[0].Link)
	assert.NoError(t, rows[0].Err)

	assert.Equal(t, model.StatusLikelyInactive, rows[1].Result.Status)
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, progress)
}

func TestCheckAll_InvalidNumberFailsBatchUpFront(t *testing.T) {
	// No expectations: validation must run before any gateway call.
	client := mocks.NewMockClient(t)
	c := New(client, testConfig())

	_, err := c.CheckAll(context.Background(), []string{"+14155552671", "not-a-number"})
	require.Error(t, err)
	assert.True(t, engine.IsValidation(err))
	assert.Contains(t, err.Error(), "not-a-number")
}

func TestCheckAll_EmptyBatch(t *testing.T) {
	client := mocks.NewMockClient(t)
	c := New(client, testConfig())

	_, err := c.CheckAll(context.Background(), nil)
	assert.True(t, engine.IsValidation(err))
}

func TestCheckAll_PerNumberFailureContinues(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("GenerateContent", mock.Anything, mock.MatchedBy(func(req gemini.GenerateRequest) bool {
		return strings.Contains(req.Prompt, "+14155552671")
	})).Return(nil, assert.AnError).Once()
	client.On("GenerateContent", mock.Anything, mock.MatchedBy(func(req gemini.GenerateRequest) bool {
		return strings.Contains(req.Prompt, "+442079460958")
	})).Return(&gemini.GenerateResponse{
		Text: `{"status": "Unknown", "reason": "Inconclusive."}`,
	}, nil).Once()

	c := New(client, testConfig())
	rows, err := c.CheckAll(context.Background(), []string{"+14155552671", "+442079460958"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Error(t, rows[0].Err)
	assert.Equal(t, model.StatusUnknown, rows[0].Result.Status)
	assert.Equal(t, "Failed to check", rows[0].Result.Reason)

	assert.NoError(t, rows[1].Err)
	assert.Equal(t, "Inconclusive.", rows[1].Result.Reason)
}

func TestCheckAll_ShapeFailureCapturedOnRow(t *testing.T) {
	client := mocks.NewMockClient(t)
	client.On("GenerateContent", mock.Anything, mock.Anything).
		Return(&gemini.GenerateResponse{Text: "not json at all"}, nil).Once()

	c := New(client, testConfig())
	rows, err := c.CheckAll(context.Background(), []string{"+14155552671"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, engine.IsShape(rows[0].Err))
	assert.Equal(t, model.StatusUnknown, rows[0].Result.Status)
}

func TestChatLink(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://wa.me/14155552671", ChatLink("+14155552671"))
}

func TestLoadNumbers(t *testing.T) {
	t.Parallel()

	input := `+1 (415) 555-2671,Alice,extra
+442079460958
garbage line
+04155552671
+5511987654321,Bob`

	got, err := LoadNumbers(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"+14155552671", "+442079460958", "+5511987654321"}, got)
}

func TestLoadNumbers_NothingValid(t *testing.T) {
	t.Parallel()

	_, err := LoadNumbers(strings.NewReader("header\nnope\n"))
	assert.Error(t, err)
}

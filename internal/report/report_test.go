package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaenox/stataddict/internal/models"
)

func sampleSet() *models.CounterSet {
	set := models.NewCounterSet()
	set.Users["user1"] = models.User{ID: "user1", Name: "A"}
	set.Users["user2"] = models.User{ID: "user2", Name: "B"}

	set.Counter(models.CategoryMessages).Inc("user1")
	set.Counter(models.CategoryMessages).Inc("user2")
	set.Counter(models.CategoryCharacters).Add("user1", 2)
	set.Counter(models.CategoryCharacters).Add("user2", 10)
	set.Counter(models.CategoryReplies).Inc("user2")
	set.Counter(models.CategoryEdits).Inc("user2")
	return set
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{}).Render(sampleSet()))

	want := "\nMessages\n\n1. A: 1\n2. B: 1\n" +
		"\nCharacters\n\n1. B: 10\n2. A: 2\n" +
		"\nReplies\n\n1. B: 1\n" +
		"\nEdited messages\n\n1. B: 1\n" +
		"\nGIFs\n\n" +
		"\nStickers\n\n" +
		"\nImages\n\n" +
		"\nVideos\n\n" +
		"\nAudio\n\n" +
		"\nGenerated by FedNazar's StatAddict for Telegram\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderShowIDs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{ShowIDs: true}).Render(sampleSet()))

	assert.Contains(t, buf.String(), "\nMessages\n\n1. A (user1): 1\n2. B (user2): 1\n")
}

func TestRenderTopAndCredit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{Top: 1, Credit: "bye"}).Render(sampleSet()))

	out := buf.String()
	assert.Contains(t, out, "\nCharacters\n\n1. B: 10\n\nReplies")
	assert.NotContains(t, out, "2. ")
	assert.True(t, strings.HasSuffix(out, "\nbye\n"))
}

func TestRenderUnknownUserFallsBackToID(t *testing.T) {
	set := models.NewCounterSet()
	set.Counter(models.CategoryStickers).Inc("user5")

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Options{}).Render(set))

	assert.Contains(t, buf.String(), "\nStickers\n\n1. user5: 1\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRenderWriteError(t *testing.T) {
	assert.Error(t, New(failingWriter{}, Options{}).Render(sampleSet()))
}

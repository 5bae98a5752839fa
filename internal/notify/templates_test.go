package notify

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hrithikcode/TO-DO-LIST/internal/models"
)

func sampleTodos() []models.Todo {
	return []models.Todo{
		{Title: "buy milk", Description: "two liters", CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{Title: "walk dog", CreatedAt: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)},
	}
}

func TestResetTemplates(t *testing.T) {
	t.Parallel()

	data := resetData{
		Username:  "alice",
		Email:     "a@x.com",
		ResetLink: "http://localhost:3000/reset-password?token=abc",
		Requested: "May 1, 2024 at 10:00 AM",
	}

	var html, text bytes.Buffer
	require.NoError(t, resetHTML.Execute(&html, data))
	require.NoError(t, resetText.Execute(&text, data))

	require.Contains(t, html.String(), "alice")
	require.Contains(t, html.String(), data.ResetLink)
	require.Contains(t, text.String(), data.ResetLink)
}

func TestDigestTemplates(t *testing.T) {
	t.Parallel()

	data := digestData{
		Username:    "alice",
		TodoTitle:   "buy milk",
		TodoDesc:    "two liters",
		ActiveTodos: sampleTodos(),
		AppURL:      "http://localhost:3000",
		Sent:        "May 1, 2024 at 10:00 AM",
	}

	var html, text bytes.Buffer
	require.NoError(t, digestHTML.Execute(&html, data))
	require.NoError(t, digestText.Execute(&text, data))

	require.Contains(t, html.String(), "buy milk")
	require.Contains(t, html.String(), "walk dog")
	require.Contains(t, text.String(), "2 total")
}

func TestSummaryTemplatesEmpty(t *testing.T) {
	t.Parallel()

	data := summaryData{
		Username: "alice",
		AppURL:   "http://localhost:3000",
		Sent:     "May 1, 2024 at 10:00 AM",
	}

	var html, text bytes.Buffer
	require.NoError(t, summaryHTML.Execute(&html, data))
	require.NoError(t, summaryText.Execute(&text, data))

	require.Contains(t, html.String(), "all caught up")
	require.Contains(t, text.String(), "all caught up")
}

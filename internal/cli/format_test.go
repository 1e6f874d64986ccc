package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aturkov/jobpilot/internal/models"
)

func TestStatusLabel(t *testing.T) {
	require.Equal(t, "Draft", statusLabel(models.StatusDraft))
	require.Equal(t, "Interview", statusLabel(models.StatusInterview))
}

func TestFormatFileSize(t *testing.T) {
	require.Equal(t, "512 B", formatFileSize(512))
	require.Equal(t, "1.5 KB", formatFileSize(1536))
	require.Equal(t, "2.0 MB", formatFileSize(2<<20))
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "-", formatDate(time.Time{}))
	require.Equal(t, "Aug 31, 2026", formatDate(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)))
}

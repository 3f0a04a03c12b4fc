package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/standardize-cli/internal/model"
)

func TestTruncateID(t *testing.T) {
	assert.Equal(t, "12345678", truncateID("123456789abcdef"))
	assert.Equal(t, "short", truncateID("short"))
}

func TestFormatRunsList(t *testing.T) {
	created := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	runs := []model.Run{
		{
			ID:        "aaaabbbb-cccc-dddd-eeee-ffff00001111",
			Source:    "firms.csv",
			Column:    "Firm Name",
			Status:    model.RunStatusComplete,
			Total:     120,
			Matched:   95,
			CreatedAt: created,
			UpdatedAt: created,
		},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)

	out := buf.String()
	assert.Contains(t, out, "aaaabbbb")
	assert.NotContains(t, out, "aaaabbbb-cccc")
	assert.Contains(t, out, "firms.csv")
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "2026-08-25 10:30")
}

func TestFormatRunsList_LongSourceTruncated(t *testing.T) {
	runs := []model.Run{
		{
			ID:     "run-1",
			Source: "https://example.com/very/long/path/to/a/source/file/firms.csv",
			Status: model.RunStatusRunning,
		},
	}

	var buf bytes.Buffer
	formatRunsList(&buf, runs)
	assert.Contains(t, buf.String(), "...")
}

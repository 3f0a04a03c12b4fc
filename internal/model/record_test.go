package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	records := []Record{
		{Input: "Acme Bank", Standardized: "Acme Corporation"},
		{Input: "Mystery Firm", Standardized: Unknown},
		{Input: "JPMorgan", Standardized: "JPMorgan Chase & Co."},
	}

	s := Summarize(records)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Matched)
	assert.Equal(t, 1, s.Unmatched)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, Summary{}, s)
}

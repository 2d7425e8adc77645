package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotice_MarshalJSON_DateOnly(t *testing.T) {
	notice := &Notice{
		ID:       1,
		Title:    "Exam schedule",
		Content:  "Finals start next week",
		Date:     time.Date(2026, time.May, 2, 18, 0, 0, 0, time.UTC),
		Priority: NoticePriorityHigh,
	}

	data, err := json.Marshal(notice)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2026-05-02", decoded["date"])
	assert.Equal(t, "high", decoded["priority"])
}

package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 90*time.Minute, ParseDuration("1h30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
}

func TestDateOnly(t *testing.T) {
	date := time.Date(2026, time.March, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-09", DateOnly(date))
}

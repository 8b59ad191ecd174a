package handler

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/campus-social/internal/service"
)

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)

	for _, in := range []string{
		"2024-03-01T12:30:00Z",
		"2024-03-01T12:30:00",
		"2024-03-01T20:30:00+08:00",
		"2024-03-01T20:30:00 08:00",
	} {
		got, err := parseTime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
		assert.Equal(t, time.UTC, got.Location())
	}

	got, err := parseTime("2024-03-01T12:30:00.123456")
	require.NoError(t, err)
	assert.Equal(t, 123456000, got.Nanosecond())

	zero, err := parseTime("")
	require.NoError(t, err)
	assert.True(t, zero.IsZero())

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}

func TestActionMessage(t *testing.T) {
	msg, ok := actionMessage(fmt.Errorf("toggle: %w", service.ErrAlreadyLiked))
	require.True(t, ok)
	assert.Equal(t, "User has already liked this post.", msg)

	msg, ok = actionMessage(service.ErrContentTooLong)
	require.True(t, ok)
	assert.Equal(t, "Content is too long.", msg)

	msg, _ = actionMessage(service.ErrInvalidEmailDomain)
	assert.NotEmpty(t, msg)

	_, ok = actionMessage(fmt.Errorf("db down"))
	assert.False(t, ok)
}

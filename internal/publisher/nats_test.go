package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"service", "service"},
		{"bus stop", "bus_stop"},
		{"a.b", "a_b"},
		{"wild*card", "wild_card"},
		{"match>", "match_"},
		{" padded ", "padded"},
		{"", "_"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, subjectToken(tt.in), tt.in)
	}
}

func TestChangeEventShape(t *testing.T) {
	event := ChangeEvent{
		Entity: "stop",
		ID:     "s-1",
		Action: "updated",
		At:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entity":"stop","id":"s-1","action":"updated","at":"2025-06-01T12:00:00Z"}`, string(raw))
}

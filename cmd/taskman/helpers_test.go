package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short passes through", "write report", 40, "write report"},
		{"exact length passes through", "0123456789", 10, "0123456789"},
		{"long is shortened with ellipsis", "01234567890", 10, "0123456..."},
		{"multi-byte runes are not split", "日本語のタイトルがとても長い場合です", 10, "日本語のタイト..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.max))
		})
	}
}

func TestParseTaskID(t *testing.T) {
	id, err := parseTaskID(" 42 ")
	assert.NoError(t, err)
	assert.EqualValues(t, 42, id)

	for _, bad := range []string{"", "abc", "0", "-1", "1.5"} {
		_, err := parseTaskID(bad)
		assert.Error(t, err, bad)
	}
}

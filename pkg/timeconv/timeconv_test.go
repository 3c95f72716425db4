package timeconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"00:01", 1},
		{"08:30", 510},
		{"12:00", 720},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ToMinutes(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToMinutesMalformed(t *testing.T) {
	cases := []string{
		"",
		"24:00",
		"12:60",
		"12",
		"noon",
		"12:3a",
		"12:30:00",
		"-1:30",
	}

	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			_, err := ToMinutes(in)
			assert.Error(t, err)
		})
	}
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueIDs(t *testing.T) {
	cases := []struct {
		name string
		in   []uint
		want []uint
	}{
		{"repeated id collapses", []uint{20, 20}, []uint{20}},
		{"order preserved", []uint{3, 1, 3, 2, 1}, []uint{3, 1, 2}},
		{"already unique", []uint{1, 2, 3}, []uint{1, 2, 3}},
		{"empty", []uint{}, []uint{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, uniqueIDs(tc.in))
		})
	}
}

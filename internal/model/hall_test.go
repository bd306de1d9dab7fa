package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowLabel(t *testing.T) {
	cases := map[int]string{
		0:  "A",
		1:  "B",
		25: "Z",
		26: "AA",
		27: "AB",
		51: "AZ",
		52: "BA",
	}
	for i, want := range cases {
		assert.Equal(t, want, RowLabel(i), "index %d", i)
	}
}

func TestNewSeatLayout(t *testing.T) {
	layout := NewSeatLayout(3, 2)

	assert.Len(t, layout, 3)
	assert.Equal(t, []string{"1", "2"}, layout["A"])
	assert.Equal(t, []string{"1", "2"}, layout["C"])
	_, ok := layout["D"]
	assert.False(t, ok)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankForPoints(t *testing.T) {
	tests := []struct {
		points int
		rank   string
	}{
		{0, "rabbit"},
		{19, "rabbit"},
		{20, "cat"},
		{49, "cat"},
		{50, "fox"},
		{99, "fox"},
		{100, "lama"},
		{199, "lama"},
		{200, "rhino"},
		{399, "rhino"},
		{400, "buffalo"},
		{699, "buffalo"},
		{700, "crocodile"},
		{999, "crocodile"},
		{1000, "lion"},
		{5000, "lion"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.rank, RankForPoints(tt.points), "очки: %d", tt.points)
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"EASY", "Easy"},
		{"Easy", "Easy"},
		{"easy", "Easy"},
		{"MEDIUM", "Medium"},
		{"medium", "Medium"},
		{"HARD", "Hard"},
		{"hArD", "Hard"},
		{" easy ", "Easy"},
		{"All", "All"},
		{"", ""},
		{"unknown", "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDifficulty(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeDifficultyIdempotent(t *testing.T) {
	for _, in := range []string{"EASY", "Medium", "hard", "bogus", ""} {
		once := NormalizeDifficulty(in)
		assert.Equal(t, once, NormalizeDifficulty(once))
	}
}

func TestIsKnownDifficulty(t *testing.T) {
	assert.True(t, IsKnownDifficulty("easy"))
	assert.True(t, IsKnownDifficulty("MEDIUM"))
	assert.True(t, IsKnownDifficulty("Hard"))
	assert.False(t, IsKnownDifficulty("all"))
	assert.False(t, IsKnownDifficulty(""))
	assert.False(t, IsKnownDifficulty("extreme"))
}

func TestDifficultyCountsByDifficulty(t *testing.T) {
	counts := DifficultyCounts{All: 10, Easy: 5, Medium: 3, Hard: 2}
	by := counts.ByDifficulty()
	assert.Equal(t, 5, by[DifficultyEasy])
	assert.Equal(t, 3, by[DifficultyMedium])
	assert.Equal(t, 2, by[DifficultyHard])
	assert.Len(t, by, 3)
}

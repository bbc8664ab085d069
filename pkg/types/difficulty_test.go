package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Difficulty
		wantErr error
	}{
		{name: "beginner", input: "beginner", want: DifficultyBeginner},
		{name: "intermediate", input: "intermediate", want: DifficultyIntermediate},
		{name: "advanced", input: "advanced", want: DifficultyAdvanced},
		{name: "unknown level", input: "expert", wantErr: ErrInvalidDifficulty},
		{name: "empty string", input: "", wantErr: ErrInvalidDifficulty},
		{name: "case sensitive", input: "Beginner", wantErr: ErrInvalidDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDifficultyOrdering(t *testing.T) {
	for i := 1; i < len(DifficultyLevels); i++ {
		assert.Less(t, DifficultyLevels[i-1].Rank(), DifficultyLevels[i].Rank())
	}

	assert.True(t, DifficultyBeginner.AtMost(DifficultyIntermediate))
	assert.True(t, DifficultyIntermediate.AtMost(DifficultyIntermediate))
	assert.False(t, DifficultyAdvanced.AtMost(DifficultyIntermediate))
	assert.True(t, DifficultyAdvanced.AtMost(""), "empty limit admits every level")
	assert.Equal(t, 0, Difficulty("expert").Rank())
}

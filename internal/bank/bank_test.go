package bank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledgetester/trivia/internal/bank"
	"github.com/knowledgetester/trivia/internal/errors"
)

func TestBank_Categories(t *testing.T) {
	b := bank.New()

	want := []string{"science", "history", "geography", "technology", "sports"}
	assert.Equal(t, want, b.Categories())

	// Order is stable across calls.
	assert.Equal(t, b.Categories(), b.Categories())
}

func TestBank_Questions(t *testing.T) {
	b := bank.New()

	for _, category := range b.Categories() {
		qs, err := b.Questions(category)
		require.NoError(t, err, "category %s", category)
		require.NotEmpty(t, qs, "category %s", category)

		for _, q := range qs {
			assert.Len(t, q.Options, 4)
			assert.GreaterOrEqual(t, q.Correct, 0)
			assert.Less(t, q.Correct, len(q.Options))
			assert.NotEmpty(t, q.Question)
			assert.NotEmpty(t, q.Difficulty)
		}
	}
}

func TestBank_Questions_unknownCategory(t *testing.T) {
	b := bank.New()

	_, err := b.Questions("philosophy")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
	assert.Equal(t, "Category not found", errors.Convert(err).Message)
}

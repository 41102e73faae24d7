// Package bank holds the static trivia question bank. The bank is
// seeded at construction and read-only afterwards, so it is safe to
// share across concurrent requests without locking.
package bank

import (
	"github.com/knowledgetester/trivia/internal/domain"
	"github.com/knowledgetester/trivia/internal/errors"
)

type category struct {
	name      string
	questions []domain.Question
}

// Bank maps category names to their questions, preserving the order in
// which categories were seeded.
type Bank struct {
	categories []category
	byName     map[string][]domain.Question
}

// New builds a bank with the default question set.
func New() *Bank {
	return newFromSeed(seed())
}

func newFromSeed(seeded []category) *Bank {
	b := &Bank{
		categories: seeded,
		byName:     make(map[string][]domain.Question, len(seeded)),
	}

	for _, c := range seeded {
		b.byName[c.name] = c.questions
	}

	return b
}

// Categories returns category names in seeding order.
func (b *Bank) Categories() []string {
	names := make([]string, 0, len(b.categories))
	for _, c := range b.categories {
		names = append(names, c.name)
	}

	return names
}

// Questions returns the questions for a category in their seeded order.
// The returned slice is shared; callers must copy before reordering.
func (b *Bank) Questions(name string) ([]domain.Question, error) {
	qs, ok := b.byName[name]
	if !ok {
		return nil, errors.New(errors.CodeNotFound, errors.WithMessagef("Category not found"))
	}

	return qs, nil
}

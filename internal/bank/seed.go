package bank

import "github.com/knowledgetester/trivia/internal/domain"

// seed returns the built-in question set. Question IDs are unique
// within a category only.
func seed() []category {
	return []category{
		{
			name: "science",
			questions: []domain.Question{
				{
					ID:         1,
					Question:   "What is the chemical symbol for gold?",
					Options:    []string{"Go", "Au", "Gd", "Ag"},
					Correct:    1,
					Difficulty: domain.DifficultyEasy,
				},
				{
					ID:         2,
					Question:   "What is the speed of light?",
					Options:    []string{"300,000 km/s", "150,000 km/s", "500,000 km/s", "100,000 km/s"},
					Correct:    0,
					Difficulty: domain.DifficultyMedium,
				},
				{
					ID:         3,
					Question:   "How many bones are in the human body?",
					Options:    []string{"186", "206", "226", "246"},
					Correct:    1,
					Difficulty: domain.DifficultyEasy,
				},
			},
		},
		{
			name: "history",
			questions: []domain.Question{
				{
					ID:         1,
					Question:   "In what year did World War II end?",
					Options:    []string{"1943", "1944", "1945", "1946"},
					Correct:    2,
					Difficulty: domain.DifficultyEasy,
				},
				{
					ID:         2,
					Question:   "Who was the first President of the United States?",
					Options:    []string{"Thomas Jefferson", "George Washington", "John Adams", "James Madison"},
					Correct:    1,
					Difficulty: domain.DifficultyEasy,
				},
				{
					ID:         3,
					Question:   "In what year did the Titanic sink?",
					Options:    []string{"1910", "1911", "1912", "1913"},
					Correct:    2,
					Difficulty: domain.DifficultyEasy,
				},
			},
		},
		{
			name: "geography",
			questions: []domain.Question{
				{
					ID:         1,
					Question:   "What is the capital of France?",
					Options:    []string{"Lyon", "Marseille", "Paris", "Nice"},
					Correct:    2,
					Difficulty: domain.DifficultyEasy,
				},
				{
					ID:         2,
					Question:   "Which is the longest river in the world?",
					Options:    []string{"Amazon", "Nile", "Yangtze", "Mississippi"},
					Correct:    1,
					Difficulty: domain.DifficultyMedium,
				},
				{
					ID:         3,
					Question:   "How many continents are there?",
					Options:    []string{"5", "6", "7", "8"},
					Correct:    2,
					Difficulty: domain.DifficultyEasy,
				},
			},
		},
		{
			name: "technology",
			questions: []domain.Question{
				{
					ID:         1,
					Question:   "What does HTML stand for?",
					Options:    []string{"Hyper Text Markup Language", "High Tech Modern Language", "Home Tool Markup Language", "Hyperlinks and Text Markup Language"},
					Correct:    0,
					Difficulty: domain.DifficultyEasy,
				},
				{
					ID:         2,
					Question:   "In what year was JavaScript created?",
					Options:    []string{"1993", "1995", "1997", "1999"},
					Correct:    1,
					Difficulty: domain.DifficultyMedium,
				},
				{
					ID:         3,
					Question:   "What does API stand for?",
					Options:    []string{"Application Programming Interface", "Advanced Programming Input", "Application Process Integration", "Advanced Protocol Interface"},
					Correct:    0,
					Difficulty: domain.DifficultyMedium,
				},
			},
		},
		{
			name: "sports",
			questions: []domain.Question{
				{
					ID:         1,
					Question:   "How many players are on a basketball team on the court?",
					Options:    []string{"4", "5", "6", "7"},
					Correct:    1,
					Difficulty: domain.DifficultyEasy,
				},
				{
					ID:         2,
					Question:   "In tennis, what is a score of 0 called?",
					Options:    []string{"Zero", "Nil", "Love", "Nothing"},
					Correct:    2,
					Difficulty: domain.DifficultyMedium,
				},
				{
					ID:         3,
					Question:   "How many holes are on a standard golf course?",
					Options:    []string{"9", "18", "27", "36"},
					Correct:    1,
					Difficulty: domain.DifficultyEasy,
				},
			},
		},
	}
}

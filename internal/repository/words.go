package repository

import (
	"context"
	"fmt"

	"github.com/realarnold928/funwords-game/internal/models"
)

type WordsR struct {
	db QueryI
}

func NewWordsRepository(db QueryI) *WordsR {
	return &WordsR{db: db}
}

// RandomWords returns up to n distinct words in random order. Fewer rows
// than requested are returned when the pool is smaller than n.
func (w *WordsR) RandomWords(ctx context.Context, n int) ([]models.Word, error) {
	query := `
		SELECT id, headword, meaning, example, audio_key
		FROM words
		ORDER BY RANDOM()
		LIMIT $1
	`

	words := make([]models.Word, 0, n)
	err := w.db.SelectContext(ctx, &words, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch random words: %w", err)
	}

	return words, nil
}

func (w *WordsR) AddWords(ctx context.Context, words []models.Word) error {
	query := `
		INSERT INTO words (id, headword, meaning, example, audio_key)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			headword = EXCLUDED.headword,
			meaning = EXCLUDED.meaning,
			example = EXCLUDED.example,
			audio_key = EXCLUDED.audio_key
	`

	for _, word := range words {
		_, err := w.db.ExecContext(ctx, query, word.ID, word.Headword, word.Meaning, word.Example, word.AudioKey)
		if err != nil {
			return fmt.Errorf("failed to add word %q: %w", word.Headword, err)
		}
	}

	return nil
}

func (w *WordsR) CountWords(ctx context.Context) (int, error) {
	var total int
	err := w.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM words`)
	if err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}

	return total, nil
}

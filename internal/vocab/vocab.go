package vocab

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/realarnold928/funwords-game/internal/models"
	"go.uber.org/zap"
)

//go:embed words.json
var wordsJSON []byte

type WordRI interface {
	AddWords(ctx context.Context, words []models.Word) error
	CountWords(ctx context.Context) (int, error)
}

// Words decodes the embedded starter vocabulary.
func Words() ([]models.Word, error) {
	var words []models.Word
	if err := json.Unmarshal(wordsJSON, &words); err != nil {
		return nil, fmt.Errorf("failed to decode embedded vocabulary: %w", err)
	}

	return words, nil
}

// Seed loads the starter vocabulary into an empty store. A store that
// already holds words is left untouched.
func Seed(ctx context.Context, repo WordRI, log *zap.Logger) error {
	total, err := repo.CountWords(ctx)
	if err != nil {
		return fmt.Errorf("failed to check vocabulary: %w", err)
	}

	if total > 0 {
		log.Info("vocabulary already present", zap.Int("words", total))
		return nil
	}

	words, err := Words()
	if err != nil {
		return err
	}

	if err := repo.AddWords(ctx, words); err != nil {
		return fmt.Errorf("failed to seed vocabulary: %w", err)
	}

	log.Info("seeded starter vocabulary", zap.Int("words", len(words)))

	return nil
}

package repository

import (
	"context"
	"fmt"
)

type ScoresR struct {
	db QueryI
}

func NewScoresRepository(db QueryI) *ScoresR {
	return &ScoresR{db: db}
}

func (s *ScoresR) HighScore(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(MAX(value), 0) FROM game_meta WHERE key = 'high_score'`

	var score int
	err := s.db.GetContext(ctx, &score, query)
	if err != nil {
		return 0, fmt.Errorf("failed to get high score: %w", err)
	}

	return score, nil
}

func (s *ScoresR) SetHighScore(ctx context.Context, score int) error {
	query := `
		INSERT INTO game_meta (key, value)
		VALUES ('high_score', $1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`

	_, err := s.db.ExecContext(ctx, query, score)
	if err != nil {
		return fmt.Errorf("failed to set high score: %w", err)
	}

	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/realarnold928/funwords-game/internal/models"
)

type ProgressR struct {
	db QueryI
}

func NewProgressRepository(db QueryI) *ProgressR {
	return &ProgressR{db: db}
}

// UpsertProgress increments one of the two tally counters for a word,
// creating the tally row on first answer.
func (p *ProgressR) UpsertProgress(ctx context.Context, wordID int64, wasCorrect bool) error {
	query := `
		INSERT INTO word_progress (word_id, correct, wrong)
		VALUES ($1, CASE WHEN $2 THEN 1 ELSE 0 END, CASE WHEN $2 THEN 0 ELSE 1 END)
		ON CONFLICT (word_id) DO UPDATE SET
			correct = word_progress.correct + CASE WHEN $2 THEN 1 ELSE 0 END,
			wrong = word_progress.wrong + CASE WHEN $2 THEN 0 ELSE 1 END
	`

	_, err := p.db.ExecContext(ctx, query, wordID, wasCorrect)
	if err != nil {
		return fmt.Errorf("failed to upsert progress for word %d: %w", wordID, err)
	}

	return nil
}

func (p *ProgressR) Progress(ctx context.Context, wordID int64) (models.Progress, error) {
	query := `SELECT word_id, correct, wrong FROM word_progress WHERE word_id = $1`

	var progress models.Progress
	err := p.db.GetContext(ctx, &progress, query, wordID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Progress{WordID: wordID}, nil
		}
		return models.Progress{}, fmt.Errorf("failed to get progress for word %d: %w", wordID, err)
	}

	return progress, nil
}

func (p *ProgressR) ProgressStats(ctx context.Context) (models.ProgressStats, error) {
	query := `
		SELECT
			COUNT(*) AS words_seen,
			COALESCE(SUM(correct), 0) AS total_correct,
			COALESCE(SUM(wrong), 0) AS total_wrong
		FROM word_progress
	`

	var stats models.ProgressStats
	err := p.db.GetContext(ctx, &stats, query)
	if err != nil {
		return models.ProgressStats{}, fmt.Errorf("failed to get progress stats: %w", err)
	}

	return stats, nil
}

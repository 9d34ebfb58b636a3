package service

import (
	"context"

	"github.com/realarnold928/funwords-game/internal/models"
	"github.com/realarnold928/funwords-game/internal/storage/cache"
	"go.uber.org/zap"
)

type WordRI interface {
	RandomWords(ctx context.Context, n int) ([]models.Word, error)
}

type ProgressRI interface {
	UpsertProgress(ctx context.Context, wordID int64, wasCorrect bool) error
	ProgressStats(ctx context.Context) (models.ProgressStats, error)
}

type ScoreRI interface {
	HighScore(ctx context.Context) (int, error)
	SetHighScore(ctx context.Context, score int) error
}

type RepositoryI interface {
	WordRI
	ProgressRI
	ScoreRI
}

type Service struct {
	*QuestionS
	*GameS
}

func InitServices(repo RepositoryI, games *cache.Cache, rnd Rand, log *zap.Logger) *Service {
	questions := NewQuestionService(repo, rnd, log)
	return &Service{
		QuestionS: questions,
		GameS:     NewGameService(questions, repo, repo, games, log),
	}
}

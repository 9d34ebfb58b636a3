package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/realarnold928/funwords-game/internal/models"
	"github.com/realarnold928/funwords-game/internal/storage/cache"
	"go.uber.org/zap"
)

const (
	totalQuestions = 10
	startingLives  = 3
	maxLives       = 3
	lifeBonusCombo = 5
	maxHints       = 2
	writeTimeout   = 5 * time.Second
)

type GameS struct {
	questions *QuestionS
	progress  ProgressRI
	scores    ScoreRI
	games     *cache.Cache
	log       *zap.Logger
	writes    sync.WaitGroup
}

func NewGameService(questions *QuestionS, progress ProgressRI, scores ScoreRI, games *cache.Cache, log *zap.Logger) *GameS {
	return &GameS{
		questions: questions,
		progress:  progress,
		scores:    scores,
		games:     games,
		log:       log,
	}
}

// StartGame generates a fresh question set and replaces any previous game
// for the user. On generation failure no partial game is created.
func (g *GameS) StartGame(ctx context.Context, userID int64) (*models.Game, error) {
	questions, err := g.questions.GenerateQuestions(ctx, totalQuestions)
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	game := &models.Game{
		Phase: models.PhaseActive,
		Session: models.Session{
			Lives:          startingLives,
			Questions:      questions,
			TotalQuestions: totalQuestions,
		},
	}

	g.games.SetGame(userID, game)

	return game, nil
}

// SubmitAnswer grades the current question and advances the session.
// The progress tally and high-score writes are detached: the state
// transition never waits on them and their failure never reverses it.
func (g *GameS) SubmitAnswer(userID int64, answer string) models.Outcome {
	game, ok := g.games.GetGame(userID)
	if !ok || game.Phase != models.PhaseActive {
		return models.Outcome{}
	}

	s := &game.Session
	if s.CurrentQuestionIndex >= len(s.Questions) {
		return models.Outcome{}
	}
	question := s.Questions[s.CurrentQuestionIndex]

	correct := CheckAnswer(question, answer)
	g.writeProgress(question.Word.ID, correct)

	outcome := models.Outcome{Graded: true, Correct: correct}

	if correct {
		s.Score++
		s.Combo++
		if s.Combo > s.MaxCombo {
			s.MaxCombo = s.Combo
		}
		s.CorrectAnswers++

		// The life bonus fires on the single upward crossing of the
		// combo threshold, and lives never exceed the cap.
		if s.Combo == lifeBonusCombo && s.Lives < maxLives {
			s.Lives++
			outcome.LifeGained = true
		}
	} else {
		if s.Score > 0 {
			s.Score--
		}
		s.Combo = 0
		s.Lives--
	}

	if s.Lives <= 0 || s.CurrentQuestionIndex >= len(s.Questions)-1 {
		result := finishSession(s)
		game.Phase = models.PhaseOver
		game.Result = &result
		outcome.GameOver = true
		outcome.Result = &result
		g.writeHighScore(result.Score)
	} else {
		s.CurrentQuestionIndex++
	}

	outcome.Session = *s

	return outcome
}

// UseHint spends one unit of the per-game hint budget and returns a hint
// for the current question. Exhausted budget or no active question yields
// ("", false).
func (g *GameS) UseHint(userID int64) (string, bool) {
	game, ok := g.games.GetGame(userID)
	if !ok || game.Phase != models.PhaseActive || game.HintsUsed >= maxHints {
		return "", false
	}

	s := game.Session
	if s.CurrentQuestionIndex >= len(s.Questions) {
		return "", false
	}

	game.HintsUsed++

	return Hint(s.Questions[s.CurrentQuestionIndex]), true
}

func (g *GameS) CurrentQuestion(userID int64) (models.Question, bool) {
	game, ok := g.games.GetGame(userID)
	if !ok || game.Phase != models.PhaseActive {
		return models.Question{}, false
	}

	s := game.Session
	if s.CurrentQuestionIndex >= len(s.Questions) {
		return models.Question{}, false
	}

	return s.Questions[s.CurrentQuestionIndex], true
}

func (g *GameS) Game(userID int64) (*models.Game, bool) {
	return g.games.GetGame(userID)
}

func (g *GameS) HighScore(ctx context.Context) (int, error) {
	return g.scores.HighScore(ctx)
}

func (g *GameS) Stats(ctx context.Context) (models.ProgressStats, int, error) {
	stats, err := g.progress.ProgressStats(ctx)
	if err != nil {
		return models.ProgressStats{}, 0, err
	}

	best, err := g.scores.HighScore(ctx)
	if err != nil {
		return models.ProgressStats{}, 0, err
	}

	return stats, best, nil
}

// Wait blocks until detached persistence writes have settled. Called on
// shutdown so best-effort writes get a chance to land.
func (g *GameS) Wait() {
	g.writes.Wait()
}

func (g *GameS) writeProgress(wordID int64, wasCorrect bool) {
	g.writes.Add(1)
	go func() {
		defer g.writes.Done()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		if err := g.progress.UpsertProgress(ctx, wordID, wasCorrect); err != nil {
			g.log.Warn("failed to write progress tally", zap.Int64("word_id", wordID), zap.Error(err))
		}
	}()
}

func (g *GameS) writeHighScore(score int) {
	g.writes.Add(1)
	go func() {
		defer g.writes.Done()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		best, err := g.scores.HighScore(ctx)
		if err != nil {
			g.log.Warn("failed to read high score", zap.Error(err))
			return
		}

		if score > best {
			if err := g.scores.SetHighScore(ctx, score); err != nil {
				g.log.Warn("failed to write high score", zap.Int("score", score), zap.Error(err))
			}
		}
	}()
}

func finishSession(s *models.Session) models.Result {
	seen := s.CurrentQuestionIndex + 1
	rate := float64(s.CorrectAnswers) / float64(seen) * 100

	return models.Result{
		Score:       s.Score,
		CorrectRate: rate,
		MaxCombo:    s.MaxCombo,
		Medal:       medalFor(rate),
	}
}

func medalFor(rate float64) models.Medal {
	switch {
	case rate >= 90:
		return models.MedalS
	case rate >= 80:
		return models.MedalA
	case rate >= 70:
		return models.MedalB
	default:
		return models.MedalC
	}
}

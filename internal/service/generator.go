package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/realarnold928/funwords-game/internal/models"
	"go.uber.org/zap"
)

const (
	distractorCount = 3
	poolSurplus     = 10
)

var ErrNotEnoughWords = errors.New("not enough words to build a question set")

// Rand is the source of randomness for question synthesis. *math/rand.Rand
// satisfies it; tests inject a scripted sequence instead.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type QuestionS struct {
	words  WordRI
	rnd    Rand
	log    *zap.Logger
	nextID atomic.Int64
}

func NewQuestionService(words WordRI, rnd Rand, log *zap.Logger) *QuestionS {
	return &QuestionS{
		words: words,
		rnd:   rnd,
		log:   log,
	}
}

// GenerateQuestions builds count independent questions from a fresh word
// pool. The pool is fetched with a surplus so wrong options never have to
// reuse target words. Question order follows pool order.
func (q *QuestionS) GenerateQuestions(ctx context.Context, count int) ([]models.Question, error) {
	pool, err := q.words.RandomWords(ctx, count+poolSurplus)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch word pool: %w", err)
	}

	if len(pool) < count {
		q.log.Warn("word pool too small", zap.Int("got", len(pool)), zap.Int("required", count))
		return nil, ErrNotEnoughWords
	}

	questions := make([]models.Question, 0, count)
	for _, word := range pool[:count] {
		var question models.Question

		switch q.randomQuestionType() {
		case models.QuestionSpelling:
			question = q.spellingQuestion(word)
		case models.QuestionAudio:
			question = q.audioQuestion(word, pool)
		default:
			question = q.multipleChoiceQuestion(word, pool)
		}

		questions = append(questions, question)
	}

	return questions, nil
}

// randomQuestionType samples the type distribution with a single uniform
// draw: 50% multiple-choice, 30% spelling, 20% audio.
func (q *QuestionS) randomQuestionType() models.QuestionType {
	types := []models.QuestionType{models.QuestionMultipleChoice, models.QuestionSpelling, models.QuestionAudio}
	weights := []float64{0.5, 0.3, 0.2}

	draw := q.rnd.Float64()
	cumulative := 0.0

	for i, qt := range types {
		cumulative += weights[i]
		if draw <= cumulative {
			return qt
		}
	}

	return models.QuestionMultipleChoice
}

func (q *QuestionS) multipleChoiceQuestion(target models.Word, pool []models.Word) models.Question {
	wrong := q.distractors(target, pool, func(w models.Word) string { return w.Meaning })

	return models.Question{
		ID:            q.nextID.Add(1),
		Word:          target,
		Type:          models.QuestionMultipleChoice,
		Options:       q.shuffledOptions(target.Meaning, wrong),
		CorrectAnswer: target.Meaning,
	}
}

func (q *QuestionS) spellingQuestion(target models.Word) models.Question {
	return models.Question{
		ID:            q.nextID.Add(1),
		Word:          target,
		Type:          models.QuestionSpelling,
		CorrectAnswer: strings.ToLower(target.Headword),
	}
}

func (q *QuestionS) audioQuestion(target models.Word, pool []models.Word) models.Question {
	wrong := q.distractors(target, pool, func(w models.Word) string { return w.Headword })

	return models.Question{
		ID:            q.nextID.Add(1),
		Word:          target,
		Type:          models.QuestionAudio,
		Options:       q.shuffledOptions(target.Headword, wrong),
		CorrectAnswer: target.Headword,
	}
}

// distractors picks up to distractorCount random words from the pool,
// excluding the target. Texts colliding with the correct answer are kept:
// synonym-heavy pools are a content problem, not a generation one.
func (q *QuestionS) distractors(target models.Word, pool []models.Word, pick func(models.Word) string) []string {
	rest := make([]models.Word, 0, len(pool))
	for _, w := range pool {
		if w.ID != target.ID {
			rest = append(rest, w)
		}
	}

	q.rnd.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	n := distractorCount
	if n > len(rest) {
		n = len(rest)
	}

	wrong := make([]string, 0, n)
	for _, w := range rest[:n] {
		wrong = append(wrong, pick(w))
	}

	return wrong
}

func (q *QuestionS) shuffledOptions(correct string, wrong []string) []string {
	options := make([]string, 0, len(wrong)+1)
	options = append(options, correct)
	options = append(options, wrong...)

	q.rnd.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return options
}

// CheckAnswer grades a user answer against the question: case-insensitive,
// surrounding whitespace ignored, no fuzzy matching.
func CheckAnswer(question models.Question, userAnswer string) bool {
	return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(question.CorrectAnswer))
}

// Hint derives a hint from the correct answer. It is a pure function; the
// hint budget lives in the game engine.
func Hint(question models.Question) string {
	answer := []rune(strings.TrimSpace(question.CorrectAnswer))

	switch question.Type {
	case models.QuestionSpelling:
		return fmt.Sprintf("Hint: the word starts with %q", runePrefix(answer, 2))
	case models.QuestionAudio:
		return fmt.Sprintf("Hint: the word starts with %q and has %d letters", runePrefix(answer, 1), len(answer))
	default:
		return fmt.Sprintf("Hint: the meaning begins with %q", runePrefix(answer, 2))
	}
}

func runePrefix(r []rune, n int) string {
	if n > len(r) {
		n = len(r)
	}
	return string(r[:n])
}

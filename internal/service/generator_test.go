package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/realarnold928/funwords-game/internal/models"
	mock_service "github.com/realarnold928/funwords-game/internal/service/mock"
)

// scriptedRand plays back a fixed sequence of uniform draws and leaves
// shuffles as the identity permutation, making generation deterministic.
type scriptedRand struct {
	floats []float64
	pos    int
}

func (r *scriptedRand) Float64() float64 {
	if r.pos >= len(r.floats) {
		return 0
	}
	v := r.floats[r.pos]
	r.pos++
	return v
}

func (r *scriptedRand) Intn(n int) int { return 0 }

func (r *scriptedRand) Shuffle(n int, swap func(i, j int)) {}

func testPool(n int) []models.Word {
	pool := make([]models.Word, 0, n)
	for i := 1; i <= n; i++ {
		pool = append(pool, models.Word{
			ID:       int64(i),
			Headword: fmt.Sprintf("word%d", i),
			Meaning:  fmt.Sprintf("meaning %d", i),
		})
	}
	return pool
}

func newQuestionServiceMock(t *testing.T, ctrl *gomock.Controller, rnd Rand, setupMock func(*mock_service.MockRepositoryI)) *QuestionS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return NewQuestionService(repo, rnd, zap.NewNop())
}

func TestQuestionS_GenerateQuestions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Draws land in the multiple-choice, spelling and audio bands in turn.
	rnd := &scriptedRand{floats: []float64{0.4, 0.6, 0.9}}

	q := newQuestionServiceMock(t, ctrl, rnd, func(mri *mock_service.MockRepositoryI) {
		mri.EXPECT().RandomWords(gomock.Any(), 13).Return(testPool(13), nil)
	})

	questions, err := q.GenerateQuestions(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	mc := questions[0]
	assert.Equal(t, models.QuestionMultipleChoice, mc.Type)
	assert.Equal(t, "meaning 1", mc.CorrectAnswer)
	require.Len(t, mc.Options, 4)
	assert.Contains(t, mc.Options, mc.CorrectAnswer)
	for _, opt := range mc.Options[1:] {
		assert.NotEqual(t, mc.CorrectAnswer, opt)
	}

	sp := questions[1]
	assert.Equal(t, models.QuestionSpelling, sp.Type)
	assert.Nil(t, sp.Options)
	assert.Equal(t, "word2", sp.CorrectAnswer)

	au := questions[2]
	assert.Equal(t, models.QuestionAudio, au.Type)
	assert.Equal(t, "word3", au.CorrectAnswer)
	require.Len(t, au.Options, 4)
	assert.Contains(t, au.Options, "word3")

	// Question order follows pool order.
	assert.Equal(t, int64(1), mc.Word.ID)
	assert.Equal(t, int64(2), sp.Word.ID)
	assert.Equal(t, int64(3), au.Word.ID)

	// IDs are generation-unique.
	assert.NotEqual(t, mc.ID, sp.ID)
	assert.NotEqual(t, sp.ID, au.ID)
}

func TestQuestionS_GenerateQuestions_typeBandBoundaries(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Draws on the exact cumulative boundaries stay in the lower band.
	rnd := &scriptedRand{floats: []float64{0.5, 0.8, 1.0}}

	q := newQuestionServiceMock(t, ctrl, rnd, func(mri *mock_service.MockRepositoryI) {
		mri.EXPECT().RandomWords(gomock.Any(), 13).Return(testPool(13), nil)
	})

	questions, err := q.GenerateQuestions(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	assert.Equal(t, models.QuestionMultipleChoice, questions[0].Type)
	assert.Equal(t, models.QuestionSpelling, questions[1].Type)
	assert.Equal(t, models.QuestionAudio, questions[2].Type)
}

func TestQuestionS_GenerateQuestions_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockRepositoryI)
		wantErr error
	}{
		{
			name: "store error propagates",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().RandomWords(gomock.Any(), 20).Return(nil, errors.New("store unavailable"))
			},
		},
		{
			name: "pool smaller than requested count",
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().RandomWords(gomock.Any(), 20).Return(testPool(5), nil)
			},
			wantErr: ErrNotEnoughWords,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			q := newQuestionServiceMock(t, ctrl, &scriptedRand{}, tt.f)

			questions, err := q.GenerateQuestions(context.Background(), 10)
			require.Error(t, err)
			assert.Nil(t, questions)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestQuestionS_GenerateQuestions_seededRand(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rnd := rand.New(rand.NewSource(1))

	q := newQuestionServiceMock(t, ctrl, rnd, func(mri *mock_service.MockRepositoryI) {
		mri.EXPECT().RandomWords(gomock.Any(), 20).Return(testPool(20), nil)
	})

	questions, err := q.GenerateQuestions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, questions, 10)

	for _, question := range questions {
		switch question.Type {
		case models.QuestionSpelling:
			assert.Nil(t, question.Options)
		default:
			require.Len(t, question.Options, 4)
			assert.Contains(t, question.Options, question.CorrectAnswer)
		}
	}
}

func TestCheckAnswer(t *testing.T) {
	t.Parallel()

	question := models.Question{Type: models.QuestionSpelling, CorrectAnswer: "apple"}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{name: "exact", answer: "apple", want: true},
		{name: "case insensitive", answer: "ApPlE", want: true},
		{name: "surrounding whitespace ignored", answer: "  Apple \n", want: true},
		{name: "wrong word", answer: "apples", want: false},
		{name: "empty", answer: "", want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, CheckAnswer(question, tt.answer))
		})
	}
}

func TestHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		question models.Question
		want     string
	}{
		{
			name:     "spelling exposes the first two letters",
			question: models.Question{Type: models.QuestionSpelling, CorrectAnswer: "apple"},
			want:     `Hint: the word starts with "ap"`,
		},
		{
			name:     "audio exposes first letter and length",
			question: models.Question{Type: models.QuestionAudio, CorrectAnswer: "river"},
			want:     `Hint: the word starts with "r" and has 5 letters`,
		},
		{
			name:     "multiple choice exposes a meaning fragment",
			question: models.Question{Type: models.QuestionMultipleChoice, CorrectAnswer: "a round fruit"},
			want:     `Hint: the meaning begins with "a "`,
		},
		{
			name:     "short answers do not panic",
			question: models.Question{Type: models.QuestionSpelling, CorrectAnswer: "a"},
			want:     `Hint: the word starts with "a"`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Hint(tt.question))
		})
	}
}

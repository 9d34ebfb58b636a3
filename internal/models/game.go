package models

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionSpelling       QuestionType = "spelling"
	QuestionAudio          QuestionType = "audio"
)

// Question is an ephemeral generated entity: created at session start,
// immutable afterwards, discarded with the session.
type Question struct {
	ID            int64
	Word          Word
	Type          QuestionType
	Options       []string // nil for spelling questions
	CorrectAnswer string
}

type Session struct {
	Lives                int
	Score                int
	Combo                int
	MaxCombo             int
	CurrentQuestionIndex int
	Questions            []Question
	CorrectAnswers       int
	TotalQuestions       int
}

type Medal string

const (
	MedalS Medal = "S"
	MedalA Medal = "A"
	MedalB Medal = "B"
	MedalC Medal = "C"
)

// Result summarizes a finished session. CorrectRate is a percentage over
// the questions actually seen, not the planned total.
type Result struct {
	Score       int
	CorrectRate float64
	MaxCombo    int
	Medal       Medal
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhaseOver
)

// Game is one bounded play-through. Not safe for concurrent use: callers
// must serialize operations on a single game.
type Game struct {
	Phase     Phase
	Session   Session
	Result    *Result
	HintsUsed int
}

// Outcome reports what a submitted answer did to the session. A zero
// Outcome (Graded false) means the answer was ignored: no active game or
// no current question.
type Outcome struct {
	Graded     bool
	Correct    bool
	LifeGained bool
	GameOver   bool
	Session    Session
	Result     *Result
}

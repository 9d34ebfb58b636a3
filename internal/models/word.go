package models

type Word struct {
	ID       int64  `db:"id"`
	Headword string `db:"headword"`
	Meaning  string `db:"meaning"`
	Example  string `db:"example"`
	AudioKey string `db:"audio_key"`
}

type Progress struct {
	WordID  int64 `db:"word_id"`
	Correct int   `db:"correct"`
	Wrong   int   `db:"wrong"`
}

type ProgressStats struct {
	WordsSeen    int `db:"words_seen"`
	TotalCorrect int `db:"total_correct"`
	TotalWrong   int `db:"total_wrong"`
}

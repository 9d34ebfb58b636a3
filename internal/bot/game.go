package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/realarnold928/funwords-game/internal/models"
)

// skipAnswer is a sentinel no real answer collides with in practice; the
// engine grades it as wrong.
const skipAnswer = "__skip__"

type GameSI interface {
	StartGame(ctx context.Context, userID int64) (*models.Game, error)
	SubmitAnswer(userID int64, answer string) models.Outcome
	UseHint(userID int64) (string, bool)
	CurrentQuestion(userID int64) (models.Question, bool)
	Stats(ctx context.Context) (models.ProgressStats, int, error)
}

type GameT struct {
	bot     BotSender
	service GameSI
}

func NewGameTAPI(bot BotSender, service GameSI) *GameT {
	return &GameT{
		bot:     bot,
		service: service,
	}
}

func (t *GameT) startGame(chatID int64, from *tgbotapi.User) {
	if from == nil {
		log.Printf("Game start without sender: %d", chatID)
		return
	}

	ctx, canceled := context.WithTimeout(context.Background(), 10*time.Second)
	defer canceled()

	game, err := t.service.StartGame(ctx, from.ID)
	if err != nil {
		log.Printf("failed to start game for user %d: %v", from.ID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Couldn't start a round. Try again later.")
		sendMessage(t.bot, msg)
		return
	}

	t.sendQuestion(chatID, game.Session)
}

func (t *GameT) sendQuestion(chatID int64, s models.Session) {
	question := s.Questions[s.CurrentQuestionIndex]

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("❤️ %d  ⭐ %d  🔥 %d\n", s.Lives, s.Score, s.Combo))
	sb.WriteString(fmt.Sprintf("Question %d/%d\n\n", s.CurrentQuestionIndex+1, s.TotalQuestions))

	switch question.Type {
	case models.QuestionSpelling:
		sb.WriteString("✏️ Type the word for: *" + question.Word.Meaning + "*")
	case models.QuestionAudio:
		sb.WriteString("🔊 Pick the word for: *" + question.Word.Meaning + "*")
	default:
		sb.WriteString("❓ What does *" + question.Word.Headword + "* mean?")
	}

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "markdown"

	keyboard := questionKeyboard(question)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func questionKeyboard(question models.Question) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	// Option texts can exceed the callback-data limit, so buttons carry
	// the option index and the handler resolves it against the current
	// question.
	for i, option := range question.Options {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(option, "g_ans_"+strconv.Itoa(i)),
		})
	}

	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("💡 Hint", "g_hint"),
		tgbotapi.NewInlineKeyboardButtonData("⏭ Skip", "g_skip"),
	})

	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (t *GameT) handleGameCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	chatID := query.Message.Chat.ID
	userID := query.From.ID
	data := query.Data

	switch {
	case data == "new_game":
		t.startGame(chatID, query.From)
	case data == "g_hint":
		t.sendHint(chatID, userID)
	case data == "g_skip":
		t.processAnswer(chatID, userID, skipAnswer)
	case strings.HasPrefix(data, "g_ans_"):
		t.processOptionAnswer(chatID, userID, strings.TrimPrefix(data, "g_ans_"))
	default:
		log.Printf("Unknown game callback data: %s", data)
	}
}

func (t *GameT) processOptionAnswer(chatID, userID int64, rawIndex string) {
	question, ok := t.service.CurrentQuestion(userID)
	if !ok {
		t.sendNoActiveGame(chatID)
		return
	}

	index, err := strconv.Atoi(rawIndex)
	if err != nil || index < 0 || index >= len(question.Options) {
		log.Printf("Bad option index %q from user %d", rawIndex, userID)
		return
	}

	t.processAnswer(chatID, userID, question.Options[index])
}

// handleSpellingAnswer forwards free text to the engine when the current
// question expects typed input. Returns false when the text is not a game
// answer so the caller can fall through to the default reply.
func (t *GameT) handleSpellingAnswer(message *tgbotapi.Message) bool {
	question, ok := t.service.CurrentQuestion(message.From.ID)
	if !ok || question.Type != models.QuestionSpelling {
		return false
	}

	t.processAnswer(message.Chat.ID, message.From.ID, message.Text)

	return true
}

func (t *GameT) processAnswer(chatID, userID int64, answer string) {
	question, ok := t.service.CurrentQuestion(userID)
	if !ok {
		t.sendNoActiveGame(chatID)
		return
	}

	outcome := t.service.SubmitAnswer(userID, answer)
	if !outcome.Graded {
		t.sendNoActiveGame(chatID)
		return
	}

	statusText := "✅ Correct!"
	if !outcome.Correct {
		statusText = "❌ Wrong. The answer was: " + question.CorrectAnswer
	}
	if outcome.LifeGained {
		statusText += "\n🔥 Combo ×5 — extra life!"
	}

	msg := tgbotapi.NewMessage(chatID, statusText)
	sendMessage(t.bot, msg)

	if outcome.GameOver {
		t.sendResult(chatID, *outcome.Result)
		return
	}

	t.sendQuestion(chatID, outcome.Session)
}

func (t *GameT) sendHint(chatID, userID int64) {
	hint, ok := t.service.UseHint(userID)
	if !ok {
		msg := tgbotapi.NewMessage(chatID, "💡 No hints left this round.")
		sendMessage(t.bot, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "💡 "+hint)
	sendMessage(t.bot, msg)
}

func (t *GameT) sendResult(chatID int64, result models.Result) {
	text := fmt.Sprintf("🏁 Round over!\n\n"+
		"🏅 Medal: *%s*\n"+
		"⭐ Score: *%d*\n"+
		"🎯 Accuracy: *%.1f%%*\n"+
		"🔥 Max combo: *%d*",
		result.Medal, result.Score, result.CorrectRate, result.MaxCombo)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"

	var buttons [][]tgbotapi.InlineKeyboardButton
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🎮 Play again", "new_game"),
	})
	keyboard := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *GameT) sendNoActiveGame(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "No active round. Press \"🎮 New game\" to play.")
	sendMessage(t.bot, msg)
}

func (t *GameT) sendStats(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	ctx, canceled := context.WithTimeout(context.Background(), 5*time.Second)
	defer canceled()

	stats, best, err := t.service.Stats(ctx)
	if err != nil {
		log.Printf("failed to get stats for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Couldn't load your progress.")
		sendMessage(t.bot, msg)
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 *Your progress*\n\n")
	sb.WriteString("🏆 High score: **" + strconv.Itoa(best) + "**\n")
	sb.WriteString("📚 Words practiced: **" + strconv.Itoa(stats.WordsSeen) + "**\n")
	sb.WriteString("✅ Correct answers: **" + strconv.Itoa(stats.TotalCorrect) + "**\n")
	sb.WriteString("❌ Wrong answers: **" + strconv.Itoa(stats.TotalWrong) + "**")

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = "markdown"

	sendMessage(t.bot, msg)
}

package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/thanhnt94/newmindstack-sub001/internal/audio"
	"github.com/thanhnt94/newmindstack-sub001/internal/config"
	"github.com/thanhnt94/newmindstack-sub001/internal/models"
	"github.com/thanhnt94/newmindstack-sub001/internal/render"
	"github.com/thanhnt94/newmindstack-sub001/internal/session"
	"github.com/thanhnt94/newmindstack-sub001/internal/storage/cache"
	"go.uber.org/zap"
)

type SessionFactory func(pres session.PresenterI) *session.Controller

type SettingsAPII interface {
	SaveSettings(ctx context.Context, settings models.VisualSettings) error
}

type JournalReaderI interface {
	History(ctx context.Context, sessionID string, limit int) ([]models.AnswerRecord, error)
	SessionScore(ctx context.Context, sessionID string) (int, error)
}

type ReviewDeps struct {
	Factory  SessionFactory
	Audio    *audio.Helper
	Journal  JournalReaderI
	Settings SettingsAPII
	AudioCfg config.AudioConfig
	Log      *zap.Logger
}

// ReviewT wires user gestures (buttons, callbacks) onto the session
// controller, the audio helper and the journal.
type ReviewT struct {
	bot   BotSender
	cache *cache.Cache
	deps  ReviewDeps

	presenters map[int64]*chatPresenter
}

func NewReviewTAPI(bot BotSender, cache *cache.Cache, deps ReviewDeps) *ReviewT {
	return &ReviewT{
		bot:        bot,
		cache:      cache,
		deps:       deps,
		presenters: make(map[int64]*chatPresenter),
	}
}

func (t *ReviewT) startSession(message *tgbotapi.Message, userID int64) {
	if ctrl, ok := t.cache.GetSession(userID); ok && !ctrl.IsFinished() {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Bạn đang có phiên học dở. Tiếp tục nhé!")
		sendMessage(t.bot, msg)
		ctrl.Display(context.Background())
		return
	}

	pres := newChatPresenter(t.bot, message.Chat.ID, t.deps.Audio, t.deps.AudioCfg, func() models.VisualSettings {
		return t.prefs(userID)
	}, t.deps.Log)

	ctrl := t.deps.Factory(pres)
	pres.setController(ctrl)

	t.cache.SetSession(userID, ctrl)
	t.presenters[userID] = pres

	if err := ctrl.Start(context.Background()); err != nil {
		log.Printf("failed to start session for user %d: %v", userID, err)
		t.cache.DeleteSession(userID)
	}
}

func (t *ReviewT) handleRating(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	label := strings.TrimPrefix(query.Data, "rate_")

	ctrl, ok := t.cache.GetSession(userID)
	if !ok {
		t.noSession(query)
		return
	}
	if pres, ok := t.presenters[userID]; ok && !pres.RatingEnabled() {
		return
	}

	item, ok := ctrl.GetCurrent()
	if !ok {
		return
	}

	if err := ctrl.SubmitAnswer(context.Background(), item.ItemID, label); err != nil {
		log.Printf("failed to submit answer for user %d: %v", userID, err)
	}
}

func (t *ReviewT) handleFlip(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	ctrl, ok := t.cache.GetSession(userID)
	if !ok {
		t.noSession(query)
		return
	}

	item, ok := ctrl.GetCurrent()
	if !ok {
		return
	}

	// a manual flip cancels the autoplay pipeline for this card
	t.deps.Audio.CancelAutoplay()

	if pres, ok := t.presenters[userID]; ok {
		pres.showBack(item)
	}
}

func (t *ReviewT) handleAudio(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	side, itemID, ok := parseAudioData(query.Data)
	if !ok {
		return
	}

	ctrl, sessionOK := t.cache.GetSession(userID)
	if !sessionOK {
		t.noSession(query)
		return
	}
	item, itemOK := ctrl.GetCurrent()
	if !itemOK || item.ItemID != itemID {
		return
	}

	pres, presOK := t.presenters[userID]
	if !presOK {
		return
	}
	front, back := pres.players()

	player := front
	content := item.Content.FrontAudioText
	if content == "" {
		content = item.Content.Front
	}
	if side == "back" {
		player = back
		content = item.Content.BackAudioText
		if content == "" {
			content = item.Content.Back
		}
	}
	if player == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	if player.Ready() {
		err = t.deps.Audio.PlayAfterLoad(ctx, player, audio.PlayOptions{Restart: true})
	} else {
		err = t.deps.Audio.GenerateAndPlay(ctx, player, models.TTSRequest{
			ItemID:        item.ItemID,
			Side:          side,
			ContentToRead: content,
		}, audio.PlayOptions{Restart: true}, nil)
	}
	if err != nil {
		if retryErr := t.deps.Audio.HandlePlaybackError(ctx, player, models.TTSRequest{
			ItemID:        item.ItemID,
			Side:          side,
			ContentToRead: content,
		}); retryErr != nil {
			msg := tgbotapi.NewMessage(query.Message.Chat.ID, "🔇 Không phát được âm thanh.")
			sendMessage(t.bot, msg)
		}
	}
}

func parseAudioData(data string) (side string, itemID int64, ok bool) {
	rest := strings.TrimPrefix(data, "audio_")
	parts := strings.SplitN(rest, "_", 2)
	if len(parts) != 2 {
		return "", 0, false
	}
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", 0, false
	}
	return parts[0], id, true
}

func (t *ReviewT) endSession(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	t.deps.Audio.CancelAutoplay()

	ctrl, ok := t.cache.GetSession(userID)
	if !ok {
		t.noSession(query)
		return
	}

	totals := ctrl.Totals()
	t.cache.DeleteSession(userID)
	delete(t.presenters, userID)

	text := "⏹ Đã kết thúc phiên học.\n\n" + render.SessionSummary(totals)
	msg := tgbotapi.NewMessage(query.Message.Chat.ID, text)
	sendMessage(t.bot, msg)
}

func (t *ReviewT) showHistory(message *tgbotapi.Message, userID int64) {
	ctrl, ok := t.cache.GetSession(userID)
	if !ok {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Chưa có phiên học nào. Bấm \"Học ngay\" để bắt đầu!")
		sendMessage(t.bot, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	records, err := t.deps.Journal.History(ctx, ctrl.SessionID(), 10)
	if err != nil {
		t.deps.Log.Warn("failed to load journal history, falling back to memory", zap.Int64("user_id", userID), zap.Error(err))
		records = ctrl.History()
	}
	if len(records) == 0 {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Phiên này chưa có thẻ nào được trả lời.")
		sendMessage(t.bot, msg)
		return
	}

	var sb strings.Builder
	sb.WriteString("📜 <b>Lịch sử phiên học</b>\n\n")
	for i, rec := range records {
		sb.WriteString(fmt.Sprintf("%d. %s → %s (%+d)\n", i+1, rec.Front, rec.Label, rec.ScoreChange))
	}

	if score, err := t.deps.Journal.SessionScore(ctx, ctrl.SessionID()); err == nil {
		sb.WriteString(fmt.Sprintf("\n⭐ Tổng điểm: %+d", score))
	} else {
		t.deps.Log.Warn("failed to sum journal score", zap.Int64("user_id", userID), zap.Error(err))
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, sb.String())
	msg.ParseMode = tgbotapi.ModeHTML
	sendMessage(t.bot, msg)
}

func (t *ReviewT) showSettings(message *tgbotapi.Message, userID int64) {
	prefs := t.prefs(userID)

	msg := tgbotapi.NewMessage(message.Chat.ID, "⚙️ Cài đặt hiển thị:")
	keyboard := settingsKeyboard(prefs)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *ReviewT) handleToggle(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	prefs := t.prefs(userID)

	switch query.Data {
	case "toggle_autoplay":
		prefs.Autoplay = !prefs.Autoplay
	case "toggle_image":
		prefs.ShowImage = !prefs.ShowImage
	case "toggle_stats":
		prefs.ShowStats = !prefs.ShowStats
	default:
		return
	}

	t.cache.SetPrefs(userID, prefs)

	// server sync is best effort and never blocks the flow
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := t.deps.Settings.SaveSettings(ctx, prefs); err != nil {
			t.deps.Log.Warn("failed to sync settings", zap.Int64("user_id", userID), zap.Error(err))
		}
	}()

	keyboard := settingsKeyboard(prefs)
	edit := tgbotapi.NewEditMessageReplyMarkup(query.Message.Chat.ID, query.Message.MessageID, keyboard)
	sendMessage(t.bot, edit)
}

func settingsKeyboard(prefs models.VisualSettings) tgbotapi.InlineKeyboardMarkup {
	mark := func(on bool) string {
		if on {
			return "✅"
		}
		return "☐"
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(mark(prefs.Autoplay)+" Tự phát âm thanh", "toggle_autoplay"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(mark(prefs.ShowImage)+" Hiện ảnh", "toggle_image"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(mark(prefs.ShowStats)+" Hiện thống kê", "toggle_stats"),
		),
	)
}

func (t *ReviewT) prefs(userID int64) models.VisualSettings {
	if prefs, ok := t.cache.GetPrefs(userID); ok {
		return prefs
	}
	return models.VisualSettings{Autoplay: true, ShowImage: true, ShowStats: true}
}

func (t *ReviewT) noSession(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		return
	}
	msg := tgbotapi.NewMessage(query.Message.Chat.ID, "Phiên học đã đóng. Bấm \"Học ngay\" để bắt đầu phiên mới.")
	sendMessage(t.bot, msg)
}

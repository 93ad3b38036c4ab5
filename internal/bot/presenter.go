package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/thanhnt94/newmindstack-sub001/internal/audio"
	"github.com/thanhnt94/newmindstack-sub001/internal/config"
	"github.com/thanhnt94/newmindstack-sub001/internal/models"
	"github.com/thanhnt94/newmindstack-sub001/internal/render"
	"github.com/thanhnt94/newmindstack-sub001/internal/session"
	"go.uber.org/zap"
)

const scoreToastDuration = 1200 * time.Millisecond

// chatPresenter renders one user's session into their chat. It implements
// session.PresenterI; the controller reference is injected right after both
// are constructed.
type chatPresenter struct {
	bot      BotSender
	chatID   int64
	audio    *audio.Helper
	audioCfg config.AudioConfig
	prefs    func() models.VisualSettings
	log      *zap.Logger

	mu            sync.Mutex
	ctrl          *session.Controller
	ratingEnabled bool
	front         *telegramPlayer
	back          *telegramPlayer
}

func newChatPresenter(bot BotSender, chatID int64, audioH *audio.Helper, audioCfg config.AudioConfig, prefs func() models.VisualSettings, log *zap.Logger) *chatPresenter {
	return &chatPresenter{
		bot:           bot,
		chatID:        chatID,
		audio:         audioH,
		audioCfg:      audioCfg,
		prefs:         prefs,
		log:           log,
		ratingEnabled: true,
	}
}

func (p *chatPresenter) setController(ctrl *session.Controller) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ctrl = ctrl
}

func (p *chatPresenter) controller() *session.Controller {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl
}

func (p *chatPresenter) ShowCard(item models.Item, totals models.SessionTotals, prev *models.AnswerRecord) {
	prefs := p.prefs()

	p.registerPlayers(item)

	var text string
	text += "<b>" + item.Content.Front + "</b>\n"
	if prefs.ShowImage && item.Content.ImageURL != "" {
		text += "🖼 " + item.Content.ImageURL + "\n"
	}
	text += "\n" + render.SessionSummary(totals) + "\n"
	if prefs.ShowStats {
		text += render.StatsPanel(item.InitialStats, render.DensityCompact) + "\n"
	}
	if prev != nil {
		text += fmt.Sprintf("\n🕘 Thẻ trước: %s → %s (%+d)", prev.Front, prev.Label, prev.ScoreChange)
	}

	msg := tgbotapi.NewMessage(p.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = cardKeyboard(item.ItemID)

	sendMessage(p.bot, msg)

	if prefs.Autoplay {
		p.startAutoplay(item)
	}
}

func cardKeyboard(itemID int64) *tgbotapi.InlineKeyboardMarkup {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Quên", "rate_quên"),
			tgbotapi.NewInlineKeyboardButtonData("🤔 Mơ hồ", "rate_mơ_hồ"),
			tgbotapi.NewInlineKeyboardButtonData("✅ Nhớ", "rate_nhớ"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Lật thẻ", "flip"),
			tgbotapi.NewInlineKeyboardButtonData("🔊 Nghe", fmt.Sprintf("audio_front_%d", itemID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⏹ Kết thúc", "end_session"),
		),
	)
	return &keyboard
}

func (p *chatPresenter) registerPlayers(item models.Item) {
	front := newTelegramPlayer(fmt.Sprintf("%d_front_%d", p.chatID, item.ItemID), p.chatID, p.bot, item.Content.FrontAudioURL)
	back := newTelegramPlayer(fmt.Sprintf("%d_back_%d", p.chatID, item.ItemID), p.chatID, p.bot, item.Content.BackAudioURL)

	p.mu.Lock()
	old := []*telegramPlayer{p.front, p.back}
	p.front, p.back = front, back
	p.mu.Unlock()

	for _, o := range old {
		if o != nil {
			p.audio.Unregister(o.ID())
		}
	}
	p.audio.Register(front)
	p.audio.Register(back)
}

func (p *chatPresenter) players() (*telegramPlayer, *telegramPlayer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.front, p.back
}

func (p *chatPresenter) startAutoplay(item models.Item) {
	token := p.audio.CurrentToken()
	front, back := p.players()

	seq := audio.Sequence{
		FlipDelay: p.audioCfg.FlipDelay,
		NextDelay: p.audioCfg.NextDelay,
		Flip: func() {
			p.showBack(item)
		},
		Next: func() {
			ctrl := p.controller()
			if ctrl == nil {
				return
			}
			ctrl.Next(context.Background())
		},
	}
	if front.Ready() {
		seq.Front = front
	}
	if back.Ready() {
		seq.Back = back
	}

	go func() {
		if err := p.audio.RunAutoplay(context.Background(), token, seq); err != nil && err != audio.ErrAutoplayCancelled {
			p.log.Warn("autoplay pipeline failed", zap.Int64("chat_id", p.chatID), zap.Error(err))
		}
	}()
}

func (p *chatPresenter) showBack(item models.Item) {
	text := "<i>" + item.Content.Back + "</i>"

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Quên", "rate_quên"),
			tgbotapi.NewInlineKeyboardButtonData("🤔 Mơ hồ", "rate_mơ_hồ"),
			tgbotapi.NewInlineKeyboardButtonData("✅ Nhớ", "rate_nhớ"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔊 Nghe", fmt.Sprintf("audio_back_%d", item.ItemID)),
		),
	)

	msg := tgbotapi.NewMessage(p.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = &keyboard

	sendMessage(p.bot, msg)
}

func (p *chatPresenter) ShowCompletion(message string, totals models.SessionTotals) {
	if message == "" {
		message = "Bạn đã ôn hết thẻ đến hạn."
	}

	text := "🎉 <b>Hoàn thành phiên học!</b>\n" + message + "\n\n" + render.SessionSummary(totals)

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏠 Về menu chính", "main_menu"),
		),
	)

	msg := tgbotapi.NewMessage(p.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = &keyboard

	sendMessage(p.bot, msg)
}

func (p *chatPresenter) ShowError(message string) {
	msg := tgbotapi.NewMessage(p.chatID, "❌ "+message)
	sendMessage(p.bot, msg)
}

func (p *chatPresenter) SetRatingEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ratingEnabled = enabled
}

func (p *chatPresenter) RatingEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ratingEnabled
}

func (p *chatPresenter) NotifyScoreGain(delta int) bool {
	msg := tgbotapi.NewMessage(p.chatID, fmt.Sprintf("✨ +%d điểm!", delta))
	sendMessage(p.bot, msg)

	ctrl := p.controller()
	if ctrl == nil {
		return false
	}

	time.AfterFunc(scoreToastDuration, func() {
		ctrl.EndNotification(context.Background())
	})
	return true
}

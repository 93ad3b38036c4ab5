package bot

import (
	"context"
	"errors"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegramPlayer adapts one side of a card to the audio.Player interface. A
// chat has no real playback position, so "playing" ends as soon as the voice
// message is delivered.
type telegramPlayer struct {
	id     string
	chatID int64
	bot    BotSender

	mu      sync.Mutex
	source  string
	playing bool
}

func newTelegramPlayer(id string, chatID int64, bot BotSender, source string) *telegramPlayer {
	return &telegramPlayer{
		id:     id,
		chatID: chatID,
		bot:    bot,
		source: source,
	}
}

func (p *telegramPlayer) ID() string {
	return p.id
}

func (p *telegramPlayer) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

func (p *telegramPlayer) SetSource(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.source = url
}

func (p *telegramPlayer) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source != ""
}

func (p *telegramPlayer) Load(_ context.Context) error {
	if !p.Ready() {
		return errors.New("no audio source")
	}
	return nil
}

func (p *telegramPlayer) Play(_ context.Context) error {
	p.mu.Lock()
	source := p.source
	p.playing = true
	p.mu.Unlock()

	if source == "" {
		return errors.New("no audio source")
	}

	msg := tgbotapi.NewAudio(p.chatID, tgbotapi.FileURL(source))
	if _, err := p.bot.Send(msg); err != nil {
		p.Stop()
		return err
	}
	return nil
}

func (p *telegramPlayer) Wait(_ context.Context) error {
	p.Stop()
	return nil
}

func (p *telegramPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

func (p *telegramPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

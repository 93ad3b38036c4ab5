package mock_session

import (
	"sync"

	"github.com/thanhnt94/newmindstack-sub001/internal/audio"
	"github.com/thanhnt94/newmindstack-sub001/internal/models"
)

// RecordingPresenter captures every presenter call for assertions.
type RecordingPresenter struct {
	mu sync.Mutex

	Cards       []models.Item
	Totals      []models.SessionTotals
	Completions []string
	Errors      []string
	RatingState []bool
	ScoreGains  []int

	// BlockOnScoreGain makes NotifyScoreGain report an active blocking
	// notification.
	BlockOnScoreGain bool
}

func (p *RecordingPresenter) ShowCard(item models.Item, totals models.SessionTotals, _ *models.AnswerRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Cards = append(p.Cards, item)
	p.Totals = append(p.Totals, totals)
}

func (p *RecordingPresenter) ShowCompletion(message string, _ models.SessionTotals) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Completions = append(p.Completions, message)
}

func (p *RecordingPresenter) ShowError(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Errors = append(p.Errors, message)
}

func (p *RecordingPresenter) SetRatingEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.RatingState = append(p.RatingState, enabled)
}

func (p *RecordingPresenter) NotifyScoreGain(delta int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ScoreGains = append(p.ScoreGains, delta)
	return p.BlockOnScoreGain
}

func (p *RecordingPresenter) ShownCards() []models.Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Item, len(p.Cards))
	copy(out, p.Cards)
	return out
}

func (p *RecordingPresenter) ShownCompletions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.Completions))
	copy(out, p.Completions)
	return out
}

// StubAudio is a no-op AudioI for tests that do not assert audio calls.
type StubAudio struct{}

func (StubAudio) StopAll(string) {}

func (StubAudio) CancelAutoplay() audio.Token { return audio.Token{} }

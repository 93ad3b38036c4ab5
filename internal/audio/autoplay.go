package audio

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sequence describes one card's autoplay pipeline:
// front audio → delay → flip → back audio → delay → next card.
// Front or Back may be nil when a side has no audio.
type Sequence struct {
	Front     Player
	Back      Player
	FlipDelay time.Duration
	NextDelay time.Duration
	Flip      func()
	Next      func()
}

// RunAutoplay drives one sequence under the given token. Any step observing
// a superseded token aborts with ErrAutoplayCancelled and no further side
// effects.
func (h *Helper) RunAutoplay(ctx context.Context, t Token, seq Sequence) error {
	if t.IsCancelled() {
		return ErrAutoplayCancelled
	}

	if seq.Front != nil {
		if err := h.PlayAfterLoad(ctx, seq.Front, PlayOptions{Restart: true, AwaitCompletion: true}); err != nil {
			h.log.Debug("autoplay front side failed", zap.Error(err))
		}
	}

	if err := h.WaitForDelay(ctx, t, seq.FlipDelay); err != nil {
		return err
	}
	if t.IsCancelled() {
		return ErrAutoplayCancelled
	}

	if seq.Flip != nil {
		seq.Flip()
	}

	if seq.Back != nil {
		if err := h.PlayAfterLoad(ctx, seq.Back, PlayOptions{Restart: true, AwaitCompletion: true}); err != nil {
			h.log.Debug("autoplay back side failed", zap.Error(err))
		}
	}

	if err := h.WaitForDelay(ctx, t, seq.NextDelay); err != nil {
		return err
	}
	if t.IsCancelled() {
		return ErrAutoplayCancelled
	}

	if seq.Next != nil {
		seq.Next()
	}
	return nil
}

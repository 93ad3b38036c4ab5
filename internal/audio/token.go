package audio

import (
	"context"
	"time"
)

// Token is a captured autoplay generation. A sequence captures the token at
// its start and checks IsCancelled before every continuation; cancellation
// is cooperative, effective at the next checkpoint.
type Token struct {
	h      *Helper
	value  uint64
	cancel <-chan struct{}
}

func (t Token) IsCancelled() bool {
	t.h.mu.Lock()
	defer t.h.mu.Unlock()
	return t.h.token != t.value
}

// CurrentToken captures the current autoplay generation.
func (h *Helper) CurrentToken() Token {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Token{h: h, value: h.token, cancel: h.cancelCh}
}

// CancelAutoplay increments the token, wakes every pending autoplay delay
// and stops every player. Any outstanding sequence holding an older token
// aborts at its next check. Returns the new current token.
func (h *Helper) CancelAutoplay() Token {
	h.mu.Lock()
	h.token++
	value := h.token
	close(h.cancelCh)
	h.cancelCh = make(chan struct{})
	next := h.cancelCh
	h.mu.Unlock()

	h.StopAll("")

	return Token{h: h, value: value, cancel: next}
}

// WaitForDelay sleeps for d and returns nil only if the token is still
// current at expiry. A superseded token yields ErrAutoplayCancelled, at the
// moment of cancellation rather than at expiry.
func (h *Helper) WaitForDelay(ctx context.Context, t Token, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.cancel:
		return ErrAutoplayCancelled
	case <-timer.C:
	}

	if t.IsCancelled() {
		return ErrAutoplayCancelled
	}
	return nil
}

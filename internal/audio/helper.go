package audio

import (
	"context"
	"errors"
	"sync"

	"github.com/thanhnt94/newmindstack-sub001/internal/models"
	"go.uber.org/zap"
)

// ErrAutoplayCancelled is returned by delay waits and pipeline steps whose
// token was superseded. Callers abort silently on it.
var ErrAutoplayCancelled = errors.New("autoplay cancelled")

// ErrPlaybackFailed marks an element whose playback failed twice. No further
// automatic regeneration is attempted for it.
var ErrPlaybackFailed = errors.New("playback failed after retry")

type TTSAPI interface {
	RegenerateAudio(ctx context.Context, req models.TTSRequest) (string, error)
}

// Helper serializes audio playback: at most one registered player plays at
// any instant, and autoplay sequences are cancelled cooperatively through a
// monotonically increasing token.
type Helper struct {
	tts TTSAPI
	log *zap.Logger

	mu       sync.Mutex
	players  map[string]Player
	token    uint64
	cancelCh chan struct{}
	retried  map[string]bool
}

func NewHelper(tts TTSAPI, log *zap.Logger) *Helper {
	return &Helper{
		tts:      tts,
		log:      log,
		players:  make(map[string]Player),
		cancelCh: make(chan struct{}),
		retried:  make(map[string]bool),
	}
}

// Register makes a player visible to StopAll. Re-registering an id replaces
// the previous player and clears its retry marker.
func (h *Helper) Register(p Player) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.players[p.ID()] = p
	delete(h.retried, p.ID())
}

func (h *Helper) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.players, id)
	delete(h.retried, id)
}

// StopAll pauses and rewinds every registered player except the excluded id.
func (h *Helper) StopAll(exceptID string) {
	h.mu.Lock()
	stopped := make([]Player, 0, len(h.players))
	for id, p := range h.players {
		if id != exceptID {
			stopped = append(stopped, p)
		}
	}
	h.mu.Unlock()

	for _, p := range stopped {
		p.Stop()
	}
}

type PlayOptions struct {
	// Restart rewinds to zero before playing.
	Restart bool
	// AwaitCompletion blocks until playback ends instead of returning as
	// soon as playback has been issued.
	AwaitCompletion bool
}

// PlayAfterLoad starts playback on p, loading the source first if it is not
// ready. Every other registered player is stopped before p starts. In
// fire-and-forget mode a play rejection is swallowed and logged.
func (h *Helper) PlayAfterLoad(ctx context.Context, p Player, opts PlayOptions) error {
	h.StopAll(p.ID())

	if !p.Ready() {
		if err := p.Load(ctx); err != nil {
			return err
		}
	}

	if opts.Restart {
		p.Stop()
	}

	if err := p.Play(ctx); err != nil {
		if opts.AwaitCompletion {
			return err
		}
		h.log.Debug("play rejected", zap.String("player", p.ID()), zap.Error(err))
		return nil
	}

	if opts.AwaitCompletion {
		return p.Wait(ctx)
	}
	return nil
}

// GenerateAndPlay requests TTS audio for one side of an item, points the
// player at the resulting URL and plays it. busy, when non-nil, toggles the
// trigger control's spinner state and is always restored.
func (h *Helper) GenerateAndPlay(ctx context.Context, p Player, req models.TTSRequest, opts PlayOptions, busy func(bool)) error {
	if busy != nil {
		busy(true)
		defer busy(false)
	}

	url, err := h.tts.RegenerateAudio(ctx, req)
	if err != nil {
		return err
	}

	p.SetSource(url)
	return h.PlayAfterLoad(ctx, p, opts)
}

// HandlePlaybackError runs the at-most-once automatic regeneration for a
// player whose playback errored. The second failure is surfaced as
// ErrPlaybackFailed so the caller can leave the control visibly broken.
func (h *Helper) HandlePlaybackError(ctx context.Context, p Player, req models.TTSRequest) error {
	h.mu.Lock()
	already := h.retried[p.ID()]
	h.retried[p.ID()] = true
	h.mu.Unlock()

	if already {
		return ErrPlaybackFailed
	}

	h.log.Warn("audio error, regenerating once", zap.String("player", p.ID()), zap.Int64("item_id", req.ItemID))
	if err := h.GenerateAndPlay(ctx, p, req, PlayOptions{Restart: true}, nil); err != nil {
		return ErrPlaybackFailed
	}
	return nil
}

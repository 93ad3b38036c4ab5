package audio

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnt94/newmindstack-sub001/internal/models"
	"go.uber.org/zap"
)

type fakePlayer struct {
	mu      sync.Mutex
	id      string
	source  string
	ready   bool
	playing bool
	playErr error
	loads   int
	plays   int
	stops   int
}

func (p *fakePlayer) ID() string { return p.id }

func (p *fakePlayer) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.source
}

func (p *fakePlayer) SetSource(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.source = url
	p.ready = true
}

func (p *fakePlayer) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

func (p *fakePlayer) Load(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loads++
	p.ready = true
	return nil
}

func (p *fakePlayer) Play(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plays++
	if p.playErr != nil {
		return p.playErr
	}
	p.playing = true
	return nil
}

func (p *fakePlayer) Wait(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
	return nil
}

func (p *fakePlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stops++
	p.playing = false
}

func (p *fakePlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

type fakeTTS struct {
	mu    sync.Mutex
	url   string
	err   error
	calls int
}

func (f *fakeTTS) RegenerateAudio(_ context.Context, _ models.TTSRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func newTestHelper(tts TTSAPI) *Helper {
	return NewHelper(tts, zap.NewNop())
}

func TestHelper_PlaybackExclusivity(t *testing.T) {
	t.Parallel()

	h := newTestHelper(&fakeTTS{})

	a := &fakePlayer{id: "a", ready: true, source: "a.mp3"}
	b := &fakePlayer{id: "b", ready: true, source: "b.mp3"}
	h.Register(a)
	h.Register(b)

	require.NoError(t, h.PlayAfterLoad(context.Background(), a, PlayOptions{}))
	require.True(t, a.Playing())

	require.NoError(t, h.PlayAfterLoad(context.Background(), b, PlayOptions{}))

	assert.False(t, a.Playing(), "a must be stopped before b starts")
	assert.True(t, b.Playing())
	assert.GreaterOrEqual(t, a.stops, 1)
}

func TestHelper_PlayAfterLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		player    *fakePlayer
		opts      PlayOptions
		wantErr   bool
		wantLoads int
	}{
		{
			name:      "loads when not ready",
			player:    &fakePlayer{id: "p"},
			opts:      PlayOptions{},
			wantLoads: 1,
		},
		{
			name:   "skips load when ready",
			player: &fakePlayer{id: "p", ready: true},
			opts:   PlayOptions{},
		},
		{
			name:    "play rejection swallowed in fire-and-forget mode",
			player:  &fakePlayer{id: "p", ready: true, playErr: errors.New("play rejected")},
			opts:    PlayOptions{},
			wantErr: false,
		},
		{
			name:    "play rejection surfaced when awaiting completion",
			player:  &fakePlayer{id: "p", ready: true, playErr: errors.New("play rejected")},
			opts:    PlayOptions{AwaitCompletion: true},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHelper(&fakeTTS{})
			h.Register(tt.player)

			err := h.PlayAfterLoad(context.Background(), tt.player, tt.opts)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLoads, tt.player.loads)
		})
	}
}

func TestHelper_GenerateAndPlay(t *testing.T) {
	t.Parallel()

	tts := &fakeTTS{url: "https://cdn.example/tts/42_front.mp3"}
	h := newTestHelper(tts)

	p := &fakePlayer{id: "front"}
	h.Register(p)

	var busyStates []bool
	err := h.GenerateAndPlay(context.Background(), p, models.TTSRequest{ItemID: 42, Side: "front", ContentToRead: "xin chào"}, PlayOptions{}, func(on bool) {
		busyStates = append(busyStates, on)
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example/tts/42_front.mp3", p.Source())
	assert.True(t, p.Playing())
	// spinner toggled on, then restored
	assert.Equal(t, []bool{true, false}, busyStates)
}

func TestHelper_HandlePlaybackError_RetriesOnce(t *testing.T) {
	t.Parallel()

	tts := &fakeTTS{url: "https://cdn.example/tts/7_back.mp3"}
	h := newTestHelper(tts)

	p := &fakePlayer{id: "back"}
	h.Register(p)

	req := models.TTSRequest{ItemID: 7, Side: "back", ContentToRead: "tạm biệt"}

	require.NoError(t, h.HandlePlaybackError(context.Background(), p, req))
	assert.Equal(t, 1, tts.calls)

	err := h.HandlePlaybackError(context.Background(), p, req)
	require.ErrorIs(t, err, ErrPlaybackFailed)
	assert.Equal(t, 1, tts.calls, "no second regeneration attempt")
}

func TestHelper_TokenCancellation(t *testing.T) {
	t.Parallel()

	h := newTestHelper(&fakeTTS{})

	token := h.CurrentToken()
	require.False(t, token.IsCancelled())

	done := make(chan error, 1)
	go func() {
		done <- h.WaitForDelay(context.Background(), token, 5*time.Second)
	}()

	h.CancelAutoplay()

	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrAutoplayCancelled)
	case <-time.After(time.Second):
		t.Fatal("cancelled delay did not unblock")
	}

	assert.True(t, token.IsCancelled())
	assert.False(t, h.CurrentToken().IsCancelled())
}

func TestHelper_WaitForDelayExpires(t *testing.T) {
	t.Parallel()

	h := newTestHelper(&fakeTTS{})
	token := h.CurrentToken()

	require.NoError(t, h.WaitForDelay(context.Background(), token, 10*time.Millisecond))
}

func TestHelper_RunAutoplayCancelledMidway(t *testing.T) {
	t.Parallel()

	h := newTestHelper(&fakeTTS{})

	front := &fakePlayer{id: "front", ready: true}
	back := &fakePlayer{id: "back", ready: true}
	h.Register(front)
	h.Register(back)

	token := h.CurrentToken()

	var flipped, advanced bool
	seq := Sequence{
		Front:     front,
		Back:      back,
		FlipDelay: 50 * time.Millisecond,
		NextDelay: 50 * time.Millisecond,
		Flip:      func() { flipped = true },
		Next:      func() { advanced = true },
	}

	done := make(chan error, 1)
	go func() {
		done <- h.RunAutoplay(context.Background(), token, seq)
	}()

	time.Sleep(10 * time.Millisecond)
	h.CancelAutoplay()

	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrAutoplayCancelled)
	case <-time.After(time.Second):
		t.Fatal("autoplay pipeline did not abort")
	}

	assert.False(t, flipped)
	assert.False(t, advanced)
}

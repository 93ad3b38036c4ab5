package audio

import "context"

// Player abstracts one playable audio element. The Telegram adapter and
// tests provide concrete implementations; the helper only sequences them.
type Player interface {
	ID() string
	Source() string
	SetSource(url string)
	// Ready reports whether the source is loaded enough to start playback.
	Ready() bool
	// Load prepares the source and returns once playback can start.
	Load(ctx context.Context) error
	// Play starts playback from the current position and returns immediately.
	Play(ctx context.Context) error
	// Wait blocks until playback ends or errors.
	Wait(ctx context.Context) error
	// Stop pauses playback and rewinds to the beginning.
	Stop()
	Playing() bool
}

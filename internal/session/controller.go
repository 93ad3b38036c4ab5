package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thanhnt94/newmindstack-sub001/internal/audio"
	"github.com/thanhnt94/newmindstack-sub001/internal/config"
	"github.com/thanhnt94/newmindstack-sub001/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type SessionAPII interface {
	FetchBatch(ctx context.Context, batchSize int) (models.BatchResult, error)
	SubmitAnswer(ctx context.Context, sub models.AnswerSubmission) (models.SubmitResult, error)
}

type AudioI interface {
	StopAll(exceptID string)
	CancelAutoplay() audio.Token
}

// PresenterI is the outward face of the controller: the Telegram adapter
// implements it against chat messages, tests implement it in memory. The
// controller itself has no UI dependency.
type PresenterI interface {
	ShowCard(item models.Item, totals models.SessionTotals, prev *models.AnswerRecord)
	ShowCompletion(message string, totals models.SessionTotals)
	ShowError(message string)
	SetRatingEnabled(enabled bool)
	// NotifyScoreGain reports whether a blocking notification was started.
	// When it returns true the presenter must call EndNotification once the
	// notification completes.
	NotifyScoreGain(delta int) bool
}

type JournalI interface {
	RecordAnswer(ctx context.Context, rec models.AnswerRecord) error
}

type State int

const (
	StateLoadingInitial State = iota
	StateReady
	StateSubmitting
	StateEnding
	StateFinished
)

// Controller owns the in-memory queue of items for one active session. The
// buffer only grows by appending and is never reordered; the server decides
// ordering at fetch time. All state is per instance, nothing is shared
// between sessions.
type Controller struct {
	api     SessionAPII
	audio   AudioI
	pres    PresenterI
	journal JournalI
	log     *zap.Logger

	sessionID string
	batchSize int
	lowWater  int

	mu            sync.Mutex
	state         State
	items         []models.Item
	index         int
	seen          map[int64]struct{}
	totals        models.SessionTotals
	history       []models.AnswerRecord
	containerName string
	endMessage    string

	isSubmitting   bool
	notifActive    bool
	pendingDisplay bool
	displayedAt    time.Time

	fetchGroup singleflight.Group
}

func NewController(api SessionAPII, audioH AudioI, pres PresenterI, journal JournalI, cfg config.SessionConfig, log *zap.Logger) *Controller {
	return &Controller{
		api:       api,
		audio:     audioH,
		pres:      pres,
		journal:   journal,
		log:       log,
		sessionID: uuid.NewString(),
		batchSize: cfg.BatchSize,
		lowWater:  cfg.LowWaterMark,
		state:     StateLoadingInitial,
		seen:      make(map[int64]struct{}),
	}
}

func (c *Controller) SessionID() string {
	return c.sessionID
}

// Start performs the initial load and paints the first card, or the
// completion screen when the session is already empty.
func (c *Controller) Start(ctx context.Context) error {
	if _, err := c.EnsureBuffer(ctx, true); err != nil {
		c.pres.ShowError("Không tải được thẻ. Thử lại nhé.")
		return err
	}
	if !c.IsFinished() {
		c.Display(ctx)
	}
	return nil
}

// EnsureBuffer tops the buffer up from the remote API. With immediate false
// it is the opportunistic prefetch invoked after every display: it does
// nothing while more than lowWater items remain unconsumed. At most one
// fetch is in flight at a time; concurrent callers share the pending result.
// Returns the newly appended items, nil when nothing was fetched.
func (c *Controller) EnsureBuffer(ctx context.Context, immediate bool) ([]models.Item, error) {
	c.mu.Lock()
	switch c.state {
	case StateFinished:
		c.mu.Unlock()
		return nil, nil
	case StateEnding:
		drained := c.index >= len(c.items)
		c.mu.Unlock()
		if drained && immediate {
			c.maybeFinish()
		}
		return nil, nil
	}
	if !immediate && len(c.items)-c.index > c.lowWater {
		c.mu.Unlock()
		return nil, nil
	}
	c.mu.Unlock()

	v, err, _ := c.fetchGroup.Do("batch", func() (interface{}, error) {
		result, err := c.api.FetchBatch(ctx, c.batchSize)
		if err != nil {
			return nil, err
		}
		return c.absorb(result), nil
	})
	if err != nil {
		// existing buffer stays usable; the caller decides how to surface it
		c.log.Error("batch fetch failed", zap.String("session_id", c.sessionID), zap.Error(err))
		return nil, err
	}

	c.maybeFinish()

	added, _ := v.([]models.Item)
	return added, nil
}

// absorb folds one fetch result into the buffer. The server may redeliver an
// item that is already buffered (defensive redelivery on reload); duplicates
// are dropped by id.
func (c *Controller) absorb(result models.BatchResult) []models.Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result.Exhausted || len(result.Items) == 0 {
		if result.Message != "" {
			c.endMessage = result.Message
		}
		if c.state != StateFinished {
			c.state = StateEnding
		}
		return nil
	}

	added := make([]models.Item, 0, len(result.Items))
	for _, item := range result.Items {
		if _, ok := c.seen[item.ItemID]; ok {
			continue
		}
		item.CardCategory = deriveCategory(item)
		c.seen[item.ItemID] = struct{}{}
		c.items = append(c.items, item)
		added = append(added, item)
	}

	if result.TotalInSession > 0 {
		c.totals.Total = result.TotalInSession
	}
	if result.ContainerName != "" {
		c.containerName = result.ContainerName
	}
	if c.state == StateLoadingInitial {
		c.totals.Score = result.SessionPoints
	}
	c.state = StateReady

	return added
}

// maybeFinish promotes ENDING to the terminal FINISHED state once the local
// buffer has drained, and paints the completion screen exactly once. An
// exhaustion signal never truncates a non-empty buffer early.
func (c *Controller) maybeFinish() {
	c.mu.Lock()
	if c.state != StateEnding || c.index < len(c.items) {
		c.mu.Unlock()
		return
	}
	c.state = StateFinished
	message := c.endMessage
	totals := c.totals
	c.mu.Unlock()

	c.pres.ShowCompletion(message, totals)
}

// GetCurrent returns the item at the cursor.
func (c *Controller) GetCurrent() (models.Item, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index >= len(c.items) {
		return models.Item{}, false
	}
	return c.items[c.index], true
}

// Advance moves the cursor one item forward. It does not display or fetch;
// callers decide what happens next.
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index < len(c.items) {
		c.index++
	}
}

// Next advances past the current card and paints the following one, topping
// the buffer up first when the advance drained it. Autoplay's end-of-card
// transition goes through here so a slow or failed prefetch cannot strand
// the session without a current card.
func (c *Controller) Next(ctx context.Context) {
	c.Advance()

	c.mu.Lock()
	drained := c.index >= len(c.items)
	c.mu.Unlock()
	if drained {
		if _, err := c.EnsureBuffer(ctx, true); err != nil {
			c.pres.ShowError("Không tải được thẻ tiếp theo.")
		}
	}
	if !c.IsFinished() {
		c.Display(ctx)
	}
}

func (c *Controller) IsFinished() bool {
	c.mu.Lock()
	finished := c.state == StateFinished || (c.state == StateEnding && c.index >= len(c.items))
	c.mu.Unlock()
	if finished {
		c.maybeFinish()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateFinished
}

func (c *Controller) Totals() models.SessionTotals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totals
}

func (c *Controller) ContainerName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.containerName
}

// History returns the append-only answer log for the session.
func (c *Controller) History() []models.AnswerRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.AnswerRecord, len(c.history))
	copy(out, c.history)
	return out
}

// Display paints the current card: stops any playing audio, shows the card
// with the running totals and the previous answer, and kicks off a
// background prefetch. While a blocking notification is active it defers
// itself instead; whichever of the two call sites finishes last consumes the
// deferred display exactly once.
func (c *Controller) Display(ctx context.Context) {
	c.mu.Lock()
	if c.state == StateFinished {
		c.mu.Unlock()
		return
	}
	if c.notifActive {
		c.pendingDisplay = true
		c.mu.Unlock()
		return
	}
	if c.index >= len(c.items) {
		c.mu.Unlock()
		return
	}
	item := c.items[c.index]
	totals := c.totals
	var prev *models.AnswerRecord
	if n := len(c.history); n > 0 {
		rec := c.history[n-1]
		prev = &rec
	}
	c.displayedAt = time.Now()
	c.mu.Unlock()

	c.audio.CancelAutoplay()
	c.pres.ShowCard(item, totals, prev)

	go func() {
		if _, err := c.EnsureBuffer(ctx, false); err != nil {
			c.log.Warn("background prefetch failed", zap.String("session_id", c.sessionID), zap.Error(err))
		}
	}()
}

// EndNotification marks the blocking notification as done and consumes a
// deferred display, if one raced in while it was active.
func (c *Controller) EndNotification(ctx context.Context) {
	c.mu.Lock()
	c.notifActive = false
	pending := c.pendingDisplay
	c.pendingDisplay = false
	c.mu.Unlock()

	if pending {
		c.Display(ctx)
	}
}

// SubmitAnswer posts one rating for the current card. Exactly one submission
// may be in flight per session; a call while one is pending is a no-op. On
// success the totals are updated, the answer is journalled, the cursor
// advances and the next card (or completion screen) is painted. On failure
// nothing advances, so the same card stays current and can be resubmitted.
func (c *Controller) SubmitAnswer(ctx context.Context, itemID int64, label string) error {
	c.mu.Lock()
	if c.isSubmitting || c.state == StateFinished {
		c.mu.Unlock()
		return nil
	}
	if c.index >= len(c.items) {
		c.mu.Unlock()
		return nil
	}
	current := c.items[c.index]
	if itemID != current.ItemID {
		// stale gesture referring to an already-answered card
		c.mu.Unlock()
		return nil
	}
	displayedAt := c.displayedAt
	prevState := c.state
	c.isSubmitting = true
	c.state = StateSubmitting
	c.mu.Unlock()

	c.pres.SetRatingEnabled(false)
	c.audio.CancelAutoplay()

	var durationMS int64
	if !displayedAt.IsZero() {
		durationMS = time.Since(displayedAt).Milliseconds()
	}

	result, err := c.api.SubmitAnswer(ctx, models.AnswerSubmission{
		ItemID:     itemID,
		UserAnswer: label,
		DurationMS: durationMS,
	})
	if err != nil {
		c.mu.Lock()
		c.isSubmitting = false
		if c.state == StateSubmitting {
			c.state = prevState
		}
		c.mu.Unlock()

		c.pres.SetRatingEnabled(true)
		c.pres.ShowError("Không gửi được câu trả lời. Thử lại nhé.")
		c.log.Error("answer submission failed", zap.String("session_id", c.sessionID), zap.Int64("item_id", itemID), zap.Error(err))
		return err
	}

	rec := models.AnswerRecord{
		SessionID:   c.sessionID,
		ItemID:      current.ItemID,
		Front:       current.Content.Front,
		Back:        current.Content.Back,
		Label:       label,
		ScoreChange: result.ScoreChange,
		DurationMS:  durationMS,
		AnsweredAt:  time.Now(),
	}

	c.mu.Lock()
	switch Classify(label) {
	case models.AnswerCorrect:
		c.totals.Correct++
	case models.AnswerIncorrect:
		c.totals.Incorrect++
	default:
		c.totals.Vague++
	}
	c.totals.Processed++
	c.totals.Score += result.ScoreChange
	c.history = append(c.history, rec)
	if c.index < len(c.items) {
		c.index++
	}
	c.isSubmitting = false
	// an exhaustion signal absorbed before or during the submission must
	// survive it; only a still-SUBMITTING state falls back to the prior one
	if c.state == StateSubmitting {
		c.state = prevState
	}
	c.mu.Unlock()

	if c.journal != nil {
		if err := c.journal.RecordAnswer(ctx, rec); err != nil {
			c.log.Warn("failed to journal answer", zap.String("session_id", c.sessionID), zap.Int64("item_id", rec.ItemID), zap.Error(err))
		}
	}

	if result.ScoreChange > 0 {
		// flag first: the notification may complete (and call
		// EndNotification) before NotifyScoreGain returns
		c.mu.Lock()
		c.notifActive = true
		c.mu.Unlock()
		if !c.pres.NotifyScoreGain(result.ScoreChange) {
			c.mu.Lock()
			c.notifActive = false
			c.mu.Unlock()
		}
	}

	c.mu.Lock()
	drained := c.index >= len(c.items)
	c.mu.Unlock()
	if drained {
		if _, err := c.EnsureBuffer(ctx, true); err != nil {
			c.pres.ShowError("Không tải được thẻ tiếp theo.")
		}
	}
	if !c.IsFinished() {
		c.Display(ctx)
	}

	c.pres.SetRatingEnabled(true)
	return nil
}

package bot

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thanhnt94/newmindstack-sub001/internal/audio"
	mock_bot "github.com/thanhnt94/newmindstack-sub001/internal/bot/mock"
	"github.com/thanhnt94/newmindstack-sub001/internal/config"
	"github.com/thanhnt94/newmindstack-sub001/internal/models"
	"github.com/thanhnt94/newmindstack-sub001/internal/session"
	mock_session "github.com/thanhnt94/newmindstack-sub001/internal/session/mock"
	"github.com/thanhnt94/newmindstack-sub001/internal/storage/cache"
	"go.uber.org/zap"
)

type stubTTS struct{}

func (stubTTS) RegenerateAudio(context.Context, models.TTSRequest) (string, error) {
	return "", nil
}

type stubSettings struct{}

func (stubSettings) SaveSettings(context.Context, models.VisualSettings) error {
	return nil
}

type stubJournal struct {
	records []models.AnswerRecord
	score   int
}

func (s stubJournal) History(context.Context, string, int) ([]models.AnswerRecord, error) {
	return s.records, nil
}

func (s stubJournal) SessionScore(context.Context, string) (int, error) {
	return s.score, nil
}

func newReviewMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_session.MockSessionAPII)) (*ReviewT, *mock_bot.MockBot, *cache.Cache) {
	t.Helper()

	api := mock_session.NewMockSessionAPII(ctrl)
	if setupMock != nil {
		setupMock(api)
	}

	mockBot := &mock_bot.MockBot{}
	userCache := cache.NewCache()
	audioHelper := audio.NewHelper(stubTTS{}, zap.NewNop())
	sessionCfg := config.SessionConfig{BatchSize: 3, LowWaterMark: 0}

	deps := ReviewDeps{
		Factory: func(pres session.PresenterI) *session.Controller {
			return session.NewController(api, audioHelper, pres, nil, sessionCfg, zap.NewNop())
		},
		Audio:    audioHelper,
		Journal:  stubJournal{},
		Settings: stubSettings{},
		AudioCfg: config.AudioConfig{},
		Log:      zap.NewNop(),
	}

	return NewReviewTAPI(mockBot, userCache, deps), mockBot, userCache
}

func sessionBatch(ids ...int64) models.BatchResult {
	items := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, models.Item{
			ItemID:  id,
			Content: models.ItemContent{Front: "front", Back: "back"},
		})
	}
	return models.BatchResult{Items: items, TotalInSession: len(ids)}
}

func testMessage(userID int64) *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: userID},
	}
}

func TestReviewT_StartSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	review, mockBot, userCache := newReviewMock(t, ctrl, func(api *mock_session.MockSessionAPII) {
		api.EXPECT().FetchBatch(gomock.Any(), 3).Return(sessionBatch(1, 2), nil)
	})

	userCache.SetPrefs(456, models.VisualSettings{Autoplay: false, ShowImage: true, ShowStats: true})

	review.startSession(testMessage(456), 456)

	_, ok := userCache.GetSession(456)
	require.True(t, ok)
	require.NotEmpty(t, mockBot.Sent())
}

func TestReviewT_RatingAdvancesCard(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	review, mockBot, userCache := newReviewMock(t, ctrl, func(api *mock_session.MockSessionAPII) {
		api.EXPECT().FetchBatch(gomock.Any(), 3).Return(sessionBatch(1, 2), nil)
		api.EXPECT().SubmitAnswer(gomock.Any(), gomock.Any()).Return(models.SubmitResult{}, nil)
	})

	userCache.SetPrefs(456, models.VisualSettings{Autoplay: false})

	review.startSession(testMessage(456), 456)
	sent := len(mockBot.Sent())

	query := &tgbotapi.CallbackQuery{
		From:    &tgbotapi.User{ID: 456},
		Message: testMessage(456),
		Data:    "rate_nhớ",
	}
	review.handleRating(query)

	ctrlSession, ok := userCache.GetSession(456)
	require.True(t, ok)
	assert.Equal(t, 1, ctrlSession.Totals().Processed)

	current, ok := ctrlSession.GetCurrent()
	require.True(t, ok)
	assert.Equal(t, int64(2), current.ItemID)

	assert.Greater(t, len(mockBot.Sent()), sent, "next card painted after rating")
}

func TestReviewT_RatingWithoutSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	review, mockBot, _ := newReviewMock(t, ctrl, nil)

	query := &tgbotapi.CallbackQuery{
		From:    &tgbotapi.User{ID: 456},
		Message: testMessage(456),
		Data:    "rate_nhớ",
	}
	review.handleRating(query)

	require.Len(t, mockBot.Sent(), 1, "user is told the session is closed")
}

func TestReviewT_ShowHistoryWithScore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	review, mockBot, userCache := newReviewMock(t, ctrl, func(api *mock_session.MockSessionAPII) {
		api.EXPECT().FetchBatch(gomock.Any(), 3).Return(sessionBatch(1, 2), nil)
	})
	review.deps.Journal = stubJournal{
		records: []models.AnswerRecord{
			{Front: "xin chào", Label: "nhớ", ScoreChange: 5},
		},
		score: 5,
	}

	userCache.SetPrefs(456, models.VisualSettings{Autoplay: false})

	review.startSession(testMessage(456), 456)
	review.showHistory(testMessage(456), 456)

	sent := mockBot.Sent()
	require.NotEmpty(t, sent)

	last, ok := sent[len(sent)-1].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Contains(t, last.Text, "Lịch sử phiên học")
	assert.Contains(t, last.Text, "xin chào → nhớ (+5)")
	assert.Contains(t, last.Text, "Tổng điểm: +5")
}

func TestReviewT_ToggleSettings(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	review, _, userCache := newReviewMock(t, ctrl, nil)

	query := &tgbotapi.CallbackQuery{
		From:    &tgbotapi.User{ID: 456},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}, MessageID: 9},
		Data:    "toggle_autoplay",
	}
	review.handleToggle(query)

	prefs, ok := userCache.GetPrefs(456)
	require.True(t, ok)
	assert.False(t, prefs.Autoplay, "autoplay default true, toggled off")
}

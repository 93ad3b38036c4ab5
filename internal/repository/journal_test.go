package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/thanhnt94/newmindstack-sub001/internal/models"
	mock_repository "github.com/thanhnt94/newmindstack-sub001/internal/repository/mock"
)

func newJournalMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *JournalR {
	t.Helper()

	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &JournalR{db: db}
}

func TestJournalR_RecordAnswer(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx context.Context
		rec models.AnswerRecord
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				ctx: context.Background(),
				rec: models.AnswerRecord{
					SessionID:   "s1",
					ItemID:      1,
					Label:       "nhớ",
					ScoreChange: 5,
					AnsweredAt:  time.Now(),
				},
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantErr: false,
		},
		{
			name: "failed exec",
			args: args{
				ctx: context.Background(),
				rec: models.AnswerRecord{},
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			journal := newJournalMock(t, ctrl, tt.f)

			err := journal.RecordAnswer(tt.args.ctx, tt.args.rec)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestJournalR_History(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "failed select",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("select error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			journal := newJournalMock(t, ctrl, tt.f)

			_, err := journal.History(context.Background(), "s1", 10)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestJournalR_SessionScore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	journal := newJournalMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	})

	_, err := journal.SessionScore(context.Background(), "s1")
	require.NoError(t, err)
}

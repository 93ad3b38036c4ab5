package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/thanhnt94/newmindstack-sub001/internal/models"
)

// RegenerateAudio asks the server to synthesize audio for one side of an item
// and returns the resulting audio URL.
func (s *SessionAPI) RegenerateAudio(ctx context.Context, req models.TTSRequest) (string, error) {
	var result models.TTSResponse
	if err := s.postJSON(ctx, s.cfg.BaseURL+s.cfg.RegeneratePath, req, &result); err != nil {
		return "", fmt.Errorf("failed to regenerate audio for item %d: %w", req.ItemID, err)
	}

	if !result.Success {
		if result.Message != "" {
			return "", errors.New(result.Message)
		}
		return "", errors.New("audio generation rejected")
	}

	return result.AudioURL, nil
}

// SaveSettings syncs visual preferences to the server. Best effort: callers
// log failures and never block the learning flow on them.
func (s *SessionAPI) SaveSettings(ctx context.Context, settings models.VisualSettings) error {
	return s.postJSON(ctx, s.cfg.BaseURL+s.cfg.SettingsPath, models.SettingsRequest{VisualSettings: settings}, nil)
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/thanhnt94/newmindstack-sub001/internal/config"
	"github.com/thanhnt94/newmindstack-sub001/internal/models"
)

const csrfHeader = "X-CSRFToken"

// SessionAPI talks to the remote session server that owns persistence and
// scheduling. The client never interprets statistics, it only moves them.
type SessionAPI struct {
	http *http.Client
	cfg  config.APIConfig
}

func NewSessionAPI(cfg config.APIConfig, httpClient *http.Client) *SessionAPI {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SessionAPI{
		http: httpClient,
		cfg:  cfg,
	}
}

// FetchBatch requests the next batch of due items. A 404 with a message body
// is the server's exhaustion signal and is returned as an Exhausted result,
// not an error. The request is aborted after the configured fetch timeout so
// a stalled network call cannot wedge the loading state.
func (s *SessionAPI) FetchBatch(ctx context.Context, batchSize int) (models.BatchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	url := s.cfg.BaseURL + s.cfg.BatchPath
	if batchSize > 0 {
		url += "?batch_size=" + strconv.Itoa(batchSize)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.BatchResult{}, err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("failed to fetch batch: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data models.BatchResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return models.BatchResult{}, fmt.Errorf("failed to decode batch response: %w", err)
		}
		return models.BatchResult{
			Items:          data.Items,
			TotalInSession: data.TotalItemsInSession,
			SessionPoints:  data.SessionPoints,
			ContainerName:  data.ContainerName,
		}, nil
	case http.StatusNotFound:
		var data struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			data.Message = ""
		}
		return models.BatchResult{Exhausted: true, Message: data.Message}, nil
	default:
		return models.BatchResult{}, fmt.Errorf("batch fetch: unexpected status %d", resp.StatusCode)
	}
}

// SubmitAnswer posts one answer and returns the server's updated statistics.
func (s *SessionAPI) SubmitAnswer(ctx context.Context, sub models.AnswerSubmission) (models.SubmitResult, error) {
	var result models.SubmitResult
	if err := s.postJSON(ctx, s.cfg.BaseURL+s.cfg.SubmitPath, sub, &result); err != nil {
		return models.SubmitResult{}, fmt.Errorf("failed to submit answer for item %d: %w", sub.ItemID, err)
	}
	return result, nil
}

func (s *SessionAPI) postJSON(ctx context.Context, url string, body, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.CSRFToken != "" {
		req.Header.Set(csrfHeader, s.cfg.CSRFToken)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

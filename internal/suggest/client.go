// Package suggest calls the external text-generation provider that turns a
// session transcript plus the professional's notes into a suggestion.
package suggest

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	apperrors "github.com/NikolasPires/mind-flow/internal/errors"
)

// Generator is the contract consumed by the suggestion handler.
type Generator interface {
	Generate(ctx context.Context, transcript, notes string) (string, error)
}

// Client is a resty backed Generator implementation.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a suggestion client. No retries: the call is user
// triggered and the UI shows its own loading state.
func NewClient(baseURL, apiKey string, logger *zap.Logger) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		http.SetAuthToken(apiKey)
	}
	return &Client{http: http, logger: logger}
}

type generateRequest struct {
	Transcript string `json:"transcript"`
	Anotacoes  string `json:"anotacoes"`
}

type generateResponse struct {
	Suggestion string `json:"suggestion"`
}

// Generate sends transcript and notes to the provider and returns its
// suggestion text.
func (c *Client) Generate(ctx context.Context, transcript, notes string) (string, error) {
	var result generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(generateRequest{Transcript: transcript, Anotacoes: notes}).
		SetResult(&result).
		Post("/generate-suggestion")
	if err != nil {
		c.logger.Error("suggestion provider unreachable", zap.Error(err))
		return "", fmt.Errorf("%w: %v", apperrors.ErrSuggestionUnavailable, err)
	}
	if resp.IsError() {
		c.logger.Error("suggestion provider returned error", zap.Int("status", resp.StatusCode()))
		return "", fmt.Errorf("%w: status %d", apperrors.ErrSuggestionUnavailable, resp.StatusCode())
	}
	return result.Suggestion, nil
}

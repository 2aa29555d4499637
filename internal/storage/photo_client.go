// Package storage talks to the external image provider that hosts profile
// photos. The provider is a black box: uploads return a public URL, deletes
// are addressed by the public ID embedded in that URL.
package storage

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const uploadFolder = "mindflow/profile-photos"

// PhotoStorage is the contract consumed by the profile service.
type PhotoStorage interface {
	UploadImage(ctx context.Context, dataURI string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// Client is a resty backed PhotoStorage implementation.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a photo storage client.
func NewClient(baseURL, apiKey string, logger *zap.Logger) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		http.SetAuthToken(apiKey)
	}
	return &Client{http: http, logger: logger}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// UploadImage uploads a base64 data URI and returns the hosted public URL.
func (c *Client) UploadImage(ctx context.Context, dataURI string) (string, error) {
	var result uploadResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"file":   dataURI,
			"folder": uploadFolder,
		}).
		SetResult(&result).
		SetError(&result).
		Post("/image/upload")
	if err != nil {
		return "", fmt.Errorf("photo upload request: %w", err)
	}
	if resp.IsError() || result.SecureURL == "" {
		return "", fmt.Errorf("photo upload rejected: status %d: %s", resp.StatusCode(), result.Error.Message)
	}
	return result.SecureURL, nil
}

// DeleteImage removes a hosted image by public ID. Callers treat failures as
// best effort; the error is returned so they can log it.
func (c *Client) DeleteImage(ctx context.Context, publicID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"public_id": publicID}).
		Post("/image/destroy")
	if err != nil {
		return fmt.Errorf("photo delete request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("photo delete rejected: status %d", resp.StatusCode())
	}
	c.logger.Info("deleted orphaned photo", zap.String("public_id", publicID))
	return nil
}

var publicIDPattern = regexp.MustCompile(`v\d+/(.+?)(\.\w+)?$`)

// ExtractPublicID pulls the provider's public ID out of a hosted URL.
// Returns "" when the URL is not one of ours.
func ExtractPublicID(url string) string {
	if url == "" || !strings.Contains(url, "/upload/") {
		return ""
	}
	_, resourcePath, _ := strings.Cut(url, "/upload/")
	m := publicIDPattern.FindStringSubmatch(resourcePath)
	if m == nil {
		return ""
	}
	return m[1]
}

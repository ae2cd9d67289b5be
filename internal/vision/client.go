// Package vision calls the external image-analysis service that turns a
// shelf photo into candidate board game titles. The service runs the actual
// vision/LLM model; this client only ships the image and decodes the answer.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

const defaultTimeout = 30 * time.Second

// ErrNoGamesDetected is returned when the service finds no titles in the image.
var ErrNoGamesDetected = errors.New("no games detected in image")

// Detection is one candidate title extracted from a photo. BGGID is a hint
// supplied by the extraction model, not an authoritative catalog key.
type Detection struct {
	Title string `json:"title"`
	BGGID int64  `json:"bgg_id"`
}

// Client is an analyze-endpoint API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a new vision client for the given analyze endpoint URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type analyzeRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

type analyzeResponse struct {
	BoardGames []Detection `json:"boardGames"`
	Error      string      `json:"error"`
	Details    string      `json:"details"`
}

// Analyze submits a base64-encoded JPEG and returns the detected titles.
func (c *Client) Analyze(ctx context.Context, imageBase64 string) ([]Detection, error) {
	body, err := json.Marshal(analyzeRequest{ImageBase64: imageBase64})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response (status %s): %w", resp.Status, err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != "" {
			return nil, fmt.Errorf("analyze service error: %s", decoded.Error)
		}
		return nil, fmt.Errorf("analyze service error: %s", resp.Status)
	}

	if len(decoded.BoardGames) == 0 {
		return nil, ErrNoGamesDetected
	}
	return decoded.BoardGames, nil
}

// EncodeImage reads an image file and returns its base64 encoding.
func EncodeImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marquee/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Marquee/1.0"

	collectionPath = "/movies"
)

// Client implements domain.CatalogRepository against a REST collection
// endpoint: GET/POST on {base}/movies, PATCH/DELETE on {base}/movies/{id}.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a catalog API client. A zero timeout falls back to the
// default transport timeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// do performs a request and returns the response body. Transport failures map
// to domain.ErrServerOffline, non-2xx statuses to *domain.RemoteError.
func (c *Client) do(ctx context.Context, op, method, path string, payload any) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s", c.baseURL, path)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("catalog request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "op", op, "error", err)
		return nil, fmt.Errorf("%s: %w", op, domain.ErrServerOffline)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("catalog request error", "op", op, "status", resp.StatusCode, "body", string(data))
		return nil, &domain.RemoteError{Op: op, Status: resp.StatusCode}
	}

	return data, nil
}

// List returns the full collection
func (c *Client) List(ctx context.Context) ([]domain.Movie, error) {
	body, err := c.do(ctx, "list movies", http.MethodGet, collectionPath, nil)
	if err != nil {
		return nil, err
	}

	var dtos []movieDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse collection: %w", err)
	}

	return mapMovies(dtos), nil
}

// Create adds a movie and returns the server's representation with the
// assigned ID
func (c *Client) Create(ctx context.Context, draft domain.Draft) (domain.Movie, error) {
	body, err := c.do(ctx, "create movie", http.MethodPost, collectionPath, draft)
	if err != nil {
		return domain.Movie{}, err
	}

	return c.decodeMovie(body)
}

// Update applies a partial change and returns the merged movie
func (c *Client) Update(ctx context.Context, id string, patch domain.FieldPatch) (domain.Movie, error) {
	path := fmt.Sprintf("%s/%s", collectionPath, url.PathEscape(id))
	body, err := c.do(ctx, "update movie", http.MethodPatch, path, patch)
	if err != nil {
		return domain.Movie{}, err
	}

	return c.decodeMovie(body)
}

// Delete removes a movie. The response payload, if any, is discarded.
func (c *Client) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("%s/%s", collectionPath, url.PathEscape(id))
	_, err := c.do(ctx, "delete movie", http.MethodDelete, path, nil)
	return err
}

func (c *Client) decodeMovie(body []byte) (domain.Movie, error) {
	var dto movieDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return domain.Movie{}, fmt.Errorf("failed to parse movie: %w", err)
	}
	return mapMovie(dto), nil
}

// Package translator is the client for the asynchronous file-translation
// service: text is uploaded as a file, the service detects its language, a
// translation job is started against a pre-provisioned memory, and the result
// is downloaded once the job is ready.
package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
	}
}

// newRequest builds a request for path with the shared credential attached.
// The API key travels as the basic-auth username on every call.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, "")
	return req, nil
}

// Upload sends text to the service as an opaque file and returns the file id.
// Empty text is uploaded as-is.
func (c *Client) Upload(ctx context.Context, text string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "message.txt")
	if err != nil {
		return "", fmt.Errorf("failed to build upload body: %w", err)
	}
	if _, err := io.WriteString(fw, text); err != nil {
		return "", fmt.Errorf("failed to build upload body: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/v2/files", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("upload response missing file id")
	}
	return out.ID, nil
}

// FileInfo fetches the state of an uploaded file.
func (c *Client) FileInfo(ctx context.Context, fileID string) (FileStatus, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v2/files/"+url.PathEscape(fileID), nil)
	if err != nil {
		return FileStatus{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return FileStatus{}, fmt.Errorf("file status request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return FileStatus{}, err
	}

	var out FileStatus
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return FileStatus{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

// StartTranslation starts a translation job for fileID against memoryID and
// returns the translation id.
func (c *Client) StartTranslation(ctx context.Context, fileID string, memoryID int) (string, error) {
	payload := struct {
		FileID   string `json:"file_id"`
		MemoryID int    `json:"memory_id"`
	}{FileID: fileID, MemoryID: memoryID}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/v2/translations", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("translate response missing translation id")
	}
	return out.ID, nil
}

// TranslationStatus fetches the state of a translation job.
func (c *Client) TranslationStatus(ctx context.Context, translationID string) (JobStatus, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v2/translations/"+url.PathEscape(translationID), nil)
	if err != nil {
		return JobStatus{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return JobStatus{}, fmt.Errorf("translation status request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return JobStatus{}, err
	}

	var out JobStatus
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return JobStatus{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return out, nil
}

// Download fetches the finished translation text.
func (c *Client) Download(ctx context.Context, translationID string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v2/translations/"+url.PathEscape(translationID)+"/download", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	return string(body), nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
}

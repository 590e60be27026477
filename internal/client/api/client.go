// Package api wraps the backend HTTP surface consumed by the inspector
// client: one method per endpoint, plain request/response data, no retry and
// no caching. Every call is a fresh round trip and failures propagate to the
// caller unchanged.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/skye-prog/ai-workorder-management/internal/client/models"
	"github.com/skye-prog/ai-workorder-management/internal/logging"
)

const defaultTimeout = 30 * time.Second

// Client talks to the inspection backend. A zero-token Client can only call
// Login and Health; Login returns a derived Client carrying the issued bearer
// token, which is attached to every request that Client makes.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   string
	log     logging.Logger
}

// New returns an unauthenticated Client for the given base URL.
func New(baseURL string, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// withToken returns a copy of c that authenticates with token.
func (c *Client) withToken(token string) *Client {
	authed := *c
	authed.token = token
	return &authed
}

// loginResponse is the wire shape of POST /api/auth/login.
type loginResponse struct {
	Token string `json:"token"`
	models.User
}

// Login authenticates the inspector. On success it returns the session user
// and an authenticated Client to be used for all subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, *Client, error) {
	body := map[string]string{"username": username, "password": password}

	var resp loginResponse
	if err := c.postJSON(ctx, "/api/auth/login", body, &resp); err != nil {
		return nil, nil, err
	}

	user := resp.User
	return &user, c.withToken(resp.Token), nil
}

// ScheduledInspections fetches the pending work items assigned to an employee.
func (c *Client) ScheduledInspections(ctx context.Context, employeeID int) ([]models.ScheduledInspection, error) {
	var out []models.ScheduledInspection
	err := c.getJSON(ctx, fmt.Sprintf("/api/inspections/scheduled/%d", employeeID), &out)
	return out, err
}

// AssetDetail fetches the full record of a single asset.
func (c *Client) AssetDetail(ctx context.Context, assetID int) (*models.Asset, error) {
	var out models.Asset
	if err := c.getJSON(ctx, fmt.Sprintf("/api/assets/%d", assetID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AssetHistory fetches the closed audit records of an asset, newest first.
func (c *Client) AssetHistory(ctx context.Context, assetID int) ([]models.AuditHistoryEntry, error) {
	var out []models.AuditHistoryEntry
	err := c.getJSON(ctx, fmt.Sprintf("/api/assets/%d/history", assetID), &out)
	return out, err
}

// UploadPhoto sends one photo for storage and AI annotation.
func (c *Client) UploadPhoto(ctx context.Context, filename string, r io.Reader) (*models.PhotoUploadResult, error) {
	var out models.PhotoUploadResult
	if err := c.postMultipart(ctx, "/api/upload/photo", filename, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadVoice sends a recorded voice note for storage and transcription.
func (c *Client) UploadVoice(ctx context.Context, filename string, r io.Reader) (*models.VoiceUploadResult, error) {
	var out models.VoiceUploadResult
	if err := c.postMultipart(ctx, "/api/upload/voice", filename, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitAudit sends a completed draft audit and returns the stored result
// with its AI analysis.
func (c *Client) SubmitAudit(ctx context.Context, audit models.AuditSubmission) (*models.AuditResult, error) {
	var out models.AuditResult
	if err := c.postJSON(ctx, "/api/audits/submit", audit, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateReport asks the backend for a PDF report over the filtered audits.
func (c *Client) GenerateReport(ctx context.Context, filter models.ReportFilter) (*models.ReportResult, error) {
	var out models.ReportResult
	if err := c.postJSON(ctx, "/api/reports/generate", filter, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health probes backend liveness.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) postMultipart(ctx context.Context, path, filename string, r io.Reader, out any) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("read upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, out)
}

// do executes the request, attaching the bearer token when present, and
// decodes a 2xx JSON body into out (skipped when out is nil).
func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil && c.log != nil {
			c.log.Error(req.Context(), "close response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Detail: readDetail(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// readDetail extracts the backend's error message. The backend reports
// failures as {"detail": "..."}; anything else is returned as raw text.
func readDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return strings.TrimSpace(string(data))
}

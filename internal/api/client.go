package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/omerco13/menu-scanner/internal/menu"
)

// Default messages per operation, used when the backend response carries no
// detail text.
const (
	errUploadFailed  = "Failed to process menu. Please try again."
	errFetchMenus    = "Failed to fetch menus"
	errFetchMenu     = "Failed to fetch menu"
	errDeleteMenu    = "Failed to delete menu"
	errCheckFilename = "Failed to check filename"
	errNetwork       = "Network error. Please check your connection."
)

// APIError is the single classified error for all backend failures. Message
// is always safe to show to the user.
type APIError struct {
	Message    string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Client talks to the menu-scanner REST backend.
//
// The client configures no timeout of its own; callers bound each call with
// the context they pass in, so an abandoned page load cancels its request.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{},
	}
}

// UploadMenu submits a menu image for OCR and structuring. The backend
// responds with the full structured menu including its new id.
func (c *Client) UploadMenu(ctx context.Context, filename string, data []byte) (*menu.MenuData, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, &APIError{Message: errUploadFailed, Err: fmt.Errorf("creating form file: %w", err)}
	}
	if _, err := part.Write(data); err != nil {
		return nil, &APIError{Message: errUploadFailed, Err: fmt.Errorf("writing form file: %w", err)}
	}
	if err := writer.Close(); err != nil {
		return nil, &APIError{Message: errUploadFailed, Err: fmt.Errorf("closing form writer: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-menu", &body)
	if err != nil {
		return nil, &APIError{Message: errUploadFailed, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result menu.MenuData
	if err := c.do(req, errUploadFailed, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAllMenus returns the saved menu summaries in the order the backend
// lists them. The envelope's total count is decoded but not returned.
func (c *Client) GetAllMenus(ctx context.Context) ([]menu.MenuSummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/menus", nil)
	if err != nil {
		return nil, &APIError{Message: errFetchMenus, Err: fmt.Errorf("creating request: %w", err)}
	}

	var result menu.MenuList
	if err := c.do(req, errFetchMenus, &result); err != nil {
		return nil, err
	}
	return result.Menus, nil
}

// GetMenuByID fetches one saved menu. An unknown id comes back as an
// APIError with the backend's status code, never a nil menu.
func (c *Client) GetMenuByID(ctx context.Context, menuID string) (*menu.MenuData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/menus/"+url.PathEscape(menuID), nil)
	if err != nil {
		return nil, &APIError{Message: errFetchMenu, Err: fmt.Errorf("creating request: %w", err)}
	}

	var result menu.MenuData
	if err := c.do(req, errFetchMenu, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteMenu removes a saved menu.
func (c *Client) DeleteMenu(ctx context.Context, menuID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/menus/"+url.PathEscape(menuID), nil)
	if err != nil {
		return &APIError{Message: errDeleteMenu, Err: fmt.Errorf("creating request: %w", err)}
	}

	return c.do(req, errDeleteMenu, nil)
}

// CheckFilename reports whether a file with this name was already uploaded.
// Callers treat the check as advisory: its own failure must not block an
// upload.
func (c *Client) CheckFilename(ctx context.Context, filename string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/check-filename/"+url.PathEscape(filename), nil)
	if err != nil {
		return false, &APIError{Message: errCheckFilename, Err: fmt.Errorf("creating request: %w", err)}
	}

	var result struct {
		Exists bool `json:"exists"`
	}
	if err := c.do(req, errCheckFilename, &result); err != nil {
		return false, err
	}
	return result.Exists, nil
}

// do executes the request and classifies any failure. Non-2xx responses
// prefer the backend's JSON detail message over the operation fallback;
// transport failures use the generic network message.
func (c *Client) do(req *http.Request, fallback string, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return &APIError{Message: errNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{
			Message:    detailMessage(resp, fallback),
			StatusCode: resp.StatusCode,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{
				Message:    fallback,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("decoding response: %w", err),
			}
		}
	}

	return nil
}

// detailMessage extracts the backend's detail string from an error response
// body, falling back to the operation default.
func detailMessage(resp *http.Response, fallback string) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return fallback
}

package web

import (
	"context"
	"encoding/base64"
	"errors"
	"html/template"
	"log/slog"
	"strings"
	"sync"

	"github.com/omerco13/menu-scanner/internal/menu"
)

// Backend is the slice of the menu-scanner REST API the views consume.
type Backend interface {
	UploadMenu(ctx context.Context, filename string, data []byte) (*menu.MenuData, error)
	GetAllMenus(ctx context.Context) ([]menu.MenuSummary, error)
	GetMenuByID(ctx context.Context, menuID string) (*menu.MenuData, error)
	DeleteMenu(ctx context.Context, menuID string) error
	CheckFilename(ctx context.Context, filename string) (bool, error)
}

// MaxUploadSize is the largest accepted menu image (10 MiB).
const MaxUploadSize = 10 * 1024 * 1024

// User-facing validation messages.
const (
	ErrInvalidFileType = "Please select an image file (PNG, JPG, JPEG)"
	ErrFileTooLarge    = "File size must be less than 10MB"
	ErrDuplicateFile   = "This menu has already been uploaded to the system."
)

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// UploadController runs the select/preview/submit workflow for one visitor.
// Select applies the same validation pipeline whether the file came from the
// picker or drag-and-drop.
type UploadController struct {
	backend Backend

	mu          sync.Mutex
	filename    string
	contentType string
	data        []byte
	preview     string
	errMsg      string
	inFlight    bool
}

// UploadState is a snapshot of the controller for rendering.
type UploadState struct {
	HasFile  bool
	Filename string
	Preview  string
	Error    string
	InFlight bool
}

// PreviewURL exposes the data-URL preview to templates. html/template
// filters data: schemes out of src attributes unless typed as a URL.
func (s UploadState) PreviewURL() template.URL {
	return template.URL(s.Preview)
}

// NewUploadController creates a controller backed by the given API.
func NewUploadController(backend Backend) *UploadController {
	return &UploadController{backend: backend}
}

// Select validates a chosen file and, if it passes, stores it and builds a
// data-URL preview. Validation failures set the error message and leave any
// previously selected file untouched. The duplicate-name check is advisory:
// when the check itself fails the file is still accepted.
func (u *UploadController) Select(ctx context.Context, filename, contentType string, data []byte) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if !allowedImageTypes[strings.ToLower(contentType)] {
		u.errMsg = ErrInvalidFileType
		return
	}

	if len(data) > MaxUploadSize {
		u.errMsg = ErrFileTooLarge
		return
	}

	exists, err := u.backend.CheckFilename(ctx, filename)
	if err != nil {
		slog.Error("Error checking filename", "filename", filename, "error", err)
	} else if exists {
		u.errMsg = ErrDuplicateFile
		return
	}

	u.filename = filename
	u.contentType = contentType
	u.data = data
	u.errMsg = ""
	u.preview = "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Submit uploads the selected file. On success it returns the structured
// menu so the caller can navigate to its detail page; on failure the
// classified message lands in the controller state. A submit while another
// is in flight is rejected so rapid double-submits cannot race.
func (u *UploadController) Submit(ctx context.Context) (*menu.MenuData, error) {
	u.mu.Lock()
	if u.data == nil {
		u.mu.Unlock()
		return nil, errors.New("no file selected")
	}
	if u.inFlight {
		u.mu.Unlock()
		return nil, errors.New("upload already in progress")
	}
	u.inFlight = true
	u.errMsg = ""
	filename, data := u.filename, u.data
	u.mu.Unlock()

	result, err := u.backend.UploadMenu(ctx, filename, data)

	u.mu.Lock()
	defer u.mu.Unlock()
	u.inFlight = false
	if err != nil {
		slog.Error("Upload error", "filename", filename, "error", err)
		u.errMsg = err.Error()
		return nil, err
	}
	return result, nil
}

// Remove clears the selection, preview, and error so the same filename can
// be picked again.
func (u *UploadController) Remove() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.filename = ""
	u.contentType = ""
	u.data = nil
	u.preview = ""
	u.errMsg = ""
}

// State returns a snapshot for rendering.
func (u *UploadController) State() UploadState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return UploadState{
		HasFile:  u.data != nil,
		Filename: u.filename,
		Preview:  u.preview,
		Error:    u.errMsg,
		InFlight: u.inFlight,
	}
}

package web

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/omerco13/menu-scanner/internal/menu"
)

// handleIndex serves the upload page with the visitor's current workflow
// state (selection, preview, error).
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	s.renderPage(w, "upload.html", sess.upload.State())
}

// handleUploadSelect accepts a picked or dropped file and runs it through
// the validation pipeline. The outcome (preview or error) is shown back on
// the upload page.
func (s *Server) handleUploadSelect(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)

	// Parse multipart form. The cap is above the accepted size so an
	// oversize file still reaches the controller and gets the proper
	// validation message instead of a parse error.
	maxFormSize := int64(32 << 20)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		slog.Error("Error parsing multipart form", "error", err)
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		slog.Error("Error getting file from form", "error", err)
		http.Error(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error("Error reading file data", "error", err, "filename", header.Filename)
		http.Error(w, "Error reading file. Please try again.", http.StatusInternalServerError)
		return
	}

	// Determine content type
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		switch ext {
		case ".jpg", ".jpeg":
			contentType = "image/jpeg"
		case ".png":
			contentType = "image/png"
		default:
			contentType = "application/octet-stream"
		}
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))

	sess.upload.Select(r.Context(), header.Filename, contentType, data)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleUploadSubmit sends the selected file to the backend and navigates to
// the new menu's detail page on success.
func (s *Server) handleUploadSubmit(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)

	result, err := sess.upload.Submit(r.Context())
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess.upload.Remove()
	http.Redirect(w, r, "/menus/"+result.MenuID, http.StatusSeeOther)
}

// handleUploadRemove clears the selection so the same filename can be picked
// again.
func (s *Server) handleUploadRemove(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)
	sess.upload.Remove()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleListMenus serves the saved-menus page. Every page view re-fetches,
// except the render right after a delete: the deletion was already applied
// to the view's local state and must not trigger a re-fetch.
func (s *Server) handleListMenus(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)

	if r.URL.Query().Get("from") != "delete" || !sess.list.Loaded() {
		sess.list.Load(r.Context())
	}

	s.renderPage(w, "menus.html", sess.list.State())
}

// handleDeleteMenu deletes one saved menu and re-renders the list from local
// state.
func (s *Server) handleDeleteMenu(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.get(w, r)

	menuID := r.PathValue("id")
	if menuID == "" {
		http.Error(w, "Menu ID required", http.StatusBadRequest)
		return
	}

	// A failed delete leaves the rendered set unchanged; the view keeps the
	// message for the next render either way.
	_ = sess.list.Delete(r.Context(), menuID)

	http.Redirect(w, r, "/menus?from=delete", http.StatusSeeOther)
}

// detailPage is the template data for the menu detail page.
type detailPage struct {
	MenuID string
	Error  string
	Doc    *menu.Document
}

// handleMenuDetail fetches one menu and renders it, or an explicit error
// block when the fetch fails.
func (s *Server) handleMenuDetail(w http.ResponseWriter, r *http.Request) {
	menuID := r.PathValue("id")
	if menuID == "" {
		http.Error(w, "Menu ID required", http.StatusBadRequest)
		return
	}

	data, err := LoadMenu(r.Context(), s.backend, menuID)
	if err != nil {
		s.renderPage(w, "menu.html", detailPage{MenuID: menuID, Error: err.Error()})
		return
	}

	doc := menu.Render(*data)
	s.renderPage(w, "menu.html", detailPage{MenuID: menuID, Doc: &doc})
}

// renderPage executes a page template.
func (s *Server) renderPage(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("Error rendering page", "template", name, "error", err)
	}
}

// handleStaticCSS serves the CSS file
func (s *Server) handleStaticCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css")
	w.Write(appCSS)
}

// handleStaticJS serves the JavaScript file
func (s *Server) handleStaticJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write(appJS)
}

package web

import (
	"context"
	"log/slog"
	"sync"

	"github.com/omerco13/menu-scanner/internal/menu"
)

// ListView holds the saved-menus list for one visitor. The slice is the only
// cache: a successful delete removes that one entry in place and nothing
// triggers a background refresh.
type ListView struct {
	backend Backend

	mu        sync.Mutex
	menus     []menu.MenuSummary
	loaded    bool
	errMsg    string
	deleteErr string
}

// ListState is a snapshot of the list view for rendering. Error and Empty
// are distinct states: Empty means the fetch succeeded with zero menus.
type ListState struct {
	Menus     []menu.MenuSummary
	Error     string
	DeleteErr string
	Empty     bool
}

// NewListView creates a list view backed by the given API.
func NewListView(backend Backend) *ListView {
	return &ListView{backend: backend}
}

// Load fetches all summaries, replacing any previous error. Retry is the
// same operation re-run.
func (v *ListView) Load(ctx context.Context) {
	summaries, err := v.backend.GetAllMenus(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loaded = true
	v.deleteErr = ""
	if err != nil {
		slog.Error("Error loading menus", "error", err)
		v.errMsg = err.Error()
		return
	}
	v.errMsg = ""
	v.menus = summaries
}

// Loaded reports whether the view has fetched at least once.
func (v *ListView) Loaded() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loaded
}

// Delete removes one menu. On success exactly that id disappears from the
// local slice with no re-fetch; on failure the slice is untouched and the
// message is surfaced on the next render.
func (v *ListView) Delete(ctx context.Context, menuID string) error {
	if err := v.backend.DeleteMenu(ctx, menuID); err != nil {
		slog.Error("Error deleting menu", "menu_id", menuID, "error", err)
		v.mu.Lock()
		v.deleteErr = err.Error()
		v.mu.Unlock()
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.deleteErr = ""
	kept := make([]menu.MenuSummary, 0, len(v.menus))
	for _, summary := range v.menus {
		if summary.ID != menuID {
			kept = append(kept, summary)
		}
	}
	v.menus = kept
	return nil
}

// State returns a snapshot for rendering.
func (v *ListView) State() ListState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return ListState{
		Menus:     v.menus,
		Error:     v.errMsg,
		DeleteErr: v.deleteErr,
		Empty:     v.errMsg == "" && len(v.menus) == 0,
	}
}

// LoadMenu fetches one menu for the detail page. The route id is stamped
// onto the result unconditionally so the displayed record always carries an
// id even if the backend payload omits it.
func LoadMenu(ctx context.Context, backend Backend, menuID string) (*menu.MenuData, error) {
	data, err := backend.GetMenuByID(ctx, menuID)
	if err != nil {
		slog.Error("Error loading menu", "menu_id", menuID, "error", err)
		return nil, err
	}
	data.MenuID = menuID
	return data, nil
}

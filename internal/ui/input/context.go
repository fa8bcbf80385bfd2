package input

import (
	"jobdash/internal/search"
	"jobdash/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

func (c *ModelContext) ActiveTab() state.Tab {
	return c.State.ActiveTab
}

func (c *ModelContext) LoggedIn() bool {
	return c.State.LoggedIn
}

// HasResults reports whether the active tab shows any job rows
func (c *ModelContext) HasResults() bool {
	pane, ok := c.State.Pane()
	return ok && len(pane.Results.Rows()) > 0
}

func (c *ModelContext) HasNextPage() bool {
	pane, ok := c.State.Pane()
	return ok && pane.Results.HasNextPage()
}

func (c *ModelContext) HasPrevPage() bool {
	pane, ok := c.State.Pane()
	return ok && pane.Results.HasPrevPage()
}

func (c *ModelContext) HasSuggestions() bool {
	pane, ok := c.State.Pane()
	return ok && len(pane.CurrentSuggestions()) > 0
}

// FormOpen reports whether the active tab is showing an editable form
func (c *ModelContext) FormOpen() bool {
	switch c.State.ActiveTab {
	case state.TabLogin:
		return !c.State.LoggedIn
	case state.TabAdmin:
		return c.State.Admin.ShowJobForm
	}
	return false
}

func (c *ModelContext) form() *state.Form {
	switch c.State.ActiveTab {
	case state.TabLogin:
		return &c.State.Login
	case state.TabAdmin:
		return &c.State.Admin.JobForm
	}
	return nil
}

func (c *ModelContext) FormFields() int {
	if f := c.form(); f != nil {
		return len(f.Labels)
	}
	return 0
}

func (c *ModelContext) FormFocus() int {
	if f := c.form(); f != nil {
		return f.Focus
	}
	return 0
}

// SortColumn is the active pane's sort column, or the default when unsorted
func (c *ModelContext) SortColumn() string {
	pane, ok := c.State.Pane()
	if !ok || pane.Filter.Sort().Column == "" {
		return search.DefaultSort.Column
	}
	return pane.Filter.Sort().Column
}

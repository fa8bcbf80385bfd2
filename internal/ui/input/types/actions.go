package types

import "jobdash/internal/ui/state"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SwitchTabAction struct {
	Tab   state.Tab
	Delta int // used when Delta != 0
}

func (a SwitchTabAction) Type() string { return "switch_tab" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// BeginEditAction asks the model to load the value being edited into the text input
type BeginEditAction struct{}

func (a BeginEditAction) Type() string { return "begin_edit" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Search field actions
type CycleFieldAction struct {
	Delta int
}

func (a CycleFieldAction) Type() string { return "cycle_field" }

type PickSuggestionAction struct {
	Delta int
}

func (a PickSuggestionAction) Type() string { return "pick_suggestion" }

type ClearFieldAction struct{}

func (a ClearFieldAction) Type() string { return "clear_field" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

type AdjustSalaryAction struct {
	Lower bool
	Steps int
}

func (a AdjustSalaryAction) Type() string { return "adjust_salary" }

// Paging and sorting
type PageAction struct {
	Delta int
}

func (a PageAction) Type() string { return "page" }

type PageSizeAction struct {
	Delta int
}

func (a PageSizeAction) Type() string { return "page_size" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

// SortByAction sorts the job table by one column, keeping the direction
type SortByAction struct {
	Column string
}

func (a SortByAction) Type() string { return "sort_by" }

// UpdateSortIndexAction moves the sort picker highlight; -1 hides it
type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

type FlipSortAction struct{}

func (a FlipSortAction) Type() string { return "flip_sort" }

// Command actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type ExportAction struct{}

func (a ExportAction) Type() string { return "export" }

type OpenLogsAction struct{}

func (a OpenLogsAction) Type() string { return "open_logs" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }

// Forms
type OpenFormAction struct{}

func (a OpenFormAction) Type() string { return "open_form" }

type FormFocusAction struct {
	Delta int
}

func (a FormFocusAction) Type() string { return "form_focus" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

type ParseSalaryAction struct{}

func (a ParseSalaryAction) Type() string { return "parse_salary" }

// Admin actions
type RequestConfirmAction struct {
	Action state.PendingAction
}

func (a RequestConfirmAction) Type() string { return "request_confirm" }

type ConfirmAction struct {
	Accept bool
}

func (a ConfirmAction) Type() string { return "confirm" }

type DismissPopupAction struct{}

func (a DismissPopupAction) Type() string { return "dismiss_popup" }

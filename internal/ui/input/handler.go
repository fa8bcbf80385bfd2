package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"jobdash/internal/ui/input/modes"
	"jobdash/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
}

func New() *Handler {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeEditField] = modes.NewEditFieldMode(h.textInput)
	h.modes[types.ModeForm] = modes.NewFormMode(h.textInput)
	h.modes[types.ModeConfirm] = modes.NewConfirmMode()
	h.modes[types.ModeSort] = modes.NewSortSelectMode()

	return h
}

// HandleKey routes a key to the current mode. Mode changes are applied
// here; every other action is returned for the model to execute.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		modeActions, modeCmd := h.switchMode(changeMode, ctx)
		allActions = append(allActions, modeActions...)
		if modeCmd != nil {
			cmd = modeCmd
		}
	}

	// Keys the text mode didn't claim go to the text input
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
		}
	}

	return allActions, cmd
}

// SwitchMode enters mode on behalf of the model, e.g. when a form opens
// or a confirmation is requested. It returns the Exit and Enter actions.
func (h *Handler) SwitchMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	return h.switchMode(types.ChangeModeAction{Mode: mode}, ctx)
}

func (h *Handler) switchMode(change types.ChangeModeAction, ctx types.Context) ([]types.Action, tea.Cmd) {
	var actions []types.Action
	var cmd tea.Cmd

	if h.modes[h.currentMode] != nil {
		actions = append(actions, h.modes[h.currentMode].Exit(ctx)...)
	}

	oldMode := h.currentMode
	h.currentMode = change.Mode

	if h.isTextMode(h.currentMode) {
		h.textInput.Reset()
		if text, ok := change.Data.(string); ok {
			h.textInput.SetValue(text)
			h.textInput.CursorEnd()
		}
		cmd = textinput.Blink
	} else if h.isTextMode(oldMode) {
		h.textInput.Blur()
	}

	if h.modes[h.currentMode] != nil {
		actions = append(actions, h.modes[h.currentMode].Enter(ctx)...)
	}
	return actions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// TextInput returns the shared text input while a text mode is active
func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// TextInputModel returns the shared text input regardless of mode
func (h *Handler) TextInputModel() *textinput.Model {
	return h.textInput
}

// SetText replaces the text being edited, masking it for passwords
func (h *Handler) SetText(value string, masked bool) {
	h.textInput.SetValue(value)
	h.textInput.CursorEnd()
	if masked {
		h.textInput.EchoMode = textinput.EchoPassword
		h.textInput.EchoCharacter = '•'
	} else {
		h.textInput.EchoMode = textinput.EchoNormal
	}
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeEditField || mode == types.ModeForm
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
	h.textInput.EchoMode = textinput.EchoNormal
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

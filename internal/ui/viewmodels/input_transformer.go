package viewmodels

import (
	"github.com/charmbracelet/bubbles/textinput"

	"jobdash/internal/ui/input/types"
)

// InputTransformer handles input mode transformations
type InputTransformer struct {
	mode      types.Mode
	textInput textinput.Model
}

// NewInputTransformer creates a new input transformer
func NewInputTransformer(textInput textinput.Model) *InputTransformer {
	return &InputTransformer{
		mode:      types.ModeNormal,
		textInput: textInput,
	}
}

// SetMode sets the current input mode
func (it *InputTransformer) SetMode(mode types.Mode) {
	it.mode = mode
}

// GetInputText returns the rendered text input while a text mode is active
func (it *InputTransformer) GetInputText() string {
	switch it.mode {
	case types.ModeEditField, types.ModeForm:
		return it.textInput.View()
	}
	return ""
}

// GetInputModeString returns the mode name, empty in normal mode
func (it *InputTransformer) GetInputModeString() string {
	if it.mode == types.ModeNormal {
		return ""
	}
	return it.mode.String()
}

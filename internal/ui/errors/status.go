package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/quarryapp/quarry/internal/model"
)

// stateAppearance pairs each connection state with its icon and the label
// shown when no more specific message is set. Icons differ by shape, not
// just color, so the state reads without color vision.
type stateAppearance struct {
	icon     fyne.Resource
	fallback string
}

func appearanceFor(state string) stateAppearance {
	switch state {
	case "connecting":
		return stateAppearance{theme.ViewRefreshIcon(), "Connecting..."}
	case "connected":
		return stateAppearance{theme.ConfirmIcon(), "Connected"}
	case "error":
		return stateAppearance{theme.ErrorIcon(), "Connection Error"}
	case "disconnected":
		return stateAppearance{theme.RadioButtonIcon(), "Disconnected"}
	default:
		return stateAppearance{theme.RadioButtonIcon(), "Unknown state"}
	}
}

// StatusBar shows the cluster connection state at the bottom of the window.
type StatusBar struct {
	widget.BaseWidget

	state *model.ConnectionUIState
	icon  *widget.Icon
	label *widget.Label
}

// NewStatusBar creates a status bar tracking the given connection state.
func NewStatusBar(state *model.ConnectionUIState) *StatusBar {
	s := &StatusBar{
		state: state,
		icon:  widget.NewIcon(theme.RadioButtonIcon()),
		label: widget.NewLabel("Disconnected"),
	}
	s.label.Truncation = fyne.TextTruncateEllipsis
	s.ExtendBaseWidget(s)

	refresh := binding.NewDataListener(s.refreshFromState)
	state.State.AddListener(refresh)
	state.Message.AddListener(refresh)
	s.refreshFromState()

	return s
}

func (s *StatusBar) refreshFromState() {
	stateStr, _ := s.state.State.Get()
	message, _ := s.state.Message.Get()

	look := appearanceFor(stateStr)
	s.icon.SetResource(look.icon)
	if message == "" {
		message = look.fallback
	}
	s.label.SetText(message)
}

// SetState updates both the state and its message. State should be one of
// "disconnected", "connecting", "connected", or "error".
func (s *StatusBar) SetState(state string, message string) {
	_ = s.state.State.Set(state)
	_ = s.state.Message.Set(message)
}

// CreateRenderer implements fyne.Widget.
func (s *StatusBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewHBox(s.icon, s.label))
}

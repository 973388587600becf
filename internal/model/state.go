package model

import "fyne.io/fyne/v2/data/binding"

// ApplicationState represents the centralized application state with Fyne data bindings.
// All UI components bind to these values for reactive updates.
type ApplicationState struct {
	// Connection state
	Connected   binding.Bool
	ClusterName binding.String
	ClusterURL  binding.String

	// Response state shared by every operation panel
	Response *ResponseState
}

// NewApplicationState creates a new ApplicationState with initialized bindings.
func NewApplicationState() *ApplicationState {
	return &ApplicationState{
		Connected:   binding.NewBool(),
		ClusterName: binding.NewString(),
		ClusterURL:  binding.NewString(),
		Response:    NewResponseState(),
	}
}

// ResponseState represents the state of the results panel.
type ResponseState struct {
	RawData  binding.String // raw JSON payload of the last response
	Loading  binding.Bool   // whether a request is in progress
	Error    binding.String // error message if the request failed
	Status   binding.String // HTTP status line (e.g., "200 OK")
	Duration binding.String // request duration (e.g., "123ms")
	Size     binding.String // response body size (e.g., "1.2 KB")
}

// NewResponseState creates a new ResponseState with initialized bindings.
func NewResponseState() *ResponseState {
	loading := binding.NewBool()
	_ = loading.Set(false)

	return &ResponseState{
		RawData:  binding.NewString(),
		Loading:  loading,
		Error:    binding.NewString(),
		Status:   binding.NewString(),
		Duration: binding.NewString(),
		Size:     binding.NewString(),
	}
}

// ConnectionUIState represents the UI state for connection status display.
// States: "disconnected", "connecting", "connected", "error"
type ConnectionUIState struct {
	State   binding.String // Connection state
	Message binding.String // Status message
}

// NewConnectionUIState creates a new ConnectionUIState with initialized bindings.
func NewConnectionUIState() *ConnectionUIState {
	state := binding.NewString()
	_ = state.Set("disconnected")

	return &ConnectionUIState{
		State:   state,
		Message: binding.NewString(),
	}
}

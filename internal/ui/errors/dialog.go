package errors

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	apperrors "github.com/quarryapp/quarry/internal/errors"
)

// dialogSize keeps error dialogs from resizing the window around long
// messages.
var dialogSize = fyne.NewSize(500, 400)

// ShowError displays a plain error dialog.
func ShowError(err error, window fyne.Window) {
	if err == nil {
		return
	}
	dialog.ShowError(err, window)
}

// ShowRequestError displays a rich dialog for a failed request. The error
// is classified first (refused connection, TLS failure, timeout) so the
// dialog can suggest the right fix; onRetry backs the Retry button when
// the classification offers one.
func ShowRequestError(err error, window fyne.Window, onRetry func()) {
	if err == nil {
		return
	}

	uiErr := apperrors.ClassifyTransportError(err)
	if uiErr == nil {
		dialog.ShowError(err, window)
		return
	}

	content := buildErrorContent(uiErr)

	if retryable(uiErr) && onRetry != nil {
		d := dialog.NewCustomConfirm(uiErr.Title, "Retry", "Close", content,
			func(retry bool) {
				if retry {
					onRetry()
				}
			}, window)
		d.Resize(dialogSize)
		d.Show()
		return
	}

	d := dialog.NewCustom(uiErr.Title, "Close", content, window)
	d.Resize(dialogSize)
	d.Show()
}

// buildErrorContent lays out the message, recovery bullets, and collapsed
// technical details.
func buildErrorContent(uiErr *apperrors.UIError) fyne.CanvasObject {
	content := container.NewVBox(wrapped(uiErr.Message))

	if len(uiErr.Recovery) > 0 {
		content.Add(widget.NewSeparator())
		content.Add(widget.NewLabel("You can:"))
		for _, suggestion := range uiErr.Recovery {
			content.Add(wrapped("• " + suggestion))
		}
	}

	if uiErr.Details != "" {
		content.Add(widget.NewAccordion(
			widget.NewAccordionItem("Technical Details", wrapped(uiErr.Details)),
		))
	}

	return content
}

func retryable(uiErr *apperrors.UIError) bool {
	for _, action := range uiErr.Actions {
		if action.Label == "Retry" {
			return true
		}
	}
	return false
}

func wrapped(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.Wrapping = fyne.TextWrapWord
	return label
}

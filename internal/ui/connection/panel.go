package connection

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/quarryapp/quarry/internal/domain"
	apperrors "github.com/quarryapp/quarry/internal/errors"
	"github.com/quarryapp/quarry/internal/model"
	"github.com/quarryapp/quarry/internal/ui/components"
)

// Panel holds the cluster connection controls at the top of the main window.
// The connect button doubles as a disconnect button once connected, driven
// by the shared connection UI state.
type Panel struct {
	widget.BaseWidget

	state *model.ConnectionUIState

	hostEntry  *widget.Entry
	portEntry  *widget.Entry
	indexEntry *widget.Entry

	httpsCheck     *widget.Check
	verifySSLCheck *widget.Check

	authCheck     *widget.Check
	usernameEntry *widget.Entry
	passwordEntry *widget.Entry

	connectBtn *widget.Button

	onConnect    func(conn domain.Connection)
	onDisconnect func()

	content *fyne.Container
}

// NewPanel creates a connection panel pre-filled with the given settings.
func NewPanel(state *model.ConnectionUIState, initial domain.Connection) *Panel {
	p := &Panel{state: state}

	p.hostEntry = widget.NewEntry()
	p.hostEntry.SetPlaceHolder("localhost")

	p.portEntry = widget.NewEntry()
	p.portEntry.SetPlaceHolder("9200")

	p.indexEntry = widget.NewEntry()
	p.indexEntry.SetPlaceHolder("my-index")

	p.verifySSLCheck = widget.NewCheck("Verify SSL Certificate", nil)

	p.httpsCheck = widget.NewCheck("Use HTTPS", func(checked bool) {
		if checked {
			p.verifySSLCheck.Show()
		} else {
			p.verifySSLCheck.Hide()
		}
	})

	p.usernameEntry = widget.NewEntry()
	p.usernameEntry.SetPlaceHolder("Username")
	p.passwordEntry = widget.NewPasswordEntry()
	p.passwordEntry.SetPlaceHolder("Password")

	p.authCheck = widget.NewCheck("Use Authentication", func(checked bool) {
		if checked {
			p.usernameEntry.Enable()
			p.passwordEntry.Enable()
		} else {
			p.usernameEntry.Disable()
			p.passwordEntry.Disable()
		}
	})

	p.connectBtn = widget.NewButton("Connect", func() {
		p.handleButtonClick()
	})

	p.SetConnection(initial)
	p.buildContent()

	// Listen to state changes to update the button
	state.State.AddListener(binding.NewDataListener(func() {
		p.updateButton()
	}))

	p.ExtendBaseWidget(p)
	return p
}

func (p *Panel) buildContent() {
	addressRow := container.NewBorder(
		nil, nil, nil,
		p.connectBtn,
		container.NewGridWithColumns(3,
			container.NewBorder(nil, nil, widget.NewLabel("Host"), nil, p.hostEntry),
			container.NewBorder(nil, nil, widget.NewLabel("Port"), nil, p.portEntry),
			container.NewBorder(nil, nil, widget.NewLabel("Index"), nil, p.indexEntry),
		),
	)

	securityRow := container.NewHBox(p.httpsCheck, p.verifySSLCheck)

	authSection := components.NewCollapsibleSection("Authentication",
		container.NewVBox(
			p.authCheck,
			container.NewGridWithColumns(2, p.usernameEntry, p.passwordEntry),
		),
	)

	p.content = container.NewVBox(addressRow, securityRow, authSection)
}

// SetOnConnect sets the callback for when the connect button is clicked
// while disconnected. The callback receives already-validated settings.
func (p *Panel) SetOnConnect(fn func(conn domain.Connection)) {
	p.onConnect = fn
}

// SetOnDisconnect sets the callback for when the button is clicked while connected.
func (p *Panel) SetOnDisconnect(fn func()) {
	p.onDisconnect = fn
}

// Connection assembles the current form values into connection settings.
// The port must be numeric; full validation happens in the domain layer.
func (p *Panel) Connection() (domain.Connection, error) {
	conn := domain.Connection{
		Host:        p.hostEntry.Text,
		UseHTTPS:    p.httpsCheck.Checked,
		VerifySSL:   p.verifySSLCheck.Checked,
		Index:       p.indexEntry.Text,
		AuthEnabled: p.authCheck.Checked,
		Username:    p.usernameEntry.Text,
		Password:    p.passwordEntry.Text,
	}

	if p.portEntry.Text != "" {
		port, err := strconv.Atoi(p.portEntry.Text)
		if err != nil {
			return domain.Connection{}, apperrors.ValidationError{
				Field:   "port",
				Message: "port must be a number",
			}
		}
		conn.Port = port
	}

	if err := conn.Validate(); err != nil {
		return domain.Connection{}, err
	}
	return conn, nil
}

// SetConnection fills the form from stored settings.
func (p *Panel) SetConnection(conn domain.Connection) {
	p.hostEntry.SetText(conn.Host)
	p.portEntry.SetText(strconv.Itoa(conn.Port))
	p.indexEntry.SetText(conn.Index)
	p.httpsCheck.SetChecked(conn.UseHTTPS)
	p.verifySSLCheck.SetChecked(conn.VerifySSL)
	if conn.UseHTTPS {
		p.verifySSLCheck.Show()
	} else {
		p.verifySSLCheck.Hide()
	}
	p.authCheck.SetChecked(conn.AuthEnabled)
	p.usernameEntry.SetText(conn.Username)
	p.passwordEntry.SetText(conn.Password)
	if conn.AuthEnabled {
		p.usernameEntry.Enable()
		p.passwordEntry.Enable()
	} else {
		p.usernameEntry.Disable()
		p.passwordEntry.Disable()
	}
}

// Index returns the target index currently entered in the form.
func (p *Panel) Index() string {
	return p.indexEntry.Text
}

// FocusHost moves keyboard focus to the host entry.
func (p *Panel) FocusHost() {
	c := fyne.CurrentApp().Driver().CanvasForObject(p)
	if c != nil {
		c.Focus(p.hostEntry)
	}
}

// CreateRenderer implements fyne.Widget.
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.content)
}

// handleButtonClick handles clicks on the connect/disconnect button.
func (p *Panel) handleButtonClick() {
	state, err := p.state.State.Get()
	if err != nil {
		return
	}

	switch state {
	case "disconnected", "error":
		if p.onConnect == nil {
			return
		}
		conn, err := p.Connection()
		if err != nil {
			_ = p.state.State.Set("error")
			_ = p.state.Message.Set(err.Error())
			return
		}
		p.onConnect(conn)
	case "connected":
		if p.onDisconnect != nil {
			p.onDisconnect()
		}
	case "connecting":
		// Do nothing while connecting
	}
}

// updateButton updates the button text and entry state based on connection state.
func (p *Panel) updateButton() {
	state, err := p.state.State.Get()
	if err != nil {
		return
	}

	switch state {
	case "disconnected":
		p.connectBtn.SetText("Connect")
		p.connectBtn.Enable()
		p.setFormEnabled(true)
	case "connecting":
		p.connectBtn.SetText("Connecting...")
		p.connectBtn.Disable()
		p.setFormEnabled(false)
	case "connected":
		p.connectBtn.SetText("Disconnect")
		p.connectBtn.Enable()
		p.setFormEnabled(false)
	case "error":
		p.connectBtn.SetText("Retry")
		p.connectBtn.Enable()
		p.setFormEnabled(true)
	}
}

// setFormEnabled toggles every input; the index stays editable while
// connected so searches can target other indices without reconnecting.
func (p *Panel) setFormEnabled(enabled bool) {
	if enabled {
		p.hostEntry.Enable()
		p.portEntry.Enable()
		p.httpsCheck.Enable()
		p.verifySSLCheck.Enable()
		p.authCheck.Enable()
		if p.authCheck.Checked {
			p.usernameEntry.Enable()
			p.passwordEntry.Enable()
		}
	} else {
		p.hostEntry.Disable()
		p.portEntry.Disable()
		p.httpsCheck.Disable()
		p.verifySSLCheck.Disable()
		p.authCheck.Disable()
		p.usernameEntry.Disable()
		p.passwordEntry.Disable()
	}
}

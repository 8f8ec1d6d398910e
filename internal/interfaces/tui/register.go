package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/erp/console/internal/application/session"
	"github.com/erp/console/internal/infrastructure/api"
)

// registerFields orders the inputs; the keys double as the error map keys
// from session.Registration.Validate.
var registerFields = []struct {
	key   string
	label string
}{
	{"first_name", "First Name"},
	{"last_name", "Last Name"},
	{"email", "Email"},
	{"phone_number", "Phone Number"},
	{"password", "Password"},
	{"confirm", "Confirm Password"},
}

// registerPage creates a new account from the login screen.
type registerPage struct {
	client *api.Client
	log    *zap.Logger

	inputs []textinput.Model
	focus  int
	busy   bool
	errs   map[string]string
	errMsg string
}

func newRegisterPage(client *api.Client, log *zap.Logger) *registerPage {
	p := &registerPage{client: client, log: log}
	p.inputs = make([]textinput.Model, len(registerFields))
	for i, f := range registerFields {
		in := textinput.New()
		in.Placeholder = f.label
		in.CharLimit = 120
		if f.key == "password" || f.key == "confirm" {
			in.EchoMode = textinput.EchoPassword
		}
		p.inputs[i] = in
	}
	p.inputs[0].Focus()
	return p
}

func (p *registerPage) Init() tea.Cmd {
	return textinput.Blink
}

func (p *registerPage) registration() session.Registration {
	return session.Registration{
		FirstName:   p.inputs[0].Value(),
		LastName:    p.inputs[1].Value(),
		Email:       p.inputs[2].Value(),
		PhoneNumber: p.inputs[3].Value(),
		Password:    p.inputs[4].Value(),
		Confirm:     p.inputs[5].Value(),
	}
}

func (p *registerPage) setFocus(i int) tea.Cmd {
	p.inputs[p.focus].Blur()
	p.focus = (i + len(p.inputs)) % len(p.inputs)
	return p.inputs[p.focus].Focus()
}

func (p *registerPage) submit() tea.Cmd {
	reg := p.registration()
	if errs := reg.Validate(); len(errs) > 0 {
		p.errs = errs
		return nil
	}
	p.errs = nil
	p.errMsg = ""
	p.busy = true
	return registerCmd(p.client, p.log, reg)
}

// Update returns the next command and whether registration finished with
// a live session.
func (p *registerPage) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case registeredMsg:
		p.busy = false
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return nil, false
		}
		return nil, true

	case tea.KeyMsg:
		if p.busy {
			return nil, false
		}
		switch msg.String() {
		case "tab", "down":
			return p.setFocus(p.focus + 1), false
		case "shift+tab", "up":
			return p.setFocus(p.focus - 1), false
		case "enter":
			if p.focus < len(p.inputs)-1 {
				return p.setFocus(p.focus + 1), false
			}
			return p.submit(), false
		case "ctrl+s":
			return p.submit(), false
		}
	}

	var cmds []tea.Cmd
	for i := range p.inputs {
		var cmd tea.Cmd
		p.inputs[i], cmd = p.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...), false
}

func (p *registerPage) View() string {
	rows := []string{titleStyle.Render("Create Account"), ""}
	for i, f := range registerFields {
		label := labelStyle.Render(f.label)
		if i == p.focus {
			label = focusedLabelStyle.Render(f.label)
		}
		rows = append(rows, label, p.inputs[i].View())
		if msg, ok := p.errs[f.key]; ok {
			rows = append(rows, errorStyle.Render(msg))
		}
		rows = append(rows, "")
	}

	status := helpStyle.Render("enter to continue · ctrl+s to register · esc back to sign in")
	if p.busy {
		status = statusBarStyle.Render("creating account...")
	}
	if p.errMsg != "" {
		status = errorStyle.Render(p.errMsg)
	}
	rows = append(rows, status)

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

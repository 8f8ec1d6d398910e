package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/erp/console/internal/infrastructure/api"
)

// loginPage collects credentials before the main screen is shown.
type loginPage struct {
	client *api.Client
	log    *zap.Logger

	email    textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	errMsg   string
}

func newLoginPage(client *api.Client, log *zap.Logger) *loginPage {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	return &loginPage{client: client, log: log, email: email, password: password}
}

func (p *loginPage) Init() tea.Cmd {
	return textinput.Blink
}

func (p *loginPage) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case loggedInMsg:
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
		case "tab", "shift+tab", "up", "down":
			p.focus = (p.focus + 1) % 2
			if p.focus == 0 {
				p.password.Blur()
				return p.email.Focus(), false
			}
			p.email.Blur()
			return p.password.Focus(), false
		case "enter":
			if p.focus == 0 {
				p.focus = 1
				p.email.Blur()
				return p.password.Focus(), false
			}
			p.busy = true
			p.errMsg = ""
			return loginCmd(p.client, p.log, p.email.Value(), p.password.Value()), false
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	p.email, cmd = p.email.Update(msg)
	cmds = append(cmds, cmd)
	p.password, cmd = p.password.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...), false
}

func (p *loginPage) View() string {
	status := helpStyle.Render("enter to sign in · ctrl+r to create an account · ctrl+c to quit")
	if p.busy {
		status = statusBarStyle.Render("signing in...")
	}
	if p.errMsg != "" {
		status = errorStyle.Render(p.errMsg)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Lumber ERP Console"),
		"",
		labelStyle.Render("Email"),
		p.email.View(),
		"",
		labelStyle.Render("Password"),
		p.password.View(),
		"",
		status,
	)
	return modalStyle.Render(body)
}

// Package tui is the terminal front end: a dashboard landing screen, a
// sidebar of entity modules, a searchable table per module, and a modal
// form for create and edit.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/erp/console/internal/application/controller"
	"github.com/erp/console/internal/application/session"
	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/infrastructure/api"
)

// timeNow is a seam for tests.
var timeNow = time.Now

// App is the root bubbletea model.
type App struct {
	client *api.Client
	log    *zap.Logger

	width  int
	height int

	session  *session.Session
	login    *loginPage
	register *registerPage
	sidebar  *sidebar
	dash     *dashboardPage
	list     *listPage
	form     *formPage

	focusSidebar bool
	profileEdit  bool
}

// New builds the root model. The app starts on the login screen.
func New(client *api.Client, log *zap.Logger) *App {
	return &App{
		client:  client,
		log:     log,
		login:   newLoginPage(client, log),
		sidebar: newSidebar(),
		dash:    newDashboardPage(client, log),
	}
}

// Run starts the program in the alternate screen.
func Run(client *api.Client, log *zap.Logger) error {
	_, err := tea.NewProgram(New(client, log), tea.WithAltScreen()).Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return a.login.Init()
}

// openEntity swaps the content pane to the sidebar's selected entity.
func (a *App) openEntity() tea.Cmd {
	if a.list != nil {
		a.list.Close()
	}
	a.list = newListPage(a.client, a.sidebar.Selected(), a.log)
	a.layout()
	return a.list.Init()
}

// openDashboard returns to the overview screen and reloads its figures.
func (a *App) openDashboard() tea.Cmd {
	if a.list != nil {
		a.list.Close()
		a.list = nil
	}
	a.layout()
	return a.dash.Init()
}

func (a *App) layout() {
	a.sidebar.height = a.height - 2
	if a.list != nil {
		a.list.SetSize(a.width-sidebarWidth(a.sidebar), a.height-2)
	}
}

func sidebarWidth(s *sidebar) int {
	return lipgloss.Width(s.View())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	// Login or registration until a session exists.
	if a.session == nil {
		return a.updateAuth(msg)
	}

	// The modal form, when open, owns the keyboard.
	if a.form != nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			// A save in flight must run to completion so the list
			// refetch after it is not lost.
			if a.form.ctrl.State() != controller.Submitting {
				a.form.Close()
				a.form = nil
				a.profileEdit = false
			}
			return a, nil
		}
		cmd, saved := a.form.Update(msg)
		if saved {
			if a.profileEdit {
				a.session.FirstName = a.form.inputValue("first_name")
				a.session.LastName = a.form.inputValue("last_name")
				a.session.Email = strings.ToLower(a.form.inputValue("email"))
			}
			a.form = nil
			a.profileEdit = false
			if a.list != nil {
				return a, refreshCmd(a.list.ctrl)
			}
			return a, a.dash.Init()
		}
		return a, cmd
	}

	// A save whose form was already torn down still refetches, so the
	// backend and the table cannot drift apart.
	if sm, ok := msg.(submittedMsg); ok {
		if sm.err == nil && a.list != nil {
			return a, refreshCmd(a.list.ctrl)
		}
		return a, nil
	}

	if pm, ok := msg.(profileLoadedMsg); ok {
		if pm.err != nil {
			a.log.Warn("profile load failed", zap.Error(pm.err))
			return a, nil
		}
		users, _ := catalog.ByName("users")
		a.form = newFormPage(a.client, users, a.log)
		a.profileEdit = true
		return a, a.form.OpenEdit(pm.rec)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		searching := a.list != nil && a.list.searching
		switch key.String() {
		case "q":
			if !searching {
				return a, tea.Quit
			}
		case "tab":
			if !searching {
				a.focusSidebar = !a.focusSidebar
				return a, nil
			}
		case "h":
			if !searching && a.list != nil {
				a.focusSidebar = false
				return a, a.openDashboard()
			}
		case "ctrl+p":
			if !searching {
				return a, profileCmd(a.client, a.session.UserID)
			}
		}

		if a.focusSidebar {
			switch key.String() {
			case "up", "k":
				a.sidebar.Move(-1)
			case "down", "j":
				a.sidebar.Move(1)
			case "]":
				a.sidebar.NextGroup()
			case "[":
				a.sidebar.PrevGroup()
			case "enter", "l", "right":
				a.focusSidebar = false
				return a, a.openEntity()
			}
			return a, nil
		}
	}

	if a.list == nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "r" {
			return a, a.dash.Init()
		}
		return a, a.dash.Update(msg)
	}

	cmd, rec, openForm := a.list.Update(msg)
	if openForm {
		a.form = newFormPage(a.client, a.list.entity, a.log)
		if rec != nil {
			return a, a.form.OpenEdit(rec)
		}
		return a, a.form.OpenCreate()
	}
	return a, cmd
}

// updateAuth drives the login and registration screens.
func (a *App) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.register != nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" && !a.register.busy {
			a.register = nil
			return a, nil
		}
		cmd, done := a.register.Update(msg)
		if !done {
			return a, cmd
		}
		if rm, ok := msg.(registeredMsg); ok {
			a.session = rm.session
			a.log.Info("session started", zap.String("user", a.session.Email))
		}
		a.register = nil
		return a, a.openDashboard()
	}

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+r" && !a.login.busy {
		a.register = newRegisterPage(a.client, a.log)
		return a, a.register.Init()
	}

	cmd, done := a.login.Update(msg)
	if !done {
		return a, cmd
	}
	if lm, ok := msg.(loggedInMsg); ok {
		a.session = lm.session
		a.log.Info("session started", zap.String("user", a.session.Email))
	}
	return a, a.openDashboard()
}

func (a *App) View() string {
	if a.session == nil {
		page := a.login.View()
		if a.register != nil {
			page = a.register.View()
		}
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, page)
	}

	if a.form != nil {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.form.View())
	}

	content := a.dash.View()
	if a.list != nil {
		content = a.list.View()
	}
	main := lipgloss.JoinHorizontal(lipgloss.Top, a.sidebar.View(), content)

	status := statusBarStyle.Render("signed in as " + a.session.DisplayName())
	return lipgloss.JoinVertical(lipgloss.Left, main, status)
}

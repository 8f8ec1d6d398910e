package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/erp/console/internal/application/controller"
	"github.com/erp/console/internal/application/session"
	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/infrastructure/api"
)

// Messages flowing back from controller commands into the event loop.
type (
	loggedInMsg struct {
		session *session.Session
		err     error
	}
	recordsLoadedMsg struct {
		entity string
		err    error
	}
	deletedMsg struct {
		entity string
		err    error
	}
	submittedMsg struct {
		entity string
		err    error
	}
	optionsLoadedMsg struct {
		entity string
		err    error
	}
	registeredMsg struct {
		session *session.Session
		err     error
	}
	statsLoadedMsg struct {
		panels []dashPanel
		err    error
	}
	profileLoadedMsg struct {
		rec api.Record
		err error
	}
)

func loginCmd(c *api.Client, log *zap.Logger, email, password string) tea.Cmd {
	return func() tea.Msg {
		s, err := session.Login(context.Background(), c, log, email, password)
		return loggedInMsg{session: s, err: err}
	}
}

func refreshCmd(l *controller.List) tea.Cmd {
	return func() tea.Msg {
		err := l.Refresh(context.Background())
		return recordsLoadedMsg{entity: l.Entity().Name, err: err}
	}
}

func deleteCmd(l *controller.List, id int) tea.Cmd {
	return func() tea.Msg {
		err := l.Delete(context.Background(), id)
		return deletedMsg{entity: l.Entity().Name, err: err}
	}
}

func submitCmd(f *controller.Form, entity string) tea.Cmd {
	return func() tea.Msg {
		err := f.Submit(context.Background())
		return submittedMsg{entity: entity, err: err}
	}
}

func loadOptionsCmd(f *controller.Form, entity string) tea.Cmd {
	return func() tea.Msg {
		err := f.LoadOptions(context.Background())
		return optionsLoadedMsg{entity: entity, err: err}
	}
}

func registerCmd(c *api.Client, log *zap.Logger, r session.Registration) tea.Cmd {
	return func() tea.Msg {
		s, err := session.Register(context.Background(), c, log, r)
		return registeredMsg{session: s, err: err}
	}
}

// profileCmd looks up the signed-in user's own record for editing.
func profileCmd(c *api.Client, userID int) tea.Cmd {
	return func() tea.Msg {
		users, ok := catalog.ByName("users")
		if !ok {
			return profileLoadedMsg{err: errors.New("users entity not registered")}
		}
		recs, err := c.List(context.Background(), users.Resource())
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		for _, rec := range recs {
			if users.ID(rec) == userID {
				return profileLoadedMsg{rec: rec}
			}
		}
		return profileLoadedMsg{err: errors.New("account no longer exists")}
	}
}

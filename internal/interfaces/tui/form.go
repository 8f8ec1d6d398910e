package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/erp/console/internal/application/controller"
	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/domain/schema"
	"github.com/erp/console/internal/infrastructure/api"
)

// formPage is the create/edit modal. Text-like fields are free inputs;
// select, reference, and boolean fields cycle their choices with the
// arrow keys.
type formPage struct {
	entity *catalog.Entity
	ctrl   *controller.Form

	inputs []textinput.Model
	focus  int
}

func newFormPage(client *api.Client, entity *catalog.Entity, log *zap.Logger) *formPage {
	return &formPage{
		entity: entity,
		ctrl:   controller.NewForm(client, entity, log),
	}
}

// isCycled reports whether a field is edited by cycling choices rather
// than typing.
func isCycled(f schema.Field) bool {
	return f.Kind == schema.Select || f.Kind == schema.Ref || f.Kind == schema.Bool
}

func (p *formPage) open() tea.Cmd {
	fields := p.entity.Schema.Fields()
	p.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.CharLimit = 200
		in.SetValue(p.ctrl.Value(f.UIKey))
		p.inputs[i] = in
	}
	p.focus = 0
	if len(p.inputs) > 0 && !isCycled(fields[0]) {
		p.inputs[0].Focus()
	}
	var cmds []tea.Cmd
	cmds = append(cmds, textinput.Blink)
	if len(p.entity.Schema.RefSources()) > 0 {
		cmds = append(cmds, loadOptionsCmd(p.ctrl, p.entity.Name))
	}
	return tea.Batch(cmds...)
}

// OpenCreate seeds the form with defaults and shows it.
func (p *formPage) OpenCreate() tea.Cmd {
	p.ctrl.OpenCreate(timeNow())
	return p.open()
}

// OpenEdit pre-fills the form from a record and shows it.
func (p *formPage) OpenEdit(rec api.Record) tea.Cmd {
	p.ctrl.OpenEdit(rec)
	return p.open()
}

func (p *formPage) Close() {
	p.ctrl.Close()
}

// inputValue reads the text input backing a field. The inputs survive a
// successful submit, unlike the controller draft, so callers can still
// see what was saved.
func (p *formPage) inputValue(uiKey string) string {
	for i, f := range p.entity.Schema.Fields() {
		if f.UIKey == uiKey && i < len(p.inputs) {
			return strings.TrimSpace(p.inputs[i].Value())
		}
	}
	return ""
}

func (p *formPage) setFocus(i int) tea.Cmd {
	fields := p.entity.Schema.Fields()
	if len(fields) == 0 {
		return nil
	}
	p.inputs[p.focus].Blur()
	p.focus = (i + len(fields)) % len(fields)
	if isCycled(fields[p.focus]) {
		return nil
	}
	return p.inputs[p.focus].Focus()
}

// cycle advances a select, reference, or boolean field by delta choices.
func (p *formPage) cycle(f schema.Field, delta int) {
	current := p.ctrl.Value(f.UIKey)
	switch f.Kind {
	case schema.Bool:
		if current == "true" {
			p.ctrl.Set(f.UIKey, "false")
		} else {
			p.ctrl.Set(f.UIKey, "true")
		}
	case schema.Select:
		p.ctrl.Set(f.UIKey, cycleChoice(f.Options, current, delta, !f.Required))
	case schema.Ref:
		opts := p.ctrl.Options(f.Source)
		if len(opts) == 0 {
			return
		}
		ids := make([]string, len(opts))
		for i, o := range opts {
			ids[i] = strconv.Itoa(o.ID)
		}
		p.ctrl.Set(f.UIKey, cycleChoice(ids, current, delta, !f.Required))
	}
}

// cycleChoice steps through the choices. Optional fields carry an extra
// empty slot past the end so the choice can be cleared; required fields
// wrap straight around and can never be cycled to empty.
func cycleChoice(choices []string, current string, delta int, allowEmpty bool) string {
	if len(choices) == 0 {
		return current
	}
	slots := choices
	if allowEmpty {
		slots = append(append([]string{}, choices...), "")
	}
	idx := -1
	for i, c := range slots {
		if c == current {
			idx = i
			break
		}
	}
	if idx == -1 {
		if delta >= 0 {
			return choices[0]
		}
		return choices[len(choices)-1]
	}
	n := len(slots)
	return slots[(idx+delta%n+n)%n]
}

// Update handles form input. The bool return reports that the form
// finished successfully and the list should refresh.
func (p *formPage) Update(msg tea.Msg) (tea.Cmd, bool) {
	fields := p.entity.Schema.Fields()

	switch msg := msg.(type) {
	case submittedMsg:
		if msg.entity != p.entity.Name {
			return nil, false
		}
		return nil, msg.err == nil

	case optionsLoadedMsg:
		return nil, false

	case tea.KeyMsg:
		if p.ctrl.State() == controller.Submitting {
			return nil, false
		}
		switch msg.String() {
		case "tab", "down":
			return p.setFocus(p.focus + 1), false
		case "shift+tab", "up":
			return p.setFocus(p.focus - 1), false
		case "ctrl+s":
			p.syncDraft()
			return submitCmd(p.ctrl, p.entity.Name), false
		case "enter":
			if p.focus == len(fields)-1 {
				p.syncDraft()
				return submitCmd(p.ctrl, p.entity.Name), false
			}
			return p.setFocus(p.focus + 1), false
		case "left", "right":
			if isCycled(fields[p.focus]) {
				delta := 1
				if msg.String() == "left" {
					delta = -1
				}
				p.cycle(fields[p.focus], delta)
				return nil, false
			}
		case " ":
			if fields[p.focus].Kind == schema.Bool {
				p.cycle(fields[p.focus], 1)
				return nil, false
			}
		}
	}

	if len(fields) == 0 || isCycled(fields[p.focus]) {
		return nil, false
	}
	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	p.ctrl.Set(fields[p.focus].UIKey, p.inputs[p.focus].Value())
	return cmd, false
}

// syncDraft pushes every text input into the controller draft before a
// submit, in case focus changes did not land on a field.
func (p *formPage) syncDraft() {
	for i, f := range p.entity.Schema.Fields() {
		if !isCycled(f) {
			p.ctrl.Set(f.UIKey, p.inputs[i].Value())
		}
	}
}

func (p *formPage) fieldView(i int, f schema.Field) string {
	label := labelStyle
	if i == p.focus {
		label = focusedLabelStyle
	}
	name := f.Label
	if f.Required {
		name += " *"
	}

	var value string
	switch {
	case f.Kind == schema.Ref:
		value = p.refView(f)
	case f.Kind == schema.Select:
		value = choiceView(p.ctrl.Value(f.UIKey), i == p.focus)
	case f.Kind == schema.Bool:
		v := "no"
		if p.ctrl.Value(f.UIKey) == "true" {
			v = "yes"
		}
		value = choiceView(v, i == p.focus)
	default:
		value = p.inputs[i].View()
	}

	line := label.Render(name) + "  " + value
	if msg, ok := p.ctrl.Errors()[f.UIKey]; ok {
		line += "\n" + errorStyle.Render("  "+msg)
	}
	return line
}

func (p *formPage) refView(f schema.Field) string {
	current := p.ctrl.Value(f.UIKey)
	if current == "" {
		return choiceView("(none)", true)
	}
	id, _ := strconv.Atoi(current)
	for _, o := range p.ctrl.Options(f.Source) {
		if o.ID == id {
			return choiceView(o.Label, true)
		}
	}
	return choiceView("#"+current, true)
}

func choiceView(v string, focused bool) string {
	if v == "" {
		v = "(none)"
	}
	if focused {
		return "◀ " + v + " ▶"
	}
	return v
}

func (p *formPage) View() string {
	title := "New " + p.entity.Title
	if p.ctrl.EditID() != 0 {
		title = fmt.Sprintf("Edit %s #%d", p.entity.Title, p.ctrl.EditID())
	}

	parts := []string{titleStyle.Render(title), ""}
	for i, f := range p.entity.Schema.Fields() {
		parts = append(parts, p.fieldView(i, f))
	}

	switch {
	case p.ctrl.State() == controller.Submitting:
		parts = append(parts, "", statusBarStyle.Render("saving..."))
	case p.ctrl.SubmitError() != "":
		parts = append(parts, "", errorStyle.Render(p.ctrl.SubmitError()))
	}
	parts = append(parts, "", helpStyle.Render("ctrl+s save · esc cancel · tab next field"))

	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/erp/console/internal/application/controller"
	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/domain/schema"
	"github.com/erp/console/internal/infrastructure/api"
)

// listPage is one entity's collection screen: a searchable table plus the
// delete confirmation flow.
type listPage struct {
	entity *catalog.Entity
	ctrl   *controller.List

	table     table.Model
	search    textinput.Model
	spinner   spinner.Model
	searching bool

	confirmID int // pending delete, 0 when no dialog is open
	notice    string
	noticeErr bool
}

func newListPage(client *api.Client, entity *catalog.Entity, log *zap.Logger) *listPage {
	search := textinput.New()
	search.Placeholder = "filter"
	search.CharLimit = 80

	tbl := table.New(
		table.WithColumns(columnsFor(entity)),
		table.WithFocused(true),
	)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	return &listPage{
		entity:  entity,
		ctrl:    controller.NewList(client, entity, nil, log),
		table:   tbl,
		search:  search,
		spinner: sp,
	}
}

func columnsFor(e *catalog.Entity) []table.Column {
	cols := []table.Column{{Title: "ID", Width: 6}}
	for _, f := range e.Schema.Fields() {
		w := 18
		switch f.Kind {
		case schema.Int, schema.Ref:
			w = 10
		case schema.Decimal:
			w = 12
		case schema.Date:
			w = 12
		case schema.Bool:
			w = 7
		}
		cols = append(cols, table.Column{Title: f.Label, Width: w})
	}
	return cols
}

func (p *listPage) Init() tea.Cmd {
	return tea.Batch(refreshCmd(p.ctrl), p.spinner.Tick)
}

func (p *listPage) Close() {
	p.ctrl.Close()
}

// selectedID returns the id of the highlighted row, or 0.
func (p *listPage) selectedID() int {
	row := p.table.SelectedRow()
	if row == nil {
		return 0
	}
	id, _ := strconv.Atoi(row[0])
	return id
}

func (p *listPage) reload() {
	recs := p.ctrl.Records()
	rows := make([]table.Row, 0, len(recs))
	for _, rec := range recs {
		row := table.Row{strconv.Itoa(p.entity.ID(rec))}
		draft := p.entity.Schema.DraftFromRecord(rec)
		for _, f := range p.entity.Schema.Fields() {
			row = append(row, draft[f.UIKey])
		}
		rows = append(rows, row)
	}
	p.table.SetRows(rows)
}

func (p *listPage) recordByID(id int) (api.Record, bool) {
	for _, rec := range p.ctrl.All() {
		if p.entity.ID(rec) == id {
			return rec, true
		}
	}
	return nil, false
}

// Update handles list-screen input. The bool return asks the app to open
// the form: (record, true) for edit, (nil, true) for create.
func (p *listPage) Update(msg tea.Msg) (tea.Cmd, api.Record, bool) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.ctrl.Loading() {
			return nil, nil, false
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd, nil, false

	case recordsLoadedMsg:
		if msg.entity != p.entity.Name {
			return nil, nil, false
		}
		if msg.err != nil {
			p.notice = api.FriendlyMessage(msg.err, "Could not load "+p.entity.Title)
			p.noticeErr = true
		} else {
			p.notice = ""
		}
		p.reload()
		return nil, nil, false

	case deletedMsg:
		if msg.entity != p.entity.Name {
			return nil, nil, false
		}
		if msg.err != nil {
			p.notice = api.FriendlyMessage(msg.err, "Could not delete")
			p.noticeErr = true
		} else {
			p.notice = "Deleted"
			p.noticeErr = false
		}
		p.reload()
		return nil, nil, false

	case tea.KeyMsg:
		// Confirmation dialog swallows everything but its answer.
		if p.confirmID != 0 {
			switch msg.String() {
			case "y", "Y", "enter":
				id := p.confirmID
				p.confirmID = 0
				return deleteCmd(p.ctrl, id), nil, false
			case "n", "N", "esc":
				p.confirmID = 0
			}
			return nil, nil, false
		}

		if p.searching {
			switch msg.String() {
			case "enter", "esc":
				p.searching = false
				p.search.Blur()
				return nil, nil, false
			}
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			p.ctrl.SetQuery(p.search.Value())
			p.reload()
			return cmd, nil, false
		}

		switch msg.String() {
		case "/":
			p.searching = true
			return p.search.Focus(), nil, false
		case "r":
			return tea.Batch(refreshCmd(p.ctrl), p.spinner.Tick), nil, false
		case "n":
			if p.entity.ListOnly {
				return nil, nil, false
			}
			return nil, nil, true
		case "e", "enter":
			if p.entity.ListOnly {
				return nil, nil, false
			}
			if rec, ok := p.recordByID(p.selectedID()); ok {
				return nil, rec, true
			}
			return nil, nil, false
		case "d", "delete":
			if p.entity.ListOnly {
				return nil, nil, false
			}
			if id := p.selectedID(); id != 0 {
				p.confirmID = id
			}
			return nil, nil, false
		}
	}

	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd, nil, false
}

func (p *listPage) SetSize(width, height int) {
	p.table.SetWidth(width)
	p.table.SetHeight(height - 4)
}

func (p *listPage) View() string {
	header := titleStyle.Render(p.entity.Title)
	if p.ctrl.Loading() {
		header += " " + p.spinner.View()
	}

	var parts []string
	parts = append(parts, header)
	if p.searching || p.search.Value() != "" {
		parts = append(parts, p.search.View())
	}
	parts = append(parts, p.table.View())

	if p.confirmID != 0 {
		parts = append(parts, modalStyle.Render(
			fmt.Sprintf("Delete %s #%d? (y/n)", p.entity.Title, p.confirmID)))
	} else if p.notice != "" {
		style := okStyle
		if p.noticeErr {
			style = errorStyle
		}
		parts = append(parts, style.Render(p.notice))
	}

	help := "n new · e edit · d delete · / filter · r reload · tab sidebar · h home · q quit"
	if p.entity.ListOnly {
		help = "/ filter · r reload · tab sidebar · h home · q quit"
	}
	parts = append(parts, helpStyle.Render(help))

	return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/erp/console/internal/domain/catalog"
	"github.com/erp/console/internal/infrastructure/api"
)

// lowStockThreshold marks a stock item as running low.
const lowStockThreshold = 100

type dashStat struct {
	label string
	value string
}

type dashPanel struct {
	title string
	stats []dashStat
}

// dashboardPage is the landing screen after sign-in: record counts and a
// few derived figures aggregated across the main collections.
type dashboardPage struct {
	client *api.Client
	log    *zap.Logger

	spinner spinner.Model
	loading bool
	panels  []dashPanel
	errMsg  string
}

func newDashboardPage(client *api.Client, log *zap.Logger) *dashboardPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)
	return &dashboardPage{client: client, log: log, spinner: sp}
}

func (p *dashboardPage) Init() tea.Cmd {
	p.loading = true
	return tea.Batch(loadStatsCmd(p.client), p.spinner.Tick)
}

func (p *dashboardPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		p.loading = false
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return nil
		}
		p.errMsg = ""
		p.panels = msg.panels
		return nil

	case spinner.TickMsg:
		if !p.loading {
			return nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (p *dashboardPage) View() string {
	header := titleStyle.Render("Overview")
	if p.loading {
		header += " " + p.spinner.View()
	}

	if p.errMsg != "" {
		return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			header, errorStyle.Render(p.errMsg)))
	}

	boxes := make([]string, 0, len(p.panels))
	for _, panel := range p.panels {
		lines := []string{sidebarGroupStyle.Render(panel.title)}
		for _, s := range panel.stats {
			lines = append(lines, fmt.Sprintf("%-16s %s", s.label, s.value))
		}
		boxes = append(boxes, sidebarStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	rows := []string{header}
	for i := 0; i < len(boxes); i += 3 {
		end := i + 3
		if end > len(boxes) {
			end = len(boxes)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes[i:end]...))
	}
	rows = append(rows, helpStyle.Render("tab to browse modules · r to reload · q to quit"))
	return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// loadStatsCmd fetches every dashboard collection and reduces it to the
// panel figures. One failing collection fails the whole load.
func loadStatsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		panels, err := collectStats(context.Background(), client)
		return statsLoadedMsg{panels: panels, err: err}
	}
}

func collectStats(ctx context.Context, client *api.Client) ([]dashPanel, error) {
	byName := map[string][]api.Record{}
	for _, name := range []string{
		"employees", "customers", "suppliers",
		"stockitems", "warehouses", "producttypes",
		"salesorders", "purchaseorders", "invoices", "payments",
		"trucks", "drivers", "shipments",
		"forests", "harvestbatches",
	} {
		e, ok := catalog.ByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown dashboard collection %q", name)
		}
		recs, err := client.List(ctx, e.Resource())
		if err != nil {
			return nil, err
		}
		byName[name] = recs
	}

	stockQty := decimal.Zero
	lowStock := 0
	for _, rec := range byName["stockitems"] {
		qty := recDecimal(rec, "quantity")
		stockQty = stockQty.Add(qty)
		if qty.LessThan(decimal.NewFromInt(lowStockThreshold)) {
			lowStock++
		}
	}
	revenue := decimal.Zero
	for _, rec := range byName["invoices"] {
		revenue = revenue.Add(recDecimal(rec, "total_amount"))
	}
	received := decimal.Zero
	for _, rec := range byName["payments"] {
		received = received.Add(recDecimal(rec, "amount"))
	}

	count := func(name string) string { return fmt.Sprintf("%d", len(byName[name])) }
	countWhere := func(name, key string, want ...string) int {
		n := 0
		for _, rec := range byName[name] {
			v, _ := rec[key].(string)
			for _, w := range want {
				if v == w {
					n++
					break
				}
			}
		}
		return n
	}
	money := func(d decimal.Decimal) string { return "$" + d.StringFixed(2) }

	return []dashPanel{
		{title: "People", stats: []dashStat{
			{"Employees", count("employees")},
			{"Customers", count("customers")},
			{"Suppliers", count("suppliers")},
		}},
		{title: "Inventory", stats: []dashStat{
			{"Products", count("producttypes")},
			{"Warehouses", count("warehouses")},
			{"Stock Items", count("stockitems")},
			{"Low Stock", fmt.Sprintf("%d", lowStock)},
			{"Total Quantity", stockQty.String()},
		}},
		{title: "Orders", stats: []dashStat{
			{"Sales Orders", count("salesorders")},
			{"Pending Sales", fmt.Sprintf("%d", countWhere("salesorders", "status", "Pending"))},
			{"Purchase Orders", count("purchaseorders")},
			{"Pending Purchases", fmt.Sprintf("%d", countWhere("purchaseorders", "status", "Pending"))},
		}},
		{title: "Finance", stats: []dashStat{
			{"Invoices", count("invoices")},
			{"Unpaid", fmt.Sprintf("%d", countWhere("invoices", "status", "Unpaid"))},
			{"Revenue", money(revenue)},
			{"Received", money(received)},
		}},
		{title: "Logistics", stats: []dashStat{
			{"Trucks", count("trucks")},
			{"On the Road", fmt.Sprintf("%d", countWhere("trucks", "status", "Available", "In Transit"))},
			{"Active Drivers", fmt.Sprintf("%d", countWhere("drivers", "status", "Active"))},
			{"Shipments", count("shipments")},
			{"In Transit", fmt.Sprintf("%d", countWhere("shipments", "status", "In Transit"))},
		}},
		{title: "Forestry", stats: []dashStat{
			{"Forests", count("forests")},
			{"Harvest Batches", count("harvestbatches")},
		}},
	}, nil
}

func recDecimal(rec api.Record, key string) decimal.Decimal {
	switch v := rec[key].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err == nil {
			return d
		}
	}
	return decimal.Zero
}

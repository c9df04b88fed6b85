package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/session"
	"github.com/finla-app/finla/internal/snapshot"
)

type ListModel struct {
	CommonModel
	svc *session.Service

	table table.Model
	txs   []*snapshot.Transaction

	// monthFilterIdx cycles all time / this month / last month.
	monthFilterIdx int

	loading bool
	err     error
}

func NewListModel(svc *session.Service) ListModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Amount", Width: 12},
		{Title: "Category", Width: 14},
		{Title: "Description", Width: 36},
		{Title: "Method", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{
		svc:     svc,
		table:   t,
		loading: true,
	}
}

func (m ListModel) Title() string { return "Transactions" }
func (m ListModel) ShortHelp() string {
	return "Esc: back | m: month filter | r: refresh"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "m":
			m.monthFilterIdx = (m.monthFilterIdx + 1) % 3
			m.refreshTable()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	monthLabels := []string{"All Time", "This Month", "Last Month"}

	header := fmt.Sprintf("Filter: [m] %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(monthLabels[m.monthFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().PaddingBottom(1).Render(header),
			tableView,
		),
	)
}

func (m *ListModel) refreshTable() {
	monthKey := ""

	switch m.monthFilterIdx {
	case 1:
		monthKey = date.Today().MonthKey()
	case 2:
		monthKey = date.Today().Add(-date.Today().Day()).MonthKey()
	}

	rows := make([]table.Row, 0, len(m.txs))

	for _, tx := range m.txs {
		if monthKey != "" && tx.Date.MonthKey() != monthKey {
			continue
		}

		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			FormatAmount(tx.Amount),
			string(tx.Category),
			tx.Description,
			tx.PaymentMethod,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type listLoadMsg struct {
	txs []*snapshot.Transaction
	err error
}

func (m ListModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		txs, err := m.svc.Transactions(ctx)

		return listLoadMsg{txs: txs, err: err}
	}
}

package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/quotes"
	"github.com/finla-app/finla/internal/session"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	streakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	quoteStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("116"))
	panelStyle  = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

type DashboardModel struct {
	CommonModel
	svc *session.Service

	overview *session.Overview
	loading  bool
	err      error
}

func NewDashboardModel(svc *session.Service) DashboardModel {
	return DashboardModel{svc: svc, loading: true}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadMsg:
		m.loading = false
		m.overview = msg.overview
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	ov := m.overview

	var b strings.Builder

	b.WriteString(titleStyle.Render("Finla") + "\n\n")

	q := quotes.ForDay(date.Today())
	b.WriteString(quoteStyle.Render(fmt.Sprintf("%q  - %s", q.Text, q.Author)) + "\n\n")

	b.WriteString(labelStyle.Render("Total Balance: ") + FormatAmount(ov.TotalBalance) + "\n")

	for _, a := range ov.Accounts {
		b.WriteString(fmt.Sprintf("  %-20s %s\n", a.Name, FormatAmount(a.Balance)))
	}

	b.WriteString("\n")
	b.WriteString(streakStyle.Render(fmt.Sprintf("Streak: %d days (%s)", ov.Stats.Streak, ov.StreakState)))
	b.WriteString(fmt.Sprintf("  Karma: %d  Level: %d  Freezes: %d\n",
		ov.Stats.Karma, ov.Stats.Level, ov.Stats.FreezeTokens))

	b.WriteString("\n" + labelStyle.Render(fmt.Sprintf("Budget %s (%s)", ov.Budget.Month, ov.Budget.Health)) + "\n")

	for _, bucket := range []category.Bucket{category.Needs, category.Wants, category.Savings} {
		b.WriteString(fmt.Sprintf("  %-8s %8s  %5.1f%%\n",
			bucket, FormatAmount(ov.Budget.Spent[bucket]), ov.Budget.Shares[bucket]))
	}

	if len(ov.Goals) > 0 {
		b.WriteString("\n" + labelStyle.Render("Goals") + "\n")

		for _, g := range ov.Goals {
			b.WriteString(fmt.Sprintf("  %-20s %s / %s [%s]\n",
				g.Name, FormatAmount(g.Accumulated), FormatAmount(g.TargetAmount), g.Status))
		}
	}

	if len(ov.Recent) > 0 {
		b.WriteString("\n" + labelStyle.Render("Recent") + "\n")

		for _, tx := range ov.Recent {
			b.WriteString(fmt.Sprintf("  %s  %10s  %-13s %s\n",
				FormatDate(tx.Date), FormatAmount(tx.Amount), tx.Category, tx.Description))
		}
	}

	return panelStyle.Render(b.String())
}

type dashboardLoadMsg struct {
	overview *session.Overview
	err      error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		ov, err := m.svc.Overview(ctx)

		return dashboardLoadMsg{overview: ov, err: err}
	}
}

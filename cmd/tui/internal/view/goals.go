package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/ledger"
	"github.com/finla-app/finla/internal/money"
	"github.com/finla-app/finla/internal/session"
	"github.com/finla-app/finla/internal/snapshot"
)

type goalsState int

const (
	goalsStateBrowse goalsState = iota
	goalsStateCreate
)

type GoalsModel struct {
	CommonModel
	svc *session.Service

	state goalsState
	goals []*snapshot.Goal
	form  *huh.Form

	// Form bindings
	formName   string
	formAmount string
	formDate   string

	loading bool
	status  string
	err     error
}

func NewGoalsModel(svc *session.Service) GoalsModel {
	return GoalsModel{svc: svc, loading: true}
}

func (m GoalsModel) Title() string { return "Savings Goals" }
func (m GoalsModel) ShortHelp() string {
	if m.state == goalsStateCreate {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new goal | r: refresh"
}

func (m GoalsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m GoalsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case goalsLoadMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.goals = msg.goals

		return m, nil

	case goalsSaveMsg:
		m.state = goalsStateBrowse
		m.form = nil

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Goal %q created.", msg.name)
		}

		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.state == goalsStateBrowse {
			switch msg.String() {
			case "esc":
				return m, Back
			case "r":
				m.loading = true
				return m, m.loadCmd()
			case "n":
				return m.enterCreate()
			}

			return m, nil
		}

		if msg.Type == tea.KeyEsc {
			m.state = goalsStateBrowse
			m.form = nil

			return m, nil
		}
	}

	if m.state != goalsStateCreate || m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m GoalsModel) enterCreate() (tea.Model, tea.Cmd) {
	m.formName = ""
	m.formAmount = ""
	m.formDate = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Goal Name").
				Placeholder("new phone").
				Value(&m.formName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}

					return nil
				}),

			huh.NewInput().
				Key("target").
				Title("Target Amount (₹)").
				Placeholder("5000").
				Value(&m.formAmount).
				Validate(func(s string) error {
					paise, err := money.ParsePaise(s)
					if err != nil {
						return err
					}

					if paise <= 0 {
						return fmt.Errorf("target must be positive")
					}

					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Target Date").
				Placeholder("2026-12-31").
				Value(&m.formDate).
				Validate(func(s string) error {
					d, err := date.Parse(s)
					if err != nil {
						return err
					}

					if !d.After(date.Today()) {
						return fmt.Errorf("target date must be in the future")
					}

					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = goalsStateCreate

	return m, m.form.Init()
}

func (m GoalsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading goals...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Savings Goals") + "\n\n")

	if len(m.goals) == 0 {
		b.WriteString("No goals yet. Press n to create one.\n")
	}

	for _, g := range m.goals {
		pct := 0.0
		if g.TargetAmount > 0 {
			pct = float64(g.Accumulated) / float64(g.TargetAmount) * 100
		}

		b.WriteString(fmt.Sprintf("%-20s %10s / %-10s %5.1f%%  by %s  [%s]\n",
			g.Name, FormatAmount(g.Accumulated), FormatAmount(g.TargetAmount),
			pct, FormatDate(g.TargetDate), g.Status))
	}

	content := panelStyle.Render(b.String())

	if m.state == goalsStateCreate && m.form != nil {
		formPanel := panelStyle.Render("New Goal\n\n" + m.form.View())
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, formPanel)
	}

	if m.status != "" {
		content = labelStyle.Render(m.status) + "\n" + content
	}

	return content
}

// Messages

type goalsLoadMsg struct {
	goals []*snapshot.Goal
	err   error
}

func (m GoalsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		ov, err := m.svc.Overview(ctx)
		if err != nil {
			return goalsLoadMsg{err: err}
		}

		return goalsLoadMsg{goals: ov.Goals}
	}
}

type goalsSaveMsg struct {
	name string
	err  error
}

func (m GoalsModel) saveCmd() tea.Cmd {
	name := m.formName

	paise, err := money.ParsePaise(m.formAmount)
	if err != nil {
		return func() tea.Msg { return goalsSaveMsg{err: err} }
	}

	target, err := date.Parse(m.formDate)
	if err != nil {
		return func() tea.Msg { return goalsSaveMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		_, err := m.svc.CreateGoal(ctx, ledger.GoalParams{
			Name:         name,
			TargetAmount: paise,
			TargetDate:   target,
		})

		return goalsSaveMsg{name: name, err: err}
	}
}

package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/money"
	"github.com/finla-app/finla/internal/session"
	"github.com/finla-app/finla/internal/snapshot"
)

type addState int

const (
	addStateLoading addState = iota
	addStateForm
	addStateSaving
	addStateResult
)

type AddModel struct {
	CommonModel
	svc *session.Service

	state    addState
	form     *huh.Form
	accounts []*snapshot.Account
	goals    []*snapshot.Goal

	// Form bindings
	formAccount  string
	formKind     string
	formAmount   string
	formDesc     string
	formCategory string
	formGoal     string

	result *session.TransactionResult
	status string
	err    error
}

func NewAddModel(svc *session.Service) AddModel {
	return AddModel{svc: svc, state: addStateLoading}
}

func (m AddModel) Title() string { return "Add Transaction" }
func (m AddModel) ShortHelp() string {
	if m.state == addStateForm {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back"
}

func (m AddModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case addLoadMsg:
		if msg.err != nil {
			m.state = addStateResult
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.accounts = msg.accounts
		m.goals = msg.goals

		return m.enterForm()

	case addSaveMsg:
		m.state = addStateResult
		m.result = msg.result
		m.err = msg.err

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.state == addStateForm {
				return m, Back
			}

			if m.state == addStateResult {
				m.err = nil
				m.result = nil
				m.status = ""

				return m.enterForm()
			}

			return m, Back
		}
	}

	if m.state != addStateForm || m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = addStateSaving
	m.status = "Saving..."

	return m, m.saveCmd()
}

func (m AddModel) enterForm() (tea.Model, tea.Cmd) {
	if len(m.accounts) == 0 {
		m.state = addStateResult
		m.status = "No accounts registered yet. Add one over the API first."

		return m, nil
	}

	accountOpts := make([]huh.Option[string], 0, len(m.accounts))
	for _, a := range m.accounts {
		accountOpts = append(accountOpts, huh.NewOption(a.Name, a.ID.String()))
	}

	categoryOpts := []huh.Option[string]{huh.NewOption("auto-detect", "")}
	for _, c := range category.All {
		categoryOpts = append(categoryOpts, huh.NewOption(string(c), string(c)))
	}

	goalOpts := []huh.Option[string]{huh.NewOption("none", "")}
	for _, g := range m.goals {
		if g.Status == snapshot.GoalActive {
			goalOpts = append(goalOpts, huh.NewOption(g.Name, g.ID.String()))
		}
	}

	m.formAccount = m.accounts[0].ID.String()
	m.formKind = "expense"
	m.formAmount = ""
	m.formDesc = ""
	m.formCategory = ""
	m.formGoal = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("account").
				Title("Account").
				Options(accountOpts...).
				Value(&m.formAccount),

			huh.NewSelect[string]().
				Key("kind").
				Title("Type").
				Options(
					huh.NewOption("Expense", "expense"),
					huh.NewOption("Income", "income"),
				).
				Value(&m.formKind),

			huh.NewInput().
				Key("amount").
				Title("Amount (₹)").
				Placeholder("120.50").
				Value(&m.formAmount).
				Validate(func(s string) error {
					paise, err := money.ParsePaise(s)
					if err != nil {
						return err
					}

					if paise == 0 {
						return fmt.Errorf("amount cannot be zero")
					}

					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Placeholder("lunch at hotel").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}

					return nil
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(categoryOpts...).
				Value(&m.formCategory),

			huh.NewSelect[string]().
				Key("goal").
				Title("Savings Goal").
				Options(goalOpts...).
				Value(&m.formGoal),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = addStateForm

	return m, m.form.Init()
}

func (m AddModel) View() string {
	switch m.state {
	case addStateLoading:
		return lipgloss.NewStyle().Padding(2).Render("Loading accounts...")
	case addStateForm:
		return panelStyle.Render("Add Transaction\n\n" + m.form.View())
	case addStateSaving:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case addStateResult:
		return m.viewResult()
	}

	return ""
}

func (m AddModel) viewResult() string {
	if m.err != nil || m.result == nil {
		return lipgloss.NewStyle().Padding(2).Render(
			alertStyle.Render(m.status) + "\n\n(Esc to go back)",
		)
	}

	res := m.result

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Recorded %s  %s  [%s]\n",
		FormatAmount(res.Transaction.Amount), res.Transaction.Description, res.Transaction.Category))
	b.WriteString(fmt.Sprintf("New balance: %s\n\n", FormatAmount(res.NewBalance)))

	b.WriteString(streakStyle.Render(fmt.Sprintf("Streak: %d (%s)", res.Streak.Streak, res.Streak.State)))
	b.WriteString(fmt.Sprintf("  +%d karma, level %d\n", res.Karma.Earned, res.Karma.NewLevel))

	if res.Streak.FreezeConsumed {
		b.WriteString("A freeze token saved your streak!\n")
	}

	for _, a := range res.Unlocked {
		b.WriteString(fmt.Sprintf("Achievement unlocked: %s (+%d)\n", a.Name, a.Points))
	}

	if res.GoalAchieved != nil {
		b.WriteString(fmt.Sprintf("Goal achieved: %s!\n", res.GoalAchieved.Name))
	}

	if res.Alert != nil {
		b.WriteString(alertStyle.Render(fmt.Sprintf("Low balance on %s: %s (min %s)\n",
			res.Alert.AccountName, FormatAmount(res.Alert.Balance), FormatAmount(res.Alert.MinBalance))))
	}

	b.WriteString("\n(Esc to add another)")

	return panelStyle.Render(b.String())
}

// Messages

type addLoadMsg struct {
	accounts []*snapshot.Account
	goals    []*snapshot.Goal
	err      error
}

func (m AddModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		ov, err := m.svc.Overview(ctx)
		if err != nil {
			return addLoadMsg{err: err}
		}

		return addLoadMsg{accounts: ov.Accounts, goals: ov.Goals}
	}
}

type addSaveMsg struct {
	result *session.TransactionResult
	err    error
}

func (m AddModel) saveCmd() tea.Cmd {
	accountID, err := uuid.Parse(m.formAccount)
	if err != nil {
		return func() tea.Msg { return addSaveMsg{err: err} }
	}

	paise, err := money.ParsePaise(m.formAmount)
	if err != nil {
		return func() tea.Msg { return addSaveMsg{err: err} }
	}

	if paise < 0 {
		paise = -paise
	}

	if m.formKind == "expense" {
		paise = -paise
	}

	params := session.TransactionParams{
		AccountID:   accountID,
		Amount:      paise,
		Category:    category.Category(m.formCategory),
		Description: m.formDesc,
	}

	if m.formGoal != "" {
		goalID, err := uuid.Parse(m.formGoal)
		if err != nil {
			return func() tea.Msg { return addSaveMsg{err: err} }
		}

		params.GoalID = &goalID
	}

	return func() tea.Msg {
		ctx, cancel := SvcCtx()
		defer cancel()

		res, err := m.svc.AddTransaction(ctx, params)

		return addSaveMsg{result: res, err: err}
	}
}

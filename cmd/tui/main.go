package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/finla-app/finla/cmd/tui/internal/view"
	"github.com/finla-app/finla/internal/category"
	"github.com/finla-app/finla/internal/config"
	"github.com/finla-app/finla/internal/gamification"
	"github.com/finla-app/finla/internal/ledger"
	"github.com/finla-app/finla/internal/session"
	fileStore "github.com/finla-app/finla/internal/store/file"
	postgresStore "github.com/finla-app/finla/internal/store/postgres"
)

type model struct {
	svc *session.Service

	currentView View

	dashboardView view.DashboardModel
	addView       view.AddModel
	listView      view.ListModel
	goalsView     view.GoalsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewAdd       View = 2
	ViewList      View = 3
	ViewGoals     View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	repo, err := newRepository(cfg)
	if err != nil {
		slog.Error("failed to open store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}

	svc := session.NewService(
		repo,
		category.NewClassifier(category.DefaultRules()),
		ledger.New(cfg.Ledger.LowBalancePaise, nil),
		gamification.New(cfg.Gamification, gamification.DefaultAchievements(), nil),
		nil,
	)

	return model{
		svc:           svc,
		currentView:   ViewMenu,
		dashboardView: view.NewDashboardModel(svc),
		addView:       view.NewAddModel(svc),
		listView:      view.NewListModel(svc),
		goalsView:     view.NewGoalsModel(svc),
	}
}

func newRepository(cfg *config.Config) (session.Repository, error) {
	if cfg.Store.Backend == "postgres" {
		store, err := postgresStore.Open(cfg.ConnectionString(), cfg.Gamification.InitialFreezeTokens)
		if err != nil {
			return nil, err
		}

		if err := store.Migrate(context.Background()); err != nil {
			store.Close()
			return nil, err
		}

		return store, nil
	}

	return fileStore.New(cfg.Store.DataDir, cfg.Gamification.InitialFreezeTokens)
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.svc)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(m.svc)

				return m, m.addView.Init()
			case "3":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.svc)

				return m, m.listView.Init()
			case "4":
				m.currentView = ViewGoals
				m.goalsView = view.NewGoalsModel(m.svc)

				return m, m.goalsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewGoals:
		var newModel tea.Model
		newModel, cmd = m.goalsView.Update(msg)
		m.goalsView = newModel.(view.GoalsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Finla TUI\n\n" +
				"1. Dashboard\n" +
				"2. Add Transaction\n" +
				"3. Transactions\n" +
				"4. Savings Goals\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewAdd:
		return m.addView.View()
	case ViewList:
		return m.listView.View()
	case ViewGoals:
		return m.goalsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

package view

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/finla-app/finla/internal/date"
	"github.com/finla-app/finla/internal/money"
)

const svcTimeout = 5 * time.Second

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct{}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// FormatAmount renders signed paise as rupees.
func FormatAmount(paise int64) string {
	return money.FormatRupees(paise)
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(d date.Date) string {
	return d.String()
}

// SvcCtx returns a context with the standard timeout for service calls.
func SvcCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), svcTimeout)
}

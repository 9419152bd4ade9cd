package tui

import (
	"sort"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/budgetpulse/budgetpulse/internal/domain"
)

// Update handles all incoming messages (required by tea.Model)
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case LedgerLoadedMsg:
		m.ledger = msg.Ledger
		m.loading = false
		m.err = nil
		m.computeReports()
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.activeTab = (m.activeTab + 1) % Tab(len(tabNames))
			return m, nil
		case "shift+tab", "left", "h":
			m.activeTab = (m.activeTab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
			return m, nil
		case "r":
			m.loading = true
			return m, loadLedgerCmd(m.ledgerPath)
		}
	}

	// The category table owns scrolling on the spending tab.
	if m.activeTab == TabSpending && m.ledger != nil {
		var cmd tea.Cmd
		m.categoryTable, cmd = m.categoryTable.Update(msg)
		return m, cmd
	}

	return m, nil
}

// newCategoryTable builds the spending breakdown table, largest first.
func newCategoryTable(spending *domain.SpendingBehaviorReport) table.Model {
	categories := make([]domain.ExpenseCategory, 0, len(spending.CategoryBreakdown))
	for category := range spending.CategoryBreakdown {
		categories = append(categories, category)
	}
	sort.SliceStable(categories, func(i, j int) bool {
		a := spending.CategoryBreakdown[categories[i]]
		b := spending.CategoryBreakdown[categories[j]]
		if a.Equal(b) {
			return categories[i] < categories[j]
		}
		return a.GreaterThan(b)
	})

	rows := make([]table.Row, 0, len(categories))
	for _, category := range categories {
		rows = append(rows, table.Row{
			string(category),
			"$" + spending.CategoryBreakdown[category].StringFixed(2),
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Category", Width: 18},
			{Title: "Total", Width: 14},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 12)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(colorPrimary)
	styles.Selected = styles.Selected.Foreground(colorGood)
	t.SetStyles(styles)
	return t
}

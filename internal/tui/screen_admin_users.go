package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// updateAdminUsersScreen обрабатывает клавиши на таблице пользователей.
// Таблица только для чтения.
func (m model) updateAdminUsersScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyEsc {
		return m, m.navigate(adminDashboardScreen)
	}
	var cmd tea.Cmd
	m.usersTable, cmd = m.usersTable.Update(msg)
	return m, cmd
}

// viewAdminUsersScreen отрисовывает таблицу пользователей.
func (m model) viewAdminUsersScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Usuários"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(mutedStyle.Render("Carregando..."))
		return b.String()
	}

	if len(m.adminUsers) == 0 {
		b.WriteString("Nenhum usuário cadastrado.\n\n")
		b.WriteString(helpStyle.Render("esc — voltar"))
		return b.String()
	}

	b.WriteString(m.usersTable.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ — navegar • esc — voltar"))
	return b.String()
}

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// updateDashboardScreen обрабатывает клавиши на домашнем экране.
func (m model) updateDashboardScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit:
		return m, tea.Quit
	case keyEnter:
		item, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.selectMenuItem(item.id)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) selectMenuItem(id string) (tea.Model, tea.Cmd) {
	switch id {
	case menuNewAppointment:
		return m, m.navigate(newAppointmentScreen)
	case menuMyAppointments:
		return m, m.navigate(appointmentsScreen)
	case menuAdminPanel:
		return m, m.navigate(adminDashboardScreen)
	case menuAdminAppointments:
		return m, m.navigate(adminAppointmentsScreen)
	case menuAdminServices:
		return m, m.navigate(adminServicesScreen)
	case menuAdminBarbers:
		return m, m.navigate(adminBarbersScreen)
	case menuAdminUsers:
		return m, m.navigate(adminUsersScreen)
	case menuLogout:
		return m, m.logout()
	}
	return m, nil
}

// viewDashboardScreen отрисовывает домашний экран с меню.
func (m model) viewDashboardScreen() string {
	var b strings.Builder
	if m.sess != nil {
		b.WriteString(mutedStyle.Render("Olá, " + m.sess.User.Name))
		b.WriteString("\n\n")
	}
	b.WriteString(m.menu.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter — abrir • q — sair"))
	return b.String()
}

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

// selectedAdminAppointment возвращает запись под курсором таблицы.
func (m model) selectedAdminAppointment() (models.AdminAppointment, bool) {
	cursor := m.adminTable.Cursor()
	if cursor < 0 || cursor >= len(m.adminAppointments) {
		return models.AdminAppointment{}, false
	}
	return m.adminAppointments[cursor], true
}

// updateAdminAppointmentsScreen обрабатывает клавиши на таблице всех записей.
func (m model) updateAdminAppointmentsScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmCancelID != 0 {
		switch msg.String() {
		case keyYes:
			id := m.confirmCancelID
			m.confirmCancelID = 0
			m.errText = ""
			return m, m.cancelAppointmentCmd(m.viewID, id)
		case keyNo, keyEsc:
			m.confirmCancelID = 0
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case keyEsc:
		return m, m.navigate(adminDashboardScreen)
	case keyCancel:
		a, ok := m.selectedAdminAppointment()
		if !ok {
			return m, nil
		}
		if !a.Status.CanCancel() {
			if a.Status.Terminal() {
				m.status = "Agendamento " + strings.ToLower(a.Status.Label()) + " não pode ser cancelado."
			}
			return m, nil
		}
		m.confirmCancelID = a.ID
		return m, nil
	}

	var cmd tea.Cmd
	m.adminTable, cmd = m.adminTable.Update(msg)
	return m, cmd
}

// viewAdminAppointmentsScreen отрисовывает таблицу всех записей.
func (m model) viewAdminAppointmentsScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todos os Agendamentos"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(mutedStyle.Render("Carregando..."))
		return b.String()
	}

	if len(m.adminAppointments) == 0 {
		b.WriteString("Nenhum agendamento registrado.\n\n")
		b.WriteString(helpStyle.Render("esc — voltar"))
		return b.String()
	}

	b.WriteString(m.adminTable.View())
	b.WriteString("\n")

	if a, ok := m.selectedAdminAppointment(); ok && a.ClientPhone != "" {
		b.WriteString(mutedStyle.Render("Contato: " + a.ClientPhone))
		b.WriteString("\n")
	}

	if m.confirmCancelID != 0 {
		b.WriteString(warnStyle.Render("Deseja cancelar este agendamento? (s/n)"))
		b.WriteString("\n")
	} else {
		b.WriteString(helpStyle.Render("c — cancelar • ↑/↓ — navegar • esc — voltar"))
	}
	return b.String()
}

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

// selectedAppointment возвращает запись под курсором списка.
func (m model) selectedAppointment() (models.Appointment, bool) {
	item, ok := m.appointmentList.SelectedItem().(appointmentItem)
	if !ok {
		return models.Appointment{}, false
	}
	return item.appointment, true
}

// updateAppointmentsScreen обрабатывает клавиши на списке записей клиента.
func (m model) updateAppointmentsScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Открыт запрос подтверждения отмены: принимаются только s/n.
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
		return m, m.navigate(dashboardScreen)
	case keyNew:
		return m, m.navigate(newAppointmentScreen)
	case keyCancel:
		a, ok := m.selectedAppointment()
		if !ok {
			return m, nil
		}
		// Отмена предлагается только для подтвержденных записей.
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
	m.appointmentList, cmd = m.appointmentList.Update(msg)
	return m, cmd
}

// viewAppointmentsScreen отрисовывает список записей клиента.
func (m model) viewAppointmentsScreen() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(titleStyle.Render("Meus Agendamentos"))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("Carregando..."))
		return b.String()
	}

	if len(m.appointments) == 0 {
		b.WriteString(titleStyle.Render("Meus Agendamentos"))
		b.WriteString("\n\n")
		b.WriteString("Você ainda não tem agendamentos.\n\n")
		b.WriteString(helpStyle.Render("n — novo agendamento • esc — voltar"))
		return b.String()
	}

	b.WriteString(m.appointmentList.View())
	b.WriteString("\n")

	if m.confirmCancelID != 0 {
		b.WriteString(warnStyle.Render("Deseja cancelar este agendamento? (s/n)"))
		b.WriteString("\n")
	} else {
		b.WriteString(helpStyle.Render("c — cancelar • n — novo • esc — voltar"))
	}
	return b.String()
}

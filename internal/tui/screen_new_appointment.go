package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

// Поля формы новой записи.
const (
	bookingFieldService = iota
	bookingFieldBarber
	bookingFieldDate
	bookingFieldTime
	bookingFieldCount
)

// Сообщение, показываемое при попытке создать запись без сети.
const offlineMessage = "Sem conexão com a internet. Não é possível criar agendamento offline."

// updateNewAppointmentScreen обрабатывает клавиши формы новой записи.
func (m model) updateNewAppointmentScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		if msg.String() == keyEsc {
			return m, m.navigate(dashboardScreen)
		}
		return m, nil
	}

	switch msg.String() {
	case keyEsc:
		return m, m.navigate(dashboardScreen)
	case keyTab, "down":
		return m.moveBookingFocus(1)
	case keyShiftTab, "up":
		return m.moveBookingFocus(-1)
	case keyLeft:
		if m.bookingFocus == bookingFieldService && len(m.services) > 0 {
			m.serviceIdx = nextFocus(m.serviceIdx, len(m.services), -1)
			return m, nil
		}
		if m.bookingFocus == bookingFieldBarber && len(m.barbers) > 0 {
			m.barberIdx = nextFocus(m.barberIdx, len(m.barbers), -1)
			return m, nil
		}
	case keyRight:
		if m.bookingFocus == bookingFieldService && len(m.services) > 0 {
			m.serviceIdx = nextFocus(m.serviceIdx, len(m.services), 1)
			return m, nil
		}
		if m.bookingFocus == bookingFieldBarber && len(m.barbers) > 0 {
			m.barberIdx = nextFocus(m.barberIdx, len(m.barbers), 1)
			return m, nil
		}
	case keyEnter:
		if m.bookingFocus < bookingFieldCount-1 {
			return m.moveBookingFocus(1)
		}
		return m.submitBooking()
	}

	return m, updateInputs([]*textinput.Model{&m.dateInput, &m.timeInput}, msg)
}

func (m model) moveBookingFocus(delta int) (tea.Model, tea.Cmd) {
	m.bookingFocus = nextFocus(m.bookingFocus, bookingFieldCount, delta)
	inputs := []*textinput.Model{&m.dateInput, &m.timeInput}
	switch m.bookingFocus {
	case bookingFieldDate:
		return m, applyFocus(inputs, 0)
	case bookingFieldTime:
		return m, applyFocus(inputs, 1)
	default:
		m.dateInput.Blur()
		m.timeInput.Blur()
		return m, nil
	}
}

// submitBooking проверяет форму и отправляет запрос на создание записи.
// Без подключения запись не создается: черновики не сохраняются.
func (m model) submitBooking() (tea.Model, tea.Cmd) {
	if len(m.services) == 0 || len(m.barbers) == 0 {
		m.errText = "Nenhum serviço ou barbeiro disponível no momento."
		return m, nil
	}

	date := strings.TrimSpace(m.dateInput.Value())
	hour := strings.TrimSpace(m.timeInput.Value())
	if date == "" || hour == "" {
		m.errText = "Informe data e horário."
		return m, nil
	}
	parsed, ok := validDate(date)
	if !ok {
		m.errText = "Data inválida. Use o formato AAAA-MM-DD."
		return m, nil
	}
	if beforeToday(parsed, time.Now()) {
		m.errText = "A data não pode ser no passado."
		return m, nil
	}
	if !validTime(hour) {
		m.errText = "Horário inválido. Use o formato HH:MM."
		return m, nil
	}

	if !m.online() {
		m.errText = offlineMessage
		return m, nil
	}

	req := models.AppointmentRequest{
		ServiceID: m.services[m.serviceIdx].ID,
		BarberID:  m.barbers[m.barberIdx].ID,
		Date:      date,
		Time:      hour,
	}
	m.errText = ""
	m.submitting = true
	return m, m.createAppointmentCmd(m.viewID, req)
}

// viewNewAppointmentScreen отрисовывает форму новой записи.
func (m model) viewNewAppointmentScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Novo Agendamento"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(mutedStyle.Render("Carregando serviços e barbeiros..."))
		return b.String()
	}

	b.WriteString(m.renderPicker("Serviço", bookingFieldService, m.serviceLabel()))
	b.WriteString(m.renderPicker("Barbeiro", bookingFieldBarber, m.barberLabel()))

	b.WriteString(labelStyle.Render("Data"))
	b.WriteString("\n")
	b.WriteString(m.dateInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Horário"))
	b.WriteString("\n")
	b.WriteString(m.timeInput.View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(mutedStyle.Render("Enviando..."))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("←/→ — escolher • tab — próximo campo • enter — agendar • esc — voltar"))
	return b.String()
}

func (m model) renderPicker(label string, field int, value string) string {
	marker := "  "
	if m.bookingFocus == field {
		marker = focusedStyle.Render("> ")
	}
	return fmt.Sprintf("%s\n%s◀ %s ▶\n\n", labelStyle.Render(label), marker, value)
}

func (m model) serviceLabel() string {
	if len(m.services) == 0 {
		return "—"
	}
	s := m.services[m.serviceIdx]
	return fmt.Sprintf("%s (%s, %d min)", s.Name, formatPrice(s.Price), s.Duration)
}

func (m model) barberLabel() string {
	if len(m.barbers) == 0 {
		return "—"
	}
	return m.barbers[m.barberIdx].Name
}

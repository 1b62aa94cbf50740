package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

// updateAdminBarbersScreen обрабатывает клавиши списка барберов.
func (m model) updateAdminBarbersScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDeleteID != 0 {
		switch msg.String() {
		case keyYes:
			id := m.confirmDeleteID
			m.confirmDeleteID = 0
			m.errText = ""
			return m, m.deleteBarberCmd(m.viewID, id)
		case keyNo, keyEsc:
			m.confirmDeleteID = 0
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case keyEsc:
		return m, m.navigate(adminDashboardScreen)
	case keyNew:
		return m, m.navigate(adminBarberFormScreen)
	case keyDelete:
		item, ok := m.barberList.SelectedItem().(barberItem)
		if !ok {
			return m, nil
		}
		m.confirmDeleteID = item.barber.ID
		return m, nil
	}

	var cmd tea.Cmd
	m.barberList, cmd = m.barberList.Update(msg)
	return m, cmd
}

// viewAdminBarbersScreen отрисовывает список барберов.
func (m model) viewAdminBarbersScreen() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(titleStyle.Render("Barbeiros"))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("Carregando..."))
		return b.String()
	}

	if len(m.barbers) == 0 {
		b.WriteString(titleStyle.Render("Barbeiros"))
		b.WriteString("\n\n")
		b.WriteString("Nenhum barbeiro cadastrado.\n\n")
		b.WriteString(helpStyle.Render("n — novo barbeiro • esc — voltar"))
		return b.String()
	}

	b.WriteString(m.barberList.View())
	b.WriteString("\n")

	if m.confirmDeleteID != 0 {
		b.WriteString(warnStyle.Render("Remover este barbeiro? (s/n)"))
		b.WriteString("\n")
	} else {
		b.WriteString(helpStyle.Render("n — novo • d — remover • esc — voltar"))
	}
	return b.String()
}

// updateAdminBarberFormScreen обрабатывает клавиши формы нового барбера.
func (m model) updateAdminBarberFormScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inputs := []*textinput.Model{&m.barberNameInput, &m.barberPhoneInput}

	switch msg.String() {
	case keyEsc:
		return m, m.navigate(adminBarbersScreen)
	case keyTab, "down":
		m.barberFocus = nextFocus(m.barberFocus, len(inputs), 1)
		return m, applyFocus(inputs, m.barberFocus)
	case keyShiftTab, "up":
		m.barberFocus = nextFocus(m.barberFocus, len(inputs), -1)
		return m, applyFocus(inputs, m.barberFocus)
	case keyEnter:
		if m.barberFocus < len(inputs)-1 {
			m.barberFocus++
			return m, applyFocus(inputs, m.barberFocus)
		}
		return m.submitBarber()
	}

	return m, updateInputs(inputs, msg)
}

func (m model) submitBarber() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.barberNameInput.Value())
	if name == "" {
		m.errText = "Informe o nome do barbeiro."
		return m, nil
	}
	req := models.CreateBarberRequest{
		Name:  name,
		Phone: strings.TrimSpace(m.barberPhoneInput.Value()),
	}
	m.errText = ""
	m.submitting = true
	return m, m.createBarberCmd(m.viewID, req)
}

// viewAdminBarberFormScreen отрисовывает форму нового барбера.
func (m model) viewAdminBarberFormScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Novo Barbeiro"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Nome"))
	b.WriteString("\n")
	b.WriteString(m.barberNameInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Telefone"))
	b.WriteString("\n")
	b.WriteString(m.barberPhoneInput.View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(mutedStyle.Render("Salvando..."))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter — salvar • tab — próximo campo • esc — voltar"))
	return b.String()
}

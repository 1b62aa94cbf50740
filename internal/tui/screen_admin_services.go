package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

// updateAdminServicesScreen обрабатывает клавиши списка услуг.
func (m model) updateAdminServicesScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDeleteID != 0 {
		switch msg.String() {
		case keyYes:
			id := m.confirmDeleteID
			m.confirmDeleteID = 0
			m.errText = ""
			return m, m.deleteServiceCmd(m.viewID, id)
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
		return m, m.navigate(adminServiceFormScreen)
	case keyDelete:
		item, ok := m.serviceList.SelectedItem().(serviceItem)
		if !ok {
			return m, nil
		}
		m.confirmDeleteID = item.service.ID
		return m, nil
	}

	var cmd tea.Cmd
	m.serviceList, cmd = m.serviceList.Update(msg)
	return m, cmd
}

// viewAdminServicesScreen отрисовывает список услуг.
func (m model) viewAdminServicesScreen() string {
	var b strings.Builder

	if m.loading {
		b.WriteString(titleStyle.Render("Serviços"))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("Carregando..."))
		return b.String()
	}

	if len(m.services) == 0 {
		b.WriteString(titleStyle.Render("Serviços"))
		b.WriteString("\n\n")
		b.WriteString("Nenhum serviço cadastrado.\n\n")
		b.WriteString(helpStyle.Render("n — novo serviço • esc — voltar"))
		return b.String()
	}

	b.WriteString(m.serviceList.View())
	b.WriteString("\n")

	if m.confirmDeleteID != 0 {
		b.WriteString(warnStyle.Render("Remover este serviço? (s/n)"))
		b.WriteString("\n")
	} else {
		b.WriteString(helpStyle.Render("n — novo • d — remover • esc — voltar"))
	}
	return b.String()
}

// updateAdminServiceFormScreen обрабатывает клавиши формы новой услуги.
func (m model) updateAdminServiceFormScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inputs := []*textinput.Model{&m.svcNameInput, &m.svcDescInput, &m.svcPriceInput, &m.svcDurInput}

	switch msg.String() {
	case keyEsc:
		return m, m.navigate(adminServicesScreen)
	case keyTab, "down":
		m.svcFocus = nextFocus(m.svcFocus, len(inputs), 1)
		return m, applyFocus(inputs, m.svcFocus)
	case keyShiftTab, "up":
		m.svcFocus = nextFocus(m.svcFocus, len(inputs), -1)
		return m, applyFocus(inputs, m.svcFocus)
	case keyEnter:
		if m.svcFocus < len(inputs)-1 {
			m.svcFocus++
			return m, applyFocus(inputs, m.svcFocus)
		}
		return m.submitService()
	}

	return m, updateInputs(inputs, msg)
}

func (m model) submitService() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.svcNameInput.Value())
	if name == "" {
		m.errText = "Informe o nome do serviço."
		return m, nil
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(m.svcPriceInput.Value()), 64)
	if err != nil || price <= 0 {
		m.errText = "Preço inválido."
		return m, nil
	}
	duration, err := strconv.Atoi(strings.TrimSpace(m.svcDurInput.Value()))
	if err != nil || duration <= 0 {
		m.errText = "Duração inválida."
		return m, nil
	}

	req := models.CreateServiceRequest{
		Name:        name,
		Description: strings.TrimSpace(m.svcDescInput.Value()),
		Price:       price,
		Duration:    duration,
	}
	m.errText = ""
	m.submitting = true
	return m, m.createServiceCmd(m.viewID, req)
}

// viewAdminServiceFormScreen отрисовывает форму новой услуги.
func (m model) viewAdminServiceFormScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Novo Serviço"))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		input textinput.Model
	}{
		{"Nome", m.svcNameInput},
		{"Descrição", m.svcDescInput},
		{"Preço", m.svcPriceInput},
		{"Duração (min)", m.svcDurInput},
	}
	for _, f := range fields {
		b.WriteString(labelStyle.Render(f.label))
		b.WriteString("\n")
		b.WriteString(f.input.View())
		b.WriteString("\n\n")
	}

	if m.submitting {
		b.WriteString(mutedStyle.Render("Salvando..."))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter — salvar • tab — próximo campo • esc — voltar"))
	return b.String()
}

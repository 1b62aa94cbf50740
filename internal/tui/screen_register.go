package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

func (m model) registerInputPtrs() []*textinput.Model {
	ptrs := make([]*textinput.Model, len(m.registerInputs))
	for i := range m.registerInputs {
		ptrs[i] = &m.registerInputs[i]
	}
	return ptrs
}

// updateRegisterScreen обрабатывает клавиши на экране регистрации.
func (m model) updateRegisterScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inputs := m.registerInputPtrs()

	switch msg.String() {
	case keyEsc:
		return m, m.navigate(loginScreen)
	case keyTab, "down":
		m.registerFocus = nextFocus(m.registerFocus, len(inputs), 1)
		return m, applyFocus(inputs, m.registerFocus)
	case keyShiftTab, "up":
		m.registerFocus = nextFocus(m.registerFocus, len(inputs), -1)
		return m, applyFocus(inputs, m.registerFocus)
	case keyEnter:
		if m.registerFocus < len(inputs)-1 {
			m.registerFocus++
			return m, applyFocus(inputs, m.registerFocus)
		}
		return m.submitRegister()
	}

	return m, updateInputs(inputs, msg)
}

func (m model) submitRegister() (tea.Model, tea.Cmd) {
	req := models.RegisterRequest{
		Name:     strings.TrimSpace(m.registerInputs[0].Value()),
		Email:    strings.TrimSpace(m.registerInputs[1].Value()),
		Password: m.registerInputs[2].Value(),
		Phone:    strings.TrimSpace(m.registerInputs[3].Value()),
	}
	// Телефон опционален, остальное обязательно.
	if req.Name == "" || req.Email == "" || req.Password == "" {
		m.errText = "Preencha nome, email e senha."
		return m, nil
	}
	m.errText = ""
	m.loading = true
	return m, m.registerCmd(m.viewID, req)
}

// viewRegisterScreen отрисовывает экран регистрации.
func (m model) viewRegisterScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Criar Conta"))
	b.WriteString("\n\n")

	labels := []string{"Nome", "Email", "Senha", "Telefone"}
	for i, ti := range m.registerInputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(ti.View())
		b.WriteString("\n\n")
	}

	if m.loading {
		b.WriteString(mutedStyle.Render("Criando conta..."))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter — cadastrar • tab — próximo campo • esc — voltar"))
	return b.String()
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// updateLoginScreen обрабатывает клавиши на экране входа.
func (m model) updateLoginScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inputs := []*textinput.Model{&m.loginEmailInput, &m.loginPasswordInput}

	switch msg.String() {
	case keyTab, "down":
		m.loginFocus = nextFocus(m.loginFocus, len(inputs), 1)
		return m, applyFocus(inputs, m.loginFocus)
	case keyShiftTab, "up":
		m.loginFocus = nextFocus(m.loginFocus, len(inputs), -1)
		return m, applyFocus(inputs, m.loginFocus)
	case "ctrl+r":
		return m, m.navigate(registerScreen)
	case keyEnter:
		// Enter на первом поле переводит фокус, на последнем — отправляет.
		if m.loginFocus < len(inputs)-1 {
			m.loginFocus++
			return m, applyFocus(inputs, m.loginFocus)
		}
		return m.submitLogin()
	}

	return m, updateInputs(inputs, msg)
}

func (m model) submitLogin() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(m.loginEmailInput.Value())
	password := m.loginPasswordInput.Value()
	if email == "" || password == "" {
		m.errText = "Informe email e senha."
		return m, nil
	}
	m.errText = ""
	m.loading = true
	return m, m.loginCmd(m.viewID, email, password)
}

// viewLoginScreen отрисовывает экран входа.
func (m model) viewLoginScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Barbearia do Marcão"))
	b.WriteString("\n\n")
	b.WriteString("Entrar\n\n")

	b.WriteString(labelStyle.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.loginEmailInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Senha"))
	b.WriteString("\n")
	b.WriteString(m.loginPasswordInput.View())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(mutedStyle.Render("Entrando..."))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("enter — entrar • tab — próximo campo • ctrl+r — criar conta • ctrl+c — sair"))
	return b.String()
}

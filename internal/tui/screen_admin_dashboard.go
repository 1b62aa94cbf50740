package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// updateAdminDashboardScreen обрабатывает клавиши панели метрик.
func (m model) updateAdminDashboardScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		return m, m.navigate(dashboardScreen)
	case "a":
		return m, m.navigate(adminAppointmentsScreen)
	case "s":
		return m, m.navigate(adminServicesScreen)
	case "b":
		return m, m.navigate(adminBarbersScreen)
	case "u":
		return m, m.navigate(adminUsersScreen)
	case "r":
		m.loading = true
		return m, m.loadMetricsCmd(m.viewID)
	}
	return m, nil
}

// viewAdminDashboardScreen отрисовывает панель метрик.
func (m model) viewAdminDashboardScreen() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Painel Administrativo"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(mutedStyle.Render("Carregando métricas..."))
		return b.String()
	}

	if m.metrics == nil {
		b.WriteString(mutedStyle.Render("Métricas indisponíveis."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("r — recarregar • esc — voltar"))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Total de agendamentos: %d\n", m.metrics.TotalAppointments))
	b.WriteString(fmt.Sprintf("Agendamentos hoje:     %d\n", m.metrics.TodayAppointments))
	b.WriteString(fmt.Sprintf("Receita estimada:      %s\n", formatPrice(m.metrics.EstimatedRevenue)))

	if len(m.metrics.TopServices) > 0 {
		b.WriteString("\nServiços mais procurados:\n")
		for i, s := range m.metrics.TopServices {
			b.WriteString(fmt.Sprintf("  %d. %s (%d)\n", i+1, s.Name, s.Count))
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("a — agendamentos • s — serviços • b — barbeiros • u — usuários • r — recarregar • esc — voltar"))
	return b.String()
}

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcondescastro18/barbearia-cli/internal/guard"
)

// requiredCapability сопоставляет экран с требуемым уровнем доступа.
func requiredCapability(s screenState) guard.Capability {
	switch s {
	case loginScreen, registerScreen:
		return guard.CapabilityNone
	case dashboardScreen, appointmentsScreen, newAppointmentScreen:
		return guard.CapabilityAuthenticated
	case adminDashboardScreen, adminAppointmentsScreen,
		adminServicesScreen, adminServiceFormScreen,
		adminBarbersScreen, adminBarberFormScreen, adminUsersScreen:
		return guard.CapabilityAdmin
	default:
		// Неизвестный экран считается защищенным.
		return guard.CapabilityAuthenticated
	}
}

// knownScreen сообщает, описан ли экран в перечислении.
func knownScreen(s screenState) bool {
	return s >= loginScreen && s <= adminUsersScreen
}

// navigate переводит приложение на целевой экран, перечитав сессию
// из хранилища и применив проверку доступа. Каждая навигация создает
// новый экземпляр экрана: ответы, запрошенные предыдущим экземпляром,
// будут отброшены.
func (m *model) navigate(target screenState) tea.Cmd {
	sess, err := m.sessions.Current(context.Background())
	if err != nil {
		zap.L().Error("не удалось прочитать сессию", zap.Error(err))
		sess = nil
	}
	m.sess = sess

	// Неописанный пункт назначения ведет на домашний экран.
	if !knownScreen(target) {
		target = dashboardScreen
	}

	switch guard.Decide(requiredCapability(target), sess) {
	case guard.RedirectLogin:
		target = loginScreen
	case guard.RedirectHome:
		target = dashboardScreen
	}

	zap.L().Debug("навигация", zap.Stringer("screen", target))

	m.state = target
	m.viewID = uuid.New()
	m.errText = ""
	m.loading = false
	m.confirmCancelID = 0
	m.confirmDeleteID = 0

	return m.enterScreen(target)
}

// enterScreen готовит экран к показу: сбрасывает формы, ставит фокус
// и запускает загрузку данных, если экран их требует.
func (m *model) enterScreen(target screenState) tea.Cmd {
	switch target {
	case loginScreen:
		m.resetLoginInputs()
		return textinput.Blink
	case registerScreen:
		m.resetRegisterInputs()
		return textinput.Blink
	case dashboardScreen:
		m.rebuildMenu()
		return nil
	case appointmentsScreen:
		m.loading = true
		m.appointmentList.SetItems(nil)
		return m.loadAppointmentsCmd(m.viewID)
	case newAppointmentScreen:
		m.resetBookingForm()
		m.loading = true
		return m.loadCatalogCmd(m.viewID)
	case adminDashboardScreen:
		m.metrics = nil
		m.loading = true
		return m.loadMetricsCmd(m.viewID)
	case adminAppointmentsScreen:
		m.loading = true
		return m.loadAdminAppointmentsCmd(m.viewID)
	case adminServicesScreen:
		m.loading = true
		return m.loadServicesCmd(m.viewID)
	case adminServiceFormScreen:
		m.resetServiceForm()
		return textinput.Blink
	case adminBarbersScreen:
		m.loading = true
		return m.loadBarbersCmd(m.viewID)
	case adminBarberFormScreen:
		m.resetBarberForm()
		return textinput.Blink
	case adminUsersScreen:
		m.loading = true
		return m.loadUsersCmd(m.viewID)
	}
	return nil
}

// rebuildMenu собирает пункты меню под роль текущего пользователя.
func (m *model) rebuildMenu() {
	items := []list.Item{
		menuItem{title: "Novo Agendamento", id: menuNewAppointment},
		menuItem{title: "Meus Agendamentos", id: menuMyAppointments},
	}
	if m.sess != nil && m.sess.User.IsAdmin() {
		items = append(items,
			menuItem{title: "Painel Administrativo", id: menuAdminPanel},
			menuItem{title: "Todos os Agendamentos", id: menuAdminAppointments},
			menuItem{title: "Serviços", id: menuAdminServices},
			menuItem{title: "Barbeiros", id: menuAdminBarbers},
			menuItem{title: "Usuários", id: menuAdminUsers},
		)
	}
	items = append(items, menuItem{title: "Sair", id: menuLogout})
	m.menu.SetItems(items)
	m.menu.ResetSelected()
}

// logout очищает сессию и возвращает на экран входа.
func (m *model) logout() tea.Cmd {
	if err := m.sessions.Clear(context.Background()); err != nil {
		zap.L().Error("не удалось очистить сессию", zap.Error(err))
	}
	m.status = "Até logo!"
	return m.navigate(loginScreen)
}

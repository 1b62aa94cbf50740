// Package tui реализует терминальный интерфейс клиента барбершопа
// на Bubble Tea: экраны входа и регистрации, записи клиента и
// административную панель.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"github.com/marcondescastro18/barbearia-cli/internal/api"
	"github.com/marcondescastro18/barbearia-cli/internal/session"
)

// Стили интерфейса.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Init возвращает команду стартового экрана, подготовленную в Start.
func (m model) Init() tea.Cmd {
	return m.initCmd
}

// View отрисовывает текущий экран с общим подвалом.
func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.screenContentView())

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errText))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.debugMode {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(fmt.Sprintf("[debug] screen=%s view=%s", m.state, m.viewID)))
	}

	return m.docStyle.Render(b.String())
}

// screenContentView выбирает представление текущего экрана.
func (m model) screenContentView() string {
	switch m.state {
	case loginScreen:
		return m.viewLoginScreen()
	case registerScreen:
		return m.viewRegisterScreen()
	case dashboardScreen:
		return m.viewDashboardScreen()
	case appointmentsScreen:
		return m.viewAppointmentsScreen()
	case newAppointmentScreen:
		return m.viewNewAppointmentScreen()
	case adminDashboardScreen:
		return m.viewAdminDashboardScreen()
	case adminAppointmentsScreen:
		return m.viewAdminAppointmentsScreen()
	case adminServicesScreen:
		return m.viewAdminServicesScreen()
	case adminServiceFormScreen:
		return m.viewAdminServiceFormScreen()
	case adminBarbersScreen:
		return m.viewAdminBarbersScreen()
	case adminBarberFormScreen:
		return m.viewAdminBarberFormScreen()
	case adminUsersScreen:
		return m.viewAdminUsersScreen()
	default:
		return "Tela desconhecida."
	}
}

// Start запускает TUI приложение. Вторая копия на том же каталоге
// данных не стартует: файловая блокировка защищает хранилище сессии.
func Start(sessions session.Store, apiClient api.Client, lockPath string, debug bool) error {
	fileLock := flock.New(lockPath)
	locked, err := fileLock.TryLock()
	if err != nil {
		return fmt.Errorf("не удалось получить блокировку %s: %w", lockPath, err)
	}
	if !locked {
		return fmt.Errorf("приложение уже запущено (блокировка %s занята)", lockPath)
	}
	defer func() {
		if err := fileLock.Unlock(); err != nil {
			zap.L().Error("не удалось снять блокировку", zap.Error(err))
		}
	}()

	m := initialModel(sessions, apiClient, debug)
	// Стартовая навигация: авторизованный пользователь попадает сразу
	// на домашний экран, остальные — на вход.
	m.initCmd = m.navigate(dashboardScreen)

	p := tea.NewProgram(m, tea.WithAltScreen())
	zap.L().Info("интерфейс запущен")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ошибка выполнения программы: %w", err)
	}
	return nil
}

package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update обрабатывает сообщения и обновляет состояние приложения.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := m.docStyle.GetFrameSize()
		w, ht := msg.Width-h, msg.Height-v-helpStatusHeightOffset
		m.menu.SetSize(w, ht)
		m.appointmentList.SetSize(w, ht)
		m.serviceList.SetSize(w, ht)
		m.barberList.SetSize(w, ht)
		m.adminTable.SetWidth(w)
		m.adminTable.SetHeight(ht)
		m.usersTable.SetWidth(w)
		m.usersTable.SetHeight(ht)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	// Сервер отверг токен: сессия уже очищена, возвращаемся на вход.
	case authRejectedMsg:
		m.sess = nil
		cmd := m.navigate(loginScreen)
		m.status = "Sessão expirada. Entre novamente."
		return m, cmd

	case authSuccessMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.loading = false
		if err := m.sessions.Save(context.Background(), msg.resp.Token, msg.resp.User); err != nil {
			zap.L().Error("не удалось сохранить сессию", zap.Error(err))
			m.errText = "Não foi possível salvar a sessão."
			return m, nil
		}
		zap.L().Info("вход выполнен",
			zap.Int("user_id", msg.resp.User.ID),
			zap.String("role", msg.resp.User.Role))
		target := dashboardScreen
		if msg.resp.User.IsAdmin() {
			target = adminDashboardScreen
		}
		cmd := m.navigate(target)
		m.status = "Bem-vindo, " + msg.resp.User.Name + "!"
		return m, cmd

	case authErrorMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.loading = false
		m.errText = msg.err.Error()
		return m, nil

	case appointmentsLoadedMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.loading = false
		m.appointments = msg.appointments
		items := make([]list.Item, 0, len(msg.appointments))
		for _, a := range msg.appointments {
			items = append(items, appointmentItem{appointment: a})
		}
		m.appointmentList.SetItems(items)
		return m, nil

	case catalogLoadedMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.loading = false
		m.services = msg.services
		m.barbers = msg.barbers
		m.serviceIdx = 0
		m.barberIdx = 0
		if len(msg.services) == 0 || len(msg.barbers) == 0 {
			m.errText = "Nenhum serviço ou barbeiro disponível no momento."
		}
		return m, nil

	case metricsLoadedMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.loading = false
		m.metrics = msg.metrics
		return m, nil

	case adminAppointmentsLoadedMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.loading = false
		m.adminAppointments = msg.appointments
		rows := make([]table.Row, 0, len(msg.appointments))
		for _, a := range msg.appointments {
			rows = append(rows, table.Row{
				formatDate(a.Date), a.Time, truncate(a.ClientName, 18),
				truncate(a.ServiceName, 18), truncate(a.BarberName, 14), a.Status.Label(),
			})
		}
		m.adminTable.SetRows(rows)
		m.adminTable.SetCursor(0)
		return m, nil

	case usersLoadedMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.loading = false
		m.adminUsers = msg.users
		rows := make([]table.Row, 0, len(msg.users))
		for _, u := range msg.users {
			rows = append(rows, table.Row{
				formatID(u.ID), truncate(u.Name, 22), truncate(u.Email, 28),
				u.Phone, u.Role,
			})
		}
		m.usersTable.SetRows(rows)
		m.usersTable.SetCursor(0)
		return m, nil

	case servicesLoadedMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.loading = false
		m.services = msg.services
		items := make([]list.Item, 0, len(msg.services))
		for _, s := range msg.services {
			items = append(items, serviceItem{service: s})
		}
		m.serviceList.SetItems(items)
		return m, nil

	case barbersLoadedMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.loading = false
		m.barbers = msg.barbers
		items := make([]list.Item, 0, len(msg.barbers))
		for _, b := range msg.barbers {
			items = append(items, barberItem{barber: b})
		}
		m.barberList.SetItems(items)
		return m, nil

	case loadErrorMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.loading = false
		m.errText = msg.err.Error()
		return m, nil

	case actionDoneMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.submitting = false
		m.status = msg.status
		// Локальное состояние не правим: перечитываем с сервера.
		switch m.state {
		case newAppointmentScreen:
			cmd := m.navigate(appointmentsScreen)
			m.status = msg.status
			return m, cmd
		case adminServiceFormScreen:
			cmd := m.navigate(adminServicesScreen)
			m.status = msg.status
			return m, cmd
		case adminBarberFormScreen:
			cmd := m.navigate(adminBarbersScreen)
			m.status = msg.status
			return m, cmd
		case appointmentsScreen:
			m.loading = true
			return m, m.loadAppointmentsCmd(m.viewID)
		case adminAppointmentsScreen:
			m.loading = true
			return m, m.loadAdminAppointmentsCmd(m.viewID)
		case adminServicesScreen:
			m.loading = true
			return m, m.loadServicesCmd(m.viewID)
		case adminBarbersScreen:
			m.loading = true
			return m, m.loadBarbersCmd(m.viewID)
		}
		return m, nil

	case actionErrorMsg:
		if msg.viewID != m.viewID {
			return m, nil
		}
		m.submitting = false
		// Текст ошибки сервера показывается как есть.
		m.errText = msg.err.Error()
		return m, nil
	}

	return m, nil
}

// updateKey направляет нажатие клавиши обработчику текущего экрана.
func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case loginScreen:
		return m.updateLoginScreen(msg)
	case registerScreen:
		return m.updateRegisterScreen(msg)
	case dashboardScreen:
		return m.updateDashboardScreen(msg)
	case appointmentsScreen:
		return m.updateAppointmentsScreen(msg)
	case newAppointmentScreen:
		return m.updateNewAppointmentScreen(msg)
	case adminDashboardScreen:
		return m.updateAdminDashboardScreen(msg)
	case adminAppointmentsScreen:
		return m.updateAdminAppointmentsScreen(msg)
	case adminServicesScreen:
		return m.updateAdminServicesScreen(msg)
	case adminServiceFormScreen:
		return m.updateAdminServiceFormScreen(msg)
	case adminBarbersScreen:
		return m.updateAdminBarbersScreen(msg)
	case adminBarberFormScreen:
		return m.updateAdminBarberFormScreen(msg)
	case adminUsersScreen:
		return m.updateAdminUsersScreen(msg)
	}
	return m, nil
}

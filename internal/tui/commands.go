package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcondescastro18/barbearia-cli/internal/api"
	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

// Таймаут на один сетевой запрос из TUI.
const requestTimeout = 20 * time.Second

// authRejectedMsg — сервер отверг токен (401). Обрабатывается глобально,
// без привязки к экрану: сессия уже очищена API-клиентом.
type authRejectedMsg struct{}

// authSuccessMsg — успешный вход или регистрация.
type authSuccessMsg struct {
	viewID uuid.UUID
	resp   *models.AuthResponse
}

// authErrorMsg — ошибка входа или регистрации.
type authErrorMsg struct {
	viewID uuid.UUID
	err    error
}

// appointmentsLoadedMsg — загружен список записей клиента.
type appointmentsLoadedMsg struct {
	viewID       uuid.UUID
	appointments []models.Appointment
}

// catalogLoadedMsg — загружены услуги и барберы для формы записи.
type catalogLoadedMsg struct {
	viewID   uuid.UUID
	services []models.Service
	barbers  []models.Barber
}

// metricsLoadedMsg — загружены метрики административной панели.
type metricsLoadedMsg struct {
	viewID  uuid.UUID
	metrics *models.Metrics
}

// adminAppointmentsLoadedMsg — загружены все записи (admin).
type adminAppointmentsLoadedMsg struct {
	viewID       uuid.UUID
	appointments []models.AdminAppointment
}

// usersLoadedMsg — загружен список пользователей (admin).
type usersLoadedMsg struct {
	viewID uuid.UUID
	users  []models.User
}

// servicesLoadedMsg — загружен список услуг (admin).
type servicesLoadedMsg struct {
	viewID   uuid.UUID
	services []models.Service
}

// barbersLoadedMsg — загружен список барберов (admin).
type barbersLoadedMsg struct {
	viewID  uuid.UUID
	barbers []models.Barber
}

// loadErrorMsg — ошибка загрузки данных экрана.
type loadErrorMsg struct {
	viewID uuid.UUID
	err    error
}

// actionDoneMsg — действие (создание, отмена, удаление) выполнено.
type actionDoneMsg struct {
	viewID uuid.UUID
	status string
}

// actionErrorMsg — действие отвергнуто сервером или не дошло до него.
type actionErrorMsg struct {
	viewID uuid.UUID
	err    error
}

// wrapAuthError превращает 401 в глобальное сообщение, остальное — в exec.
func wrapAuthError(err error, exec func() tea.Msg) tea.Msg {
	if errors.Is(err, api.ErrUnauthorized) {
		return authRejectedMsg{}
	}
	return exec()
}

func (m model) loginCmd(viewID uuid.UUID, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		resp, err := m.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
		if err != nil {
			return authErrorMsg{viewID: viewID, err: err}
		}
		return authSuccessMsg{viewID: viewID, resp: resp}
	}
}

func (m model) registerCmd(viewID uuid.UUID, req models.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		resp, err := m.api.Register(ctx, req)
		if err != nil {
			return authErrorMsg{viewID: viewID, err: err}
		}
		return authSuccessMsg{viewID: viewID, resp: resp}
	}
}

func (m model) loadAppointmentsCmd(viewID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		appointments, err := m.api.ListAppointments(ctx)
		if err != nil {
			return wrapAuthError(err, func() tea.Msg { return loadErrorMsg{viewID: viewID, err: err} })
		}
		return appointmentsLoadedMsg{viewID: viewID, appointments: appointments}
	}
}

// loadCatalogCmd загружает услуги и барберов одним заходом:
// форма записи без обоих списков бесполезна.
func (m model) loadCatalogCmd(viewID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		services, err := m.api.ListServices(ctx)
		if err != nil {
			return wrapAuthError(err, func() tea.Msg { return loadErrorMsg{viewID: viewID, err: err} })
		}
		barbers, err := m.api.ListBarbers(ctx)
		if err != nil {
			return wrapAuthError(err, func() tea.Msg { return loadErrorMsg{viewID: viewID, err: err} })
		}
		return catalogLoadedMsg{viewID: viewID, services: services, barbers: barbers}
	}
}

func (m model) createAppointmentCmd(viewID uuid.UUID, req models.AppointmentRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := m.api.CreateAppointment(ctx, req); err != nil {
			return wrapAuthError(err, func() tea.Msg { return actionErrorMsg{viewID: viewID, err: err} })
		}
		zap.L().Info("запись создана",
			zap.Int("service_id", req.ServiceID),
			zap.Int("barber_id", req.BarberID),
			zap.String("date", req.Date))
		return actionDoneMsg{viewID: viewID, status: "Agendamento criado com sucesso!"}
	}
}

func (m model) cancelAppointmentCmd(viewID uuid.UUID, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := m.api.CancelAppointment(ctx, id); err != nil {
			return wrapAuthError(err, func() tea.Msg { return actionErrorMsg{viewID: viewID, err: err} })
		}
		zap.L().Info("запись отменена", zap.Int("appointment_id", id))
		return actionDoneMsg{viewID: viewID, status: "Agendamento cancelado."}
	}
}

func (m model) loadMetricsCmd(viewID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		metrics, err := m.api.Metrics(ctx)
		if err != nil {
			return wrapAuthError(err, func() tea.Msg { return loadErrorMsg{viewID: viewID, err: err} })
		}
		return metricsLoadedMsg{viewID: viewID, metrics: metrics}
	}
}

func (m model) loadAdminAppointmentsCmd(viewID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		appointments, err := m.api.AdminAppointments(ctx)
		if err != nil {
			return wrapAuthError(err, func() tea.Msg { return loadErrorMsg{viewID: viewID, err: err} })
		}
		return adminAppointmentsLoadedMsg{viewID: viewID, appointments: appointments}
	}
}

func (m model) loadUsersCmd(viewID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		users, err := m.api.AdminUsers(ctx)
		if err != nil {
			return wrapAuthError(err, func() tea.Msg { return loadErrorMsg{viewID: viewID, err: err} })
		}
		return usersLoadedMsg{viewID: viewID, users: users}
	}
}

func (m model) loadServicesCmd(viewID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		services, err := m.api.ListServices(ctx)
		if err != nil {
			return wrapAuthError(err, func() tea.Msg { return loadErrorMsg{viewID: viewID, err: err} })
		}
		return servicesLoadedMsg{viewID: viewID, services: services}
	}
}

func (m model) loadBarbersCmd(viewID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		barbers, err := m.api.ListBarbers(ctx)
		if err != nil {
			return wrapAuthError(err, func() tea.Msg { return loadErrorMsg{viewID: viewID, err: err} })
		}
		return barbersLoadedMsg{viewID: viewID, barbers: barbers}
	}
}

func (m model) createServiceCmd(viewID uuid.UUID, req models.CreateServiceRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := m.api.CreateService(ctx, req); err != nil {
			return wrapAuthError(err, func() tea.Msg { return actionErrorMsg{viewID: viewID, err: err} })
		}
		return actionDoneMsg{viewID: viewID, status: "Serviço criado."}
	}
}

func (m model) deleteServiceCmd(viewID uuid.UUID, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := m.api.DeleteService(ctx, id); err != nil {
			return wrapAuthError(err, func() tea.Msg { return actionErrorMsg{viewID: viewID, err: err} })
		}
		return actionDoneMsg{viewID: viewID, status: "Serviço removido."}
	}
}

func (m model) createBarberCmd(viewID uuid.UUID, req models.CreateBarberRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := m.api.CreateBarber(ctx, req); err != nil {
			return wrapAuthError(err, func() tea.Msg { return actionErrorMsg{viewID: viewID, err: err} })
		}
		return actionDoneMsg{viewID: viewID, status: "Barbeiro adicionado."}
	}
}

func (m model) deleteBarberCmd(viewID uuid.UUID, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := m.api.DeleteBarber(ctx, id); err != nil {
			return wrapAuthError(err, func() tea.Msg { return actionErrorMsg{viewID: viewID, err: err} })
		}
		return actionDoneMsg{viewID: viewID, status: "Barbeiro removido."}
	}
}

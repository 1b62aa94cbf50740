package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcondescastro18/barbearia-cli/internal/api"
	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

// TestAuthRejectedRedirectsToLogin проверяет глобальную реакцию на
// отвергнутый токен: возврат на вход с пояснением.
func TestAuthRejectedRedirectsToLogin(t *testing.T) {
	store := &fakeStore{}
	clientSession(store)
	m := newTestModel(store, nil)
	_ = m.navigate(appointmentsScreen)

	// API-клиент уже очистил сессию к моменту сообщения.
	require.NoError(t, store.Clear(context.Background()))

	updated, _ := m.Update(authRejectedMsg{})
	m = updated.(model)

	assert.Equal(t, loginScreen, m.state)
	assert.Equal(t, "Sessão expirada. Entre novamente.", m.status)
	assert.Nil(t, m.sess)
}

// TestAuthSuccessRoutesByRole проверяет посадку после входа:
// администратор — в панель, клиент — на домашний экран.
func TestAuthSuccessRoutesByRole(t *testing.T) {
	tests := []struct {
		name string
		user models.User
		want screenState
	}{
		{
			name: "клиент попадает на домашний экран",
			user: models.User{ID: 1, Name: "João", Role: models.RoleClient},
			want: dashboardScreen,
		},
		{
			name: "администратор попадает в панель",
			user: models.User{ID: 2, Name: "Marcão", Role: models.RoleAdmin},
			want: adminDashboardScreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			m := newTestModel(store, nil)

			updated, _ := m.Update(authSuccessMsg{
				viewID: m.viewID,
				resp:   &models.AuthResponse{Token: "tok", User: tt.user},
			})
			m = updated.(model)

			assert.Equal(t, tt.want, m.state)
			assert.Contains(t, m.status, "Bem-vindo")

			// Токен и личность сохраняются вместе.
			sess, err := store.Current(context.Background())
			require.NoError(t, err)
			require.NotNil(t, sess)
			assert.Equal(t, "tok", sess.Token)
			assert.Equal(t, tt.user.ID, sess.User.ID)
		})
	}
}

// TestStaleResponsesDiscarded проверяет отбрасывание ответов,
// запрошенных предыдущим экземпляром экрана.
func TestStaleResponsesDiscarded(t *testing.T) {
	store := &fakeStore{}
	clientSession(store)
	m := newTestModel(store, nil)
	_ = m.navigate(appointmentsScreen)

	stale := uuid.New()
	require.NotEqual(t, stale, m.viewID)

	t.Run("устаревший список не применяется", func(t *testing.T) {
		updated, _ := m.Update(appointmentsLoadedMsg{
			viewID:       stale,
			appointments: []models.Appointment{{ID: 9, ServiceName: "Corte"}},
		})
		got := updated.(model)
		assert.Empty(t, got.appointments)
	})

	t.Run("устаревшая ошибка не показывается", func(t *testing.T) {
		updated, _ := m.Update(loadErrorMsg{viewID: stale, err: assert.AnError})
		got := updated.(model)
		assert.Empty(t, got.errText)
	})

	t.Run("устаревший результат действия не меняет статус", func(t *testing.T) {
		updated, cmd := m.Update(actionDoneMsg{viewID: stale, status: "Agendamento cancelado."})
		got := updated.(model)
		assert.Empty(t, got.status)
		assert.Nil(t, cmd)
	})

	t.Run("актуальный список применяется", func(t *testing.T) {
		updated, _ := m.Update(appointmentsLoadedMsg{
			viewID:       m.viewID,
			appointments: []models.Appointment{{ID: 9, ServiceName: "Corte"}},
		})
		got := updated.(model)
		require.Len(t, got.appointments, 1)
		assert.False(t, got.loading)
	})
}

// TestLoadErrorShownVerbatim проверяет, что текст ошибки сервера
// доходит до экрана без пересказа.
func TestLoadErrorShownVerbatim(t *testing.T) {
	store := &fakeStore{}
	clientSession(store)
	m := newTestModel(store, nil)
	_ = m.navigate(appointmentsScreen)

	serverErr := &api.ServerError{Status: 400, Message: "Horário indisponível"}
	updated, _ := m.Update(loadErrorMsg{viewID: m.viewID, err: serverErr})
	m = updated.(model)

	assert.Equal(t, "Horário indisponível", m.errText)
}

// TestActionDoneRefetchesFromServer проверяет, что после действия
// список перечитывается с сервера, а не правится локально.
func TestActionDoneRefetchesFromServer(t *testing.T) {
	refreshed := []models.Appointment{
		{ID: 1, ServiceName: "Corte", Status: models.StatusCancelled},
	}
	apiClient := &fakeAPI{
		listAppointmentsFn: func() ([]models.Appointment, error) {
			return refreshed, nil
		},
	}
	store := &fakeStore{}
	clientSession(store)
	m := newTestModel(store, apiClient)
	_ = m.navigate(appointmentsScreen)

	updated, cmd := m.Update(actionDoneMsg{viewID: m.viewID, status: "Agendamento cancelado."})
	m = updated.(model)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Equal(t, "Agendamento cancelado.", m.status)

	msg := drain(cmd)
	loaded, ok := msg.(appointmentsLoadedMsg)
	require.True(t, ok)

	updated, _ = m.Update(loaded)
	m = updated.(model)
	require.Len(t, m.appointments, 1)
	assert.Equal(t, models.StatusCancelled, m.appointments[0].Status)
}

// TestWindowResizePropagates проверяет, что изменение размера окна
// доходит и до списков, и до административных таблиц.
func TestWindowResizePropagates(t *testing.T) {
	store := &fakeStore{}
	adminSession(store)
	m := newTestModel(store, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(model)

	h, v := m.docStyle.GetFrameSize()
	wantW := 120 - h
	wantH := 40 - v - helpStatusHeightOffset

	assert.Equal(t, wantW, m.appointmentList.Width())
	assert.Equal(t, wantH, m.appointmentList.Height())
	assert.Equal(t, wantW, m.adminTable.Width())
	assert.Equal(t, wantH, m.adminTable.Height())
	assert.Equal(t, wantW, m.usersTable.Width())
	assert.Equal(t, wantH, m.usersTable.Height())
}

// TestActionErrorKeepsScreenState проверяет, что ошибка действия
// показывается на месте и не сбрасывает экран.
func TestActionErrorKeepsScreenState(t *testing.T) {
	store := &fakeStore{}
	clientSession(store)
	m := newTestModel(store, nil)
	_ = m.navigate(appointmentsScreen)

	serverErr := &api.ServerError{Status: 409, Message: "Agendamento não pode ser cancelado"}
	updated, _ := m.Update(actionErrorMsg{viewID: m.viewID, err: serverErr})
	m = updated.(model)

	assert.Equal(t, appointmentsScreen, m.state)
	assert.Equal(t, "Agendamento não pode ser cancelado", m.errText)
	assert.False(t, m.submitting)
}

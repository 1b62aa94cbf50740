package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

func modelWithAppointments(t *testing.T, apiClient *fakeAPI, appointments []models.Appointment) model {
	t.Helper()
	store := &fakeStore{}
	clientSession(store)
	m := newTestModel(store, apiClient)
	_ = m.navigate(appointmentsScreen)

	updated, _ := m.Update(appointmentsLoadedMsg{viewID: m.viewID, appointments: appointments})
	return updated.(model)
}

// TestCancelOfferedOnlyForConfirmed проверяет, что отмена предлагается
// только для подтвержденных записей: на завершенных и отмененных
// клавиша бездействует.
func TestCancelOfferedOnlyForConfirmed(t *testing.T) {
	appointments := []models.Appointment{
		{ID: 1, ServiceName: "Corte", Status: models.StatusConfirmed},
		{ID: 2, ServiceName: "Barba", Status: models.StatusCompleted},
		{ID: 3, ServiceName: "Sobrancelha", Status: models.StatusCancelled},
	}

	tests := []struct {
		name        string
		selected    int
		wantConfirm int
		wantStatus  string
	}{
		{"подтвержденная запись предлагает отмену", 0, 1, ""},
		{"завершенная запись не предлагает отмену", 1, 0, "Agendamento concluído não pode ser cancelado."},
		{"отмененная запись не предлагает отмену", 2, 0, "Agendamento cancelado não pode ser cancelado."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := modelWithAppointments(t, nil, appointments)
			m.appointmentList.Select(tt.selected)

			updated, _ := m.Update(keyPress(keyCancel))
			m = updated.(model)

			assert.Equal(t, tt.wantConfirm, m.confirmCancelID)
			assert.Equal(t, tt.wantStatus, m.status)
		})
	}
}

// TestCancelRequiresConfirmation проверяет диалог подтверждения отмены.
func TestCancelRequiresConfirmation(t *testing.T) {
	t.Run("подтверждение отправляет запрос", func(t *testing.T) {
		var cancelled int
		apiClient := &fakeAPI{
			cancelAppointmentFn: func(id int) error {
				cancelled = id
				return nil
			},
		}
		m := modelWithAppointments(t, apiClient, []models.Appointment{
			{ID: 7, ServiceName: "Corte", Status: models.StatusConfirmed},
		})

		updated, _ := m.Update(keyPress(keyCancel))
		m = updated.(model)
		require.Equal(t, 7, m.confirmCancelID)

		updated, cmd := m.Update(keyPress(keyYes))
		m = updated.(model)
		require.NotNil(t, cmd)
		assert.Zero(t, m.confirmCancelID)

		msg := drain(cmd)
		done, ok := msg.(actionDoneMsg)
		require.True(t, ok)
		assert.Equal(t, 7, cancelled)
		assert.Equal(t, "Agendamento cancelado.", done.status)
	})

	t.Run("отказ оставляет запись нетронутой", func(t *testing.T) {
		apiClient := &fakeAPI{
			cancelAppointmentFn: func(int) error {
				t.Fatal("запрос на отмену не должен отправляться")
				return nil
			},
		}
		m := modelWithAppointments(t, apiClient, []models.Appointment{
			{ID: 7, ServiceName: "Corte", Status: models.StatusConfirmed},
		})

		updated, _ := m.Update(keyPress(keyCancel))
		m = updated.(model)
		updated, cmd := m.Update(keyPress("n"))
		m = updated.(model)

		assert.Zero(t, m.confirmCancelID)
		assert.Nil(t, cmd)
	})
}

// TestAppointmentItemShowsCancelHint проверяет подсказку отмены в списке.
func TestAppointmentItemShowsCancelHint(t *testing.T) {
	confirmed := appointmentItem{appointment: models.Appointment{
		ServiceName: "Corte", BarberName: "Carlos",
		Date: "2026-09-10", Time: "14:00", Price: 45,
		Status: models.StatusConfirmed,
	}}
	completed := appointmentItem{appointment: models.Appointment{
		ServiceName: "Corte", BarberName: "Carlos",
		Date: "2026-09-10", Time: "14:00", Price: 45,
		Status: models.StatusCompleted,
	}}

	assert.Contains(t, confirmed.Description(), "cancelar")
	assert.NotContains(t, completed.Description(), "cancelar")
	assert.Contains(t, confirmed.Title(), "Confirmado")
	assert.Contains(t, completed.Title(), "Concluído")
}

// TestEmptyAppointmentsView проверяет экран без записей.
func TestEmptyAppointmentsView(t *testing.T) {
	m := modelWithAppointments(t, nil, nil)

	view := m.viewAppointmentsScreen()
	assert.Contains(t, view, "Você ainda não tem agendamentos.")
}

// TestCancelKeyIgnoredOnEmptyList проверяет, что отмена на пустом
// списке ничего не делает.
func TestCancelKeyIgnoredOnEmptyList(t *testing.T) {
	m := modelWithAppointments(t, nil, nil)
	require.Empty(t, m.appointmentList.Items())

	updated, cmd := m.Update(keyPress(keyCancel))
	m = updated.(model)

	assert.Zero(t, m.confirmCancelID)
	assert.Nil(t, cmd)
}

var _ = list.Item(appointmentItem{})

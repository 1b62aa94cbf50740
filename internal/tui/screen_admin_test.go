package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

func adminModel(t *testing.T, apiClient *fakeAPI, target screenState) model {
	t.Helper()
	store := &fakeStore{}
	adminSession(store)
	m := newTestModel(store, apiClient)
	_ = m.navigate(target)
	require.Equal(t, target, m.state)
	return m
}

// TestAdminCancelRespectsStatus проверяет, что администратор тоже не
// может отменить завершенную запись.
func TestAdminCancelRespectsStatus(t *testing.T) {
	appointments := []models.AdminAppointment{
		{ID: 1, Status: models.StatusCompleted, ClientName: "João"},
		{ID: 2, Status: models.StatusConfirmed, ClientName: "Maria"},
	}
	m := adminModel(t, nil, adminAppointmentsScreen)

	updated, _ := m.Update(adminAppointmentsLoadedMsg{viewID: m.viewID, appointments: appointments})
	m = updated.(model)

	// Курсор на завершенной записи: отмена не предлагается, причина в статусе.
	m.adminTable.SetCursor(0)
	updated, _ = m.Update(keyPress(keyCancel))
	m = updated.(model)
	assert.Zero(t, m.confirmCancelID)
	assert.Equal(t, "Agendamento concluído não pode ser cancelado.", m.status)

	// Курсор на подтвержденной: запрашивается подтверждение.
	m.adminTable.SetCursor(1)
	updated, _ = m.Update(keyPress(keyCancel))
	m = updated.(model)
	assert.Equal(t, 2, m.confirmCancelID)
}

// TestMetricsRendered проверяет панель метрик.
func TestMetricsRendered(t *testing.T) {
	m := adminModel(t, nil, adminDashboardScreen)

	updated, _ := m.Update(metricsLoadedMsg{
		viewID: m.viewID,
		metrics: &models.Metrics{
			TotalAppointments: 42,
			TodayAppointments: 5,
			EstimatedRevenue:  1890,
			TopServices: []models.TopService{
				{Name: "Corte", Count: 30},
			},
		},
	})
	m = updated.(model)

	view := m.viewAdminDashboardScreen()
	assert.Contains(t, view, "42")
	assert.Contains(t, view, "R$ 1890,00")
	assert.Contains(t, view, "Corte (30)")
}

// TestServiceFormValidation проверяет форму новой услуги.
func TestServiceFormValidation(t *testing.T) {
	tests := []struct {
		name     string
		svcName  string
		price    string
		duration string
		wantErr  string
	}{
		{"без имени", "", "45.00", "30", "Informe o nome do serviço."},
		{"кривой прайс", "Corte", "caro", "30", "Preço inválido."},
		{"нулевая цена", "Corte", "0", "30", "Preço inválido."},
		{"кривая длительность", "Corte", "45.00", "meia hora", "Duração inválida."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := adminModel(t, nil, adminServiceFormScreen)
			m.svcNameInput.SetValue(tt.svcName)
			m.svcPriceInput.SetValue(tt.price)
			m.svcDurInput.SetValue(tt.duration)

			updated, cmd := m.submitService()
			m = updated.(model)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantErr, m.errText)
		})
	}
}

// TestServiceCreatedAndListed проверяет создание услуги и возврат к списку.
func TestServiceCreatedAndListed(t *testing.T) {
	var got models.CreateServiceRequest
	apiClient := &fakeAPI{
		createServiceFn: func(req models.CreateServiceRequest) error {
			got = req
			return nil
		},
		listServicesFn: func() ([]models.Service, error) {
			return []models.Service{{ID: 1, Name: "Corte"}}, nil
		},
	}
	m := adminModel(t, apiClient, adminServiceFormScreen)
	m.svcNameInput.SetValue("Corte")
	m.svcDescInput.SetValue("Corte clássico")
	m.svcPriceInput.SetValue("45.00")
	m.svcDurInput.SetValue("30")

	updated, cmd := m.submitService()
	m = updated.(model)
	require.NotNil(t, cmd)

	done, ok := drain(cmd).(actionDoneMsg)
	require.True(t, ok)
	assert.Equal(t, "Corte", got.Name)
	assert.InDelta(t, 45.0, got.Price, 0.001)

	final, reload := m.Update(done)
	m = final.(model)
	assert.Equal(t, adminServicesScreen, m.state)
	assert.Equal(t, "Serviço criado.", m.status)
	require.NotNil(t, reload)
}

// TestDeleteBarberRequiresConfirmation проверяет удаление барбера.
func TestDeleteBarberRequiresConfirmation(t *testing.T) {
	var deleted int
	apiClient := &fakeAPI{
		deleteBarberFn: func(id int) error {
			deleted = id
			return nil
		},
	}
	m := adminModel(t, apiClient, adminBarbersScreen)

	updated, _ := m.Update(barbersLoadedMsg{
		viewID:  m.viewID,
		barbers: []models.Barber{{ID: 3, Name: "Carlos"}},
	})
	m = updated.(model)

	updated, _ = m.Update(keyPress(keyDelete))
	m = updated.(model)
	require.Equal(t, 3, m.confirmDeleteID)

	updated, cmd := m.Update(keyPress(keyYes))
	m = updated.(model)
	require.NotNil(t, cmd)

	_, ok := drain(cmd).(actionDoneMsg)
	require.True(t, ok)
	assert.Equal(t, 3, deleted)
	assert.Zero(t, m.confirmDeleteID)
}

// TestUsersTablePopulated проверяет таблицу пользователей.
func TestUsersTablePopulated(t *testing.T) {
	m := adminModel(t, nil, adminUsersScreen)

	updated, _ := m.Update(usersLoadedMsg{
		viewID: m.viewID,
		users: []models.User{
			{ID: 1, Name: "João", Email: "joao.pedro.albuquerque.junior@example.com.br", Role: models.RoleClient},
			{ID: 2, Name: "Marcão", Email: "admin@example.com", Role: models.RoleAdmin},
		},
	})
	m = updated.(model)

	require.Len(t, m.usersTable.Rows(), 2)
	assert.Equal(t, "Marcão", m.usersTable.Rows()[1][1])
	// Длинный email обрезается под ширину колонки
	email := m.usersTable.Rows()[0][2]
	assert.LessOrEqual(t, len([]rune(email)), 28)
	assert.Contains(t, email, "…")
}

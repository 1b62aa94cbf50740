package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcondescastro18/barbearia-cli/internal/models"
)

// fakeStore — хранилище сессии в памяти для тестов.
type fakeStore struct {
	mu     sync.Mutex
	sess   *models.Session
	clears int
}

func (s *fakeStore) Save(_ context.Context, token string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = &models.Session{Token: token, User: user}
	return nil
}

func (s *fakeStore) Current(_ context.Context) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil, nil
	}
	copied := *s.sess
	return &copied, nil
}

func (s *fakeStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	s.clears++
	return nil
}

// fakeAPI — заглушка API-клиента. Непереопределенные операции
// возвращают пустые результаты.
type fakeAPI struct {
	loginFn             func(models.LoginRequest) (*models.AuthResponse, error)
	registerFn          func(models.RegisterRequest) (*models.AuthResponse, error)
	listAppointmentsFn  func() ([]models.Appointment, error)
	createAppointmentFn func(models.AppointmentRequest) error
	cancelAppointmentFn func(int) error
	listServicesFn      func() ([]models.Service, error)
	listBarbersFn       func() ([]models.Barber, error)
	metricsFn           func() (*models.Metrics, error)
	adminAppointmentsFn func() ([]models.AdminAppointment, error)
	adminUsersFn        func() ([]models.User, error)
	createServiceFn     func(models.CreateServiceRequest) error
	deleteServiceFn     func(int) error
	createBarberFn      func(models.CreateBarberRequest) error
	deleteBarberFn      func(int) error
}

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	if f.loginFn != nil {
		return f.loginFn(req)
	}
	return &models.AuthResponse{}, nil
}

func (f *fakeAPI) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if f.registerFn != nil {
		return f.registerFn(req)
	}
	return &models.AuthResponse{}, nil
}

func (f *fakeAPI) ListServices(_ context.Context) ([]models.Service, error) {
	if f.listServicesFn != nil {
		return f.listServicesFn()
	}
	return nil, nil
}

func (f *fakeAPI) ListBarbers(_ context.Context) ([]models.Barber, error) {
	if f.listBarbersFn != nil {
		return f.listBarbersFn()
	}
	return nil, nil
}

func (f *fakeAPI) ListAppointments(_ context.Context) ([]models.Appointment, error) {
	if f.listAppointmentsFn != nil {
		return f.listAppointmentsFn()
	}
	return nil, nil
}

func (f *fakeAPI) CreateAppointment(_ context.Context, req models.AppointmentRequest) error {
	if f.createAppointmentFn != nil {
		return f.createAppointmentFn(req)
	}
	return nil
}

func (f *fakeAPI) CancelAppointment(_ context.Context, id int) error {
	if f.cancelAppointmentFn != nil {
		return f.cancelAppointmentFn(id)
	}
	return nil
}

func (f *fakeAPI) Metrics(_ context.Context) (*models.Metrics, error) {
	if f.metricsFn != nil {
		return f.metricsFn()
	}
	return &models.Metrics{}, nil
}

func (f *fakeAPI) AdminAppointments(_ context.Context) ([]models.AdminAppointment, error) {
	if f.adminAppointmentsFn != nil {
		return f.adminAppointmentsFn()
	}
	return nil, nil
}

func (f *fakeAPI) AdminUsers(_ context.Context) ([]models.User, error) {
	if f.adminUsersFn != nil {
		return f.adminUsersFn()
	}
	return nil, nil
}

func (f *fakeAPI) CreateService(_ context.Context, req models.CreateServiceRequest) error {
	if f.createServiceFn != nil {
		return f.createServiceFn(req)
	}
	return nil
}

func (f *fakeAPI) DeleteService(_ context.Context, id int) error {
	if f.deleteServiceFn != nil {
		return f.deleteServiceFn(id)
	}
	return nil
}

func (f *fakeAPI) CreateBarber(_ context.Context, req models.CreateBarberRequest) error {
	if f.createBarberFn != nil {
		return f.createBarberFn(req)
	}
	return nil
}

func (f *fakeAPI) DeleteBarber(_ context.Context, id int) error {
	if f.deleteBarberFn != nil {
		return f.deleteBarberFn(id)
	}
	return nil
}

// newTestModel создает модель с фейковыми зависимостями.
// Сеть по умолчанию считается доступной.
func newTestModel(store *fakeStore, apiClient *fakeAPI) model {
	if store == nil {
		store = &fakeStore{}
	}
	if apiClient == nil {
		apiClient = &fakeAPI{}
	}
	m := initialModel(store, apiClient, false)
	m.online = func() bool { return true }
	return m
}

// clientSession кладет в хранилище сессию обычного клиента.
func clientSession(store *fakeStore) {
	_ = store.Save(context.Background(), "token-client", models.User{
		ID: 1, Name: "João", Email: "joao@example.com", Role: models.RoleClient,
	})
}

// adminSession кладет в хранилище сессию администратора.
func adminSession(store *fakeStore) {
	_ = store.Save(context.Background(), "token-admin", models.User{
		ID: 2, Name: "Marcão", Email: "admin@example.com", Role: models.RoleAdmin,
	})
}

// keyPress создает сообщение нажатия обычной клавиши.
func keyPress(key string) tea.KeyMsg {
	switch key {
	case keyEnter:
		return tea.KeyMsg{Type: tea.KeyEnter}
	case keyEsc:
		return tea.KeyMsg{Type: tea.KeyEsc}
	case keyTab:
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// drain выполняет команду и возвращает полученное сообщение.
func drain(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/marcondescastro18/barbearia-cli/internal/api"
	"github.com/marcondescastro18/barbearia-cli/internal/models"
	"github.com/marcondescastro18/barbearia-cli/internal/session"
)

// Состояния (экраны) приложения.
type screenState int

const (
	loginScreen             screenState = iota // Экран входа
	registerScreen                             // Экран регистрации
	dashboardScreen                            // Домашний экран клиента
	appointmentsScreen                         // Список записей клиента
	newAppointmentScreen                       // Форма новой записи
	adminDashboardScreen                       // Панель метрик (admin)
	adminAppointmentsScreen                    // Все записи (admin)
	adminServicesScreen                        // Управление услугами (admin)
	adminServiceFormScreen                     // Форма новой услуги (admin)
	adminBarbersScreen                         // Управление барберами (admin)
	adminBarberFormScreen                      // Форма нового барбера (admin)
	adminUsersScreen                           // Список пользователей (admin)
)

// String используется в отладочной панели и логах.
func (s screenState) String() string {
	switch s {
	case loginScreen:
		return "login"
	case registerScreen:
		return "register"
	case dashboardScreen:
		return "dashboard"
	case appointmentsScreen:
		return "appointments"
	case newAppointmentScreen:
		return "newAppointment"
	case adminDashboardScreen:
		return "adminDashboard"
	case adminAppointmentsScreen:
		return "adminAppointments"
	case adminServicesScreen:
		return "adminServices"
	case adminServiceFormScreen:
		return "adminServiceForm"
	case adminBarbersScreen:
		return "adminBarbers"
	case adminBarberFormScreen:
		return "adminBarberForm"
	case adminUsersScreen:
		return "adminUsers"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Клавиши.
const (
	keyEnter    = "enter"
	keyEsc      = "esc"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyLeft     = "left"
	keyRight    = "right"
	keyQuit     = "q"
	keyCancel   = "c"
	keyNew      = "n"
	keyDelete   = "d"
	keyYes      = "s" // sim
	keyNo       = "n" // não
)

// Константы верстки.
const (
	defaultListWidth         = 80
	defaultListHeight        = 24
	inputOffset              = 4
	helpStatusHeightOffset   = 2
	docStyleMarginVertical   = 1
	docStyleMarginHorizontal = 2
)

// appointmentItem представляет запись клиента в списке.
// Реализует интерфейс list.Item.
type appointmentItem struct {
	appointment models.Appointment
}

func (i appointmentItem) Title() string {
	return fmt.Sprintf("%s — %s", i.appointment.ServiceName, i.appointment.Status.Label())
}

func (i appointmentItem) Description() string {
	desc := fmt.Sprintf("%s  %s %s  %s",
		i.appointment.BarberName,
		formatDate(i.appointment.Date),
		i.appointment.Time,
		formatPrice(i.appointment.Price),
	)
	if i.appointment.Status.CanCancel() {
		desc += "  [c — cancelar]"
	}
	return desc
}

func (i appointmentItem) FilterValue() string { return i.appointment.ServiceName }

// serviceItem представляет услугу в административном списке.
type serviceItem struct {
	service models.Service
}

func (i serviceItem) Title() string {
	return fmt.Sprintf("%s — %s (%d min)", i.service.Name, formatPrice(i.service.Price), i.service.Duration)
}

func (i serviceItem) Description() string { return i.service.Description }
func (i serviceItem) FilterValue() string { return i.service.Name }

// barberItem представляет барбера в административном списке.
type barberItem struct {
	barber models.Barber
}

func (i barberItem) Title() string { return i.barber.Name }

func (i barberItem) Description() string {
	if i.barber.Phone == "" {
		return "sem telefone"
	}
	return i.barber.Phone
}

func (i barberItem) FilterValue() string { return i.barber.Name }

// menuItem — пункт меню домашнего экрана.
type menuItem struct {
	title string
	id    string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return "" }
func (i menuItem) FilterValue() string { return i.title }

// Идентификаторы пунктов меню.
const (
	menuNewAppointment    = "new_appointment"
	menuMyAppointments    = "my_appointments"
	menuAdminPanel        = "admin_panel"
	menuLogout            = "logout"
	menuAdminAppointments = "admin_appointments"
	menuAdminServices     = "admin_services"
	menuAdminBarbers      = "admin_barbers"
	menuAdminUsers        = "admin_users"
)

// model представляет состояние TUI приложения.
type model struct {
	state    screenState
	sessions session.Store
	api      api.Client
	online   func() bool // Проверка подключения перед созданием записи

	// Текущая сессия — копия для отображения. Guard всегда перечитывает
	// хранилище при навигации, эта копия вердикты не подменяет.
	sess *models.Session

	// Идентификатор текущего экземпляра экрана: ответы сети, помеченные
	// другим идентификатором, считаются устаревшими и отбрасываются.
	viewID uuid.UUID

	initCmd tea.Cmd // Команда стартового экрана, возвращается из Init

	width     int
	height    int
	loading   bool
	errText   string // Ошибка текущего экрана (показывается до следующей навигации)
	status    string // Строка статуса внизу
	debugMode bool
	docStyle  lipgloss.Style

	// Экран входа
	loginEmailInput    textinput.Model
	loginPasswordInput textinput.Model
	loginFocus         int

	// Экран регистрации: nome, email, senha, telefone
	registerInputs []textinput.Model
	registerFocus  int

	// Домашний экран
	menu list.Model

	// Список записей клиента
	appointments    []models.Appointment
	appointmentList list.Model
	confirmCancelID int // id записи, ожидающей подтверждения отмены; 0 — нет

	// Форма новой записи
	services     []models.Service
	barbers      []models.Barber
	serviceIdx   int
	barberIdx    int
	dateInput    textinput.Model
	timeInput    textinput.Model
	bookingFocus int // 0 — услуга, 1 — барбер, 2 — дата, 3 — время
	submitting   bool

	// Административная панель
	metrics           *models.Metrics
	adminAppointments []models.AdminAppointment
	adminTable        table.Model
	adminUsers        []models.User
	usersTable        table.Model

	// Управление услугами
	serviceList     list.Model
	svcNameInput    textinput.Model
	svcDescInput    textinput.Model
	svcPriceInput   textinput.Model
	svcDurInput     textinput.Model
	svcFocus        int
	confirmDeleteID int // id услуги/барбера, ожидающей подтверждения удаления; 0 — нет

	// Управление барберами
	barberList       list.Model
	barberNameInput  textinput.Model
	barberPhoneInput textinput.Model
	barberFocus      int
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/marcondescastro18/barbearia-cli/internal/api"
	"github.com/marcondescastro18/barbearia-cli/internal/netcheck"
	"github.com/marcondescastro18/barbearia-cli/internal/session"
)

// newTextInput создает текстовое поле с подсказкой и ограничением длины.
func newTextInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	return ti
}

// newPasswordInput создает поле ввода пароля с маскированными символами.
func newPasswordInput(placeholder string) textinput.Model {
	ti := newTextInput(placeholder, 64)
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

// newItemList создает список с заголовком в едином стиле приложения.
func newItemList(title string) list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), defaultListWidth, defaultListHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

// newMenuList создает меню домашнего экрана без описаний у пунктов.
func newMenuList() list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	l := list.New([]list.Item{}, delegate, defaultListWidth, defaultListHeight)
	l.Title = "Barbearia do Marcão"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

// newAdminAppointmentsTable создает таблицу всех записей для администратора.
func newAdminAppointmentsTable() table.Model {
	columns := []table.Column{
		{Title: "Data", Width: 10},
		{Title: "Hora", Width: 5},
		{Title: "Cliente", Width: 18},
		{Title: "Serviço", Width: 18},
		{Title: "Barbeiro", Width: 14},
		{Title: "Status", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return t
}

// newUsersTable создает таблицу пользователей для администратора.
func newUsersTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Nome", Width: 22},
		{Title: "Email", Width: 28},
		{Title: "Telefone", Width: 14},
		{Title: "Papel", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return t
}

// initialModel создает начальное состояние приложения.
// Стартовый экран всегда login: первая навигация сама перечитает
// сессию и пустит авторизованного пользователя дальше.
func initialModel(sessions session.Store, apiClient api.Client, debugMode bool) model {
	m := model{
		state:     loginScreen,
		sessions:  sessions,
		api:       apiClient,
		online:    netcheck.Online,
		viewID:    uuid.New(),
		debugMode: debugMode,
		docStyle:  lipgloss.NewStyle().Margin(docStyleMarginVertical, docStyleMarginHorizontal),

		loginEmailInput:    newTextInput("email", 100),
		loginPasswordInput: newPasswordInput("senha"),

		registerInputs: []textinput.Model{
			newTextInput("nome", 100),
			newTextInput("email", 100),
			newPasswordInput("senha"),
			newTextInput("telefone (opcional)", 20),
		},

		menu:            newMenuList(),
		appointmentList: newItemList("Meus Agendamentos"),
		serviceList:     newItemList("Serviços"),
		barberList:      newItemList("Barbeiros"),
		adminTable:      newAdminAppointmentsTable(),
		usersTable:      newUsersTable(),

		dateInput: newTextInput("AAAA-MM-DD", 10),
		timeInput: newTextInput("HH:MM", 5),

		svcNameInput:  newTextInput("nome do serviço", 100),
		svcDescInput:  newTextInput("descrição", 200),
		svcPriceInput: newTextInput("preço (ex.: 45.00)", 10),
		svcDurInput:   newTextInput("duração em minutos", 4),

		barberNameInput:  newTextInput("nome do barbeiro", 100),
		barberPhoneInput: newTextInput("telefone (opcional)", 20),
	}
	m.loginEmailInput.Focus()
	return m
}

// resetLoginInputs очищает форму входа и ставит фокус на email.
func (m *model) resetLoginInputs() {
	m.loginEmailInput.SetValue("")
	m.loginPasswordInput.SetValue("")
	m.loginFocus = 0
	m.loginEmailInput.Focus()
	m.loginPasswordInput.Blur()
}

// resetRegisterInputs очищает форму регистрации и ставит фокус на имя.
func (m *model) resetRegisterInputs() {
	for i := range m.registerInputs {
		m.registerInputs[i].SetValue("")
		m.registerInputs[i].Blur()
	}
	m.registerFocus = 0
	m.registerInputs[0].Focus()
}

// resetBookingForm очищает форму новой записи.
// Дата по умолчанию — сегодня: раньше записаться нельзя.
func (m *model) resetBookingForm() {
	m.serviceIdx = 0
	m.barberIdx = 0
	m.dateInput.SetValue(time.Now().Format("2006-01-02"))
	m.timeInput.SetValue("")
	m.bookingFocus = 0
	m.dateInput.Blur()
	m.timeInput.Blur()
	m.submitting = false
}

// resetServiceForm очищает форму новой услуги.
func (m *model) resetServiceForm() {
	for _, ti := range []*textinput.Model{&m.svcNameInput, &m.svcDescInput, &m.svcPriceInput, &m.svcDurInput} {
		ti.SetValue("")
		ti.Blur()
	}
	m.svcFocus = 0
	m.svcNameInput.Focus()
}

// resetBarberForm очищает форму нового барбера.
func (m *model) resetBarberForm() {
	m.barberNameInput.SetValue("")
	m.barberPhoneInput.SetValue("")
	m.barberNameInput.Blur()
	m.barberPhoneInput.Blur()
	m.barberFocus = 0
	m.barberNameInput.Focus()
}

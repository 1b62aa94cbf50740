package models

// Status — статус записи на стрижку. Значения задаются сервером.
type Status string

const (
	StatusConfirmed Status = "confirmed" // Начальный статус после создания
	StatusCancelled Status = "cancelled" // Терминальный: отменена клиентом или админом
	StatusCompleted Status = "completed" // Терминальный: завершена сервером
)

// CanCancel сообщает, доступно ли клиенту действие отмены.
// Отменить можно только подтвержденную запись, cancelled и completed — терминальные.
func (s Status) CanCancel() bool {
	return s == StatusConfirmed
}

// Terminal сообщает, существует ли из статуса хоть один клиентский переход.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Label возвращает отображаемую подпись статуса (pt-BR, как в продукте).
func (s Status) Label() string {
	switch s {
	case StatusConfirmed:
		return "Confirmado"
	case StatusCancelled:
		return "Cancelado"
	case StatusCompleted:
		return "Concluído"
	default:
		return string(s)
	}
}

// Appointment представляет запись текущего пользователя.
// Date — календарная дата без времени ("2006-01-02"), Time — время "15:04".
type Appointment struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      Status  `json:"status"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	BarberName  string  `json:"barber_name"`
}

// AdminAppointment — запись в административном списке: дополнительно
// содержит имя и телефон клиента.
type AdminAppointment struct {
	ID          int     `json:"id"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Status      Status  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	ClientName  string  `json:"client_name"`
	ClientPhone string  `json:"client_phone"`
	ServiceName string  `json:"service_name"`
	Price       float64 `json:"price"`
	BarberName  string  `json:"barber_name"`
}

// AppointmentRequest представляет тело запроса на создание записи.
type AppointmentRequest struct {
	ServiceID int    `json:"service_id"`
	BarberID  int    `json:"barber_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

package models

// Роли пользователей, которые возвращает сервер в поле user.role.
const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// User представляет профиль аутентифицированного пользователя.
// Phone и CreatedAt заполняются только в административном списке пользователей.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// IsAdmin сообщает, имеет ли пользователь административную роль.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session объединяет токен и профиль пользователя.
// Инвариант хранилища: либо присутствуют обе части, либо ни одной.
type Session struct {
	Token string
	User  User
}

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest представляет тело запроса на регистрацию.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// AuthResponse представляет тело ответа при успешном входе или регистрации.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Service представляет услугу из каталога барбершопа.
type Service struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"` // Длительность в минутах
	Active      bool    `json:"active"`
}

// Barber представляет барбера из каталога.
type Barber struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}

// CreateServiceRequest представляет тело запроса на создание услуги (admin).
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
}

// CreateBarberRequest представляет тело запроса на создание барбера (admin).
type CreateBarberRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// TopService — элемент рейтинга самых востребованных услуг в метриках.
type TopService struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Metrics представляет агрегированные показатели для административной панели.
type Metrics struct {
	TotalAppointments int          `json:"total_appointments"`
	TodayAppointments int          `json:"today_appointments"`
	EstimatedRevenue  float64      `json:"estimated_revenue"`
	TopServices       []TopService `json:"top_services"`
}

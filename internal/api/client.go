// Package api — единственный канал связи с сервером бронирования.
// Здесь же, и только здесь, применяется контракт аутентификации:
// токен из хранилища сессии прикрепляется к каждому запросу, а ответ 401
// глобально завершает сессию.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/marcondescastro18/barbearia-cli/internal/models"
	"github.com/marcondescastro18/barbearia-cli/internal/session"
)

// ErrUnauthorized сигнализирует, что сервер отклонил учетные данные (401).
// К моменту возврата этой ошибки сессия уже удалена из хранилища.
var ErrUnauthorized = errors.New("сервер отклонил учетные данные")

// ServerError — ошибка уровня бизнес-логики, возвращенная сервером.
// Message передается вызывающему экрану дословно, без перевода и обработки.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// Client определяет интерфейс для взаимодействия с API сервера бронирования.
type Client interface {
	// Login аутентифицирует пользователя по email и паролю.
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	// Register регистрирует нового клиента.
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)

	// ListServices возвращает каталог активных услуг.
	ListServices(ctx context.Context) ([]models.Service, error)
	// ListBarbers возвращает каталог активных барберов.
	ListBarbers(ctx context.Context) ([]models.Barber, error)

	// ListAppointments возвращает записи текущего пользователя.
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	// CreateAppointment создает новую запись.
	CreateAppointment(ctx context.Context, req models.AppointmentRequest) error
	// CancelAppointment отменяет запись по id.
	CancelAppointment(ctx context.Context, id int) error

	// Административные операции. Роль проверяет сервер, клиент лишь
	// не показывает соответствующие экраны (см. пакет guard).
	Metrics(ctx context.Context) (*models.Metrics, error)
	AdminAppointments(ctx context.Context) ([]models.AdminAppointment, error)
	AdminUsers(ctx context.Context) ([]models.User, error)
	CreateService(ctx context.Context, req models.CreateServiceRequest) error
	DeleteService(ctx context.Context, id int) error
	CreateBarber(ctx context.Context, req models.CreateBarberRequest) error
	DeleteBarber(ctx context.Context, id int) error
}

const requestTimeout = 15 * time.Second

// isAuthPath выделяет маршруты получения учетных данных. Токен к ним
// не прикрепляется, а 401 означает неверные email/пароль, а не
// просроченную сессию: такие ответы уходят пользователю дословно.
func isAuthPath(path string) bool {
	return path == "/auth/login" || path == "/auth/register"
}

// httpClient реализует интерфейс Client поверх net/http.
type httpClient struct {
	baseURL        string
	httpClient     *http.Client
	sessions       session.Store
	onAuthRejected func() // Хук, вызываемый при каждом 401 (после очистки сессии)
}

// NewHTTPClient создает новый экземпляр API клиента.
// onAuthRejected может быть nil; вызывается уже после session.Clear,
// поэтому повторный 401 безопасен.
func NewHTTPClient(baseURL string, sessions session.Store, onAuthRejected func()) Client {
	return &httpClient{
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: requestTimeout},
		sessions:       sessions,
		onAuthRejected: onAuthRejected,
	}
}

// do выполняет запрос: прикрепляет токен (если сессия есть), разбирает ответ
// в out и применяет единую политику ошибок.
func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	reqURL, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("ошибка формирования URL %q: %w", path, err)
	}

	reqBody := &bytes.Buffer{}
	if body != nil {
		jsonData, errMarshal := json.Marshal(body)
		if errMarshal != nil {
			return fmt.Errorf("ошибка кодирования тела запроса: %w", errMarshal)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Токен читается из хранилища на каждый запрос: после очистки сессии
	// ни один последующий вызов не уйдет с устаревшим токеном.
	if !isAuthPath(path) {
		sess, errSess := c.sessions.Current(ctx)
		if errSess != nil {
			return fmt.Errorf("ошибка чтения сессии: %w", errSess)
		}
		if sess != nil {
			req.Header.Set("Authorization", "Bearer "+sess.Token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && !isAuthPath(path) {
		return c.rejectAuth(ctx, method, path)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeServerError(resp)
	}

	if out != nil {
		if errDecode := json.NewDecoder(resp.Body).Decode(out); errDecode != nil {
			return fmt.Errorf("ошибка декодирования ответа %s %s: %w", method, path, errDecode)
		}
	}

	return nil
}

// rejectAuth реализует глобальную политику 401: очистить сессию, дернуть хук,
// вернуть сентинел. Clear идемпотентна, поэтому конкурентные 401 безвредны.
func (c *httpClient) rejectAuth(ctx context.Context, method, path string) error {
	zap.L().Warn("сервер вернул 401, сессия сбрасывается",
		zap.String("method", method),
		zap.String("path", path),
	)
	if err := c.sessions.Clear(ctx); err != nil {
		zap.L().Error("не удалось очистить сессию после 401", zap.Error(err))
	}
	if c.onAuthRejected != nil {
		c.onAuthRejected()
	}
	return ErrUnauthorized
}

// decodeServerError извлекает сообщение сервера из тела `{"error": "..."}`.
// Сообщение отдается вызывающему дословно для показа пользователю.
func decodeServerError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.Error == "" {
		return &ServerError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("Erro do servidor (status %d)", resp.StatusCode),
		}
	}
	return &ServerError{Status: resp.StatusCode, Message: payload.Error}
}

// --- Аутентификация --- //

func (c *httpClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.New("сервер вернул пустой токен")
	}
	return &resp, nil
}

func (c *httpClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.New("сервер вернул пустой токен")
	}
	return &resp, nil
}

// --- Каталог --- //

func (c *httpClient) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := c.do(ctx, http.MethodGet, "/services", nil, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (c *httpClient) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	var barbers []models.Barber
	if err := c.do(ctx, http.MethodGet, "/barbers", nil, &barbers); err != nil {
		return nil, err
	}
	return barbers, nil
}

// --- Записи --- //

func (c *httpClient) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := c.do(ctx, http.MethodGet, "/appointments", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *httpClient) CreateAppointment(ctx context.Context, req models.AppointmentRequest) error {
	return c.do(ctx, http.MethodPost, "/appointments", req, nil)
}

func (c *httpClient) CancelAppointment(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/appointments/%d", id), nil, nil)
}

// --- Администрирование --- //

func (c *httpClient) Metrics(ctx context.Context) (*models.Metrics, error) {
	var metrics models.Metrics
	if err := c.do(ctx, http.MethodGet, "/admin/metrics", nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

func (c *httpClient) AdminAppointments(ctx context.Context) ([]models.AdminAppointment, error) {
	var appointments []models.AdminAppointment
	if err := c.do(ctx, http.MethodGet, "/admin/appointments", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *httpClient) AdminUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *httpClient) CreateService(ctx context.Context, req models.CreateServiceRequest) error {
	return c.do(ctx, http.MethodPost, "/admin/services", req, nil)
}

func (c *httpClient) DeleteService(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/services/%d", id), nil, nil)
}

func (c *httpClient) CreateBarber(ctx context.Context, req models.CreateBarberRequest) error {
	return c.do(ctx, http.MethodPost, "/admin/barbers", req, nil)
}

func (c *httpClient) DeleteBarber(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/barbers/%d", id), nil, nil)
}

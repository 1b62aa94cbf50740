// Package guard решает, может ли текущая сессия перейти на запрошенный экран.
// Чистая функция без ввода-вывода: один и тот же вход всегда дает один и тот же
// вердикт, вердикты никогда не кэшируются между навигациями.
package guard

import "github.com/marcondescastro18/barbearia-cli/internal/models"

// Capability — уровень доступа, который объявляет экран.
type Capability int

const (
	// CapabilityNone — экран доступен всем (логин, регистрация).
	CapabilityNone Capability = iota
	// CapabilityAuthenticated — требуется любая действующая сессия.
	CapabilityAuthenticated
	// CapabilityAdmin — требуется сессия с ролью admin.
	CapabilityAdmin
)

// Verdict — результат проверки доступа.
type Verdict int

const (
	// Allow — переход разрешен.
	Allow Verdict = iota
	// RedirectLogin — сессии нет, отправляем на экран входа.
	RedirectLogin
	// RedirectHome — сессия есть, но роли не хватает: отправляем на
	// домашний экран аутентифицированного пользователя.
	RedirectHome
)

// Decide применяет политику доступа. Правила проверяются по порядку,
// срабатывает первое подходящее.
func Decide(required Capability, sess *models.Session) Verdict {
	if required == CapabilityNone {
		return Allow
	}
	if sess == nil {
		return RedirectLogin
	}
	if required == CapabilityAdmin && !sess.User.IsAdmin() {
		return RedirectHome
	}
	return Allow
}

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// formatDate переводит дату сервера (AAAA-MM-DD) в бразильский формат.
// Нераспознанная строка возвращается как есть.
func formatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}

// formatPrice выводит цену в реалах: R$ 45,00.
func formatPrice(price float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", price), ".", ",", 1)
}

func formatID(id int) string {
	return strconv.Itoa(id)
}

// validDate проверяет формат AAAA-MM-DD и возвращает разобранную дату.
func validDate(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	return t, err == nil
}

// validTime проверяет формат HH:MM.
func validTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

// beforeToday сообщает, лежит ли дата в прошлом.
func beforeToday(t time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.Before(today)
}

// truncate обрезает строку до n символов с многоточием.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

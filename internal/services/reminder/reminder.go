// Package reminder содержит чистую логику вычисления напоминаний:
// сколько целых дней осталось до даты продления и попадает ли это число
// в настроенный набор окон уведомления.
//
// Побочных эффектов нет, писем пакет не отправляет.
package reminder

import (
	"fmt"
	"time"
)

// DefaultWindows канонический набор окон: письмо уходит ровно за 5, 3 и 1 день.
var DefaultWindows = []int{5, 3, 1}

// dateLayouts форматы, в которых принимается дата продления.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02-01-2006",
	"2006/01/02",
}

// ParseDate разбирает календарную дату из строки. Время суток, если оно
// присутствует в значении, отбрасывается.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date value: %q", s)
}

// truncateToDate отбрасывает время суток, оставляя календарную дату в UTC.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysRemaining возвращает количество целых дней от today до end,
// считая только по календарным датам: время суток у обоих аргументов
// на результат не влияет. Для прошедших дат результат отрицательный.
func DaysRemaining(today, end time.Time) int {
	diff := truncateToDate(end).Sub(truncateToDate(today))
	return int(diff / (24 * time.Hour))
}

// Engine решает, наступило ли окно уведомления для записи.
type Engine struct {
	windows map[int]struct{}
}

// New создает Engine с заданным набором окон. Пустой набор
// заменяется на DefaultWindows.
func New(windows []int) *Engine {
	if len(windows) == 0 {
		windows = DefaultWindows
	}
	set := make(map[int]struct{}, len(windows))
	for _, w := range windows {
		set[w] = struct{}{}
	}
	return &Engine{windows: set}
}

// IsDue сообщает, что напоминание пора отправлять: число оставшихся дней
// точно совпало с одним из окон. Сравнение строго на равенство, поэтому
// каждое окно срабатывает один раз — при условии, что задача запускается
// ежедневно без пропусков. Отрицательные значения не совпадают никогда.
func (e *Engine) IsDue(today, end time.Time) bool {
	_, ok := e.windows[DaysRemaining(today, end)]
	return ok
}

// Package models содержит доменные структуры, описывающие запись о подписке,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// RowWidth фиксированная ширина строки таблицы: name, platform, startDate,
// endDate, email, mobile, userEmail.
const RowWidth = 7

// Record представляет одну запись о подписке — одну строку таблицы.
//
// Row это эфемерная 1-based позиция строки на листе (строка 1 — заголовок,
// первая строка данных — 2). Позиция валидна только до ближайшего
// структурного удаления выше неё: идентификатором записи она не является.
type Record struct {
	Row          int    `json:"row,omitempty"` // позиция на листе, вычисляется при чтении
	Name         string `json:"name"`          // Название подписки
	Platform     string `json:"platform"`      // Название сервиса
	StartDate    string `json:"startDate"`     // Дата начала, хранится как есть
	EndDate      string `json:"endDate"`       // Дата продления, по ней считаются напоминания
	ContactEmail string `json:"email"`         // Контактный адрес, информационное поле
	Mobile       string `json:"mobile"`        // Телефон, информационное поле
	OwnerEmail   string `json:"userEmail"`     // Владелец записи, единственный фильтр доступа
}

// DummyRecord используется для приёма данных из JSON-запроса на создание записи.
// Поля — указатели: каждое из семи полей обязано присутствовать в запросе,
// но пустая строка допустима.
type DummyRecord struct {
	Name         *string `json:"name" validate:"required"`
	Platform     *string `json:"platform" validate:"required"`
	StartDate    *string `json:"startDate" validate:"required"`
	EndDate      *string `json:"endDate" validate:"required"`
	ContactEmail *string `json:"email" validate:"required"`
	Mobile       *string `json:"mobile" validate:"required"`
	OwnerEmail   *string `json:"userEmail" validate:"required"`
}

// UpdateRecord используется для приёма данных из JSON-запроса на обновление.
// OwnerEmail опционален: если клиент его не прислал, в колонку владельца
// запишется пустая строка и запись перестанет находиться фильтром по владельцу.
// Это сохранённое поведение исходного API, а не желаемое.
type UpdateRecord struct {
	Name         *string `json:"name" validate:"required"`
	Platform     *string `json:"platform" validate:"required"`
	StartDate    *string `json:"startDate" validate:"required"`
	EndDate      *string `json:"endDate" validate:"required"`
	ContactEmail *string `json:"email" validate:"required"`
	Mobile       *string `json:"mobile" validate:"required"`
	OwnerEmail   *string `json:"userEmail"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ToRecord конвертирует DummyRecord в Record.
func (d DummyRecord) ToRecord() Record {
	return Record{
		Name:         deref(d.Name),
		Platform:     deref(d.Platform),
		StartDate:    deref(d.StartDate),
		EndDate:      deref(d.EndDate),
		ContactEmail: deref(d.ContactEmail),
		Mobile:       deref(d.Mobile),
		OwnerEmail:   deref(d.OwnerEmail),
	}
}

// ToRecord конвертирует UpdateRecord в Record. Отсутствующий OwnerEmail
// превращается в пустую строку.
func (u UpdateRecord) ToRecord() Record {
	return Record{
		Name:         deref(u.Name),
		Platform:     deref(u.Platform),
		StartDate:    deref(u.StartDate),
		EndDate:      deref(u.EndDate),
		ContactEmail: deref(u.ContactEmail),
		Mobile:       deref(u.Mobile),
		OwnerEmail:   deref(u.OwnerEmail),
	}
}

// ToRow раскладывает запись в строку таблицы в фиксированном порядке колонок.
func (r Record) ToRow() []string {
	return []string{r.Name, r.Platform, r.StartDate, r.EndDate, r.ContactEmail, r.Mobile, r.OwnerEmail}
}

// FromRow собирает запись из строки таблицы. Строки короче RowWidth
// дополняются пустыми значениями. rowPos это 1-based позиция строки на листе.
func FromRow(row []string, rowPos int) Record {
	padded := make([]string, RowWidth)
	copy(padded, row)
	return Record{
		Row:          rowPos,
		Name:         padded[0],
		Platform:     padded[1],
		StartDate:    padded[2],
		EndDate:      padded[3],
		ContactEmail: padded[4],
		Mobile:       padded[5],
		OwnerEmail:   padded[6],
	}
}

// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON-ответов HTTP-обработчиков: {"status": ...} при успехе
// и {"error": ...} при неудаче.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON-ответа сервера.
// Заполняется ровно одно из полей.
type Response struct {
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Status возвращает успешный Response с переданным статусом.
func Status(msg string) Response {
	return Response{Status: msg}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{Error: msg}
}

// ValidationError формирует Response с ошибкой на основе ошибок валидации.
// Каждое нарушение превращается в человеко-читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{Error: strings.Join(errsMsgs, ", ")}
}

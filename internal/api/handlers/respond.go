package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

// Коды ошибок, которые не приходят из доменной таблицы конфликтов
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeStoreError      = "STORE_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

const (
	msgOK            = "OK"
	msgStoreError    = "Availability could not be determined right now, please try again later"
	msgInternalError = "Internal server error"
)

// maxBodyBytes ограничение тела запроса
const maxBodyBytes = 1 << 20

// ErrEmptyBody возвращается DecodeJSON при пустом теле
var ErrEmptyBody = errors.New("handlers: request body is empty")

// Envelope единый формат ответа
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

var validate = validator.New()

// RespondJSON успешный ответ с данными
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	RespondSuccess(w, status, msgOK, data)
}

// RespondSuccess успешный ответ с сообщением для пользователя
func RespondSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	write(w, status, Envelope{Success: true, Message: message, Data: data})
}

// RespondError ответ с ошибкой и машинно-читаемым кодом
func RespondError(w http.ResponseWriter, status int, code, message string) {
	write(w, status, Envelope{Success: false, Message: message, Code: code})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeValidationError, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondConflict бизнес-отказ: дата закрыта или занята
func RespondConflict(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusConflict, code, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeForbidden, message)
}

// RespondStoreError хранилище недоступно, это не то же самое, что "дата недоступна"
func RespondStoreError(w http.ResponseWriter) {
	RespondError(w, http.StatusServiceUnavailable, CodeStoreError, msgStoreError)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternalError, msgInternalError)
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// DecodeJSON читает тело запроса в v и проверяет validate-теги
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}

	return Validate(v)
}

// Validate проверяет validate-теги структуры
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("validation failed: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

// ParseDate разбирает YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return domain.DateOnly(date), nil
}

// ParseUUID разбирает идентификатор из пути или query
func ParseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, errors.New("nil uuid")
	}
	return id, nil
}

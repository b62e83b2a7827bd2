package gcalendar

import "time"

// freeBusyRequest тело запроса free/busy к провайдеру календаря
type freeBusyRequest struct {
	TimeMin    string `json:"timeMin"` // RFC3339
	TimeMax    string `json:"timeMax"` // RFC3339
	CalendarID string `json:"calendarId"`
}

// freeBusyResponse ответ провайдера со списком занятых интервалов
type freeBusyResponse struct {
	Busy []busyPeriod `json:"busy"`
}

// busyPeriod занятый интервал в ответе провайдера
type busyPeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// tokenResponse ответ token-эндпоинта провайдера
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"` // секунды
}

// ErrorResponse модель ошибки от провайдера календаря
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

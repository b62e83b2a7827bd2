package gcalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
)

// Client клиент free/busy API провайдера календаря.
//
// Клиент не ретраит запросы и не интерпретирует метаданные событий:
// любой занятый интервал блокирует слот, ошибки провайдера пробрасываются
// вызывающему как есть, чтобы тот мог отличить "нет свободных слотов"
// от "не удалось определить занятость".
type Client struct {
	baseURL    string
	calendarID string
	httpClient *http.Client
	tokens     TokenProvider
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
func NewClient(baseURL, calendarID string, timeout time.Duration, tokens TokenProvider, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		calendarID: calendarID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
		log:    log,
	}
}

// GetBusyIntervals возвращает занятые интервалы календаря, пересекающие
// окно [timeMin, timeMax). Результат не кешируется: занятость читается
// заново на каждый запрос слотов.
func (c *Client) GetBusyIntervals(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to obtain token: %v", ErrUnauthorized, err)
	}

	body, err := json.Marshal(freeBusyRequest{
		TimeMin:    timeMin.Format(time.RFC3339),
		TimeMax:    timeMax.Format(time.RFC3339),
		CalendarID: c.calendarID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/freeBusy", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var fb freeBusyResponse
	if err := json.NewDecoder(resp.Body).Decode(&fb); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	intervals := make([]domain.BusyInterval, 0, len(fb.Busy))
	for _, period := range fb.Busy {
		intervals = append(intervals, domain.BusyInterval{
			Start: period.Start,
			End:   period.End,
		})
	}

	c.log.Info("Fetched %d busy intervals for window %s - %s",
		len(intervals), timeMin.Format(time.RFC3339), timeMax.Format(time.RFC3339))

	return intervals, nil
}

package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// TokenProvider выдает bearer-токен для запросов к провайдеру календаря.
// Провайдер внедряется в клиент явно, а не живёт глобальной переменной:
// в тестах подставляется фейковая реализация.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider отдает один фиксированный токен.
// Используется в тестах и в окружениях с долгоживущим токеном.
type StaticTokenProvider struct {
	AccessToken string
}

// Token возвращает фиксированный токен
func (p *StaticTokenProvider) Token(ctx context.Context) (string, error) {
	return p.AccessToken, nil
}

// expirySkew запас до истечения токена, после которого берём новый
const expirySkew = 30 * time.Second

// CachedTokenProvider получает токен у token-эндпоинта провайдера по
// client credentials и кеширует его до истечения TTL. Состояние кеша
// явное и принадлежит экземпляру; создаётся один раз на процесс в main.
type CachedTokenProvider struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewCachedTokenProvider создает провайдер токенов с TTL-кешем
func NewCachedTokenProvider(tokenURL, clientID, clientSecret string, timeout time.Duration) *CachedTokenProvider {
	return &CachedTokenProvider{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Token возвращает закешированный токен или запрашивает новый,
// если срок действия истёк
func (p *CachedTokenProvider) Token(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && time.Now().Before(p.expiresAt.Add(-expirySkew)) {
		return p.token, nil
	}

	token, expiresIn, err := p.fetch(ctx)
	if err != nil {
		return "", err
	}

	p.token = token
	p.expiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)

	return p.token, nil
}

// fetch запрашивает новый токен у token-эндпоинта
func (p *CachedTokenProvider) fetch(ctx context.Context) (string, int, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("%w: failed to create token request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%w: failed to execute token request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("%w: token endpoint returned status %d", ErrUnauthorized, resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", 0, fmt.Errorf("%w: failed to decode token response: %v", ErrInvalidResponse, err)
	}

	if tr.AccessToken == "" {
		return "", 0, fmt.Errorf("%w: token endpoint returned empty access_token", ErrInvalidResponse)
	}

	return tr.AccessToken, tr.ExpiresIn, nil
}

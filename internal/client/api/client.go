package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/iudanet/riffle/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс клиента riffle API
type ClientAPI interface {
	// Register регистрирует нового пользователя
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)

	// CreateEntry создает запись журнала на сервере
	CreateEntry(ctx context.Context, accessToken string, payload api.EntryPayload) (*api.CreateEntryResponse, error)

	// ListEntries возвращает записи журнала текущего пользователя
	ListEntries(ctx context.Context, accessToken string, limit, offset int) ([]api.Entry, error)

	// ListPublicEntries возвращает публичную ленту сообщества
	ListPublicEntries(ctx context.Context, limit, offset int) ([]api.Entry, error)

	// CreateHatchReport отправляет отчет о вылете насекомых
	CreateHatchReport(ctx context.Context, accessToken string, payload api.HatchReportPayload) (*api.CreateHatchResponse, error)

	// ListHatchReports возвращает отчеты по реке за период
	ListHatchReports(ctx context.Context, river string, days, limit int) ([]api.HatchReport, error)

	// GetConditions возвращает сводку условий ловли для точки
	GetConditions(ctx context.Context, lat, lon float64, site string) (*api.ConditionsResponse, error)

	// Me возвращает профиль текущего пользователя
	Me(ctx context.Context, accessToken string) (*api.UserProfile, error)

	// UpdateProfile обновляет профиль, nil поля не трогаются
	UpdateProfile(ctx context.Context, accessToken string, req api.UpdateProfileRequest) (*api.UserProfile, error)

	// SaveRiver сохраняет реку в личный список
	SaveRiver(ctx context.Context, accessToken string, req api.SaveRiverRequest) (*api.SaveRiverResponse, error)

	// ListRivers возвращает сохраненные реки пользователя
	ListRivers(ctx context.Context, accessToken string) ([]api.SavedRiver, error)

	// DeleteRiver удаляет сохраненную реку
	DeleteRiver(ctx context.Context, accessToken string, riverID int64) error

	// SearchSites ищет гидропосты USGS рядом с точкой
	SearchSites(ctx context.Context, lat, lon float64) ([]api.RiverSite, error)

	// Ping проверяет доступность сервера (health check)
	Ping(ctx context.Context) error
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CreateEntry создает запись журнала на сервере.
// Ошибка сервера возвращается как *api.Error, чтобы движок синхронизации
// мог отличить отказ приложения от недоступности сети.
func (c *Client) CreateEntry(ctx context.Context, accessToken string, payload api.EntryPayload) (*api.CreateEntryResponse, error) {
	var resp api.CreateEntryResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/journal", accessToken, payload, &resp)
	if err != nil {
		return nil, fmt.Errorf("create entry request failed: %w", err)
	}
	return &resp, nil
}

// ListEntries возвращает записи журнала текущего пользователя
func (c *Client) ListEntries(ctx context.Context, accessToken string, limit, offset int) ([]api.Entry, error) {
	var resp api.ListEntriesResponse
	path := fmt.Sprintf("/api/v1/journal?limit=%d&offset=%d", limit, offset)
	err := c.doRequest(ctx, http.MethodGet, path, accessToken, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list entries request failed: %w", err)
	}
	return resp.Entries, nil
}

// ListPublicEntries возвращает публичную ленту сообщества
func (c *Client) ListPublicEntries(ctx context.Context, limit, offset int) ([]api.Entry, error) {
	var resp api.ListEntriesResponse
	path := fmt.Sprintf("/api/v1/journal/public?limit=%d&offset=%d", limit, offset)
	err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list public entries request failed: %w", err)
	}
	return resp.Entries, nil
}

// CreateHatchReport отправляет отчет о вылете насекомых
func (c *Client) CreateHatchReport(ctx context.Context, accessToken string, payload api.HatchReportPayload) (*api.CreateHatchResponse, error) {
	var resp api.CreateHatchResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/v1/hatch", accessToken, payload, &resp)
	if err != nil {
		return nil, fmt.Errorf("create hatch report request failed: %w", err)
	}
	return &resp, nil
}

// ListHatchReports возвращает отчеты по реке за период
func (c *Client) ListHatchReports(ctx context.Context, river string, days, limit int) ([]api.HatchReport, error) {
	var resp api.ListHatchResponse

	params := url.Values{}
	if river != "" {
		params.Set("river", river)
	}
	if days > 0 {
		params.Set("days", strconv.Itoa(days))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/hatch"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	err := c.doRequest(ctx, http.MethodGet, path, "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("list hatch reports request failed: %w", err)
	}
	return resp.Reports, nil
}

// GetConditions возвращает сводку условий ловли для точки
func (c *Client) GetConditions(ctx context.Context, lat, lon float64, site string) (*api.ConditionsResponse, error) {
	var resp api.ConditionsResponse

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	if site != "" {
		params.Set("site", site)
	}

	err := c.doRequest(ctx, http.MethodGet, "/api/v1/conditions?"+params.Encode(), "", nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("conditions request failed: %w", err)
	}
	return &resp, nil
}

// Me возвращает профиль текущего пользователя
func (c *Client) Me(ctx context.Context, accessToken string) (*api.UserProfile, error) {
	var resp api.UserProfile
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/auth/me", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile обновляет профиль, nil поля не трогаются
func (c *Client) UpdateProfile(ctx context.Context, accessToken string, req api.UpdateProfileRequest) (*api.UserProfile, error) {
	var resp api.UserProfile
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/auth/profile", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// SaveRiver сохраняет реку в личный список
func (c *Client) SaveRiver(ctx context.Context, accessToken string, req api.SaveRiverRequest) (*api.SaveRiverResponse, error) {
	var resp api.SaveRiverResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/rivers", accessToken, req, &resp); err != nil {
		return nil, fmt.Errorf("save river request failed: %w", err)
	}
	return &resp, nil
}

// ListRivers возвращает сохраненные реки пользователя
func (c *Client) ListRivers(ctx context.Context, accessToken string) ([]api.SavedRiver, error) {
	var resp api.ListRiversResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/rivers", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("list rivers request failed: %w", err)
	}
	return resp.Rivers, nil
}

// DeleteRiver удаляет сохраненную реку
func (c *Client) DeleteRiver(ctx context.Context, accessToken string, riverID int64) error {
	path := "/api/v1/rivers/" + strconv.FormatInt(riverID, 10)
	if err := c.doRequest(ctx, http.MethodDelete, path, accessToken, nil, nil); err != nil {
		return fmt.Errorf("delete river request failed: %w", err)
	}
	return nil
}

// SearchSites ищет гидропосты USGS рядом с точкой
func (c *Client) SearchSites(ctx context.Context, lat, lon float64) ([]api.RiverSite, error) {
	var resp api.SearchSitesResponse

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/rivers/sites?"+params.Encode(), "", nil, &resp); err != nil {
		return nil, fmt.Errorf("search sites request failed: %w", err)
	}
	return resp.Sites, nil
}

// Ping проверяет доступность сервера. Используется connectivity observer'ом
// как сигнал достижимости: короткий таймаут, ответ не разбирается.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", "", nil, nil); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, accessToken string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Не-2xx превращаем в *api.Error с сохранением сообщения сервера
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &api.Error{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
			apiErr.Upgrade = errResp.Upgrade
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

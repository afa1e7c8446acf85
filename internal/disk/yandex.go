package disk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://cloud-api.yandex.net/v1/disk"

// YandexClient реализует Disk поверх REST API Яндекс.Диска.
// Все вызовы блокирующие, с ограниченным таймаутом HTTP клиента;
// временные сбои (5xx, сетевые ошибки) ретраятся с экспоненциальной задержкой.
type YandexClient struct {
	token   string
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// NewYandexClient создаёт клиент Яндекс.Диска
func NewYandexClient(token string, logger *zap.Logger) *YandexClient {
	return &YandexClient{
		token:   token,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// NewYandexClientWithBaseURL используется в тестах для подмены API
func NewYandexClientWithBaseURL(token, baseURL string, logger *zap.Logger) *YandexClient {
	c := NewYandexClient(token, logger)
	c.baseURL = baseURL
	return c
}

// apiError — ошибка, возвращённая API диска
type apiError struct {
	StatusCode  int    `json:"-"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (e *apiError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("yandex disk: %d %s", e.StatusCode, e.Description)
	}
	return fmt.Sprintf("yandex disk: status %d", e.StatusCode)
}

// hrefResponse — ответ API со ссылкой на операцию скачивания/загрузки
type hrefResponse struct {
	Href string `json:"href"`
}

func (c *YandexClient) Exists(ctx context.Context, path string) (bool, error) {
	resp, err := c.doAPI(ctx, http.MethodGet, "/resources", url.Values{"path": {path}})
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return false, nil
		}
		return false, fmt.Errorf("check %s: %w", path, err)
	}
	resp.Body.Close()
	return true, nil
}

func (c *YandexClient) Mkdir(ctx context.Context, path string) error {
	resp, err := c.doAPI(ctx, http.MethodPut, "/resources", url.Values{"path": {path}})
	if err != nil {
		var apiErr *apiError
		// 409 — папка уже существует, mkdir идемпотентен
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			return nil
		}
		return fmt.Errorf("mkdir %s: %w", path, err)
	}
	resp.Body.Close()
	return nil
}

func (c *YandexClient) Download(ctx context.Context, remotePath, localPath string) error {
	href, err := c.operationHref(ctx, "/resources/download", remotePath)
	if err != nil {
		return fmt.Errorf("download link for %s: %w", remotePath, err)
	}

	resp, err := c.doHref(ctx, http.MethodGet, href, "")
	if err != nil {
		return fmt.Errorf("download %s: %w", remotePath, err)
	}
	defer resp.Body.Close()

	out, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", localPath, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(localPath)
		return fmt.Errorf("write %s: %w", localPath, err)
	}
	return out.Close()
}

func (c *YandexClient) Upload(ctx context.Context, localPath, remotePath string, overwrite bool) error {
	query := url.Values{
		"path":      {remotePath},
		"overwrite": {strconv.FormatBool(overwrite)},
	}
	resp, err := c.doAPI(ctx, http.MethodGet, "/resources/upload", query)
	if err != nil {
		return fmt.Errorf("upload link for %s: %w", remotePath, err)
	}
	var link hrefResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&link)
	resp.Body.Close()
	if decodeErr != nil {
		return fmt.Errorf("decode upload link: %w", decodeErr)
	}

	putResp, err := c.doHref(ctx, http.MethodPut, link.Href, localPath)
	if err != nil {
		return fmt.Errorf("upload %s: %w", remotePath, err)
	}
	putResp.Body.Close()

	c.logger.Debug("Uploaded file to disk",
		zap.String("local", localPath),
		zap.String("remote", remotePath))
	return nil
}

func (c *YandexClient) DownloadLink(ctx context.Context, remotePath string) (string, error) {
	href, err := c.operationHref(ctx, "/resources/download", remotePath)
	if err != nil {
		return "", fmt.Errorf("download link for %s: %w", remotePath, err)
	}
	return href, nil
}

// operationHref запрашивает у API одноразовую ссылку на операцию
func (c *YandexClient) operationHref(ctx context.Context, endpoint, path string) (string, error) {
	resp, err := c.doAPI(ctx, http.MethodGet, endpoint, url.Values{"path": {path}})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var link hrefResponse
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return "", fmt.Errorf("decode href: %w", err)
	}
	return link.Href, nil
}

// doAPI выполняет запрос к API диска с ретраями на временные сбои
func (c *YandexClient) doAPI(ctx context.Context, method, endpoint string, query url.Values) (*http.Response, error) {
	reqURL := c.baseURL + endpoint + "?" + query.Encode()

	var resp *http.Response
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "OAuth "+c.token)

		r, err := c.httpc.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}

		if r.StatusCode >= 400 {
			apiErr := &apiError{StatusCode: r.StatusCode}
			_ = json.NewDecoder(r.Body).Decode(apiErr)
			r.Body.Close()
			if r.StatusCode >= 500 || r.StatusCode == http.StatusTooManyRequests {
				return retry.RetryableError(apiErr)
			}
			return apiErr
		}

		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// doHref выполняет запрос по одноразовой ссылке: GET для скачивания,
// PUT с телом из локального файла для загрузки
func (c *YandexClient) doHref(ctx context.Context, method, href, localPath string) (*http.Response, error) {
	var body io.Reader
	if localPath != "" {
		f, err := os.Open(localPath)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", localPath, err)
		}
		defer f.Close()
		body = f
	}

	req, err := http.NewRequestWithContext(ctx, method, href, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		apiErr := &apiError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		resp.Body.Close()
		return nil, apiErr
	}
	return resp, nil
}

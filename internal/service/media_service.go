package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/disk"
)

// MediaService переносит изображения из транспорта на диск.
// Скачанный файл проходит через локальный staging файл, который
// удаляется на любом исходе обработки.
type MediaService struct {
	disk       disk.Disk
	httpc      *http.Client
	stagingDir string
	logger     *zap.Logger

	now func() time.Time // подменяется в тестах
}

// NewMediaService создаёт сервис загрузки изображений
func NewMediaService(d disk.Disk, stagingDir string, logger *zap.Logger) *MediaService {
	return &MediaService{
		disk:       d,
		httpc:      &http.Client{Timeout: 30 * time.Second},
		stagingDir: stagingDir,
		logger:     logger,
		now:        time.Now,
	}
}

// StoreImage скачивает изображение по ссылке транспорта, переименовывает
// в "{name}_{surname}_{timestamp}.jpg", загружает в папку на диске и
// возвращает ссылку для скачивания.
func (s *MediaService) StoreImage(ctx context.Context, sourceURL, folder, name, surname string) (string, error) {
	if err := os.MkdirAll(s.stagingDir, 0o755); err != nil {
		return "", fmt.Errorf("staging dir: %w", err)
	}
	staging := filepath.Join(s.stagingDir, uuid.NewString()+".jpg")
	defer os.Remove(staging)

	if err := s.fetch(ctx, sourceURL, staging); err != nil {
		return "", fmt.Errorf("fetch image: %w", err)
	}

	timestamp := s.now().Format("20060102_150405")
	remotePath := fmt.Sprintf("%s/%s_%s_%s.jpg", folder, name, surname, timestamp)

	if err := s.disk.Upload(ctx, staging, remotePath, true); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	link, err := s.disk.DownloadLink(ctx, remotePath)
	if err != nil {
		return "", fmt.Errorf("image link: %w", err)
	}

	s.logger.Info("Image stored",
		zap.String("remote", remotePath))
	return link, nil
}

// fetch скачивает изображение в staging файл
func (s *MediaService) fetch(ctx context.Context, sourceURL, localPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return err
	}

	resp, err := s.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	out, err := os.Create(localPath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

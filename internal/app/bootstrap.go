package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/disk"
	"github.com/provkin/tgbot/internal/repository"
)

// EnsureFolders идемпотентно создаёт раскладку папок на диске.
// Вызывается один раз при старте процесса.
func EnsureFolders(ctx context.Context, d disk.Disk, logger *zap.Logger) error {
	for _, folder := range repository.Folders() {
		exists, err := d.Exists(ctx, folder)
		if err != nil {
			return fmt.Errorf("check folder %s: %w", folder, err)
		}
		if exists {
			continue
		}
		if err := d.Mkdir(ctx, folder); err != nil {
			return fmt.Errorf("create folder %s: %w", folder, err)
		}
		logger.Info("✅ Created disk folder", zap.String("folder", folder))
	}
	return nil
}

package disk

import "context"

// Disk — минимальный контракт удалённого файлового хранилища,
// от которого зависят леджер и загрузка изображений.
type Disk interface {
	// Exists проверяет наличие ресурса по пути
	Exists(ctx context.Context, path string) (bool, error)

	// Mkdir создаёт папку; повторное создание существующей папки не ошибка
	Mkdir(ctx context.Context, path string) error

	// Download скачивает удалённый файл в локальный
	Download(ctx context.Context, remotePath, localPath string) error

	// Upload загружает локальный файл по удалённому пути
	Upload(ctx context.Context, localPath, remotePath string, overwrite bool) error

	// DownloadLink возвращает ссылку для скачивания ресурса
	DownloadLink(ctx context.Context, remotePath string) (string, error)
}

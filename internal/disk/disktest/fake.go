package disktest

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// Fake — диск в памяти для тестов леджера и загрузки изображений.
// Поведение повторяет контракт disk.Disk: скачивание отсутствующего
// файла — ошибка, загрузка перезаписывает содержимое целиком.
type Fake struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool

	// Подменяемые сбои
	DownloadErr error
	UploadErr   error

	// Счётчик успешных загрузок
	Uploads int
}

// New создаёт пустой фейковый диск
func New() *Fake {
	return &Fake{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (f *Fake) Exists(ctx context.Context, path string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dirs[path] {
		return true, nil
	}
	_, ok := f.files[path]
	return ok, nil
}

func (f *Fake) Mkdir(ctx context.Context, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dirs[path] = true
	return nil
}

func (f *Fake) Download(ctx context.Context, remotePath, localPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DownloadErr != nil {
		return f.DownloadErr
	}
	data, ok := f.files[remotePath]
	if !ok {
		return fmt.Errorf("resource not found: %s", remotePath)
	}
	return os.WriteFile(localPath, data, 0o644)
}

func (f *Fake) Upload(ctx context.Context, localPath, remotePath string, overwrite bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UploadErr != nil {
		return f.UploadErr
	}
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	if _, exists := f.files[remotePath]; exists && !overwrite {
		return fmt.Errorf("resource already exists: %s", remotePath)
	}
	f.files[remotePath] = data
	f.Uploads++
	return nil
}

func (f *Fake) DownloadLink(ctx context.Context, remotePath string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.files[remotePath]; !ok {
		return "", fmt.Errorf("resource not found: %s", remotePath)
	}
	return "https://disk.example" + remotePath, nil
}

// Bytes возвращает содержимое удалённого файла
func (f *Fake) Bytes(remotePath string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.files[remotePath]
	return data, ok
}

// Put кладёт файл на фейковый диск напрямую
func (f *Fake) Put(remotePath string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[remotePath] = data
}

// Paths возвращает список удалённых путей
func (f *Fake) Paths() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	paths := make([]string, 0, len(f.files))
	for p := range f.files {
		paths = append(paths, p)
	}
	return paths
}

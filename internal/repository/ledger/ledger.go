package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/provkin/tgbot/internal/disk"
)

// Ledger выполняет цикл «скачать — изменить — загрузить» над xlsx
// документами на диске. У удалённого документа нет ни блокировок, ни
// версионирования, поэтому все записи сериализуются внутрипроцессным
// мьютексом: одновременные регистрации и сверки не затирают друг друга.
//
// Нечитаемый или отсутствующий документ считается пустой таблицей —
// следующая запись создаёт его заново.
type Ledger struct {
	disk       disk.Disk
	stagingDir string
	logger     *zap.Logger

	mu sync.Mutex // сериализует все записи в удалённые таблицы
}

// New создаёт леджер. stagingDir — локальная папка для временных
// копий документов; файлы в ней удаляются на каждом пути выхода.
func New(d disk.Disk, stagingDir string, logger *zap.Logger) *Ledger {
	return &Ledger{
		disk:       d,
		stagingDir: stagingDir,
		logger:     logger,
	}
}

// Mutate скачивает документ, применяет fn и загружает результат обратно.
// Если fn возвращает ошибку, удалённый документ не меняется.
func (l *Ledger) Mutate(ctx context.Context, tablePath string, fn func(*Table) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	staging, cleanup, err := l.stagingFile()
	if err != nil {
		return err
	}
	defer cleanup()

	table := l.fetch(ctx, tablePath, staging)

	if err := fn(table); err != nil {
		return err
	}

	if err := table.WriteFile(staging); err != nil {
		return fmt.Errorf("write %s: %w", tablePath, err)
	}
	if err := l.disk.Upload(ctx, staging, tablePath, true); err != nil {
		return fmt.Errorf("upload %s: %w", tablePath, err)
	}
	return nil
}

// Read скачивает и разбирает документ без изменения
func (l *Ledger) Read(ctx context.Context, tablePath string) (*Table, error) {
	staging, cleanup, err := l.stagingFile()
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return l.fetch(ctx, tablePath, staging), nil
}

// AppendRow добавляет строку в документ; columns задаёт порядок
// колонок для только что созданной таблицы
func (l *Ledger) AppendRow(ctx context.Context, tablePath string, columns []string, row Row) error {
	return l.Mutate(ctx, tablePath, func(t *Table) error {
		if len(t.Columns) == 0 {
			t.Columns = append([]string(nil), columns...)
		}
		t.Append(row)
		return nil
	})
}

// fetch скачивает и разбирает документ; при любом сбое возвращает
// пустую таблицу, различая в логе отсутствующий и испорченный документ
func (l *Ledger) fetch(ctx context.Context, tablePath, staging string) *Table {
	if err := l.disk.Download(ctx, tablePath, staging); err != nil {
		l.logger.Warn("Table missing on disk, starting from empty",
			zap.String("table", tablePath),
			zap.Error(err))
		return &Table{}
	}

	table, err := ReadFile(staging)
	if err != nil {
		l.logger.Warn("Table unreadable, starting from empty",
			zap.String("table", tablePath),
			zap.Error(err))
		return &Table{}
	}
	return table
}

// stagingFile возвращает путь для временной копии документа и функцию
// очистки, убирающую файл за собой
func (l *Ledger) stagingFile() (string, func(), error) {
	if err := os.MkdirAll(l.stagingDir, 0o755); err != nil {
		return "", nil, fmt.Errorf("staging dir: %w", err)
	}
	path := filepath.Join(l.stagingDir, uuid.NewString()+".xlsx")
	return path, func() { os.Remove(path) }, nil
}

package ledger

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// Row — одна строка таблицы, ключ — имя колонки.
type Row map[string]string

// Table — разобранное содержимое xlsx документа.
// Порядок колонок и строк сохраняется при любой мутации:
// чужие колонки не переставляются и не теряются.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable создаёт пустую таблицу с заданными колонками
func NewTable(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Append добавляет строку в конец таблицы.
// Ключи строки, которых ещё нет среди колонок, дописываются справа.
func (t *Table) Append(row Row) {
	known := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		known[c] = true
	}
	for _, key := range sortedKeys(row) {
		if !known[key] {
			t.Columns = append(t.Columns, key)
		}
	}
	t.Rows = append(t.Rows, row)
}

// ReadFile читает первую страницу xlsx файла.
// Первая строка листа считается заголовком.
func ReadFile(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	table := &Table{Columns: rows[0]}
	for _, cells := range rows[1:] {
		row := make(Row, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// WriteFile сохраняет таблицу в xlsx файл
func (t *Table) WriteFile(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("set header %s: %w", col, err)
		}
	}
	for r, row := range t.Rows {
		for i, col := range t.Columns {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return fmt.Errorf("cell %d/%d: %w", r, i, err)
			}
			if err := f.SetCellValue(sheet, cell, row[col]); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx: %w", err)
	}
	return nil
}

// sortedKeys возвращает ключи строки в стабильном порядке,
// чтобы новые колонки добавлялись детерминированно
func sortedKeys(row Row) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

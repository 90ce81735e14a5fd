// Package workbook appends inquiry submissions to a persisted xlsx file.
package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Inquiries"

// Workbook is an append-only xlsx log. Appends are serialized: concurrent
// submissions write the same file on disk.
type Workbook struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Workbook {
	return &Workbook{path: path}
}

// Append adds one row to the sheet, creating the file, sheet and header when
// absent.
func (w *Workbook) Append(header []string, row []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	file, created, err := w.open()
	if err != nil {
		return err
	}
	defer file.Close()

	if created {
		if err := writeRow(file, 1, header); err != nil {
			return err
		}
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("failed to read sheet: %w", err)
	}

	if err := writeRow(file, len(rows)+1, row); err != nil {
		return err
	}

	if err := file.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (w *Workbook) open() (*excelize.File, bool, error) {
	if _, err := os.Stat(w.path); os.IsNotExist(err) {
		if dir := filepath.Dir(w.path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, false, fmt.Errorf("failed to create workbook directory: %w", err)
			}
		}

		file := excelize.NewFile()
		index, err := file.NewSheet(sheetName)
		if err != nil {
			return nil, false, fmt.Errorf("failed to create sheet: %w", err)
		}
		file.SetActiveSheet(index)
		if err := file.DeleteSheet("Sheet1"); err != nil {
			return nil, false, fmt.Errorf("failed to drop default sheet: %w", err)
		}
		return file, true, nil
	}

	file, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open workbook: %w", err)
	}

	// The file may predate the sheet.
	if index, _ := file.GetSheetIndex(sheetName); index < 0 {
		if _, err := file.NewSheet(sheetName); err != nil {
			return nil, false, fmt.Errorf("failed to create sheet: %w", err)
		}
		return file, true, nil
	}

	return file, false, nil
}

func writeRow(file *excelize.File, rowIndex int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowIndex)
	if err != nil {
		return err
	}

	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}

	if err := file.SetSheetRow(sheetName, cell, &row); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowIndex, err)
	}
	return nil
}

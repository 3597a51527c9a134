package roster

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single named sheet the roster file round-trips through.
const SheetName = "Users"

// LoadXLSX parses roster bytes and normalizes the Users sheet.
func LoadXLSX(raw []byte) ([]Record, error) {
	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("open roster workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("%s 시트를 찾을 수 없습니다: %w", SheetName, err)
	}

	return Normalize(rows)
}

// ToXLSX serializes records to a single-sheet workbook in canonical column
// order.
func ToXLSX(records []Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("name roster sheet: %w", err)
	}

	for i, row := range ToRows(records) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("roster cell name: %w", err)
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write roster row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize roster workbook: %w", err)
	}
	return buf.Bytes(), nil
}

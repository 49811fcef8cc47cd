package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// LoadExcel reads records from a spreadsheet sheet. The first row is treated
// as the header; headers are sanitized before mapping onto attendee fields.
func LoadExcel(path, sheet string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if len(rows) < 2 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = SanitizeColumnName(header)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make(map[string]string, len(headers))
		for i, value := range row {
			if i < len(headers) && headers[i] != "" {
				cells[headers[i]] = value
			}
		}
		records = append(records, recordFromRow(cells))
	}

	return records, nil
}

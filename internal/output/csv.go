package output

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSV writes records to path with the given column order: a header row
// followed by one row per record. Columns absent from a record are left
// empty.
func WriteCSV(path string, header []string, records []map[string]interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(header))
	for _, record := range records {
		for i, field := range header {
			row[i] = FormatValue(record[field])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

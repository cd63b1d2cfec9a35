package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	header := []string{"Id", "Name", "Amount"}
	records := []map[string]interface{}{
		{"Id": "006xx1", "Name": "Big Deal", "Amount": float64(50000)},
		{"Id": "006xx2", "Name": "Comma, Inc", "Amount": nil},
	}

	if err := WriteCSV(path, header, records); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Output file missing: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[1][2] != "50000" {
		t.Errorf("Amount = %q, want 50000", rows[1][2])
	}
	if rows[2][1] != "Comma, Inc" {
		t.Errorf("Quoted field = %q, want Comma, Inc", rows[2][1])
	}
	if rows[2][2] != "" {
		t.Errorf("Missing value = %q, want empty", rows[2][2])
	}
}

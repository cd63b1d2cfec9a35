package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mitchdpg/salesforce-api-cli-tool/internal/core"
)

// PrintRecord writes one record's fields in whitelist order, skipping the
// platform metadata key and any whitelisted field the record does not carry.
func PrintRecord(w io.Writer, record map[string]interface{}, fields []string) {
	fmt.Fprintf(w, "  %s\n", Rule(50))
	for _, field := range fields {
		if field == core.MetadataKey {
			continue
		}
		value, ok := record[field]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "    %s: %s\n", field, FormatValue(value))
	}
}

// FormatValue renders a scalar JSON value for display or CSV output.
// Numbers decode as float64; integral values print without a fraction.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

package records

import (
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/mitchdpg/salesforce-api-cli-tool/internal/api"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/core"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/output"
	"github.com/mitchdpg/salesforce-api-cli-tool/internal/sobject"
)

const exportTimestampFmt = "20060102_150405"

// Export fetches every record of the object with query-all semantics and
// writes them to a timestamped CSV file in ExportDir. It returns the path of
// the written file, or an empty string when there was nothing to export.
func (s *Store) Export(obj sobject.Type) (string, error) {
	records, err := s.queryAll(obj.SOQL(0))
	if err != nil {
		return "", err
	}

	if len(records) == 0 {
		fmt.Fprintf(s.Out, "\n  No %s records to export.\n", obj)
		return "", nil
	}

	filename := fmt.Sprintf("%s_export_%s.csv", obj, time.Now().Format(exportTimestampFmt))
	path := filepath.Join(s.ExportDir, filename)

	header := exportHeader(obj, records[0])
	if err := output.WriteCSV(path, header, records); err != nil {
		return "", err
	}

	fmt.Fprintf(s.Out, "\n  %s\n", output.SuccessStyle.Render(
		fmt.Sprintf("✓ Exported %d records to %s", len(records), filename)))
	return path, nil
}

// queryAll collects every record across paginated /queryAll responses,
// following nextRecordsUrl continuations until the platform reports done.
func (s *Store) queryAll(soql string) ([]map[string]interface{}, error) {
	endpoint := "/queryAll/?q=" + url.QueryEscape(soql)

	var all []map[string]interface{}
	for {
		raw, err := s.transport.Do(http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		page := api.ParseQueryResponse(raw)
		all = append(all, page.Records...)

		if page.Done || page.NextRecordsURL == "" {
			break
		}
		endpoint = page.NextRecordsURL
	}

	return all, nil
}

// exportHeader derives the CSV column order from the first record's field
// set, minus the metadata key. JSON objects decode into unordered maps, so
// the object's query whitelist supplies a stable ordering.
func exportHeader(obj sobject.Type, first map[string]interface{}) []string {
	header := make([]string, 0, len(first))
	for _, field := range obj.QueryFields() {
		if field == core.MetadataKey {
			continue
		}
		if _, ok := first[field]; ok {
			header = append(header, field)
		}
	}
	return header
}

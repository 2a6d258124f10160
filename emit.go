package jpick

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Fixed output filenames for the built-in formats.
const (
	JSONOutputFile = "json_output.json"
	CSVOutputFile  = "json_output.csv"
)

// Built-in output format registrations using canonical names.
var (
	// JSONFormat emits the projected documents as a pretty-printed JSON
	// array, 4-space indent, key order and duplicate keys preserved.
	JSONFormat = NewFormat("json", JSONOutputFile, emitJSON)

	// CSVFormat emits one header row naming the KeySpec columns and one data
	// row per document, in list order.
	CSVFormat = NewFormat("csv", CSVOutputFile, emitCSV)
)

// Formats returns a Registration bundling the built-in output formats.
func Formats() Registration {
	return Group(JSONFormat, CSVFormat)
}

func emitJSON(w io.Writer, _ KeySpec, records []D) error {
	return json.MarshalWrite(w, records,
		json.WithMarshalers(Marshalers()),
		jsontext.WithIndent("    "),
		jsontext.AllowDuplicateNames(true))
}

func emitCSV(w io.Writer, keys KeySpec, records []D) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(keys); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, 0, len(keys))
	for i, doc := range records {
		row = row[:0]
		for _, e := range doc {
			cell, err := formatCell(e.Value)
			if err != nil {
				return fmt.Errorf("row %d, column %q: %w", i, e.Key, err)
			}
			row = append(row, cell)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatCell renders one document value as a single CSV cell. Scalars use
// their flat text form (nulls become empty cells); nested documents and
// arrays are JSON-encoded compactly into the cell.
func formatCell(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case bool:
		return strconv.FormatBool(val), nil
	case float64:
		// Integral values print without decimals or exponents, matching the
		// JSON emitter's fixed notation. Beyond 1e21 'f' would expand every
		// digit, so fall back to exponent form there.
		if val == math.Trunc(val) && math.Abs(val) < 1e21 {
			return strconv.FormatFloat(val, 'f', -1, 64), nil
		}
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case D, A:
		b, err := json.Marshal(val,
			json.WithMarshalers(Marshalers()),
			jsontext.AllowDuplicateNames(true))
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprintf("%v", val), nil
	}
}

package storedproc

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Record is one result row as a JSON-safe mapping keyed by column name.
type Record map[string]any

// Records converts a materialized result set into JSON-safe records.
// decimalScales maps column names to their fixed scale; those columns are
// rendered as strings so currency never passes through a float (19.9 comes
// back as "19.90"). Temporal and byte values become their textual
// representation, with no timezone conversion.
func Records(result *Result, decimalScales map[string]int32) []Record {
	records := make([]Record, 0, len(result.Rows))
	for _, row := range result.Rows {
		record := make(Record, len(result.Columns))
		for i, column := range result.Columns {
			record[column] = normalizeValue(row[i], result.Types[i], decimalScales[column], isDecimal(column, decimalScales))
		}
		records = append(records, record)
	}
	return records
}

func isDecimal(column string, decimalScales map[string]int32) bool {
	_, ok := decimalScales[column]
	return ok
}

func normalizeValue(value any, typeName string, scale int32, decimalColumn bool) any {
	if value == nil {
		return nil
	}

	if decimalColumn || typeName == "DECIMAL" {
		if d, err := decimal.NewFromString(cast.ToString(value)); err == nil {
			if !decimalColumn {
				// DECIMAL column outside the descriptor: keep the database's
				// own rendering.
				return d.String()
			}
			return d.StringFixed(scale)
		}
		return cast.ToString(value)
	}

	switch v := value.(type) {
	case []byte:
		// Text-protocol strings, TIME columns, TEXT, VARCHAR
		return string(v)
	case time.Time:
		// parseTime=true hands DATETIME columns out as time.Time
		return v.Format("2006-01-02 15:04:05")
	case int64, int32, int, uint64, float64, bool, string:
		return v
	default:
		return cast.ToString(v)
	}
}

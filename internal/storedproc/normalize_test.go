package storedproc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecords_ProductRow(t *testing.T) {
	result := &Result{
		Columns: []string{"id_producto", "nombre", "descripcion", "precio", "stock", "imagen_url"},
		Types:   []string{"INT", "VARCHAR", "TEXT", "DECIMAL", "INT", "VARCHAR"},
		Rows: [][]any{
			{int64(1), []byte("Protein"), nil, []byte("29.99"), int64(10), nil},
		},
	}

	records := Records(result, map[string]int32{"precio": 2})
	require.Len(t, records, 1)
	require.Equal(t, Record{
		"id_producto": int64(1),
		"nombre":      "Protein",
		"descripcion": nil,
		"precio":      "29.99",
		"stock":       int64(10),
		"imagen_url":  nil,
	}, records[0])
}

func TestRecords_DecimalFixedScale(t *testing.T) {
	// A price stored as 19.9 must always read back as "19.90"
	result := &Result{
		Columns: []string{"precio"},
		Types:   []string{"DECIMAL"},
		Rows:    [][]any{{[]byte("19.9")}},
	}

	records := Records(result, map[string]int32{"precio": 2})
	require.Equal(t, "19.90", records[0]["precio"])
}

func TestRecords_DecimalNeverFloat(t *testing.T) {
	result := &Result{
		Columns: []string{"precio"},
		Types:   []string{"DECIMAL"},
		Rows:    [][]any{{[]byte("0.1")}, {[]byte("1234567.89")}},
	}

	records := Records(result, map[string]int32{"precio": 2})
	require.Equal(t, "0.10", records[0]["precio"])
	require.Equal(t, "1234567.89", records[1]["precio"])
}

func TestRecords_UndeclaredDecimalKeepsDatabaseRendering(t *testing.T) {
	result := &Result{
		Columns: []string{"total"},
		Types:   []string{"DECIMAL"},
		Rows:    [][]any{{[]byte("5.500")}},
	}

	records := Records(result, nil)
	require.Equal(t, "5.500", records[0]["total"])
}

func TestRecords_TemporalPassThrough(t *testing.T) {
	// TIME columns stay textual, DATETIME renders without timezone conversion
	fechaAlta := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)
	result := &Result{
		Columns: []string{"horario", "fecha_alta"},
		Types:   []string{"TIME", "DATETIME"},
		Rows:    [][]any{{[]byte("08:00:00"), fechaAlta}},
	}

	records := Records(result, nil)
	require.Equal(t, "08:00:00", records[0]["horario"])
	require.Equal(t, "2025-03-14 08:00:00", records[0]["fecha_alta"])
}

func TestRecords_EmptyResult(t *testing.T) {
	result := &Result{
		Columns: []string{"id_clase", "nombre"},
		Types:   []string{"INT", "VARCHAR"},
	}

	records := Records(result, nil)
	require.NotNil(t, records)
	require.Empty(t, records)
}

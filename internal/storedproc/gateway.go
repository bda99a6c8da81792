package storedproc

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Gateway executes named stored procedures over an injected connection pool.
// Each call acquires its own connection and, for writes, its own transaction;
// both are released on every exit path. No retries, one round trip per call.
type Gateway struct {
	db *gorm.DB
}

// NewGateway wraps the pool handle owned by the process bootstrap
func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Result is a fully materialized procedure result set, detached from the
// connection that produced it.
type Result struct {
	Columns []string
	// Types holds the database type name per column (e.g. DECIMAL, TIME),
	// aligned with Columns.
	Types []string
	Rows  [][]any
}

// callStatement builds "CALL name(?,...)" with one placeholder per argument.
// Procedure names are trusted, never user-supplied.
func callStatement(proc string, argc int) string {
	if argc == 0 {
		return fmt.Sprintf("CALL %s()", proc)
	}
	placeholders := strings.Repeat("?,", argc)
	return fmt.Sprintf("CALL %s(%s)", proc, placeholders[:len(placeholders)-1])
}

// Query executes a read-only procedure and materializes the whole result set
// (column names, type names, all rows) while the cursor is open. The rows are
// copied out before the connection returns to the pool; nothing in Result
// aliases driver-owned memory.
func (g *Gateway) Query(ctx context.Context, proc string, args ...any) (*Result, error) {
	rows, err := g.db.WithContext(ctx).Raw(callStatement(proc, len(args)), args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("CALL %s: %w", proc, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("CALL %s: reading columns: %w", proc, err)
	}

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("CALL %s: reading column types: %w", proc, err)
	}
	typeNames := make([]string, len(columnTypes))
	for i, ct := range columnTypes {
		typeNames[i] = ct.DatabaseTypeName()
	}

	result := &Result{Columns: columns, Types: typeNames}
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("CALL %s: scanning row: %w", proc, err)
		}
		// The MySQL driver hands text-protocol values out as []byte that it
		// may reuse on the next fetch; copy them before advancing.
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = append([]byte(nil), b...)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CALL %s: iterating rows: %w", proc, err)
	}

	return result, nil
}

// Exec executes a mutating procedure inside a transaction. The transaction
// commits on success and rolls back on any error, including a panic in the
// driver; gorm releases the connection either way.
func (g *Gateway) Exec(ctx context.Context, proc string, args ...any) error {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Exec(callStatement(proc, len(args)), args...).Error
	})
	if err != nil {
		return fmt.Errorf("CALL %s: %w", proc, err)
	}
	return nil
}

// ExecReturningID executes an insert procedure and reads LAST_INSERT_ID()
// on the same connection, inside the same transaction, before committing.
func (g *Gateway) ExecReturningID(ctx context.Context, proc string, args ...any) (int64, error) {
	var id int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(callStatement(proc, len(args)), args...).Error; err != nil {
			return err
		}
		return tx.Raw("SELECT LAST_INSERT_ID()").Scan(&id).Error
	})
	if err != nil {
		return 0, fmt.Errorf("CALL %s: %w", proc, err)
	}
	return id, nil
}

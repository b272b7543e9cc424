package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/golang/glog"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/lib/pq"
)

func buildSelectQuery(opts SQLOptions, maxRows int) (string, []interface{}, error) {
	if opts.Table == "" {
		return "", nil, fmt.Errorf("table name cannot be empty")
	}
	query := squirrel.Select("*").From(opts.Table)
	if opts.OrderBy != "" {
		query = query.OrderBy(opts.OrderBy)
	}
	if maxRows > 0 {
		query = query.Limit(uint64(maxRows))
	}
	if opts.Driver == "postgres" {
		query = query.PlaceholderFormat(squirrel.Dollar)
	}
	return query.ToSql()
}

// loadSQL reads the whole stats table as strings so it goes through the same
// parsing as the file sources. NULLs become blank cells.
func loadSQL(ctx context.Context, opts SQLOptions, maxRows int) ([]string, [][]string, error) {
	db, err := sql.Open(opts.Driver, opts.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening database: %w", err)
	}
	defer db.Close()

	query, args, err := buildSelectQuery(opts, maxRows)
	if err != nil {
		return nil, nil, fmt.Errorf("error building query: %w", err)
	}
	glog.V(6).Infof("Querying dataset table. query=%q", query)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("query error: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var records [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(header))
		dest := make([]interface{}, len(header))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("error scanning row: %w", err)
		}
		record := make([]string, len(header))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return header, records, nil
}

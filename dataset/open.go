package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
)

var ErrUnsupportedSource = errors.New("unsupported dataset source")

// Open loads the dataset described by opts. A SQL DSN takes precedence over
// the file path; files are read according to their extension.
func Open(ctx context.Context, opts Options) (*Dataset, error) {
	var (
		header  []string
		records [][]string
		err     error
		source  string
	)
	switch {
	case opts.SQL.DSN != "":
		source = fmt.Sprintf("%s table %q", opts.SQL.Driver, opts.SQL.Table)
		header, records, err = loadSQL(ctx, opts.SQL, opts.MaxRows)
	case opts.Path == "":
		return nil, fmt.Errorf("%w: no file path or SQL DSN configured", ErrUnsupportedSource)
	default:
		source = opts.Path
		var raw [][]string
		switch ext := strings.ToLower(filepath.Ext(opts.Path)); ext {
		case ".xlsx", ".xlsm":
			raw, err = readWorkbook(opts.Path, opts.Sheet)
		case ".csv":
			raw, err = readCSV(opts.Path)
		default:
			return nil, fmt.Errorf("%w: file extension %q", ErrUnsupportedSource, ext)
		}
		if err == nil {
			header, records, err = frame(raw, opts)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", source, err)
	}

	ds, err := FromTable(header, records)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", source, err)
	}
	glog.Infof("Loaded dataset. source=%q, id=%s, rows=%d, players=%d", source, ds.ID(), ds.Len(), len(ds.players))
	return ds, nil
}

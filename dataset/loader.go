package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"
)

var bom = []byte{0xef, 0xbb, 0xbf}

// Loader decodes delimited text per RFC 4180 as implemented by
// encoding/csv: quoted fields may contain the delimiter, quotes are
// escaped by doubling, \r\n line endings are accepted and a trailing
// newline produces no empty record. The zero value is not usable; use
// NewLoader and adjust fields before the first call.
type Loader struct {
	// Comma is the field delimiter. NewLoader sets ','.
	Comma rune
	// Shape is applied to rows whose field count differs from the
	// header's. NewLoader sets ShapeStrict.
	Shape  ShapePolicy
	Logger *slog.Logger
}

func NewLoader() *Loader {
	return &Loader{
		Comma:  ',',
		Shape:  ShapeStrict,
		Logger: slog.Default(),
	}
}

// Load reads the file at path with a default Loader.
func Load(ctx context.Context, path string) (Dataset, error) {
	return NewLoader().Load(ctx, path)
}

// Load opens path and streams it through Decode. The file handle is
// closed on every exit path, including cancellation. Failures are
// either *AccessError (the file could not be opened) or *DecodeError
// (its content could not be decoded); no partial Dataset is returned.
func (l *Loader) Load(ctx context.Context, path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &AccessError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	if fi, statErr := f.Stat(); statErr == nil && fi.IsDir() {
		return nil, &AccessError{Path: path, Err: errors.New("is a directory")}
	}

	start := time.Now()
	ds, err := l.decode(ctx, f, path)
	if err != nil {
		return nil, err
	}
	l.logger().Debug("dataset loaded", "path", path, "records", len(ds), "elapsed", time.Since(start))
	return ds, nil
}

// Decode reads delimited text from r. The first line names the columns;
// every later line is zipped positionally with those names into a
// Record. A leading UTF-8 BOM is stripped. An empty stream, or one
// holding only a header, decodes to an empty Dataset. If the header
// repeats a column name, the last occurrence wins.
//
// Rows are decoded strictly in stream order, one at a time; memory
// grows with the number of accumulated records, not with stream size.
// ctx is checked between rows, so a cancelled decode stops without
// draining the stream.
func (l *Loader) Decode(ctx context.Context, r io.Reader) (Dataset, error) {
	return l.decode(ctx, r, "")
}

func (l *Loader) decode(ctx context.Context, r io.Reader, path string) (Dataset, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && bytes.Equal(head, bom) {
		_, _ = br.Discard(len(bom))
	}

	cr := csv.NewReader(br)
	if l.Comma != 0 {
		cr.Comma = l.Comma
	}
	if l.Shape == ShapePad {
		cr.FieldsPerRecord = -1
	}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return Dataset{}, nil
	}
	if err != nil {
		return nil, decodeErr(path, err)
	}

	ds := Dataset{}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return ds, nil
		}
		if err != nil {
			return nil, decodeErr(path, err)
		}
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(fields) {
				rec[name] = fields[i]
			} else {
				rec[name] = ""
			}
		}
		ds = append(ds, rec)
	}
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

func decodeErr(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &DecodeError{Path: path, Line: pe.Line, Err: err}
	}
	return &DecodeError{Path: path, Err: err}
}

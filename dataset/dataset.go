// Package dataset loads delimited text files into ordered sequences of
// column-name to cell-value records, using the first line as the header.
package dataset

// Record is one data line keyed by the header's column names. Cell
// values are kept as text; nothing is coerced to numbers or booleans.
type Record map[string]string

// Dataset holds one Record per data line, in file order.
type Dataset []Record

// ShapePolicy decides what happens when a data line has a different
// number of fields than the header.
type ShapePolicy int

const (
	// ShapeStrict fails the load on any row whose field count differs
	// from the header's.
	ShapeStrict ShapePolicy = iota
	// ShapePad fills missing trailing columns with the empty string and
	// drops fields beyond the header's width.
	ShapePad
)

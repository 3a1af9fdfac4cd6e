// Package csvfeed implements the benchmark-harness CSV contract: rows of
// SIDE,PRICE,QUANTITY,TYPE,TIF are turned into orders, and a fixed-seed
// generator produces reproducible test files.
package csvfeed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"flint/domain/book"
)

// Header is the fixed column layout for order files.
var Header = []string{"SIDE", "PRICE", "QUANTITY", "TYPE", "TIF"}

var errMalformed = errors.New("malformed row")

var tickScale = decimal.NewFromInt(book.TickPrecision)

// Reader streams orders from a CSV source. Malformed rows are skipped and
// counted rather than surfaced as errors. Order ids are assigned sequentially
// starting from the id passed to NewReader.
type Reader struct {
	csv        *csv.Reader
	nextID     uint64
	skipped    int
	headerRead bool
}

// NewReader wraps r. firstID seeds the sequential order-id assignment.
func NewReader(r io.Reader, firstID uint64) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length is validated per record
	return &Reader{csv: cr, nextID: firstID}
}

// Next returns the next valid order, or io.EOF when the source is exhausted.
func (r *Reader) Next() (book.Order, error) {
	if !r.headerRead {
		r.headerRead = true
		if _, err := r.csv.Read(); err != nil {
			if err == io.EOF {
				return book.Order{}, io.EOF
			}
			return book.Order{}, fmt.Errorf("read header: %w", err)
		}
	}
	for {
		rec, err := r.csv.Read()
		if err == io.EOF {
			return book.Order{}, io.EOF
		}
		if err != nil {
			// csv-level damage (bare quotes etc) counts as a skipped row
			if errors.Is(err, csv.ErrFieldCount) || isParseError(err) {
				r.skipped++
				continue
			}
			return book.Order{}, err
		}
		o, err := parseRow(rec)
		if err != nil {
			r.skipped++
			continue
		}
		o.ID = r.nextID
		r.nextID++
		return o, nil
	}
}

// Skipped reports how many rows were dropped as malformed so far.
func (r *Reader) Skipped() int { return r.skipped }

func isParseError(err error) bool {
	var pe *csv.ParseError
	return errors.As(err, &pe)
}

func parseRow(rec []string) (book.Order, error) {
	if len(rec) != len(Header) {
		return book.Order{}, errMalformed
	}

	var o book.Order
	switch rec[0] {
	case "BUY":
		o.Side = book.Buy
	case "SELL":
		o.Side = book.Sell
	default:
		return book.Order{}, errMalformed
	}

	price, err := decimal.NewFromString(rec[1])
	if err != nil {
		return book.Order{}, errMalformed
	}
	o.Price = price.Mul(tickScale).Round(0).IntPart()

	qty, err := strconv.ParseUint(rec[2], 10, 32)
	if err != nil || qty == 0 {
		return book.Order{}, errMalformed
	}
	o.Qty = uint32(qty)

	switch rec[3] {
	case "LIMIT":
		o.Type = book.Limit
	case "MARKET":
		o.Type = book.Market
	default:
		return book.Order{}, errMalformed
	}

	switch rec[4] {
	case "GTC":
		o.TIF = book.GTC
	case "IOC":
		o.TIF = book.IOC
	case "FOK":
		o.TIF = book.FOK
	default:
		return book.Order{}, errMalformed
	}

	return o, nil
}

// ReadFile loads every valid order from path. It returns the orders and the
// number of skipped rows.
func ReadFile(path string, firstID uint64) ([]book.Order, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	r := NewReader(f, firstID)
	var orders []book.Order
	for {
		o, err := r.Next()
		if err == io.EOF {
			return orders, r.Skipped(), nil
		}
		if err != nil {
			return nil, r.Skipped(), err
		}
		orders = append(orders, o)
	}
}

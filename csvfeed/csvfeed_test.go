package csvfeed

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flint/domain/book"
)

func TestReaderParsesRows(t *testing.T) {
	src := strings.Join([]string{
		"SIDE,PRICE,QUANTITY,TYPE,TIF",
		"BUY,520.37,100,LIMIT,GTC",
		"SELL,519.99,50,LIMIT,IOC",
		"BUY,0.0001,10,MARKET,IOC",
	}, "\n")

	r := NewReader(strings.NewReader(src), 1000)

	o, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), o.ID)
	assert.Equal(t, book.Buy, o.Side)
	assert.Equal(t, int64(5203700), o.Price)
	assert.Equal(t, uint32(100), o.Qty)
	assert.Equal(t, book.Limit, o.Type)
	assert.Equal(t, book.GTC, o.TIF)

	o, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(1001), o.ID)
	assert.Equal(t, book.Sell, o.Side)
	assert.Equal(t, int64(5199900), o.Price)
	assert.Equal(t, book.IOC, o.TIF)

	o, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.Price, "0.0001 is exactly one tick")
	assert.Equal(t, book.Market, o.Type)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	assert.Zero(t, r.Skipped())
}

func TestReaderSkipsMalformedRows(t *testing.T) {
	src := strings.Join([]string{
		"SIDE,PRICE,QUANTITY,TYPE,TIF",
		"BUY,520.00,100,LIMIT,GTC",
		"HOLD,520.00,100,LIMIT,GTC",   // bad side
		"BUY,notaprice,100,LIMIT,GTC", // bad price
		"BUY,520.00,0,LIMIT,GTC",      // zero quantity
		"BUY,520.00,100,STOP,GTC",     // bad type
		"BUY,520.00,100,LIMIT,DAY",    // bad tif
		"BUY,520.00,100",              // short row
		"SELL,530.00,25,LIMIT,FOK",
	}, "\n")

	r := NewReader(strings.NewReader(src), 1)
	var got []book.Order
	for {
		o, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, o)
	}

	require.Len(t, got, 2)
	assert.Equal(t, 6, r.Skipped())
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(2), got[1].ID, "skipped rows must not consume ids")
	assert.Equal(t, book.FOK, got[1].TIF)
}

func TestGeneratorDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, WriteRandom(&a, 100, DefaultSeed))
	require.NoError(t, WriteRandom(&b, 100, DefaultSeed))
	assert.Equal(t, a.String(), b.String())

	var c bytes.Buffer
	require.NoError(t, WriteRandom(&c, 100, 99))
	assert.NotEqual(t, a.String(), c.String())
}

func TestGeneratorRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRandom(&buf, 500, DefaultSeed))

	r := NewReader(&buf, 1)
	n := 0
	for {
		o, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, book.Limit, o.Type)
		assert.GreaterOrEqual(t, o.Price, int64(500*book.TickPrecision))
		assert.LessOrEqual(t, o.Price, int64(540*book.TickPrecision))
		assert.GreaterOrEqual(t, o.Qty, uint32(10))
		assert.LessOrEqual(t, o.Qty, uint32(500))
		n++
	}
	assert.Equal(t, 500, n)
	assert.Zero(t, r.Skipped())
}

package csvfeed

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
)

// DefaultSeed keeps generated files reproducible across runs.
const DefaultSeed = 12345

// WriteRandom emits n random limit orders as CSV: prices uniform on
// [500.00, 540.00] at two decimal places, quantities on [10, 500], sides and
// time-in-force uniform.
func WriteRandom(w io.Writer, n int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	sides := []string{"BUY", "SELL"}
	tifs := []string{"GTC", "IOC", "FOK"}

	for i := 0; i < n; i++ {
		cents := 50000 + rng.Intn(4001) // 500.00 .. 540.00
		row := []string{
			sides[rng.Intn(2)],
			fmt.Sprintf("%d.%02d", cents/100, cents%100),
			strconv.Itoa(10 + rng.Intn(491)),
			"LIMIT",
			tifs[rng.Intn(3)],
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// GenerateFile writes n random orders to path.
func GenerateFile(path string, n int, seed int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRandom(f, n, seed); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

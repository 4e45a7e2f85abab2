package export

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

// maxHistogramLen bounds ReadHistogram allocations.
const maxHistogramLen = 1 << 30

// WriteHistogram writes len(hist) as a little-endian uint64, then every
// entry as a little-endian int32.
func WriteHistogram(w io.Writer, hist []int32) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(hist))); err != nil {
		return errors.Wrap(err, "write histogram length")
	}
	if err := binary.Write(w, binary.LittleEndian, hist); err != nil {
		return errors.Wrap(err, "write histogram values")
	}

	return nil
}

// ReadHistogram reads the layout produced by WriteHistogram.
func ReadHistogram(r io.Reader) ([]int32, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, errors.Wrap(err, "read histogram length")
	}
	if n > maxHistogramLen {
		return nil, errors.Errorf("histogram length %d exceeds %d", n, maxHistogramLen)
	}
	hist := make([]int32, n)
	if err := binary.Read(r, binary.LittleEndian, hist); err != nil {
		return nil, errors.Wrap(err, "read histogram values")
	}

	return hist, nil
}

// DegreeHistogram counts vertices per degree: hist[k] is the number of
// vertices of degree k. The result has len(degrees) entries, enough for
// any simple graph on that many vertices.
func DegreeHistogram(degrees []int) []int32 {
	return AccumulateDegrees(make([]int32, len(degrees)), degrees)
}

// AccumulateDegrees adds the degree counts of one graph to hist, growing
// it when a degree does not fit. Counts saturate at math.MaxInt32.
func AccumulateDegrees(hist []int32, degrees []int) []int32 {
	for _, d := range degrees {
		if d < 0 {
			continue
		}
		for d >= len(hist) {
			hist = append(hist, 0)
		}
		if hist[d] < math.MaxInt32 {
			hist[d]++
		}
	}

	return hist
}

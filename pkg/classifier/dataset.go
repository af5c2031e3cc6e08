package classifier

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

var ErrEmptyDataset = errors.New("dataset has no samples")

// Dataset holds samples row-wise with one integer class per row.
type Dataset struct {
	X [][]float64
	Y []int
}

func (d Dataset) Len() int { return len(d.Y) }

// Dim is the feature width of the first sample, 0 when empty.
func (d Dataset) Dim() int {
	if len(d.X) == 0 {
		return 0
	}
	return len(d.X[0])
}

// LoadCSV reads rows of numeric features followed by an integer label in
// the last column. A non-numeric first row is treated as a header.
func LoadCSV(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var ds Dataset
	line := 0
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("read csv: %w", err)
		}
		line++
		if len(rec) < 2 {
			return Dataset{}, fmt.Errorf("line %d: need at least one feature and a label", line)
		}

		label, err := strconv.Atoi(strings.TrimSpace(rec[len(rec)-1]))
		if err != nil {
			if line == 1 {
				continue
			}
			return Dataset{}, fmt.Errorf("line %d: label %q: %w", line, rec[len(rec)-1], err)
		}

		x := make([]float64, len(rec)-1)
		for i, v := range rec[:len(rec)-1] {
			x[i], err = strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return Dataset{}, fmt.Errorf("line %d column %d: %w", line, i+1, err)
			}
		}
		if dim := ds.Dim(); dim != 0 && dim != len(x) {
			return Dataset{}, fmt.Errorf("line %d: %d features, expected %d", line, len(x), dim)
		}

		ds.X = append(ds.X, x)
		ds.Y = append(ds.Y, label)
	}

	if ds.Len() == 0 {
		return Dataset{}, ErrEmptyDataset
	}
	return ds, nil
}

// Split shuffles with seed and holds out testFrac of the samples.
func (d Dataset) Split(testFrac float64, seed int64) (train, test Dataset) {
	idx := rand.New(rand.NewSource(seed)).Perm(d.Len())
	nTest := int(float64(d.Len())*testFrac + 0.5)
	if nTest >= d.Len() {
		nTest = d.Len() - 1
	}
	for i, j := range idx {
		if i < nTest {
			test.X = append(test.X, d.X[j])
			test.Y = append(test.Y, d.Y[j])
			continue
		}
		train.X = append(train.X, d.X[j])
		train.Y = append(train.Y, d.Y[j])
	}
	return train, test
}

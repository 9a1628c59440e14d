package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joseluissebastia/barropt/gbm"
)

// WritePathsCSV writes a sample of simulated paths as CSV for external
// plotting. Rows are monitoring times, the first column the year fraction,
// the rest one column per sampled path. A sample of k keeps every
// ceil(paths/k)-th path; k <= 0 or k >= paths keeps them all.
func WritePathsCSV(w io.Writer, m *gbm.PriceMatrix, maturity float64, sample int) error {
	paths := m.Paths()
	stride := 1
	if sample > 0 && sample < paths {
		stride = (paths + sample - 1) / sample
	}

	var keep []int
	for i := 0; i < paths; i += stride {
		keep = append(keep, i)
	}

	cw := csv.NewWriter(w)
	header := make([]string, 0, len(keep)+1)
	header = append(header, "time")
	for _, i := range keep {
		header = append(header, fmt.Sprintf("path_%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	steps := m.Steps()
	dt := maturity / float64(steps)
	record := make([]string, len(keep)+1)
	for j := 0; j <= steps; j++ {
		record[0] = f(float64(j) * dt)
		for c, i := range keep {
			record[c+1] = f(m.At(i, j))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportPathsCSV writes the path sample to a new file at path.
func ExportPathsCSV(path string, m *gbm.PriceMatrix, maturity float64, sample int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePathsCSV(file, m, maturity, sample); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

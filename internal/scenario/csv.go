package scenario

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteLedgerCSV writes one row per scenario step to path.
func WriteLedgerCSV(path string, ledger []StepLog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"timelapse",
		"load",
		"dispatched",
		"successes",
		"grade",
		"cumulative_time",
		"cumulative_grade",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Index),
			fmtFloat(r.Timelapse),
			fmtFloat(r.Load),
			strconv.Itoa(r.Dispatched),
			strconv.Itoa(r.Successes),
			fmtFloat(r.Grade),
			fmtFloat(r.CumulativeTime),
			fmtFloat(r.CumulativeGrade),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

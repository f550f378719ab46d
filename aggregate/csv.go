package aggregate

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes one summary row per category, preceded by a header row.
// Histogram buckets are not included; the CSV surface carries only the
// key,len,min,max,avg columns for spreadsheets and plotting scripts. The
// min/max/avg cells are empty for a category with no observations.
func WriteCSV(w io.Writer, categories []*Category) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"key", "len", "min", "max", "avg"}); err != nil {
		return err
	}

	for _, cat := range categories {
		st := cat.Stats()
		row := []string{cat.Key(), strconv.Itoa(st.Count), "", "", ""}
		if st.Count > 0 {
			row[2] = formatStat(st.Min)
			row[3] = formatStat(st.Max)
			row[4] = formatStat(st.Avg)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

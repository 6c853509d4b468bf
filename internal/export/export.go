// Package export writes computed curve sets to CSV, JSON and XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/san-kum/radsim/internal/request"
)

// Data is the JSON export shape: grid plus labeled series.
type Data struct {
	Title  string      `json:"title"`
	XLabel string      `json:"x_label"`
	YLabel string      `json:"y_label"`
	X      []float64   `json:"x"`
	Series []SeriesOut `json:"series"`
}

type SeriesOut struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

func WriteJSON(w io.Writer, c request.Curves) error {
	data := Data{
		Title:  c.Title,
		XLabel: c.XLabel,
		YLabel: c.YLabel,
		X:      c.X,
		Series: make([]SeriesOut, len(c.Series)),
	}
	for i, s := range c.Series {
		data.Series[i] = SeriesOut{Label: s.Label, Values: s.Values}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV emits a header row (x label plus series labels) followed by
// one row per grid point.
func WriteCSV(w io.Writer, c request.Curves) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(c.Series)+1)
	header = append(header, c.XLabel)
	for _, s := range c.Series {
		header = append(header, s.Label)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for i, x := range c.X {
		record[0] = fmt.Sprintf("%.8f", x)
		for j, s := range c.Series {
			record[j+1] = fmt.Sprintf("%.8f", s.Values[i])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

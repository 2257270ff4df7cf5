package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

var separator = strings.Repeat("-", 30)

// RenderText writes lines in the scanner's console layout, one block per record.
func RenderText(w io.Writer, lines []Line) error {
	for _, l := range lines {
		_, err := fmt.Fprintf(w,
			"%s Endo/Plat: %s\nEndo Total: %s\nRerolls: %d\n%s: %d platinum\nLink: %s\n%s\n",
			l.PriceType, l.Score.StringFixed(displayPrecision),
			l.Total.StringFixed(displayPrecision),
			l.ReRolls,
			l.PriceType, l.Price,
			l.Link,
			separator,
		)
		if err != nil {
			return fmt.Errorf("render text: %w", err)
		}
	}
	return nil
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("render json: %w", err)
	}
	return nil
}

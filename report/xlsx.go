package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ResultsSheet is the worksheet WriteXLSX stores lines in.
const ResultsSheet = "Results"

var xlsxHeader = []interface{}{"Rank", "Price Type", "Endo/Plat", "Endo Total", "Rerolls", "Price", "Auction ID", "Link"}

// WriteXLSX saves lines as a spreadsheet at path with a header row and a
// hyperlink on every link cell.
func WriteXLSX(path string, lines []Line) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(ResultsSheet, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, l := range lines {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []interface{}{
			l.Rank,
			string(l.PriceType),
			l.Score.InexactFloat64(),
			l.Total.InexactFloat64(),
			l.ReRolls,
			l.Price,
			l.AuctionID,
			l.Link,
		}
		if err := f.SetSheetRow(ResultsSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}

		linkCell, err := excelize.CoordinatesToCellName(len(values), row)
		if err != nil {
			return err
		}
		if err := f.SetCellHyperLink(ResultsSheet, linkCell, l.Link, "External"); err != nil {
			return fmt.Errorf("link row %d: %w", row, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

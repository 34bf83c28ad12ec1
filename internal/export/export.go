// Package export writes aggregated business lists to CSV or XLSX.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/leadlens/leadlens-cli/internal/model"
)

// Columns is the export header, in order.
var Columns = []string{
	"Name",
	"Address",
	"Phone",
	"Description",
	"Rating",
	"Review Count",
	"Category",
	"Website",
	"Recent Review Reply",
	"Owner Name",
	"Owner Social Media",
	"Company Social Media",
}

// listSeparator joins array-valued fields into one cell.
const listSeparator = "; "

func fields(b model.Business) []string {
	rating := ""
	if b.Rating != nil {
		rating = strconv.FormatFloat(*b.Rating, 'f', -1, 64)
	}
	reviews := ""
	if b.ReviewCount != nil {
		reviews = strconv.Itoa(*b.ReviewCount)
	}
	return []string{
		b.Name,
		b.Address,
		b.Phone,
		b.Description,
		rating,
		reviews,
		b.Category,
		b.Website,
		b.RecentReviewReplyDate,
		b.OwnerName,
		strings.Join(b.OwnerSocialMedia, listSeparator),
		strings.Join(b.CompanySocialMedia, listSeparator),
	}
}

// WriteCSV emits the header and one row per business. Every field is
// quoted unconditionally, with embedded quotes doubled, so downstream
// spreadsheet imports never re-split on stray commas or newlines.
func WriteCSV(w io.Writer, businesses []model.Business) error {
	if err := writeRow(w, Columns); err != nil {
		return err
	}
	for _, b := range businesses {
		if err := writeRow(w, fields(b)); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, cells []string) error {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	if _, err := fmt.Fprintln(w, strings.Join(quoted, ",")); err != nil {
		return eris.Wrap(err, "export: write csv row")
	}
	return nil
}

// WriteXLSX saves the same columns as a single-sheet workbook.
func WriteXLSX(path string, businesses []model.Business) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Businesses")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range Columns {
		header.AddCell().SetString(col)
	}
	for _, b := range businesses {
		row := sheet.AddRow()
		for _, cell := range fields(b) {
			row.AddCell().SetString(cell)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save xlsx")
	}
	return nil
}

// Package importer loads cafes from spreadsheets into the store.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"cafeapi/model"
	"cafeapi/store"
	"cafeapi/utils"

	"github.com/xuri/excelize/v2"
)

// Creator is the part of the store the importer writes through.
type Creator interface {
	Create(ctx context.Context, cafe *model.Cafe) error
}

// RowError explains why a sheet row was not imported. Row is 1-based, the
// header being row 1.
type RowError struct {
	Row    int
	Reason string
}

func (e RowError) String() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// Report summarizes one import.
type Report struct {
	Imported int
	Skipped  []RowError
}

var requiredColumns = []string{
	"name", "map_url", "img_url", "location", "seats",
	"has_toilet", "has_wifi", "has_sockets", "can_take_calls",
}

// ImportXLSX reads cafes from sheet (the first sheet when empty) and creates
// one record per valid row. Invalid and duplicate rows are skipped.
func ImportXLSX(ctx context.Context, dst Creator, r io.Reader, sheet string) (*Report, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse spreadsheet: %w", err)
	}
	defer xl.Close()

	if sheet == "" {
		sheets := xl.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("spreadsheet has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := xl.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	columns, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for i, row := range rows[1:] {
		rowNum := i + 2
		if blank(row) {
			continue
		}

		cafe, err := parseRow(row, columns)
		if err != nil {
			report.Skipped = append(report.Skipped, RowError{Row: rowNum, Reason: err.Error()})
			continue
		}

		if err := dst.Create(ctx, cafe); err != nil {
			if errors.Is(err, store.ErrConflict) {
				report.Skipped = append(report.Skipped, RowError{Row: rowNum, Reason: "cafe " + cafe.Name + " already exists"})
				continue
			}
			return report, fmt.Errorf("row %d: %w", rowNum, err)
		}
		report.Imported++
	}

	log.Printf("Imported %d cafes from sheet %s, skipped %d rows", report.Imported, sheet, len(report.Skipped))
	return report, nil
}

func headerIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, dup := columns[key]; dup {
			return nil, fmt.Errorf("duplicate column %q", h)
		}
		columns[key] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

func parseRow(row []string, columns map[string]int) (*model.Cafe, error) {
	cell := func(col string) string {
		i, ok := columns[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	cafe := &model.Cafe{
		Name:     cell("name"),
		MapURL:   cell("map_url"),
		ImgURL:   cell("img_url"),
		Location: cell("location"),
		Seats:    cell("seats"),
	}
	for _, f := range []struct{ col, v string }{
		{"name", cafe.Name},
		{"map_url", cafe.MapURL},
		{"img_url", cafe.ImgURL},
		{"location", cafe.Location},
		{"seats", cafe.Seats},
	} {
		if f.v == "" {
			return nil, fmt.Errorf("%s is empty", f.col)
		}
	}

	flags := []struct {
		col string
		dst *bool
	}{
		{"has_toilet", &cafe.HasToilet},
		{"has_wifi", &cafe.HasWifi},
		{"has_sockets", &cafe.HasSockets},
		{"can_take_calls", &cafe.CanTakeCalls},
	}
	for _, f := range flags {
		b, err := utils.ParseLooseBool(cell(f.col))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.col, err)
		}
		*f.dst = b
	}

	if price := cell("coffee_price"); price != "" {
		cafe.CoffeePrice = &price
	}
	return cafe, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// InstructionsSheet is the name of the sheet describing template columns.
const InstructionsSheet = "Instructions"

// ErrEmptySheetName is returned when a workbook is requested without a sheet name.
var ErrEmptySheetName = errors.New("sheet name is required")

const (
	headerColor   = "4472C4"
	requiredColor = "C65911"
	columnWidth   = 20
)

// WriteTemplate writes a workbook with one data sheet whose header row
// lists cols, required columns highlighted, followed by an optional sample
// row. A second sheet explains each column.
func WriteTemplate(w io.Writer, sheet string, cols []Column, sample []string) error {
	f, err := newWorkbook(sheet)
	if err != nil {
		return err
	}
	defer closeWorkbook(f)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	requiredStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{requiredColor}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create required style: %w", err)
	}

	for i, col := range cols {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header %s: %w", col.Name, err)
		}

		header := col.Name
		style := headerStyle
		if col.Required {
			header += " *"
			style = requiredStyle
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", col.Name, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to style header %s: %w", col.Name, err)
		}
	}
	if err := setColumnWidths(f, sheet, len(cols)); err != nil {
		return err
	}

	if len(sample) > 0 {
		if err := writeRow(f, sheet, 2, sample); err != nil {
			return err
		}
	}

	if err := writeInstructions(f, sheet, cols); err != nil {
		return err
	}

	return save(f, w, sheet)
}

// WriteRecords writes a workbook with a single sheet holding the header row
// followed by rows, one cell per value.
func WriteRecords(w io.Writer, sheet string, columns []string, rows [][]string) error {
	f, err := newWorkbook(sheet)
	if err != nil {
		return err
	}
	defer closeWorkbook(f)

	if err := writeRow(f, sheet, 1, columns); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	if err := setColumnWidths(f, sheet, len(columns)); err != nil {
		return err
	}

	return save(f, w, sheet)
}

// ReadRows returns every row of the named sheet, or of the first sheet when
// sheet is blank.
func ReadRows(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer closeWorkbook(f)

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

func newWorkbook(sheet string) (*excelize.File, error) {
	if sheet == "" {
		return nil, ErrEmptySheetName
	}
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		closeWorkbook(f)
		return nil, fmt.Errorf("failed to name sheet %s: %w", sheet, err)
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", row, err)
	}
	return nil
}

func setColumnWidths(f *excelize.File, sheet string, n int) error {
	if n == 0 {
		return nil
	}
	last, err := excelize.ColumnNumberToName(n)
	if err != nil {
		return fmt.Errorf("failed to name column %d: %w", n, err)
	}
	if err := f.SetColWidth(sheet, "A", last, columnWidth); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	return nil
}

func writeInstructions(f *excelize.File, dataSheet string, cols []Column) error {
	if _, err := f.NewSheet(InstructionsSheet); err != nil {
		return fmt.Errorf("failed to create instructions sheet: %w", err)
	}

	rows := [][]string{
		{fmt.Sprintf("How to fill in the %s sheet", dataSheet)},
		{"Columns marked * are required. Import the workbook directly or save the data sheet as CSV."},
		{},
		{"Column", "Required", "Type", "Notes"},
	}
	for _, col := range cols {
		required := "no"
		if col.Required {
			required = "yes"
		}
		rows = append(rows, []string{col.Name, required, col.Kind, col.Notes})
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if err := writeRow(f, InstructionsSheet, i+1, row); err != nil {
			return err
		}
	}

	widths := map[string]float64{"A": 20, "B": 10, "C": 12, "D": 60}
	for col, width := range widths {
		if err := f.SetColWidth(InstructionsSheet, col, col, width); err != nil {
			return fmt.Errorf("failed to size instructions column %s: %w", col, err)
		}
	}
	return nil
}

func save(f *excelize.File, w io.Writer, sheet string) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("failed to find sheet %s: %w", sheet, err)
	}
	f.SetActiveSheet(idx)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func closeWorkbook(f *excelize.File) {
	_ = f.Close() // Best effort close
}

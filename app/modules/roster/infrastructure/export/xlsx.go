// Package rosterexport writes a roster board as a spreadsheet.
package rosterexport

import (
	"fmt"
	"io"
	"strconv"

	rosterdomain "github.com/edenhub/eden-web/app/modules/roster/domain"
	"github.com/xuri/excelize/v2"
)

// Sheet is the name of the roster worksheet.
const Sheet = "Roster"

// ContentType is the MIME type of the written workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []any{"Role", "Slot", "Player", "Character", "Class", "iLevel", "Spec", "Logs"}

// Filename names the download for a board.
func Filename(b *rosterdomain.Board) string {
	return fmt.Sprintf("roster-%s.xlsx", b.Run.ID)
}

// Write renders every slot of the board, empty ones included, in role order.
func Write(w io.Writer, b *rosterdomain.Board) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", Sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	title := fmt.Sprintf("%s (%s)", b.Run.Title, b.Difficulty)
	if err := f.SetCellValue(Sheet, "A1", title); err != nil {
		return err
	}
	if err := f.SetSheetRow(Sheet, "A2", &header); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(Sheet, "A1", "H2", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(Sheet, "A", "H", 16); err != nil {
		return err
	}

	row := 3
	for _, col := range b.Columns() {
		for i, a := range col.Slots {
			values := []any{string(col.Role), i + 1}
			if a != nil {
				logs := ""
				if a.Logs != nil {
					logs = strconv.Itoa(*a.Logs)
				}
				values = append(values, a.PlayerName, a.CharName, a.Class, a.ItemLevel, a.Spec, logs)
			}

			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(Sheet, cell, &values); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

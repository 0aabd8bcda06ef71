package export

import (
	"bytes"
	"fmt"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/xuri/excelize/v2"
)

// TimetableXLSX renders a department timetable as an XLSX workbook with
// one row per slot in timetable order.
func TimetableXLSX(t *model.Timetable) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Timetable"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Day", "Subject", "Start", "End", "Room", "Instructor"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, slot := range t.Slots {
		values := []interface{}{slot.Day, slot.Subject, slot.StartTime, slot.EndTime, slot.Room, slot.Instructor}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   fmt.Sprintf("%s — %s", t.Department, t.WeekLabel),
		Creator: "portal-backend",
	}); err != nil {
		return nil, fmt.Errorf("set doc props: %w", err)
	}

	return f.WriteToBuffer()
}

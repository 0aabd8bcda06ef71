package export

import (
	"testing"

	"github.com/campushub/portal-backend/internal/model"
	"github.com/xuri/excelize/v2"
)

func TestTimetableXLSX(t *testing.T) {
	timetable := &model.Timetable{
		Department: "Computer Science",
		WeekLabel:  "Week 1",
		Slots: []model.TimetableSlot{
			{Day: "Monday", Subject: "Algorithms", StartTime: "09:00", EndTime: "10:30", Room: "A-101", Instructor: "Priya Raman"},
			{Day: "Tuesday", Subject: "Databases", StartTime: "11:00", EndTime: "12:30", Room: "A-102", Instructor: "J. Okafor"},
		},
	}

	buf, err := TimetableXLSX(timetable)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Timetable", "A1")
	if err != nil {
		t.Fatalf("read header cell: %v", err)
	}
	if got != "Day" {
		t.Errorf("A1 = %q, want Day", got)
	}

	got, err = f.GetCellValue("Timetable", "B3")
	if err != nil {
		t.Fatalf("read slot cell: %v", err)
	}
	if got != "Databases" {
		t.Errorf("B3 = %q, want Databases", got)
	}
}

func TestTimetableXLSXEmpty(t *testing.T) {
	buf, err := TimetableXLSX(&model.Timetable{Department: "CS", WeekLabel: "Week 1"})
	if err != nil {
		t.Fatalf("export empty timetable: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty timetable produced an empty workbook")
	}
}

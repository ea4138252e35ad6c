package export

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/limaJavier/classplanner/pkg/model"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

const (
	firstHour = 9
	lastHour  = 20

	teachersSheet = "teachers"
)

// WriteXLSX writes the timetable as a workbook: one weekly grid per semester, with a row per starting hour and a
// column per weekday, plus a sheet listing teachers and their credits
func WriteXLSX(w io.Writer, state model.State) error {
	f := excelize.NewFile()
	defer f.Close()

	subjects := lo.KeyBy(state.Subjects, func(subject model.Subject) uint64 { return subject.ID })
	groups := lo.KeyBy(state.Groups, func(group model.Group) uint64 { return group.ID })

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return err
	}

	//** One grid per semester
	for i, semester := range model.Semesters {
		sheet := string(semester)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		if err := f.SetColWidth(sheet, "A", "A", 8); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "B", colName(len(model.WeekDays)), 28); err != nil {
			return err
		}
		header := append([]any{"time"}, lo.Map(model.WeekDays, func(day model.WeekDay, _ int) any { return string(day) })...)
		if err := writeRow(f, sheet, 1, header...); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell(0, 1), cell(len(model.WeekDays), 1), headerStyle); err != nil {
			return err
		}

		for hour := firstHour; hour < lastHour; hour++ {
			row := hour - firstHour + 2
			if err := f.SetCellValue(sheet, cell(0, row), model.Clock(uint64(hour*60))); err != nil {
				return err
			}
			for column, day := range model.WeekDays {
				entries := lo.FilterMap(state.Slots, func(slot model.Slot, _ int) (string, bool) {
					if slot.Semester != semester || slot.WeekDay != day || slot.StartTime/60 != uint64(hour) {
						return "", false
					}
					return describeSlot(slot, groups, subjects), true
				})
				if len(entries) == 0 {
					continue
				}
				slices.Sort(entries)
				if err := f.SetCellValue(sheet, cell(column+1, row), strings.Join(entries, "\n")); err != nil {
					return err
				}
			}
		}
		if err := f.SetCellStyle(sheet, cell(1, 2), cell(len(model.WeekDays), lastHour-firstHour+1), cellStyle); err != nil {
			return err
		}
	}

	//** Teachers
	if _, err := f.NewSheet(teachersSheet); err != nil {
		return err
	}
	if err := writeRow(f, teachersSheet, 1, "userName", "firstName", "lastName", "maxCredits", "assignedCredits", "groups"); err != nil {
		return err
	}
	if err := f.SetCellStyle(teachersSheet, cell(0, 1), cell(5, 1), headerStyle); err != nil {
		return err
	}
	row := 2
	for _, user := range state.Users {
		if user.Role != model.Teacher {
			continue
		}
		held := lo.Map(user.Groups, func(id uint64, _ int) string {
			group := groups[id]
			return subjects[group.SubjectID].Short + " " + group.Name
		})
		if err := writeRow(f, teachersSheet, row, user.UserName, user.FirstName, user.LastName, user.MaxCredits, user.AssignedCredits, strings.Join(held, ", ")); err != nil {
			return err
		}
		row++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// describeSlot renders e.g. "R A1 09:00-09:50 Laboratorio 3"
func describeSlot(slot model.Slot, groups map[uint64]model.Group, subjects map[uint64]model.Subject) string {
	group := groups[slot.GroupID]
	subject := subjects[group.SubjectID]
	return fmt.Sprintf("%v %v %v-%v %v", subject.Short, group.Name, model.Clock(slot.StartTime), model.Clock(slot.EndTime), slot.Location)
}

// writeRow fills row of sheet from its first column onwards
func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	for column, value := range values {
		if err := f.SetCellValue(sheet, cell(column, row), value); err != nil {
			return fmt.Errorf("cannot write %v!%v: %w", sheet, cell(column, row), err)
		}
	}
	return nil
}

func colName(index int) string {
	name, _ := excelize.ColumnNumberToName(index + 1)
	return name
}

func cell(column, row int) string {
	name, _ := excelize.CoordinatesToCellName(column+1, row)
	return name
}

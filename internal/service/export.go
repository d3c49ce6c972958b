package service

import (
	"fmt"

	"nestlog/internal/model"
	"nestlog/internal/stats"

	"github.com/xuri/excelize/v2"
)

// ExportService renders a range of aggregates into an xlsx workbook with one
// sheet per series, for families who want their history outside the app.
type ExportService struct{}

func NewExportService() *ExportService { return &ExportService{} }

var countColumns = []model.ActivityType{
	model.TypeSolidFood, model.TypeDrink, model.TypeSupplement,
	model.TypeDiaper, model.TypeSleep, model.TypeMemo,
}

var intakeColumns = []model.DrinkType{model.DrinkFormula, model.DrinkMilk, model.DrinkWater}

// Workbook aggregates the activities over r and writes the three daily
// series into sheets "Counts", "Drinks" and "Sleep".
func (s *ExportService) Workbook(activities []model.Activity, r stats.DateRange) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := s.writeCounts(f, stats.AggregateCounts(activities, r)); err != nil {
		return nil, err
	}
	if err := s.writeIntake(f, stats.AggregateDrinkIntake(activities, r)); err != nil {
		return nil, err
	}
	if err := s.writeSleep(f, stats.AggregateSleepDuration(activities, r)); err != nil {
		return nil, err
	}

	// Drop the default sheet so the workbook opens on Counts.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	return f, nil
}

func (s *ExportService) writeCounts(f *excelize.File, series []stats.DailyActivityCount) error {
	const sheet = "Counts"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}
	f.SetActiveSheet(index)

	headers := []interface{}{"Date"}
	for _, t := range countColumns {
		headers = append(headers, string(t))
	}
	headers = append(headers, "Total")
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, day := range series {
		row := []interface{}{day.Date}
		for _, t := range countColumns {
			row = append(row, day.Counts[t])
		}
		row = append(row, day.Total)
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeIntake(f *excelize.File, series []stats.DailyDrinkIntake) error {
	const sheet = "Drinks"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}

	headers := []interface{}{"Date"}
	for _, t := range intakeColumns {
		headers = append(headers, string(t)+" (ml)")
	}
	headers = append(headers, "Total (ml)")
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, day := range series {
		row := []interface{}{day.Date}
		for _, t := range intakeColumns {
			row = append(row, day.Intakes[t])
		}
		row = append(row, day.Total)
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeSleep(f *excelize.File, series []stats.DailySleepDuration) error {
	const sheet = "Sleep"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("new sheet %s: %w", sheet, err)
	}

	if err := writeRow(f, sheet, 1, []interface{}{"Date", "Minutes"}); err != nil {
		return err
	}
	for i, day := range series {
		if err := writeRow(f, sheet, i+2, []interface{}{day.Date, day.Minutes}); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

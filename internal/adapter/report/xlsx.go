// Package report renders spend reports as Excel workbooks.
package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

const (
	SheetDaily   = "Daily"
	SheetMonthly = "Monthly"
	SheetBrand   = "Brand"
)

// Filename returns the download name of a brand's spend workbook.
func Filename(brand domain.Brand) string {
	return fmt.Sprintf("brand_%d_spend.xlsx", brand.ID)
}

// SpendWorkbook builds a workbook with the brand summary and one sheet per
// report granularity.
func SpendWorkbook(brand domain.Brand, daily, monthly []port.SpendLine) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	xl.SetSheetName(xl.GetSheetName(0), SheetBrand)
	summary := [][]any{
		{"id", brand.ID},
		{"name", brand.Name},
		{"daily_budget", brand.DailyBudget.String()},
		{"monthly_budget", brand.MonthlyBudget.String()},
		{"daily_spend", brand.DailySpend.String()},
		{"monthly_spend", brand.MonthlySpend.String()},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err = xl.SetSheetRow(SheetBrand, cell, &row); err != nil {
			return nil, fmt.Errorf("write summary: %w", err)
		}
	}

	for _, sheet := range []struct {
		name   string
		period string
		lines  []port.SpendLine
	}{
		{SheetDaily, "date", daily},
		{SheetMonthly, "month", monthly},
	} {
		if _, err := xl.NewSheet(sheet.name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", sheet.name, err)
		}
		if err := writeLines(xl, sheet.name, sheet.period, sheet.lines); err != nil {
			return nil, err
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeLines(xl *excelize.File, sheet, period string, lines []port.SpendLine) error {
	header := []string{period, "hours", "cost"}
	if err := xl.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", strings.ToLower(sheet), err)
	}
	for i, l := range lines {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cost, _ := l.Cost.Float64()
		record := []any{l.Period, l.Hours, cost}
		if err = xl.SetSheetRow(sheet, cell, &record); err != nil {
			return fmt.Errorf("write %s row %d: %w", strings.ToLower(sheet), i+1, err)
		}
	}
	return nil
}

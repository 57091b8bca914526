package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"adpacer/internal/core/domain"
	"adpacer/internal/core/port"
)

func TestSpendWorkbook(t *testing.T) {
	brand := domain.Brand{ID: 7, Name: "Brand 7", DailyBudget: decimal.NewFromInt(100), MonthlyBudget: decimal.NewFromInt(200)}
	daily := []port.SpendLine{
		{Period: "2023-01-01", Hours: 30, Cost: decimal.NewFromInt(60)},
		{Period: "2023-01-02", Hours: 48, Cost: decimal.NewFromInt(96)},
	}
	monthly := []port.SpendLine{{Period: "2023-01", Hours: 78, Cost: decimal.NewFromInt(156)}}

	data, err := SpendWorkbook(brand, daily, monthly)
	require.NoError(t, err)
	assert.Equal(t, "brand_7_spend.xlsx", Filename(brand))

	xl, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer xl.Close()

	assert.Equal(t, []string{SheetBrand, SheetDaily, SheetMonthly}, xl.GetSheetList())

	rows, err := xl.GetRows(SheetDaily)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"date", "hours", "cost"}, rows[0])
	assert.Equal(t, []string{"2023-01-02", "48", "96"}, rows[2])

	name, err := xl.GetCellValue(SheetBrand, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Brand 7", name)

	rows, err = xl.GetRows(SheetMonthly)
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-01", "78", "156"}, rows[1])
}

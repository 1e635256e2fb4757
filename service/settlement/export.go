package settlement

import (
	"context"
	"fmt"

	"github.com/Bennnhere/LendIt-app/model"
	"github.com/xuri/excelize/v2"
)

const historySheet = "Rentals"

var historyHeader = []any{"Item", "Lender", "Rate/hr", "Started", "Returned", "Minutes", "Cost", "Paid by"}

// Export renders the session's receipts as an xlsx workbook, oldest first.
func (s *service) Export(ctx context.Context, sessionID string) ([]byte, error) {
	hist, err := s.History(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return WriteWorkbook(hist, s.currency)
}

// WriteWorkbook takes receipts newest first, as History returns them.
func WriteWorkbook(receipts []model.Receipt, currency string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(historySheet, "A1", &historyHeader); err != nil {
		return nil, err
	}

	header, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	if err := f.SetCellStyle(historySheet, "A1", "H1", header); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	var total float64
	row := 2
	for i := len(receipts) - 1; i >= 0; i-- {
		rc := receipts[i]
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		vals := []any{
			rc.ItemName,
			rc.Owner,
			rc.Rate,
			rc.StartTime.Format("02.01.2006 15:04"),
			rc.EndTime.Format("02.01.2006 15:04"),
			rc.ElapsedMinutes,
			rc.Cost,
			string(rc.Method),
		}
		if err := f.SetSheetRow(historySheet, cell, &vals); err != nil {
			return nil, err
		}
		total += rc.Cost
		row++
	}

	totalRow := []any{fmt.Sprintf("Total (%s)", currency), total}
	totalCell, err := excelize.CoordinatesToCellName(6, row)
	if err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(historySheet, totalCell, &totalRow); err != nil {
		return nil, fmt.Errorf("total row: %w", err)
	}

	if err := f.SetColWidth(historySheet, "A", "B", 25); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}
	if err := f.SetColWidth(historySheet, "D", "E", 18); err != nil {
		return nil, fmt.Errorf("column width: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

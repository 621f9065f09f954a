package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"blood-donation-backend/internal/domains/bloodunit"
)

const exportSheetName = "Blood units"

var exportHeaders = []string{
	"ID",
	"Bag Number",
	"Blood Type",
	"Volume (ml)",
	"Donation Date",
	"Expiry Date",
	"Days Until Expiry",
	"Expiry Status",
	"Status",
	"Location",
	"Donor Name",
	"Appointment Date",
	"Created At",
}

// ExportBloodUnits xuất danh sách đã lọc ra XLSX
func (s *bloodUnitService) ExportBloodUnits(ctx context.Context, filter bloodunit.ListFilter) ([]byte, error) {
	units, err := s.ListBloodUnits(ctx, filter)
	if err != nil {
		return nil, err
	}

	f, err := buildBloodUnitsExcelFile(units)
	if err != nil {
		return nil, bloodunit.NewExportBloodUnitError(err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, bloodunit.NewExportBloodUnitError(fmt.Errorf("failed to write excel file: %w", err))
	}
	return buf.Bytes(), nil
}

func buildBloodUnitsExcelFile(units []*bloodunit.Response) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	// Row 1: header
	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(exportSheetName, cell, header)
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(exportSheetName, "A1", lastCol+"1", headerStyle)
	}

	// Data rows bắt đầu từ row 2
	for i, u := range units {
		row := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, row)
			return name
		}

		f.SetCellValue(exportSheetName, cell(1), u.ID.Hex())
		f.SetCellValue(exportSheetName, cell(2), u.BagNumber)
		f.SetCellValue(exportSheetName, cell(3), string(u.BloodType))
		f.SetCellValue(exportSheetName, cell(4), u.Volume)
		f.SetCellValue(exportSheetName, cell(5), u.DonationDate)
		f.SetCellValue(exportSheetName, cell(6), u.ExpiryDate)
		if u.DaysUntilExpiry != nil {
			f.SetCellValue(exportSheetName, cell(7), *u.DaysUntilExpiry)
		}
		f.SetCellValue(exportSheetName, cell(8), string(u.ExpiryStatus))
		f.SetCellValue(exportSheetName, cell(9), string(u.Status))
		f.SetCellValue(exportSheetName, cell(10), u.Location)
		f.SetCellValue(exportSheetName, cell(11), u.DonorName)
		if u.Appointment != nil {
			f.SetCellValue(exportSheetName, cell(12), u.Appointment.AppointmentDate)
		}
		f.SetCellValue(exportSheetName, cell(13), u.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	f.SetColWidth(exportSheetName, "A", lastCol, 18)

	return f, nil
}

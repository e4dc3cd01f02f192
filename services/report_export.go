package services

import (
	"bytes"
	"elevatorops-console/models"
	"fmt"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	reportSheet     = "Report"
)

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// exportFileName prefers the request reference number over the report id
func exportFileName(r *models.Report) string {
	name := r.ReferenceNumber()
	if name == "" {
		name = "report-" + r.ID.String()
	}
	return unsafeFileChars.ReplaceAllString(name, "_") + ".xlsx"
}

// reportRows are the label/value pairs written to the sheet, in order
func reportRows(r *models.Report) [][2]interface{} {
	created := ""
	if !r.CreatedAt.IsZero() {
		created = r.CreatedAt.Format("2006-01-02 15:04")
	}
	return [][2]interface{}{
		{"Report ID", r.ID.String()},
		{"Request", r.ReferenceNumber()},
		{"Technician", r.TechnicianName()},
		{"Problem Type", r.ProblemType},
		{"Solution", r.SolutionDescription},
		{"Spare Parts", r.SparePartsDescription},
		{"Time Spent (min)", r.TimeSpentMinutes},
		{"Recommendations", r.Recommendations},
		{"Images", strings.Join(r.Images, "\n")},
		{"Created At", created},
	}
}

func renderReportWorkbook(r *models.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Vertical: "top",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create label style: %w", err)
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create value style: %w", err)
	}

	for i, row := range reportRows(r) {
		label, _ := excelize.CoordinatesToCellName(1, i+1)
		value, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(reportSheet, label, row[0]); err != nil {
			return nil, fmt.Errorf("failed to set cell %s: %w", label, err)
		}
		if err := f.SetCellValue(reportSheet, value, row[1]); err != nil {
			return nil, fmt.Errorf("failed to set cell %s: %w", value, err)
		}
		if err := f.SetCellStyle(reportSheet, label, label, labelStyle); err != nil {
			return nil, fmt.Errorf("failed to style cell %s: %w", label, err)
		}
		if err := f.SetCellStyle(reportSheet, value, value, wrapStyle); err != nil {
			return nil, fmt.Errorf("failed to style cell %s: %w", value, err)
		}
	}
	if err := f.SetColWidth(reportSheet, "A", "A", 20); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(reportSheet, "B", "B", 60); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	TemplateFilename = "transactions-template.xlsx"
	templateSheet    = "Transactions"
)

var templateHeaders = []any{
	"Bank/Card Issuer",
	"Account Name",
	"Statement Month (YYYY-MM)",
	"Date (YYYY-MM-DD)",
	"Description",
	"Merchant",
	"Amount",
	"Type (expense|income|savings)",
	"Category",
}

var templateExampleRow = []any{
	"Chase",
	"Chase Sapphire",
	"2024-07",
	"2024-07-15",
	"Dinner with clients",
	"La Trattoria",
	-86.5,
	"expense",
	"Dining",
}

type templateService struct{}

func NewTemplateService() *templateService {
	return &templateService{}
}

// Workbook builds the downloadable import template: a single sheet
// with the fixed header row and one example row.
func (s *templateService) Workbook() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", templateSheet); err != nil {
		return nil, fmt.Errorf("naming template sheet: %w", err)
	}
	if err := f.SetSheetRow(templateSheet, "A1", &templateHeaders); err != nil {
		return nil, fmt.Errorf("writing template headers: %w", err)
	}
	if err := f.SetSheetRow(templateSheet, "A2", &templateExampleRow); err != nil {
		return nil, fmt.Errorf("writing template example row: %w", err)
	}

	return f.WriteToBuffer()
}

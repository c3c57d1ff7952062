// Package ingest reads uploaded bank statements (CSV or spreadsheet
// workbooks) into a normalized table of string cells.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/financeflow/backend/internal/dto"
	"github.com/financeflow/backend/internal/errs"
)

// Parse reads the file content according to the extension of filename.
// Unsupported extensions yield an empty result, not an error; content
// that cannot be read as the claimed format yields errs.ParseError.
func Parse(filename string, r io.Reader) (dto.ParsedFile, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx", ".xls":
		return parseWorkbook(r)
	default:
		return emptyResult(), nil
	}
}

func parseCSV(r io.Reader) (dto.ParsedFile, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are padded against the header later

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return emptyResult(), errs.NewParseError("could not read CSV content", err)
		}
		if isBlank(record) {
			continue
		}
		records = append(records, record)
	}

	return buildResult(records), nil
}

func parseWorkbook(r io.Reader) (dto.ParsedFile, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return emptyResult(), errs.NewParseError("could not read workbook content", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return emptyResult(), nil
	}

	// Only the first sheet is imported.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return emptyResult(), errs.NewParseError("could not read workbook content", err)
	}

	return buildResult(rows), nil
}

// buildResult turns raw records into a ParsedFile: the first record is
// the header, the rest become rows keyed by the normalized header names.
func buildResult(records [][]string) dto.ParsedFile {
	if len(records) == 0 {
		return emptyResult()
	}

	columns := make([]string, len(records[0]))
	for i, header := range records[0] {
		columns[i] = normalizeHeader(header, i)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(columns))
		for i, column := range columns {
			if i < len(record) {
				row[column] = strings.TrimSpace(record[i])
			} else {
				row[column] = ""
			}
		}
		rows = append(rows, row)
	}

	return dto.ParsedFile{Columns: columns, Rows: rows}
}

// normalizeHeader guarantees every column a non-empty name: blank
// headers take a 1-indexed positional placeholder.
func normalizeHeader(header string, index int) string {
	trimmed := strings.TrimSpace(header)
	if trimmed == "" {
		return fmt.Sprintf("Column %d", index+1)
	}
	return trimmed
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func emptyResult() dto.ParsedFile {
	return dto.ParsedFile{Columns: []string{}, Rows: []map[string]string{}}
}

// Package bankbook parses the historical bank account workbooks into ledger
// entries.
//
// A workbook carries one worksheet per calendar year. Each data row is one
// remittance with the date split over the first three columns, using the
// Republic of China calendar for the year. Bank fees are booked as separate
// rows directly below the remittance they belong to and are folded into that
// entry's fee column instead of becoming entries of their own.
package bankbook

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/finance-center/backend/internal/importer"
	"github.com/finance-center/backend/internal/models"
	"github.com/finance-center/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ErrFileNotFound is returned when the workbook does not exist.
var ErrFileNotFound = errors.New("the workbook file does not exist")

// rocYearOffset converts Republic of China calendar years to the Gregorian
// calendar. ROC year 113 is 2024.
const rocYearOffset = 1911

// feeReason is the literal reason text marking a row as a bank fee booking.
const feeReason = "手續費"

// Column layout of the workbooks, zero-indexed. Columns 3 and 7 are unused.
const (
	colYear = iota
	colMonth
	colDay
	_
	colReason
	colIncome
	colExpense
	_
	colApplicant
)

// CheckFile verifies that the workbook exists. Callers check this before
// clearing the ledger so that a bad path does not destroy data.
func CheckFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	return nil
}

// Parse reads the workbook at path into ledger entries.
//
// Worksheets are processed in workbook order, rows top to bottom with the
// header row skipped. Rows without a numeric year, month and day are skipped.
// Any malformed amount or date aborts the parse.
func Parse(path string) (importer.ParsedLedger, error) {
	if err := CheckFile(path); err != nil {
		return importer.ParsedLedger{}, err
	}

	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return importer.ParsedLedger{}, err
	}
	defer workbook.Close()

	var parsed importer.ParsedLedger

	for _, sheet := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return importer.ParsedLedger{}, err
		}

		// A fee row attaches to the preceding entry of the same
		// worksheet, never across a worksheet boundary.
		previous := -1

		for i, row := range rows {
			// Header row
			if i == 0 {
				continue
			}

			year, okYear := cellInt(row, colYear)
			month, okMonth := cellInt(row, colMonth)
			day, okDay := cellInt(row, colDay)
			if !okYear || !okMonth || !okDay {
				continue
			}

			reason := cellString(row, colReason)

			income, err := cellDecimal(row, colIncome)
			if err != nil {
				return importer.ParsedLedger{}, fmt.Errorf("sheet %q row %d: %w", sheet, i+1, err)
			}

			expense, err := cellDecimal(row, colExpense)
			if err != nil {
				return importer.ParsedLedger{}, fmt.Errorf("sheet %q row %d: %w", sheet, i+1, err)
			}

			if reason == feeReason {
				if previous == -1 {
					parsed.DanglingFees++
					continue
				}

				parsed.Entries[previous].Fee = expense
				continue
			}

			date, err := remittanceDate(year, month, day)
			if err != nil {
				return importer.ParsedLedger{}, fmt.Errorf("sheet %q row %d: %w", sheet, i+1, err)
			}

			parsed.Entries = append(parsed.Entries, models.LedgerFields{
				RemittanceDate: &date,
				Department:     "",
				Applicant:      cellString(row, colApplicant),
				Reason:         reason,
				Income:         income,
				Expense:        expense,
				Fee:            decimal.Zero,
			})
			previous = len(parsed.Entries) - 1
		}
	}

	return parsed, nil
}

// remittanceDate builds the entry date from an ROC calendar row.
func remittanceDate(rocYear, month, day int) (types.Date, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return types.Date{}, fmt.Errorf("invalid date: year %d, month %d, day %d", rocYear, month, day)
	}

	return types.NewDate(rocYear+rocYearOffset, time.Month(month), day), nil
}

func cellString(row []string, col int) string {
	if col >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[col])
}

func cellInt(row []string, col int) (int, bool) {
	value, err := strconv.Atoi(cellString(row, col))
	if err != nil {
		return 0, false
	}

	return value, true
}

func cellDecimal(row []string, col int) (decimal.Decimal, error) {
	value := strings.ReplaceAll(cellString(row, col), ",", "")
	if value == "" {
		return decimal.Zero, nil
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a number", value)
	}

	return parsed, nil
}

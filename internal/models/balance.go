package models

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RemittanceYearExpr buckets ledger rows by the calendar year of their remittance date.
// Dateless rows never match it and are excluded from all year-bucketed sums.
const RemittanceYearExpr = "CAST(strftime('%Y', remittance_date) AS INTEGER)"

// OpeningBalance returns the balance carried into the given year.
//
// If an initial balance is configured for the bank, it is the baseline and
// only entries from its effective year up to (excluding) the requested year
// are added: everything older is already accounted for in the baseline.
// Without configuration, the opening balance is the sum of all net amounts
// strictly before the year.
func OpeningBalance[E LedgerModel](db *gorm.DB, bank BankType, year int) (decimal.Decimal, error) {
	config, err := BankInitialBalanceFor(db, bank)
	if err != nil {
		return decimal.Zero, err
	}

	if config == nil {
		return netAmountSum[E](db, nil, year)
	}

	sum, err := netAmountSum[E](db, &config.EffectiveYear, year)
	if err != nil {
		return decimal.Zero, err
	}

	return config.InitialBalance.Add(sum), nil
}

// netAmountSum sums income - expense - fee over all dated entries with
// fromYear <= year(remittanceDate) < toYear. A nil fromYear leaves the lower
// bound open.
func netAmountSum[E LedgerModel](db *gorm.DB, fromYear *int, toYear int) (decimal.Decimal, error) {
	var e E
	var sum decimal.NullDecimal

	q := db.Model(&e).
		Select("SUM(income - expense - fee)").
		Where("remittance_date IS NOT NULL").
		Where(fmt.Sprintf("%s < ?", RemittanceYearExpr), toYear)

	if fromYear != nil {
		q = q.Where(fmt.Sprintf("%s >= ?", RemittanceYearExpr), *fromYear)
	}

	err := q.Row().Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing ledger net amounts failed: %w", err)
	}

	return sum.Decimal, nil
}

// RunningBalances accumulates the running balance over the entries, seeded by
// the opening balance, and returns it keyed by entry ID.
//
// Entries are sorted by remittance date first. The sort is stable: entries
// sharing a date keep the order they were passed in.
func RunningBalances[E LedgerModel](entries []E, openingBalance decimal.Decimal) map[uint]decimal.Decimal {
	sorted := make([]LedgerEntry, 0, len(entries))
	for _, e := range entries {
		sorted = append(sorted, LedgerEntry(e))
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].RemittanceDate, sorted[j].RemittanceDate
		if a == nil || b == nil {
			return a == nil && b != nil
		}
		return a.Before(*b)
	})

	balances := make(map[uint]decimal.Decimal, len(sorted))
	balance := openingBalance
	for _, e := range sorted {
		balance = balance.Add(e.NetAmount())
		balances[e.ID] = balance
	}

	return balances
}

// LedgerEntriesForYear returns all dated entries of one calendar year,
// ordered by remittance date.
func LedgerEntriesForYear[E LedgerModel](db *gorm.DB, year int) ([]E, error) {
	var entries []E

	err := db.
		Where("remittance_date IS NOT NULL").
		Where(fmt.Sprintf("%s = ?", RemittanceYearExpr), year).
		Order("datetime(remittance_date) ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// LedgerYears returns the distinct calendar years that have dated entries,
// newest first.
func LedgerYears[E LedgerModel](db *gorm.DB) ([]int, error) {
	var e E
	years := make([]int, 0)

	err := db.Model(&e).
		Select(fmt.Sprintf("DISTINCT %s AS year", RemittanceYearExpr)).
		Where("remittance_date IS NOT NULL").
		Order("year DESC").
		Scan(&years).Error
	if err != nil {
		return nil, err
	}

	return years, nil
}

package autogaap

// DepreciationRow is one year of a straight-line depreciation schedule.
type DepreciationRow struct {
	Year         int
	Depreciation Amount
	Accumulated  Amount
	BookValue    Amount
}

// DepreciationSchedule computes the straight-line schedule for an asset of
// the given cost over usefulLife years. The book value is floored at zero so
// rounding never drives it negative. A non-positive cost or life yields an
// empty schedule.
func DepreciationSchedule(cost Amount, usefulLife int) []DepreciationRow {
	if !cost.IsPositive() || usefulLife <= 0 {
		return nil
	}

	annual := cost.Div(usefulLife)
	rows := make([]DepreciationRow, 0, usefulLife)
	for year := 1; year <= usefulLife; year++ {
		accumulated := annual.Mul(year)
		book := cost.Sub(accumulated)
		if book.IsNegative() {
			book = A(0)
		}
		rows = append(rows, DepreciationRow{
			Year:         year,
			Depreciation: annual,
			Accumulated:  accumulated,
			BookValue:    book,
		})
	}
	return rows
}

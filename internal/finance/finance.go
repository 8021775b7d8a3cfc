// Package finance implements the money math applied to raw platform export
// rows: normalizing currency-formatted text, summing named column groups,
// and deriving the per-trip revenue, platform fee, and operating expense.
//
// Everything here is a pure function over an ImportRecord. The package has
// no storage or transport dependencies so the formulas are unit-testable
// independent of the ingestion pipeline.
package finance

import (
	"strconv"
	"strings"

	"github.com/trinityrpm/fleet-office/internal/domain"
)

// Amount converts heterogeneous currency text into a signed number.
// It strips every rune that is not a digit, 'e', '.', or '-', then parses
// the remainder as a float. Anything unparseable — including the empty
// string left by a missing column — is 0.
//
//	Amount("$1,234.50") == 1234.5
//	Amount("-$20")      == -20
//	Amount("120 mi")    == 120
//	Amount("")          == 0
func Amount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == 'e' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// SumColumns sums the normalized magnitude of each named column in rec.
// Discount, bonus, and expense line items are stored as negative numbers
// in the export, so the absolute value is taken per column. Missing
// columns normalize to 0 and contribute nothing. The result is never
// negative.
func SumColumns(rec domain.ImportRecord, columns []string) float64 {
	var total float64
	for _, column := range columns {
		v := Amount(rec.Get(column))
		if v < 0 {
			v = -v
		}
		total += v
	}
	return total
}

// serviceCharge is the flat per-trip amount deducted from net revenue and
// added to operating expense, modeling the fixed cleaning/turnover cost.
const serviceCharge = 10

// NetEarned is the revenue attributed to the vehicle owner before the
// partner share split:
//
//	trip price + bonuses (excess distance, additional usage, late fee)
//	− discounts − flat $10 service charge
func NetEarned(rec domain.ImportRecord) float64 {
	bonus := SumColumns(rec, BonusColumns)
	discount := SumColumns(rec, DiscountColumns)
	return Amount(rec.Get(ColTripPrice)) + bonus - discount - serviceCharge
}

// OperationExpense is the sum of the itemized expense columns (delivery,
// smoking, cleaning, improper return) plus the flat $10 service charge.
func OperationExpense(rec domain.ImportRecord) float64 {
	return SumColumns(rec, OpExpenseColumns) + serviceCharge
}

// TuroFee approximates the platform's cut as one ninth of the discounted
// trip value plus the delivery fee:
//
//	(trip price + delivery − discounts) / 9
func TuroFee(rec domain.ImportRecord) float64 {
	discount := SumColumns(rec, DiscountColumns)
	return (Amount(rec.Get(ColTripPrice)) + Amount(rec.Get(ColDelivery)) - discount) / 9
}

// Derived holds the monetary fields computed for one trip record.
type Derived struct {
	TotalDiscount    float64
	NetEarned        float64
	TuroFee          float64
	OperationExpense float64
	GrossEarned      float64
}

// Derive computes all derived monetary fields for one export row.
// GrossEarned is defined as NetEarned + TuroFee + OperationExpense; it is
// never read from the export, so the identity holds for every input.
func Derive(rec domain.ImportRecord) Derived {
	d := Derived{
		TotalDiscount:    SumColumns(rec, DiscountColumns),
		NetEarned:        NetEarned(rec),
		TuroFee:          TuroFee(rec),
		OperationExpense: OperationExpense(rec),
	}
	d.GrossEarned = d.NetEarned + d.TuroFee + d.OperationExpense
	return d
}

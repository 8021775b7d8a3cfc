package finance

// Column names from the platform export that the derivation formulas read
// directly. Column presence is never validated up front; an absent column
// reads as "" and normalizes to 0.
const (
	ColTripPrice = "trip_price"
	ColDelivery  = "delivery"
)

// DiscountColumns are the tiered rental-length discounts plus the
// early-bird discount and promotional credit. Stored as negative values in
// the export; aggregated by magnitude.
var DiscountColumns = []string{
	"three_day_discount",
	"seven_day_discount",
	"fourteen_day_discount",
	"twentyone_day_discount",
	"thirty_day_discount",
	"sixty_day_discount",
	"ninety_day_discount",
	"early_bird_discount",
	"host_promotional_credit",
}

// BonusColumns are the fee line items credited to the owner on top of the
// base trip price.
var BonusColumns = []string{
	"excess_distance",
	"additional_usage",
	"late_fee",
}

// OpExpenseColumns are the itemized operating-expense line items.
var OpExpenseColumns = []string{
	"delivery",
	"smoking",
	"cleaning",
	"improper_return_fee",
}

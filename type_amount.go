package autogaap

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Tolerance is the maximum debit/credit difference still considered balanced.
var Tolerance = A(0.01)

// materiality is the threshold below which an account balance is treated as
// zero and dropped from statement sections.
var materiality = A(0.005)

// Amount represents a monetary value in the ledger's single display currency.
type Amount struct {
	value decimal.Decimal
}

func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		return decimal.Zero
	}
}

// displayCurrency is the currency used for all formatted output.
const displayCurrency = "USD"

// currency returns the display currency, never nil.
func currency() money.Currency {
	return *money.New(0, displayCurrency).Currency()
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }
func (a Amount) Abs() Amount         { return Amount{value: a.value.Abs()} }

// Mul scales the amount by an integer factor.
func (a Amount) Mul(n int) Amount { return Amount{value: a.value.Mul(decimal.NewFromInt(int64(n)))} }

// Div divides the amount by an integer divisor. The divisor must be non-zero.
func (a Amount) Div(n int) Amount { return Amount{value: a.value.Div(decimal.NewFromInt(int64(n)))} }

func (a Amount) IsZero() bool             { return a.value.IsZero() }
func (a Amount) IsPositive() bool         { return a.value.IsPositive() }
func (a Amount) IsNegative() bool         { return a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool      { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool   { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }

// Round2 rounds the amount to 2 decimal places. Aggregation rounds once after
// summation, not per line, to avoid compounding floating rounding error.
func (a Amount) Round2() Amount { return Amount{value: a.value.Round(2)} }

// Within reports whether the amount's magnitude is at most the tolerance t.
func (a Amount) Within(t Amount) bool { return !a.Abs().GreaterThan(t) }

// Material reports whether the amount's magnitude reaches the statement
// materiality threshold.
func (a Amount) Material() bool { return !a.Abs().LessThan(materiality) }

// String formats the amount as display currency, negatives in parentheses,
// the way statements print them.
func (a Amount) String() string {
	cur := currency()
	cents := a.value.Abs().Shift(int32(cur.Fraction)).Round(0)
	formatted := cur.Formatter().Format(cents.IntPart())
	if a.IsNegative() {
		return "(" + formatted + ")"
	}
	return formatted
}

// SignedString is like String but keeps the sign in front, for variances.
func (a Amount) SignedString() string {
	cur := currency()
	cents := a.value.Abs().Shift(int32(cur.Fraction)).Round(0)
	formatted := cur.Formatter().Format(cents.IntPart())
	if a.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

// Fixed2 formats the amount as a plain signed number with 2 decimals, no
// currency symbol.
func (a Amount) Fixed2() string { return a.value.StringFixed(2) }

// MarshalJSON writes the raw value so a store round trip is lossless.
// Rounding belongs to the aggregation and display layers.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var v json.Number
	if err := json.Unmarshal(b, &v); err != nil {
		// Unknown or missing numeric fields coerce to zero.
		a.value = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		a.value = decimal.Zero
		return nil
	}
	a.value = d
	return nil
}

var _ json.Marshaler = (*Amount)(nil)
var _ json.Unmarshaler = (*Amount)(nil)

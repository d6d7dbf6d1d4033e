package leverage

import "github.com/shopspring/decimal"

type number interface {
	float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T number](value T) decimal.Decimal {
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
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Ratio is a dimensionless decimal: a rate, a threshold, a loan-to-value or a
// stress fraction. 0.7 means 70%.
type Ratio struct {
	value decimal.Decimal
}

// R creates a Ratio from a numeric value.
func R[T number](value T) Ratio {
	return Ratio{value: newDecimal(value)}
}

var one = R(1)

func (r Ratio) Equal(q Ratio) bool              { return r.value.Equal(q.value) }
func (r Ratio) IsZero() bool                    { return r.value.IsZero() }
func (r Ratio) IsNegative() bool                { return r.value.IsNegative() }
func (r Ratio) IsPositive() bool                { return r.value.IsPositive() }
func (r Ratio) LessThan(q Ratio) bool           { return r.value.LessThan(q.value) }
func (r Ratio) LessThanOrEqual(q Ratio) bool    { return r.value.LessThanOrEqual(q.value) }
func (r Ratio) GreaterThan(q Ratio) bool        { return r.value.GreaterThan(q.value) }
func (r Ratio) GreaterThanOrEqual(q Ratio) bool { return r.value.GreaterThanOrEqual(q.value) }
func (r Ratio) Add(q Ratio) Ratio               { return Ratio{value: r.value.Add(q.value)} }
func (r Ratio) Sub(q Ratio) Ratio               { return Ratio{value: r.value.Sub(q.value)} }
func (r Ratio) Mul(q Ratio) Ratio               { return Ratio{value: r.value.Mul(q.value)} }
func (r Ratio) Float() float64                  { return r.value.InexactFloat64() }
func (r Ratio) String() string                  { return r.value.String() }

// Percent converts the ratio to a percentage, 0.25 gives 25%.
func (r Ratio) Percent() Percent {
	return Percent(r.value.Shift(2).InexactFloat64())
}

// MarshalJSON encodes the ratio as a plain JSON number.
func (r Ratio) MarshalJSON() ([]byte, error) {
	return []byte(r.value.String()), nil
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	return r.value.UnmarshalJSON(b)
}

package sales

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrUndefinedStatistic is returned when a mean or standard deviation is
// requested over an empty sequence. Callers must guarantee at least one
// element; a silent zero would be indistinguishable from a real
// zero-valued statistic.
var ErrUndefinedStatistic = errors.New("statistic undefined over empty sequence")

// ErrInvalidArgument is returned for malformed query parameters, such as
// a negative ranking limit or an unparseable date.
var ErrInvalidArgument = errors.New("invalid argument")

// Mean returns the arithmetic mean of xs
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrUndefinedStatistic
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), nil
}

// PopStdDev returns the population standard deviation of xs:
// sqrt(sum((x-mean)^2) / N), dividing by the full count N, not N-1.
func PopStdDev(xs []float64) (float64, error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs))), nil
}

// Round2 rounds half-up to two decimal places
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}

// Percentage returns round2(100 * count / total)
func Percentage(count, total int) (float64, error) {
	if total == 0 {
		return 0, ErrUndefinedStatistic
	}
	return Round2(100 * float64(count) / float64(total)), nil
}

// MeanDecimal returns the arithmetic mean of exact decimal values.
// Used for money, where binary-float error is not acceptable.
func MeanDecimal(xs []decimal.Decimal) (decimal.Decimal, error) {
	if len(xs) == 0 {
		return decimal.Zero, ErrUndefinedStatistic
	}
	sum := decimal.Zero
	for _, x := range xs {
		sum = sum.Add(x)
	}
	return sum.Div(decimal.NewFromInt(int64(len(xs)))), nil
}

// Round2Decimal rounds an exact decimal half-up to two decimal places
func Round2Decimal(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

package export

import (
	"math"
	"strconv"

	"github.com/san-kum/nucviz/internal/figure"
)

// niceStep rounds span/n to 1, 2, 2.5 or 5 times a power of ten.
func niceStep(span float64, n int) float64 {
	raw := span / float64(n)
	exp := math.Floor(math.Log10(raw))
	base := math.Pow(10, exp)
	frac := raw / base
	var nice float64
	switch {
	case frac <= 1:
		nice = 1
	case frac <= 2:
		nice = 2
	case frac <= 2.5:
		nice = 2.5
	case frac <= 5:
		nice = 5
	default:
		nice = 10
	}
	return nice * base
}

// Ticks returns major tick positions inside r, about n of them, and the
// step between them.
func Ticks(r figure.Range, n int) ([]float64, float64) {
	if n < 1 || r.Span() <= 0 || math.IsInf(r.Span(), 0) {
		return []float64{r.Min}, 0
	}
	step := niceStep(r.Span(), n)
	start := math.Ceil(r.Min/step-1e-9) * step
	var out []float64
	for k := 0; ; k++ {
		v := start + float64(k)*step
		if v > r.Max+step*1e-9 {
			break
		}
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		out = append(out, v)
	}
	return out, step
}

// MinorTicks subdivides major steps into 5 when the step mantissa is 1 or 5,
// otherwise into 4, skipping positions that coincide with major ticks.
func MinorTicks(r figure.Range, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	mant := step / math.Pow(10, math.Floor(math.Log10(step)))
	div := 4.0
	if math.Abs(mant-1) < 1e-9 || math.Abs(mant-5) < 1e-9 {
		div = 5
	}
	minor := step / div
	var out []float64
	for k := math.Ceil(r.Min/minor - 1e-9); ; k++ {
		v := k * minor
		if v > r.Max+minor*1e-9 {
			break
		}
		if math.Mod(math.Round(k), div) == 0 {
			continue
		}
		out = append(out, v)
	}
	return out
}

// FormatTick prints v with just enough decimals to resolve step.
func FormatTick(v, step float64) string {
	decimals := 0
	for decimals < 10 {
		s := step * math.Pow(10, float64(decimals))
		if math.Abs(s-math.Round(s)) < 1e-9 {
			break
		}
		decimals++
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

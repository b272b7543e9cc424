package stats

import (
	"encoding/json"
	"strconv"

	"github.com/footystats/afl-dashboard/pkg/data"
	gonumstat "gonum.org/v1/gonum/stat"
)

// NoDataPlaceholder is shown instead of a number for averages over zero games.
const NoDataPlaceholder = "n/a"

// Average is a mean together with the number of values it was computed from.
// Zero samples is the "no data" state; its Value is always 0, never NaN.
type Average struct {
	Value   float64
	Samples int
}

func (a Average) Valid() bool {
	return a.Samples > 0
}

// OrZero returns the mean, or 0 when there is no data.
func (a Average) OrZero() float64 {
	if !a.Valid() {
		return 0
	}
	return a.Value
}

func (a Average) String() string {
	if !a.Valid() {
		return NoDataPlaceholder
	}
	return strconv.FormatFloat(a.Value, 'f', 1, 64)
}

type averageJSON struct {
	Value   *float64 `json:"value"`
	Samples int      `json:"samples"`
}

func (a Average) MarshalJSON() ([]byte, error) {
	out := averageJSON{Samples: a.Samples}
	if a.Valid() {
		out.Value = &a.Value
	}
	return json.Marshal(out)
}

func (a *Average) UnmarshalJSON(b []byte) error {
	var in averageJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*a = Average{Samples: in.Samples}
	if in.Value != nil && in.Samples > 0 {
		a.Value = *in.Value
	}
	return nil
}

func mean(values []float64) Average {
	if len(values) == 0 {
		return Average{}
	}
	return Average{Value: gonumstat.Mean(values, nil), Samples: len(values)}
}

// Aggregator accumulates values one at a time, for grouping where the values
// of each group are not contiguous.
type Aggregator struct {
	sum     float64
	samples int
}

func (a *Aggregator) Add(value float64) *Aggregator {
	a.sum += value
	a.samples++
	return a
}

func (a Aggregator) Average() Average {
	if a.samples == 0 {
		return Average{}
	}
	return Average{Value: a.sum / float64(a.samples), Samples: a.samples}
}

// statValues returns the non-missing values of stat in rows, in row order.
func statValues(rows []data.Row, stat data.Stat) []float64 {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		if v, ok := row.Stat(stat); ok {
			values = append(values, v)
		}
	}
	return values
}

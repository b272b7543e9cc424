package stats

import "github.com/footystats/afl-dashboard/pkg/data"

// Groups holds the mean of a stat per category value. Keys are in order of
// first appearance in the rows.
type Groups struct {
	Keys  []string
	Means map[string]Average
}

// GroupedMean groups rows by the category column and averages stat within
// each group. Rows with an empty category value are left out, and values
// never seen in rows have no entry.
func GroupedMean(rows []data.Row, stat data.Stat, category data.Category) Groups {
	groups := Groups{Means: map[string]Average{}}
	aggrs := map[string]*Aggregator{}
	for _, row := range rows {
		key := row.Category(category)
		if key == "" {
			continue
		}
		aggr, ok := aggrs[key]
		if !ok {
			aggr = &Aggregator{}
			aggrs[key] = aggr
			groups.Keys = append(groups.Keys, key)
		}
		if v, ok := row.Stat(stat); ok {
			aggr.Add(v)
		}
	}
	for key, aggr := range aggrs {
		groups.Means[key] = aggr.Average()
	}
	return groups
}

func (g Groups) Get(key string) (Average, bool) {
	avg, ok := g.Means[key]
	return avg, ok
}

// Lookup returns the group mean, defaulting to 0 for unknown keys and groups
// without any values.
func (g Groups) Lookup(key string) float64 {
	return g.Means[key].OrZero()
}

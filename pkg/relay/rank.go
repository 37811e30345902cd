package relay

import (
	"fmt"
	"math"
	"sort"
)

// TopN is the size of the emitted shortlist.
const TopN = 20

// Ranked is one output row: a scored candidate ready for rendering.
type Ranked struct {
	URL     string  `json:"url" yaml:"url"`
	Scoring Scoring `json:"scoring" yaml:"scoring"`
}

// Rank orders candidates by score descending and truncates to TopN.
// Equal scores fall back to URL order so identical input always
// produces identical output. A NaN score cannot be totally ordered and
// fails the whole run rather than landing at an arbitrary position.
func Rank(list []Ranked) ([]Ranked, error) {
	for _, r := range list {
		if math.IsNaN(r.Scoring.Score) {
			return nil, fmt.Errorf("score for %s is not a number", r.URL)
		}
	}

	sort.Slice(list, func(i, j int) bool {
		if list[i].Scoring.Score != list[j].Scoring.Score {
			return list[i].Scoring.Score > list[j].Scoring.Score
		}
		return list[i].URL < list[j].URL
	})

	if len(list) > TopN {
		list = list[:TopN]
	}
	return list, nil
}

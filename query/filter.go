package query

import (
	"sort"
	"strings"
	"time"

	"github.com/transitkit/rail12306/codec"
)

// Journey is the view of a decoded result the filter/sort pipeline
// needs. Both direct tickets and transfer itineraries implement it;
// for itineraries the feature list is the first leg's.
type Journey interface {
	TrainCode() string
	FeatureList() []string
	StartInstant() time.Time
	ArriveInstant() time.Time
	TotalMinutes() int
}

func hasFeature(j Journey, name string) bool {
	for _, f := range j.FeatureList() {
		if f == name {
			return true
		}
	}
	return false
}

// trainFilters maps each filter flag to its category predicate.
var trainFilters = map[rune]func(Journey) bool{
	'G': func(j Journey) bool {
		return strings.HasPrefix(j.TrainCode(), "G") || strings.HasPrefix(j.TrainCode(), "C")
	},
	'D': func(j Journey) bool { return strings.HasPrefix(j.TrainCode(), "D") },
	'Z': func(j Journey) bool { return strings.HasPrefix(j.TrainCode(), "Z") },
	'T': func(j Journey) bool { return strings.HasPrefix(j.TrainCode(), "T") },
	'K': func(j Journey) bool { return strings.HasPrefix(j.TrainCode(), "K") },
	'O': func(j Journey) bool {
		code := j.TrainCode()
		for _, prefix := range []string{"G", "D", "Z", "T", "K"} {
			if strings.HasPrefix(code, prefix) {
				return false
			}
		}
		return true
	},
	'F': func(j Journey) bool { return hasFeature(j, codec.FeatureFuxing) },
	'S': func(j Journey) bool { return hasFeature(j, codec.FeatureIntelligentEMU) },
}

// Pipeline applies the shared filter/sort/limit steps. Filtering is
// OR-across-flags; unknown flags match nothing. Only one sort key is
// honored, an unknown key performs no sort, and reverse applies only
// to a sorted result. limit <= 0 means unlimited.
func Pipeline[T Journey](items []T, filterFlags, sortFlag string, reverse bool, limit int) []T {
	result := items
	if filterFlags != "" {
		result = make([]T, 0, len(items))
		for _, item := range items {
			for _, flag := range filterFlags {
				if pred, ok := trainFilters[flag]; ok && pred(item) {
					result = append(result, item)
					break
				}
			}
		}
	}

	var less func(a, b T) bool
	switch sortFlag {
	case "startTime":
		less = func(a, b T) bool { return a.StartInstant().Before(b.StartInstant()) }
	case "arriveTime":
		less = func(a, b T) bool { return a.ArriveInstant().Before(b.ArriveInstant()) }
	case "duration":
		less = func(a, b T) bool { return a.TotalMinutes() < b.TotalMinutes() }
	}
	if less != nil {
		sorted := make([]T, len(result))
		copy(sorted, result)
		sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
		if reverse {
			for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
		result = sorted
	}

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

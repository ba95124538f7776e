package codec

import "strings"

// ExtractFeatures decodes the #-delimited dw_flag blob into named
// train features. Each positional check below replicates an upstream
// convention whose semantics are only known from observed traffic;
// the position/sentinel pairs are a fixed contract. Checks are
// independent, absent positions are skipped.
func ExtractFeatures(dwFlag string) []string {
	fields := strings.Split(dwFlag, "#")
	var features []string

	if fields[0] == "5" {
		features = append(features, FeatureIntelligentEMU)
	}
	if len(fields) > 1 && fields[1] == "1" {
		features = append(features, FeatureFuxing)
	}
	if len(fields) > 2 {
		switch {
		case strings.HasPrefix(fields[2], "Q"):
			features = append(features, FeatureQuietCar)
		case strings.HasPrefix(fields[2], "R"):
			features = append(features, FeatureComfortMovingSleeper)
		}
	}
	if len(fields) > 5 && fields[5] == "D" {
		features = append(features, FeatureDynamic)
	}
	if len(fields) > 6 && fields[6] != "z" {
		features = append(features, FeatureSeatSelection)
	}
	if len(fields) > 7 && fields[7] != "z" {
		features = append(features, FeatureSeniorDiscount)
	}
	return features
}

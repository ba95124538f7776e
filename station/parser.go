package station

import (
	"fmt"
	"regexp"
	"strings"
)

// stationFieldsPerRecord is the positional group size of the blob:
// station_id, station_name, station_code, station_pinyin,
// station_short, station_index, code, city, r1, r2.
const stationFieldsPerRecord = 10

var stationAssignment = regexp.MustCompile(`var station_names\s*=\s*'(.*?)';`)

// ExtractBlob pulls the quoted station blob out of the station_name.js
// snippet. Fails when the expected assignment is missing.
func ExtractBlob(js string) (string, error) {
	m := stationAssignment.FindStringSubmatch(js)
	if m == nil {
		return "", fmt.Errorf("station table: could not find station data in JS file")
	}
	return m[1], nil
}

// ParseBlob splits the blob into fixed-size groups of ten fields and
// maps each group onto the station schema, in blob order. A trailing
// incomplete group is dropped, as are groups without a telecode.
// Duplicate telecodes are kept here; the directory resolves them
// last-write-wins while preserving first-insertion order.
func ParseBlob(raw string) []Station {
	fields := strings.Split(raw, "|")
	var stations []Station
	for i := 0; i+stationFieldsPerRecord <= len(fields); i += stationFieldsPerRecord {
		g := fields[i : i+stationFieldsPerRecord]
		s := Station{
			ID:       g[0],
			Name:     g[1],
			Telecode: g[2],
			Pinyin:   g[3],
			Short:    g[4],
			Index:    g[5],
			CityCode: g[6],
			City:     g[7],
			R1:       g[8],
			R2:       g[9],
		}
		if s.Telecode != "" {
			stations = append(stations, s)
		}
	}
	return stations
}

package station

import "errors"

// ErrNotFound reports an unknown city, station name, or telecode.
var ErrNotFound = errors.New("station not found")

// Station is one record of the station table. JSON tags follow the
// upstream field names so tool responses stay wire-compatible.
type Station struct {
	ID       string `json:"station_id"`
	Name     string `json:"station_name"`
	Telecode string `json:"station_code"`
	Pinyin   string `json:"station_pinyin"`
	Short    string `json:"station_short"`
	Index    string `json:"station_index"`
	CityCode string `json:"code"`
	City     string `json:"city"`
	R1       string `json:"r1"`
	R2       string `json:"r2"`
}

// CodeName is the {telecode, display name} pair returned by the
// lookup operations.
type CodeName struct {
	StationCode string `json:"station_code"`
	StationName string `json:"station_name"`
}

// LookupResult is one entry of a batch lookup: either a resolved
// CodeName or a per-entry error. A miss never aborts the batch.
type LookupResult struct {
	StationCode string `json:"station_code,omitempty"`
	StationName string `json:"station_name,omitempty"`
	Error       string `json:"error,omitempty"`
}

// missingStations patches stations absent from the upstream feed.
// Never overwrites a telecode the feed already provides.
var missingStations = []Station{
	{
		ID:       "@cdd",
		Name:     "成都东",
		Telecode: "WEI",
		Pinyin:   "chengdudong",
		Short:    "cdd",
		CityCode: "1707",
		City:     "成都",
	},
}

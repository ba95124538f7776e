package codec

import (
	"strings"
	"time"
)

// seatShortCodes lists every per-class remaining-count field prefix
// present in a ticket record.
var seatShortCodes = []string{
	"swz", "tz", "zy", "ze", "gr", "srrb", "rw", "yw", "rz", "yz", "wz", "qt", "gg", "yb",
}

// TicketRecord is one pipe-delimited record mapped onto the
// positional field-name schema.
type TicketRecord map[string]string

// ParseTicketRecords splits each raw record on '|' and maps the
// positions onto ticketFieldNames. Records shorter than the schema
// simply leave the trailing fields empty.
func ParseTicketRecords(rawRecords []string) []TicketRecord {
	records := make([]TicketRecord, 0, len(rawRecords))
	for _, raw := range rawRecords {
		values := strings.Split(raw, "|")
		record := make(TicketRecord, len(ticketFieldNames))
		for i, name := range ticketFieldNames {
			if i < len(values) {
				record[name] = values[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}
	return records
}

// SeatCounts extracts the per-class remaining-count fields of a
// record, keyed by seat short code.
func (r TicketRecord) SeatCounts() map[string]string {
	counts := make(map[string]string, len(seatShortCodes))
	for _, short := range seatShortCodes {
		counts[short] = r[short+"_num"]
	}
	return counts
}

// TicketInfo is a fully decoded train offering from a direct query.
type TicketInfo struct {
	TrainNo        string      `json:"train_no"`
	StartTrainCode string      `json:"start_train_code"`
	StartDate      string      `json:"start_date"`
	ArriveDate     string      `json:"arrive_date"`
	StartTime      string      `json:"start_time"`
	ArriveTime     string      `json:"arrive_time"`
	Lishi          string      `json:"lishi"`
	FromStation    string      `json:"from_station"`
	ToStation      string      `json:"to_station"`
	FromTelecode   string      `json:"from_station_telecode"`
	ToTelecode     string      `json:"to_station_telecode"`
	Prices         []SeatPrice `json:"prices"`
	Features       []string    `json:"dw_flag"`
}

// ParseTicketInfo decodes records into TicketInfo, resolving telecodes
// to display names through stationNames (the response's data.map).
func ParseTicketInfo(records []TicketRecord, stationNames map[string]string) []TicketInfo {
	infos := make([]TicketInfo, 0, len(records))
	for _, r := range records {
		startDate, err := ParseCompactDate(r["start_train_date"])
		if err != nil {
			// A record without a readable date cannot yield sane
			// arrival arithmetic; skip it.
			continue
		}
		arrive := ArrivalDate(startDate, r["start_time"], r["lishi"])
		infos = append(infos, TicketInfo{
			TrainNo:        r["train_no"],
			StartTrainCode: r["station_train_code"],
			StartDate:      FormatDate(startDate),
			ArriveDate:     FormatDate(arrive),
			StartTime:      r["start_time"],
			ArriveTime:     r["arrive_time"],
			Lishi:          r["lishi"],
			FromStation:    stationNames[r["from_station_telecode"]],
			ToStation:      stationNames[r["to_station_telecode"]],
			FromTelecode:   r["from_station_telecode"],
			ToTelecode:     r["to_station_telecode"],
			Prices:         ExtractPrices(r["yp_info_new"], r["seat_discount_info"], r.SeatCounts()),
			Features:       ExtractFeatures(r["dw_flag"]),
		})
	}
	return infos
}

// Journey field accessors shared with the filter/sort pipeline.

func (t TicketInfo) TrainCode() string { return t.StartTrainCode }
func (t TicketInfo) FeatureList() []string { return t.Features }

func (t TicketInfo) StartInstant() time.Time {
	return clockInstant(t.StartDate, t.StartTime)
}

func (t TicketInfo) ArriveInstant() time.Time {
	return clockInstant(t.ArriveDate, t.ArriveTime)
}

func (t TicketInfo) TotalMinutes() int { return DurationMinutes(t.Lishi) }

func clockInstant(date, clock string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return time.Time{}
	}
	return t
}

package codec

import (
	"strings"
	"testing"
)

// sampleRecord builds a pipe record with the given positional fields
// set and everything else empty.
func sampleRecord(fields map[int]string) string {
	values := make([]string, len(ticketFieldNames))
	for i, v := range fields {
		values[i] = v
	}
	return strings.Join(values, "|")
}

func TestParseTicketRecords_PositionalContract(t *testing.T) {
	raw := sampleRecord(map[int]string{
		2:  "240000G10336",
		3:  "G103",
		8:  "06:20",
		9:  "12:38",
		10: "06:18",
		13: "20250601",
		30: "有",
		46: "5#1#z",
	})

	records := ParseTicketRecords([]string{raw})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]

	checks := map[string]string{
		"train_no":           "240000G10336",
		"station_train_code": "G103",
		"start_time":         "06:20",
		"arrive_time":        "12:38",
		"lishi":              "06:18",
		"start_train_date":   "20250601",
		"ze_num":             "有",
		"dw_flag":            "5#1#z",
	}
	for field, want := range checks {
		if got := r[field]; got != want {
			t.Errorf("%s: expected %q, got %q", field, want, got)
		}
	}
}

func TestParseTicketRecords_ShortRecord(t *testing.T) {
	records := ParseTicketRecords([]string{"a|b|trainno"})
	if got := records[0]["train_no"]; got != "trainno" {
		t.Errorf("expected trainno, got %q", got)
	}
	if got := records[0]["dw_flag"]; got != "" {
		t.Errorf("missing positions should be empty, got %q", got)
	}
}

func TestParseTicketInfo(t *testing.T) {
	raw := sampleRecord(map[int]string{
		2:  "240000G10336",
		3:  "G103",
		6:  "VNP",
		7:  "AOH",
		8:  "23:50",
		9:  "00:20",
		10: "00:30",
		13: "20250601",
		30: "13",
		39: "O005530000",
		46: "0#1",
	})
	names := map[string]string{"VNP": "北京南", "AOH": "上海虹桥"}

	infos := ParseTicketInfo(ParseTicketRecords([]string{raw}), names)
	if len(infos) != 1 {
		t.Fatalf("expected 1 info, got %d", len(infos))
	}
	info := infos[0]

	if info.FromStation != "北京南" || info.ToStation != "上海虹桥" {
		t.Errorf("station names not resolved: %q -> %q", info.FromStation, info.ToStation)
	}
	if info.StartDate != "2025-06-01" {
		t.Errorf("start date: got %q", info.StartDate)
	}
	if info.ArriveDate != "2025-06-02" {
		t.Errorf("arrival should roll past midnight, got %q", info.ArriveDate)
	}
	if len(info.Prices) != 1 || info.Prices[0].Num != "13" {
		t.Errorf("price entry should pick up ze_num count: %+v", info.Prices)
	}
	if len(info.Features) != 1 || info.Features[0] != FeatureFuxing {
		t.Errorf("expected Fuxing feature, got %v", info.Features)
	}
}

func TestParseTicketInfo_SkipsUnparsableDate(t *testing.T) {
	raw := sampleRecord(map[int]string{2: "X", 13: "junk"})
	infos := ParseTicketInfo(ParseTicketRecords([]string{raw}), nil)
	if len(infos) != 0 {
		t.Errorf("record with bad date should be skipped, got %d", len(infos))
	}
}

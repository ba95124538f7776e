package codec

import "time"

// RawTransferLeg is one train of a candidate transfer itinerary as
// returned by the lcQuery endpoint. Every upstream field is a string.
type RawTransferLeg struct {
	TrainNo             string `json:"train_no"`
	StationTrainCode    string `json:"station_train_code"`
	StartTrainDate      string `json:"start_train_date"`
	StartTime           string `json:"start_time"`
	ArriveTime          string `json:"arrive_time"`
	Lishi               string `json:"lishi"`
	FromStationName     string `json:"from_station_name"`
	ToStationName       string `json:"to_station_name"`
	FromStationTelecode string `json:"from_station_telecode"`
	ToStationTelecode   string `json:"to_station_telecode"`
	YpInfo              string `json:"yp_info"`
	SeatDiscountInfo    string `json:"seat_discount_info"`
	DwFlag              string `json:"dw_flag"`

	GgNum   string `json:"gg_num"`
	GrNum   string `json:"gr_num"`
	QtNum   string `json:"qt_num"`
	RwNum   string `json:"rw_num"`
	RzNum   string `json:"rz_num"`
	TzNum   string `json:"tz_num"`
	WzNum   string `json:"wz_num"`
	YbNum   string `json:"yb_num"`
	YwNum   string `json:"yw_num"`
	YzNum   string `json:"yz_num"`
	ZeNum   string `json:"ze_num"`
	ZyNum   string `json:"zy_num"`
	SwzNum  string `json:"swz_num"`
	SrrbNum string `json:"srrb_num"`
}

// SeatCounts returns the leg's remaining-count fields keyed by seat
// short code, mirroring TicketRecord.SeatCounts.
func (l RawTransferLeg) SeatCounts() map[string]string {
	return map[string]string{
		"gg": l.GgNum, "gr": l.GrNum, "qt": l.QtNum, "rw": l.RwNum,
		"rz": l.RzNum, "tz": l.TzNum, "wz": l.WzNum, "yb": l.YbNum,
		"yw": l.YwNum, "yz": l.YzNum, "ze": l.ZeNum, "zy": l.ZyNum,
		"swz": l.SwzNum, "srrb": l.SrrbNum,
	}
}

// RawTransfer is one candidate itinerary from data.middleList.
type RawTransfer struct {
	AllLishi          string           `json:"all_lishi"`
	StartTime         string           `json:"start_time"`
	TrainDate         string           `json:"train_date"`
	MiddleDate        string           `json:"middle_date"`
	ArriveDate        string           `json:"arrive_date"`
	ArriveTime        string           `json:"arrive_time"`
	FromStationCode   string           `json:"from_station_code"`
	FromStationName   string           `json:"from_station_name"`
	MiddleStationCode string           `json:"middle_station_code"`
	MiddleStationName string           `json:"middle_station_name"`
	EndStationCode    string           `json:"end_station_code"`
	EndStationName    string           `json:"end_station_name"`
	FirstTrainNo      string           `json:"first_train_no"`
	SecondTrainNo     string           `json:"second_train_no"`
	TrainCount        string           `json:"train_count"`
	FullList          []RawTransferLeg `json:"fullList"`
	SameStation       string           `json:"same_station"`
	SameTrain         string           `json:"same_train"`
	WaitTime          string           `json:"wait_time"`
}

// TransferInfo is a decoded transfer itinerary: a pair of legs joined
// at a middle station plus transfer metadata.
type TransferInfo struct {
	Lishi             string       `json:"lishi"`
	StartTime         string       `json:"start_time"`
	StartDate         string       `json:"start_date"`
	MiddleDate        string       `json:"middle_date"`
	ArriveDate        string       `json:"arrive_date"`
	ArriveTime        string       `json:"arrive_time"`
	FromStationCode   string       `json:"from_station_code"`
	FromStationName   string       `json:"from_station_name"`
	MiddleStationCode string       `json:"middle_station_code"`
	MiddleStationName string       `json:"middle_station_name"`
	EndStationCode    string       `json:"end_station_code"`
	EndStationName    string       `json:"end_station_name"`
	StartTrainCode    string       `json:"start_train_code"`
	FirstTrainNo      string       `json:"first_train_no"`
	SecondTrainNo     string       `json:"second_train_no"`
	TrainCount        string       `json:"train_count"`
	TicketList        []TicketInfo `json:"ticketList"`
	SameStation       bool         `json:"same_station"`
	SameTrain         bool         `json:"same_train"`
	WaitTime          string       `json:"wait_time"`
}

// ParseTransferLegs decodes the trains of one itinerary. Transfer legs
// carry their prices in yp_info (direct queries use yp_info_new) and
// already name their stations, so no telecode map is needed.
func ParseTransferLegs(legs []RawTransferLeg) []TicketInfo {
	infos := make([]TicketInfo, 0, len(legs))
	for _, leg := range legs {
		startDate, err := ParseCompactDate(leg.StartTrainDate)
		if err != nil {
			continue
		}
		arrive := ArrivalDate(startDate, leg.StartTime, leg.Lishi)
		infos = append(infos, TicketInfo{
			TrainNo:        leg.TrainNo,
			StartTrainCode: leg.StationTrainCode,
			StartDate:      FormatDate(startDate),
			ArriveDate:     FormatDate(arrive),
			StartTime:      leg.StartTime,
			ArriveTime:     leg.ArriveTime,
			Lishi:          leg.Lishi,
			FromStation:    leg.FromStationName,
			ToStation:      leg.ToStationName,
			FromTelecode:   leg.FromStationTelecode,
			ToTelecode:     leg.ToStationTelecode,
			Prices:         ExtractPrices(leg.YpInfo, leg.SeatDiscountInfo, leg.SeatCounts()),
			Features:       ExtractFeatures(leg.DwFlag),
		})
	}
	return infos
}

// ParseTransfers decodes candidate itineraries into TransferInfo.
func ParseTransfers(raw []RawTransfer) []TransferInfo {
	infos := make([]TransferInfo, 0, len(raw))
	for _, r := range raw {
		info := TransferInfo{
			Lishi:             ExtractLishi(r.AllLishi),
			StartTime:         r.StartTime,
			StartDate:         r.TrainDate,
			MiddleDate:        r.MiddleDate,
			ArriveDate:        r.ArriveDate,
			ArriveTime:        r.ArriveTime,
			FromStationCode:   r.FromStationCode,
			FromStationName:   r.FromStationName,
			MiddleStationCode: r.MiddleStationCode,
			MiddleStationName: r.MiddleStationName,
			EndStationCode:    r.EndStationCode,
			EndStationName:    r.EndStationName,
			FirstTrainNo:      r.FirstTrainNo,
			SecondTrainNo:     r.SecondTrainNo,
			TrainCount:        r.TrainCount,
			TicketList:        ParseTransferLegs(r.FullList),
			SameStation:       r.SameStation == "0",
			SameTrain:         r.SameTrain == "Y",
			WaitTime:          r.WaitTime,
		}
		if len(info.TicketList) > 0 {
			info.StartTrainCode = info.TicketList[0].StartTrainCode
		}
		infos = append(infos, info)
	}
	return infos
}

// Journey field accessors shared with the filter/sort pipeline. The
// feature-based categories inspect the first leg, not the itinerary.

func (t TransferInfo) TrainCode() string { return t.StartTrainCode }

func (t TransferInfo) FeatureList() []string {
	if len(t.TicketList) == 0 {
		return nil
	}
	return t.TicketList[0].Features
}

func (t TransferInfo) StartInstant() time.Time {
	return clockInstant(t.StartDate, t.StartTime)
}

func (t TransferInfo) ArriveInstant() time.Time {
	return clockInstant(t.ArriveDate, t.ArriveTime)
}

func (t TransferInfo) TotalMinutes() int { return DurationMinutes(t.Lishi) }

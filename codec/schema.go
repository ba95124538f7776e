package codec

// ticketFieldNames is the positional field order of one pipe-delimited
// record in the leftTicket query response. The order is an upstream
// contract: reordering entries breaks decoding silently. Unnamed
// positions keep their numeric placeholders.
var ticketFieldNames = []string{
	"secret_Sstr", "button_text_info", "train_no", "station_train_code", "start_station_telecode",
	"end_station_telecode", "from_station_telecode", "to_station_telecode", "start_time", "arrive_time",
	"lishi", "canWebBuy", "yp_info", "start_train_date", "train_seat_feature",
	"location_code", "from_station_no", "to_station_no", "is_support_card", "controlled_train_flag",
	"gg_num", "gr_num", "qt_num", "rw_num", "rz_num",
	"tz_num", "wz_num", "yb_num", "yw_num", "yz_num",
	"ze_num", "zy_num", "swz_num", "srrb_num", "yp_ex",
	"seat_types", "exchange_train_flag", "houbu_train_flag", "houbu_seat_limit", "yp_info_new",
	"40", "41", "42", "43", "44",
	"45", "dw_flag", "47", "stopcheckTime", "country_flag",
	"local_arrive_time", "local_start_time", "52", "bed_level_info", "seat_discount_info",
	"sale_time", "56",
}

// SeatType is one entry of the fixed seat-class code table.
type SeatType struct {
	Name  string
	Short string
}

// Sentinel seat-type codes used when a price chunk cannot be
// classified by its own first character.
const (
	seatCodeStanding = "W"
	seatCodeOther    = "H"
)

// seatTypes maps the one-letter seat-type code found in price chunks
// to its display name and short code.
var seatTypes = map[string]SeatType{
	"9":  {Name: "Business Class Seat", Short: "swz"},
	"P":  {Name: "Premium Seat", Short: "tz"},
	"M":  {Name: "First Class Seat", Short: "zy"},
	"D":  {Name: "Preferred First Class Seat", Short: "zy"},
	"O":  {Name: "Second Class Seat", Short: "ze"},
	"S":  {Name: "Second Class Private Seat", Short: "ze"},
	"6":  {Name: "Deluxe Soft Sleeper", Short: "gr"},
	"A":  {Name: "Premium Moving Sleeper", Short: "gr"},
	"4":  {Name: "Soft Sleeper", Short: "rw"},
	"I":  {Name: "First-Class Sleeper", Short: "rw"},
	"F":  {Name: "Moving Sleeper", Short: "rw"},
	"3":  {Name: "Hard Sleeper", Short: "yw"},
	"J":  {Name: "Second-Class Sleeper", Short: "yw"},
	"2":  {Name: "Soft Seat", Short: "rz"},
	"1":  {Name: "Hard Seat", Short: "yz"},
	"W":  {Name: "Standing", Short: "wz"},
	"WZ": {Name: "Standing", Short: "wz"},
	"H":  {Name: "Other", Short: "qt"},
}

// Decoded train feature names, in upstream flag-position order.
const (
	FeatureIntelligentEMU       = "Intelligent EMU"
	FeatureFuxing               = "Fuxing"
	FeatureQuietCar             = "Quiet Car"
	FeatureComfortMovingSleeper = "Comfort Moving Sleeper"
	FeatureDynamic              = "Dynamic"
	FeatureSeatSelection        = "Seat Selection Supported"
	FeatureSeniorDiscount       = "Senior Discount"
)

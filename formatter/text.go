package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/transitkit/rail12306/codec"
)

// Tickets renders direct-train results as one block per train with a
// seat line per price entry.
func Tickets(tickets []codec.TicketInfo) string {
	if len(tickets) == 0 {
		return "No related train information found"
	}
	var b strings.Builder
	b.WriteString("Train | Departure -> Arrival | Departure -> Arrival Time | Duration\n")
	for _, t := range tickets {
		fmt.Fprintf(&b, "%s(actual train_no: %s) %s(telecode: %s) -> %s(telecode: %s) %s -> %s Duration: %s",
			t.StartTrainCode, t.TrainNo,
			t.FromStation, t.FromTelecode,
			t.ToStation, t.ToTelecode,
			t.StartTime, t.ArriveTime, t.Lishi)
		for _, p := range t.Prices {
			fmt.Fprintf(&b, "\n- %s: %s ¥%s", p.SeatName, TicketStatus(p.Num), formatPrice(p.Price))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Transfers renders transfer itineraries, each followed by its leg
// block indented one tab stop.
func Transfers(transfers []codec.TransferInfo) string {
	if len(transfers) == 0 {
		return "No related transfer train information found"
	}
	var b strings.Builder
	b.WriteString("Departure -> Arrival Time | Origin -> Transfer -> Destination | Transfer Type | Waiting Time | Total Duration\n\n")
	for _, info := range transfers {
		fmt.Fprintf(&b, "%s %s -> %s %s | ", info.StartDate, info.StartTime, info.ArriveDate, info.ArriveTime)
		fmt.Fprintf(&b, "%s -> %s -> %s | ", info.FromStationName, info.MiddleStationName, info.EndStationName)
		fmt.Fprintf(&b, "%s | %s | %s\n\n", transferKind(info), info.WaitTime, info.Lishi)
		b.WriteString("\t" + strings.ReplaceAll(Tickets(info.TicketList), "\n", "\n\t") + "\n")
	}
	return b.String()
}

func transferKind(info codec.TransferInfo) string {
	switch {
	case info.SameTrain:
		return "Same-train transfer"
	case info.SameStation:
		return "Same-station transfer"
	default:
		return "Inter-station transfer"
	}
}

// formatPrice drops trailing zeros so whole-yuan fares print without a
// decimal point.
func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

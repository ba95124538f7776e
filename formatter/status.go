package formatter

import (
	"fmt"
	"regexp"
	"strconv"
)

var numericStatus = regexp.MustCompile(`^\d+$`)

// TicketStatus turns a raw availability marker into readable wording.
// Markers arrive either as a plain count or as one of a small set of
// Chinese status words.
func TicketStatus(num string) string {
	if numericStatus.MatchString(num) {
		count, _ := strconv.Atoi(num)
		if count == 0 {
			return "No tickets"
		}
		return fmt.Sprintf("%d ticket(s) remaining", count)
	}
	switch num {
	case "有", "充足":
		return "Tickets available"
	case "无", "--", "":
		return "No tickets"
	case "候补":
		return "No tickets, waitlist required"
	default:
		return fmt.Sprintf("%s ticket(s)", num)
	}
}

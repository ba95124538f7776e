package codec

import "strconv"

const (
	priceChunkLen    = 10
	discountChunkLen = 5

	// A price chunk whose trailing 4-digit count reaches this value
	// is a standing ticket regardless of its seat-type character.
	standingCountFloor = 3000
)

// SeatPrice is one decoded seat-class entry of a train's price blob.
type SeatPrice struct {
	SeatName     string  `json:"seat_name"`
	Short        string  `json:"short"`
	SeatTypeCode string  `json:"seat_type_code"`
	Num          string  `json:"num"`
	Price        float64 `json:"price"`
	Discount     *int    `json:"discount,omitempty"`
}

// ExtractPrices decodes the fixed-width price blob (10-char chunks)
// cross-referenced with the discount blob (5-char chunks) and the
// per-class remaining-seat counts keyed by seat short code.
func ExtractPrices(ypInfo, seatDiscountInfo string, seatCounts map[string]string) []SeatPrice {
	discounts := make(map[string]int)
	for i := 0; i+discountChunkLen <= len(seatDiscountInfo); i += discountChunkLen {
		chunk := seatDiscountInfo[i : i+discountChunkLen]
		pct, err := strconv.Atoi(chunk[1:])
		if err != nil {
			continue
		}
		discounts[chunk[:1]] = pct
	}

	var prices []SeatPrice
	for i := 0; i+priceChunkLen <= len(ypInfo); i += priceChunkLen {
		chunk := ypInfo[i : i+priceChunkLen]

		code := chunk[:1]
		if count, err := strconv.Atoi(chunk[6:10]); err == nil && count >= standingCountFloor {
			code = seatCodeStanding
		} else if _, known := seatTypes[code]; !known {
			code = seatCodeOther
		}
		seatType := seatTypes[code]

		tenths, _ := strconv.Atoi(chunk[1:6])
		entry := SeatPrice{
			SeatName:     seatType.Name,
			Short:        seatType.Short,
			SeatTypeCode: code,
			Num:          seatCounts[seatType.Short],
			Price:        float64(tenths) / 10,
		}
		if pct, ok := discounts[code]; ok {
			d := pct
			entry.Discount = &d
		}
		prices = append(prices, entry)
	}
	return prices
}

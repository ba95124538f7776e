package query

import (
	"context"
	"fmt"
	"net/url"

	"github.com/transitkit/rail12306/codec"
)

const leftTicketPath = "/otn/leftTicket/query"

// TicketQuery is one direct-availability request.
type TicketQuery struct {
	Date        string // yyyy-MM-dd
	FromStation string // telecode
	ToStation   string // telecode
	FilterFlags string // subset of GDZTKOFS, empty for no filter
	SortFlag    string // startTime|arriveTime|duration, empty for none
	SortReverse bool
	Limit       int // <= 0 for unlimited
}

type leftTicketResponse struct {
	Data *struct {
		Result []string          `json:"result"`
		Map    map[string]string `json:"map"`
	} `json:"data"`
}

// checkDateAndStations runs the shared direct/transfer validations in
// order: past-date first, then station resolution. Both fire before
// any ticket request goes out.
func (s *Service) checkDateAndStations(ctx context.Context, date, from, to string) error {
	if !codec.DateNotBefore(date, s.now()) {
		return ErrPastDate
	}
	for _, code := range []string{from, to} {
		ok, err := s.stations.Has(ctx, code)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%q: %w", code, ErrStationNotFound)
		}
	}
	return nil
}

// Tickets runs a direct-ticket query and returns the decoded,
// filtered result.
func (s *Service) Tickets(ctx context.Context, q TicketQuery) ([]codec.TicketInfo, error) {
	if err := s.checkDateAndStations(ctx, q.Date, q.FromStation, q.ToStation); err != nil {
		return nil, err
	}
	if err := s.api.PrimeSession(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"leftTicketDTO.train_date":   {q.Date},
		"leftTicketDTO.from_station": {q.FromStation},
		"leftTicketDTO.to_station":   {q.ToStation},
		"purpose_codes":              {"ADULT"},
	}
	var resp leftTicketResponse
	if err := s.api.GetJSON(ctx, leftTicketPath, params, &resp); err != nil {
		return nil, fmt.Errorf("get tickets data failed: %w", err)
	}
	if resp.Data == nil || resp.Data.Result == nil {
		return nil, fmt.Errorf("get tickets data failed: response missing data.result")
	}

	infos := codec.ParseTicketInfo(codec.ParseTicketRecords(resp.Data.Result), resp.Data.Map)
	return Pipeline(infos, q.FilterFlags, q.SortFlag, q.SortReverse, q.Limit), nil
}

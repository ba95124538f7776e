package query

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/transitkit/rail12306/codec"
)

// TransferQuery is one transfer-availability request.
type TransferQuery struct {
	Date          string // yyyy-MM-dd
	FromStation   string // telecode
	ToStation     string // telecode
	MiddleStation string // optional telecode, not validated against the directory
	ShowStanding  bool
	FilterFlags   string
	SortFlag      string
	SortReverse   bool
	Limit         int // <= 0 uses the configured default
}

// TransferOutcome is the tagged result of a transfer query: either a
// list of itineraries, or the service's own "no results" message when
// it answers with a bare-string payload.
type TransferOutcome struct {
	Itineraries []codec.TransferInfo
	Message     string
}

// NoResults reports whether the service declined with a message
// instead of itineraries.
func (o TransferOutcome) NoResults() bool { return o.Message != "" }

// flexIndex tolerates the result_index cursor arriving as either a
// JSON number or a string.
type flexIndex string

func (f *flexIndex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexIndex(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexIndex(n.String())
	return nil
}

type lcQueryResponse struct {
	Data     json.RawMessage `json:"data"`
	ErrorMsg string          `json:"errorMsg"`
}

type lcQueryData struct {
	MiddleList  []codec.RawTransfer `json:"middleList"`
	CanQuery    string              `json:"can_query"`
	ResultIndex flexIndex           `json:"result_index"`
}

// TransferTickets runs the paginated transfer query. Pages are fetched
// strictly in sequence, each carrying the cursor from the previous
// response, until the target count is reached, the service reports
// can_query == "N", a page comes back empty, or the page cap trips.
func (s *Service) TransferTickets(ctx context.Context, q TransferQuery) (TransferOutcome, error) {
	if err := s.checkDateAndStations(ctx, q.Date, q.FromStation, q.ToStation); err != nil {
		return TransferOutcome{}, err
	}
	if err := s.api.PrimeSession(ctx); err != nil {
		return TransferOutcome{}, err
	}
	searchPath, err := s.api.LCQueryPath(ctx)
	if err != nil {
		return TransferOutcome{}, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = s.defaultTransferLimit
	}
	showWZ := "N"
	if q.ShowStanding {
		showWZ = "Y"
	}

	var candidates []codec.RawTransfer
	cursor := "0"
	for page := 0; len(candidates) < limit && page < s.maxTransferPages; page++ {
		params := url.Values{
			"train_date":            {q.Date},
			"from_station_telecode": {q.FromStation},
			"to_station_telecode":   {q.ToStation},
			"middle_station":        {q.MiddleStation},
			"result_index":          {cursor},
			"can_query":             {"Y"},
			"isShowWZ":              {showWZ},
			"purpose_codes":         {"00"},
			"channel":               {"E"},
		}
		var resp lcQueryResponse
		if err := s.api.GetJSON(ctx, searchPath, params, &resp); err != nil {
			return TransferOutcome{}, fmt.Errorf("request interline tickets data failed: %w", err)
		}

		// A bare-string payload is the service's way of saying "no
		// tickets" - a terminal outcome, not an error.
		var msg string
		if err := json.Unmarshal(resp.Data, &msg); err == nil {
			return TransferOutcome{
				Message: fmt.Sprintf("Sorry, no relevant ticket availability was found. (%s)", resp.ErrorMsg),
			}, nil
		}

		var data lcQueryData
		if err := json.Unmarshal(resp.Data, &data); err != nil {
			return TransferOutcome{}, fmt.Errorf("request interline tickets data failed: malformed payload: %w", err)
		}
		candidates = append(candidates, data.MiddleList...)
		if data.CanQuery == "N" || len(data.MiddleList) == 0 {
			break
		}
		cursor = string(data.ResultIndex)
	}

	infos := codec.ParseTransfers(candidates)
	return TransferOutcome{
		Itineraries: Pipeline(infos, q.FilterFlags, q.SortFlag, q.SortReverse, limit),
	}, nil
}

package query

import (
	"context"
	"fmt"
	"net/url"

	"github.com/transitkit/rail12306/codec"
)

const routeStationsPath = "/otn/czxx/queryByTrainNo"

// RouteQuery asks for the stop list of one train between two
// telecodes on a given date.
type RouteQuery struct {
	TrainNo      string // actual train number, e.g. 240000G10336
	FromTelecode string
	ToTelecode   string
	DepartDate   string // yyyy-MM-dd
}

type routeResponse struct {
	Data *struct {
		Data []codec.RawRouteStop `json:"data"`
	} `json:"data"`
}

// RouteStations fetches and decodes a train's stop list. An empty
// list is a valid answer, reported as such rather than an error.
func (s *Service) RouteStations(ctx context.Context, q RouteQuery) ([]codec.RouteStop, error) {
	if err := s.api.PrimeSession(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"train_no":              {q.TrainNo},
		"from_station_telecode": {q.FromTelecode},
		"to_station_telecode":   {q.ToTelecode},
		"depart_date":           {q.DepartDate},
	}
	var resp routeResponse
	if err := s.api.GetJSON(ctx, routeStationsPath, params, &resp); err != nil {
		return nil, fmt.Errorf("get train route stations failed: %w", err)
	}
	if resp.Data == nil || resp.Data.Data == nil {
		return nil, fmt.Errorf("get train route stations failed: response missing data.data")
	}
	return codec.ParseRouteStops(resp.Data.Data), nil
}

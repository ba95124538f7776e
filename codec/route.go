package codec

import "strconv"

// RawRouteStop is one stop record from the queryByTrainNo endpoint.
type RawRouteStop struct {
	StationName  string `json:"station_name"`
	StartTime    string `json:"start_time"`
	ArriveTime   string `json:"arrive_time"`
	StopoverTime string `json:"stopover_time"`
	StationNo    string `json:"station_no"`
}

// RouteStop is one decoded stop along a train's run.
type RouteStop struct {
	ArriveTime   string `json:"arrive_time"`
	StationName  string `json:"station_name"`
	StopoverTime string `json:"stopover_time"`
	StationNo    int    `json:"station_no"`
}

// ParseRouteStops decodes the stop list. The origin has no true
// arrival, so the first stop reports its departure time as arrival.
func ParseRouteStops(raw []RawRouteStop) []RouteStop {
	stops := make([]RouteStop, 0, len(raw))
	for i, r := range raw {
		arrive := r.ArriveTime
		if i == 0 {
			arrive = r.StartTime
		}
		no, _ := strconv.Atoi(r.StationNo)
		stops = append(stops, RouteStop{
			ArriveTime:   arrive,
			StationName:  r.StationName,
			StopoverTime: r.StopoverTime,
			StationNo:    no,
		})
	}
	return stops
}

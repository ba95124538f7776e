package rail12306

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/go-playground/validator/v10"

	"github.com/transitkit/rail12306/formatter"
	"github.com/transitkit/rail12306/query"
)

// Result is the uniform envelope every tool operation answers with.
// Failures carry the operation's failure message joined with the
// underlying error; panics additionally carry the stack.
type Result struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	ErrorStack string `json:"error_stack,omitempty"`
}

// Toolkit exposes the query service as named tool operations.
type Toolkit struct {
	svc      *query.Service
	validate *validator.Validate
}

func NewToolkit(svc *query.Service) *Toolkit {
	return &Toolkit{
		svc:      svc,
		validate: validator.New(),
	}
}

// run executes one operation inside the envelope. A panic is reported
// as a failure with its stack instead of unwinding into the caller.
func (tk *Toolkit) run(successMsg, failMsg string, op func() (any, error)) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tool operation panicked: %v", r)
			res = Result{
				Success:    false,
				Message:    fmt.Sprintf("%s: %v", failMsg, r),
				ErrorStack: string(debug.Stack()),
			}
		}
	}()
	data, err := op()
	if err != nil {
		log.Printf("tool operation failed: %v", err)
		return Result{Success: false, Message: fmt.Sprintf("%s: %s", failMsg, err)}
	}
	return Result{Success: true, Message: successMsg, Data: data}
}

// StationsInCityRequest lists every station of one city.
type StationsInCityRequest struct {
	City string `json:"city" validate:"required"`
}

// CityCodesRequest resolves representative station codes for one or
// more cities, '|'-separated.
type CityCodesRequest struct {
	Cities string `json:"citys" validate:"required"`
}

// StationCodesRequest resolves station codes for one or more station
// names, '|'-separated.
type StationCodesRequest struct {
	StationNames string `json:"station_names" validate:"required"`
}

// StationByTelecodeRequest fetches one station record.
type StationByTelecodeRequest struct {
	Telecode string `json:"station_telecode" validate:"required,len=3"`
}

// TicketsRequest queries direct trains between two station codes.
type TicketsRequest struct {
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	FromStation      string `json:"from_station" validate:"required"`
	ToStation        string `json:"to_station" validate:"required"`
	TrainFilterFlags string `json:"train_filter_flags"`
	SortFlag         string `json:"sort_flag"`
	SortReverse      bool   `json:"sort_reverse"`
	LimitedNum       int    `json:"limited_num" validate:"gte=0"`
}

// InterlineTicketsRequest queries transfer itineraries.
type InterlineTicketsRequest struct {
	Date             string `json:"date" validate:"required,datetime=2006-01-02"`
	FromStation      string `json:"from_station" validate:"required"`
	ToStation        string `json:"to_station" validate:"required"`
	MiddleStation    string `json:"middle_station"`
	ShowWZ           bool   `json:"show_wz"`
	TrainFilterFlags string `json:"train_filter_flags"`
	SortFlag         string `json:"sort_flag"`
	SortReverse      bool   `json:"sort_reverse"`
	LimitedNum       int    `json:"limited_num" validate:"gte=0"`
}

// TrainRouteRequest lists the stops of one train run.
type TrainRouteRequest struct {
	TrainNo      string `json:"train_no" validate:"required"`
	FromTelecode string `json:"from_station_telecode" validate:"required"`
	ToTelecode   string `json:"to_station_telecode" validate:"required"`
	DepartDate   string `json:"depart_date" validate:"required,datetime=2006-01-02"`
}

// GetCurrentDate reports today's date in the UTC+8 reference used by
// the booking service, so callers can resolve relative dates.
func (tk *Toolkit) GetCurrentDate(ctx context.Context) Result {
	return tk.run("Successfully retrieved current date", "Failed to retrieve current date", func() (any, error) {
		return tk.svc.Today(), nil
	})
}

func (tk *Toolkit) GetStationsCodeInCity(ctx context.Context, req StationsInCityRequest) Result {
	return tk.run("Query successful", "Query failed", func() (any, error) {
		if err := tk.validate.Struct(req); err != nil {
			return nil, err
		}
		return tk.svc.Stations().StationsInCity(ctx, req.City)
	})
}

func (tk *Toolkit) GetStationCodeOfCitys(ctx context.Context, req CityCodesRequest) Result {
	return tk.run("Query successful", "Query failed", func() (any, error) {
		if err := tk.validate.Struct(req); err != nil {
			return nil, err
		}
		return tk.svc.Stations().CityCodes(ctx, req.Cities)
	})
}

func (tk *Toolkit) GetStationCodeByNames(ctx context.Context, req StationCodesRequest) Result {
	return tk.run("Query successful", "Query failed", func() (any, error) {
		if err := tk.validate.Struct(req); err != nil {
			return nil, err
		}
		return tk.svc.Stations().StationCodes(ctx, req.StationNames)
	})
}

func (tk *Toolkit) GetStationByTelecode(ctx context.Context, req StationByTelecodeRequest) Result {
	return tk.run("Query successful", "Query failed", func() (any, error) {
		if err := tk.validate.Struct(req); err != nil {
			return nil, err
		}
		st, err := tk.svc.Stations().ByTelecode(ctx, req.Telecode)
		if err != nil {
			return nil, err
		}
		return st, nil
	})
}

// GetTickets answers with the rendered availability table, not raw
// records.
func (tk *Toolkit) GetTickets(ctx context.Context, req TicketsRequest) Result {
	return tk.run("Successfully queried remaining tickets", "Failed to query remaining tickets", func() (any, error) {
		if err := tk.validate.Struct(req); err != nil {
			return nil, err
		}
		tickets, err := tk.svc.Tickets(ctx, query.TicketQuery{
			Date:        req.Date,
			FromStation: req.FromStation,
			ToStation:   req.ToStation,
			FilterFlags: req.TrainFilterFlags,
			SortFlag:    req.SortFlag,
			SortReverse: req.SortReverse,
			Limit:       req.LimitedNum,
		})
		if err != nil {
			return nil, err
		}
		return formatter.Tickets(tickets), nil
	})
}

func (tk *Toolkit) GetInterlineTickets(ctx context.Context, req InterlineTicketsRequest) Result {
	return tk.run("Successfully queried transfer tickets", "Failed to query transfer tickets", func() (any, error) {
		if err := tk.validate.Struct(req); err != nil {
			return nil, err
		}
		out, err := tk.svc.TransferTickets(ctx, query.TransferQuery{
			Date:          req.Date,
			FromStation:   req.FromStation,
			ToStation:     req.ToStation,
			MiddleStation: req.MiddleStation,
			ShowStanding:  req.ShowWZ,
			FilterFlags:   req.TrainFilterFlags,
			SortFlag:      req.SortFlag,
			SortReverse:   req.SortReverse,
			Limit:         req.LimitedNum,
		})
		if err != nil {
			return nil, err
		}
		if out.NoResults() {
			return out.Message, nil
		}
		return formatter.Transfers(out.Itineraries), nil
	})
}

// GetTrainRouteStations returns the decoded stop list, or a plain
// message when the run has no stops for the given leg.
func (tk *Toolkit) GetTrainRouteStations(ctx context.Context, req TrainRouteRequest) Result {
	return tk.run("Successfully queried route stops", "Failed to query route stops", func() (any, error) {
		if err := tk.validate.Struct(req); err != nil {
			return nil, err
		}
		stops, err := tk.svc.RouteStations(ctx, query.RouteQuery{
			TrainNo:      req.TrainNo,
			FromTelecode: req.FromTelecode,
			ToTelecode:   req.ToTelecode,
			DepartDate:   req.DepartDate,
		})
		if err != nil {
			return nil, err
		}
		if len(stops) == 0 {
			return "No related train information found.", nil
		}
		return stops, nil
	})
}

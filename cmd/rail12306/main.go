package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	lib "github.com/transitkit/rail12306"
	"github.com/transitkit/rail12306/config"
	"github.com/transitkit/rail12306/query"
	"github.com/transitkit/rail12306/railapi"
	"github.com/transitkit/rail12306/station"
)

func main() {
	mode := flag.String("mode", "tool", "tool|serve")
	tool := flag.String("tool", "get_current_date", "tool operation name")
	city := flag.String("city", "", "Chinese city name, e.g. 北京")
	citys := flag.String("citys", "", "city names separated by |")
	stationNames := flag.String("stationNames", "", "station names separated by |")
	telecode := flag.String("telecode", "", "station telecode, e.g. VNP")
	date := flag.String("date", "", "query date, yyyy-MM-dd")
	fromStation := flag.String("fromStation", "", "origin station_code")
	toStation := flag.String("toStation", "", "destination station_code")
	middleStation := flag.String("middleStation", "", "optional transfer station_code")
	showWZ := flag.Bool("showWZ", false, "include standing tickets in transfer queries")
	filterFlags := flag.String("filterFlags", "", "train filters, subset of GDZTKOFS")
	sortFlag := flag.String("sortFlag", "", "startTime|arriveTime|duration")
	sortReverse := flag.Bool("sortReverse", false, "reverse the sorted results")
	limit := flag.Int("limit", 0, "limit on returned records")
	trainNo := flag.String("trainNo", "", "actual train_no for route queries")
	flag.Parse()

	lib.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		panic(err)
	}
	cfg := config.Config

	api := railapi.NewClient(cfg.API)
	svc := query.NewService(api, station.NewDirectory(api), cfg.Query)
	tk := lib.NewToolkit(svc)

	if *mode == "serve" {
		lib.StartServer(tk, svc, cfg.Server)
		lib.HandleGracefulShutdown()
		return
	}

	ctx := context.Background()
	var res lib.Result
	switch *tool {
	case "get_current_date":
		res = tk.GetCurrentDate(ctx)
	case "get_stations_code_in_city":
		res = tk.GetStationsCodeInCity(ctx, lib.StationsInCityRequest{City: *city})
	case "get_station_code_of_citys":
		res = tk.GetStationCodeOfCitys(ctx, lib.CityCodesRequest{Cities: *citys})
	case "get_station_code_by_names":
		res = tk.GetStationCodeByNames(ctx, lib.StationCodesRequest{StationNames: *stationNames})
	case "get_station_by_telecode":
		res = tk.GetStationByTelecode(ctx, lib.StationByTelecodeRequest{Telecode: *telecode})
	case "get_tickets":
		res = tk.GetTickets(ctx, lib.TicketsRequest{
			Date:             *date,
			FromStation:      *fromStation,
			ToStation:        *toStation,
			TrainFilterFlags: *filterFlags,
			SortFlag:         *sortFlag,
			SortReverse:      *sortReverse,
			LimitedNum:       *limit,
		})
	case "get_interline_tickets":
		res = tk.GetInterlineTickets(ctx, lib.InterlineTicketsRequest{
			Date:             *date,
			FromStation:      *fromStation,
			ToStation:        *toStation,
			MiddleStation:    *middleStation,
			ShowWZ:           *showWZ,
			TrainFilterFlags: *filterFlags,
			SortFlag:         *sortFlag,
			SortReverse:      *sortReverse,
			LimitedNum:       *limit,
		})
	case "get_train_route_stations":
		res = tk.GetTrainRouteStations(ctx, lib.TrainRouteRequest{
			TrainNo:      *trainNo,
			FromTelecode: *fromStation,
			ToTelecode:   *toStation,
			DepartDate:   *date,
		})
	default:
		panic(fmt.Sprintf("unknown tool %q", *tool))
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(out))
}

package rail12306

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/transitkit/rail12306/config"
	"github.com/transitkit/rail12306/query"
)

var (
	server *http.Server
)

// StartServer exposes the toolkit over HTTP. Every tool endpoint takes
// its parameters from the query string and answers with the envelope.
func StartServer(tk *Toolkit, svc *query.Service, cfg config.ServerConfig) {
	metrics := newServerMetrics()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth(svc.Stations()))
	mux.Handle("/metrics", promhttp.Handler())

	register := func(path, tool string, op func(*http.Request) Result) {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			metrics.Requests.WithLabelValues(tool).Inc()
			res := op(r)
			metrics.Latency.Observe(time.Since(start).Seconds())
			w.Header().Set("Content-Type", "application/json")
			if !res.Success {
				metrics.Errors.WithLabelValues(tool).Inc()
				w.WriteHeader(http.StatusInternalServerError)
			}
			_ = json.NewEncoder(w).Encode(res)
		})
	}

	register("/api/v1/current-date", "get_current_date", func(r *http.Request) Result {
		return tk.GetCurrentDate(r.Context())
	})
	register("/api/v1/stations/in-city", "get_stations_code_in_city", func(r *http.Request) Result {
		return tk.GetStationsCodeInCity(r.Context(), StationsInCityRequest{
			City: r.URL.Query().Get("city"),
		})
	})
	register("/api/v1/stations/city-codes", "get_station_code_of_citys", func(r *http.Request) Result {
		return tk.GetStationCodeOfCitys(r.Context(), CityCodesRequest{
			Cities: r.URL.Query().Get("citys"),
		})
	})
	register("/api/v1/stations/codes", "get_station_code_by_names", func(r *http.Request) Result {
		return tk.GetStationCodeByNames(r.Context(), StationCodesRequest{
			StationNames: r.URL.Query().Get("station_names"),
		})
	})
	register("/api/v1/stations/by-telecode", "get_station_by_telecode", func(r *http.Request) Result {
		return tk.GetStationByTelecode(r.Context(), StationByTelecodeRequest{
			Telecode: r.URL.Query().Get("station_telecode"),
		})
	})
	register("/api/v1/tickets", "get_tickets", func(r *http.Request) Result {
		q := r.URL.Query()
		return tk.GetTickets(r.Context(), TicketsRequest{
			Date:             q.Get("date"),
			FromStation:      q.Get("from_station"),
			ToStation:        q.Get("to_station"),
			TrainFilterFlags: q.Get("train_filter_flags"),
			SortFlag:         q.Get("sort_flag"),
			SortReverse:      boolParam(q.Get("sort_reverse")),
			LimitedNum:       intParam(q.Get("limited_num")),
		})
	})
	register("/api/v1/tickets/interline", "get_interline_tickets", func(r *http.Request) Result {
		q := r.URL.Query()
		return tk.GetInterlineTickets(r.Context(), InterlineTicketsRequest{
			Date:             q.Get("date"),
			FromStation:      q.Get("from_station"),
			ToStation:        q.Get("to_station"),
			MiddleStation:    q.Get("middle_station"),
			ShowWZ:           boolParam(q.Get("show_wz")),
			TrainFilterFlags: q.Get("train_filter_flags"),
			SortFlag:         q.Get("sort_flag"),
			SortReverse:      boolParam(q.Get("sort_reverse")),
			LimitedNum:       intParam(q.Get("limited_num")),
		})
	})
	register("/api/v1/trains/route", "get_train_route_stations", func(r *http.Request) Result {
		q := r.URL.Query()
		return tk.GetTrainRouteStations(r.Context(), TrainRouteRequest{
			TrainNo:      q.Get("train_no"),
			FromTelecode: q.Get("from_station_telecode"),
			ToTelecode:   q.Get("to_station_telecode"),
			DepartDate:   q.Get("depart_date"),
		})
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			log.Printf("server shut down successfully")
		}
	}
}

func boolParam(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

func intParam(v string) int {
	n, _ := strconv.Atoi(v)
	return n
}

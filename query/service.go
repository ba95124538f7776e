package query

import (
	"errors"
	"time"

	"github.com/transitkit/rail12306/codec"
	"github.com/transitkit/rail12306/config"
	"github.com/transitkit/rail12306/railapi"
	"github.com/transitkit/rail12306/station"
)

var (
	// ErrPastDate rejects query dates before today in the service's
	// UTC+8 reference.
	ErrPastDate = errors.New("the date cannot be earlier than today")
	// ErrStationNotFound rejects station codes the directory cannot
	// resolve.
	ErrStationNotFound = errors.New("station not found")
)

// Service issues ticket queries against the 12306 endpoints.
type Service struct {
	api      *railapi.Client
	stations *station.Directory

	maxTransferPages     int
	defaultTransferLimit int

	// now supplies the UTC+8 reference instant; swapped in tests.
	now func() time.Time
}

// NewService wires the orchestrator to its client and directory.
func NewService(api *railapi.Client, stations *station.Directory, cfg config.QueryConfig) *Service {
	maxPages := cfg.MaxTransferPages
	if maxPages <= 0 {
		maxPages = 10
	}
	defaultLimit := cfg.DefaultTransferLimit
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &Service{
		api:                  api,
		stations:             stations,
		maxTransferPages:     maxPages,
		defaultTransferLimit: defaultLimit,
		now:                  codec.ShanghaiNow,
	}
}

// Stations exposes the directory for station-level tool operations.
func (s *Service) Stations() *station.Directory {
	return s.stations
}

// Today returns today's date in the service's UTC+8 reference.
func (s *Service) Today() string {
	return codec.FormatDate(s.now())
}

package rail12306

import (
	"encoding/json"
	"net/http"

	"github.com/transitkit/rail12306/station"
)

type healthResponse struct {
	Status           string `json:"status"`
	StationDirectory string `json:"station_directory"`
}

func handleHealth(stations *station.Directory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		dirState := "cold"
		if stations.Ready() {
			dirState = "loaded"
		}
		resp := healthResponse{
			Status:           "ok",
			StationDirectory: dirState,
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/footystats/afl-dashboard/pkg/data"
	"github.com/footystats/afl-dashboard/plot"
	"github.com/golang/glog"
)

var (
	errBadLine   = errors.New("bad line")
	errBadFormat = errors.New("bad chart format")
)

type errorResponse struct {
	Errors []string `json:"errors"`
}

func respondError(rw http.ResponseWriter, defaultStatus int, errs ...error) {
	status := defaultStatus
	response := errorResponse{}
	for _, err := range errs {
		response.Errors = append(response.Errors, err.Error())
		switch {
		case errors.Is(err, plot.ErrNoData):
			status = http.StatusNotFound
		case errors.Is(err, data.ErrUnknownStat), errors.Is(err, errBadLine), errors.Is(err, errBadFormat):
			status = http.StatusBadRequest
		}
	}
	respondJson(rw, status, response)
}

func respondJson(rw http.ResponseWriter, status int, response interface{}) {
	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(response); err != nil {
		glog.Errorf("Error writing response. err=%q, response=%+v", err, response)
	}
}

package server

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/oakinyemi/masjid-receipts/internal/common"
)

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, common.InvalidArgumentErrorf("invalid %s", name)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("%s must be an integer", name)
	}
	return &v, nil
}

func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("%s must be an integer", name)
	}
	return &v, nil
}

func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("%s must be a number", name)
	}
	return &v, nil
}

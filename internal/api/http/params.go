package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentgear-backend/internal/service"
)

// pathID extracts a numeric {id} path variable
func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		verr := &service.ValidationError{}
		verr.Fields = append(verr.Fields, service.FieldError{Field: "id", Message: "must be a positive integer"})
		return 0, verr
	}
	return id, nil
}

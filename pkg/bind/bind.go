// Package bind decodes JSON request bodies into validated structs.
package bind

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chitralaya/chitralaya/pkg/validate"
)

// maxBodyBytes caps request bodies so a hostile client cannot exhaust
// memory with an oversized payload.
const maxBodyBytes = 4 << 20

var ErrInvalidJSON = errors.New("request body is not valid JSON")

// JSON decodes the request body into dest and runs struct validation.
// A validate.Errors return carries field messages for the envelope.
func JSON(w http.ResponseWriter, r *http.Request, dest any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dest); err != nil {
		return ErrInvalidJSON
	}

	if errs := validate.Struct(dest); errs.Any() {
		return errs
	}

	return nil
}

package shared

import (
	"encoding/json"
	"net/http"
)

// MaxRequestBodyBytes bounds how much of a request body DecodeJSON will read.
const MaxRequestBodyBytes = 1 << 20

// DecodeJSON decodes the request body into the given struct.
// Bodies larger than MaxRequestBodyBytes are rejected with an error.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return err
	}
	return nil
}

package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response wrapper: exactly one of data and error
// is set, and success mirrors which one.
type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

// AuthEnvelope is the login/signup variant carrying user instead of data
type AuthEnvelope struct {
	Success bool    `json:"success"`
	User    any     `json:"user"`
	Error   *string `json:"error"`
}

// errorBody is the bare failure shape used for non-200 responses
type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a successful envelope. A nil data serializes as null, which is
// how "found nothing" is reported; it is still a 200 success.
func OK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// Fail writes a business-rule failure. These are HTTP 200 by contract;
// only authentication on score submission and store failures use other
// status codes.
func Fail(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Envelope{Success: false, Error: &message})
}

// AuthOK writes a successful auth envelope with the user record
func AuthOK(w http.ResponseWriter, user User) {
	writeJSON(w, http.StatusOK, AuthEnvelope{Success: true, User: user})
}

// AuthFail writes a failed auth envelope (HTTP 200, success=false)
func AuthFail(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, AuthEnvelope{Success: false, Error: &message})
}

// Error writes a non-200 failure with the bare {success, error} shape
func Error(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Success: false, Error: message})
}

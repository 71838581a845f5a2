package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorBody - единый формат тела ошибки API
type ErrorBody struct {
	Code int `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, ErrorBody{Code: code, Message: message})
}

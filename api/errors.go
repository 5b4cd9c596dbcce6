package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error membawa status HTTP dan pesan dari backend. Pada 422, Fields berisi
// peta field -> daftar pesan validasi.
type Error struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// errorPayload adalah bentuk body error yang dikirim backend.
type errorPayload struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// parseError membangun *Error dari response non-2xx. Kalau body tidak bisa
// diparse, dipakai pesan fallback berdasarkan status.
func parseError(status int, body []byte) *Error {
	var p errorPayload
	_ = json.Unmarshal(body, &p)
	msg := p.Message
	if msg == "" {
		msg = fallbackMessage(status)
	}
	return &Error{Status: status, Message: msg, Fields: p.Errors}
}

func fallbackMessage(status int) string {
	switch status {
	case http.StatusUnprocessableEntity:
		return "Data tidak valid"
	case http.StatusUnauthorized:
		return "Sesi tidak valid, silakan login ulang"
	case http.StatusForbidden:
		return "Anda tidak memiliki hak akses"
	case http.StatusNotFound:
		return "Data tidak ditemukan"
	default:
		return "Terjadi kesalahan pada server"
	}
}

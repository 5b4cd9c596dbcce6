package stores

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/Nineteenwishes/uks-client/api"
)

// Kind mengelompokkan kegagalan operasi store.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindTransport
)

// Failure adalah satu-satunya bentuk error yang dikembalikan semua method
// store: pesan untuk pengguna, jenis kegagalan, dan (untuk validasi) peta
// field -> daftar pesan.
type Failure struct {
	Kind    Kind
	Message string
	Fields  map[string][]string
}

func (f *Failure) Error() string {
	return f.Message
}

// JoinedMessages menggabungkan pesan umum dan seluruh pesan per-field menjadi
// satu string siap tampil.
func (f *Failure) JoinedMessages() string {
	if len(f.Fields) == 0 {
		return f.Message
	}
	keys := make([]string, 0, len(f.Fields))
	for k := range f.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strings.Join(f.Fields[k], ", "))
	}
	return strings.Join(parts, ", ")
}

// AsFailure mengembalikan *Failure di dalam err, atau nil.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return nil
}

// failureFrom menerjemahkan error transport/API menjadi Failure sesuai
// taksonomi: 422 validasi, 401 sesi, 403 hak akses, 404 tidak ditemukan,
// sisanya kegagalan umum.
func failureFrom(err error) *Failure {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		kind := KindTransport
		switch apiErr.Status {
		case http.StatusUnprocessableEntity:
			kind = KindValidation
		case http.StatusUnauthorized:
			kind = KindUnauthorized
		case http.StatusForbidden:
			kind = KindForbidden
		case http.StatusNotFound:
			kind = KindNotFound
		}
		return &Failure{Kind: kind, Message: apiErr.Message, Fields: apiErr.Fields}
	}
	return &Failure{Kind: KindTransport, Message: "Tidak dapat terhubung ke server"}
}

package stores

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Pakai nama json sebagai nama field supaya peta error cocok dengan
	// bentuk 422 backend.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateInput memeriksa field wajib di sisi client sebelum request dikirim.
// Kegagalan dikembalikan sebagai Failure validasi dengan peta per-field,
// bentuk yang sama dengan 422 dari backend.
func validateInput(in any) *Failure {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	fields := map[string][]string{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], pesanValidasi(fe))
		}
	}
	return &Failure{Kind: KindValidation, Message: "Data tidak valid", Fields: fields}
}

func pesanValidasi(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Kolom %s wajib diisi", fe.Field())
	case "gte", "min":
		return fmt.Sprintf("Kolom %s minimal %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("Kolom %s harus salah satu dari: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("Kolom %s tidak valid", fe.Field())
	}
}

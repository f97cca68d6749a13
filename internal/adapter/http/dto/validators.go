package dto

import (
	"html"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	feltRe       = regexp.MustCompile(`^0x[0-9a-fA-F]{1,64}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("safe_url", validateSafeURL)
		_ = v.RegisterValidation("felt", validateFelt)
		_ = v.RegisterValidation("decimal", validateDecimal)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// validateSafeURL accepts only http/https URLs.
func validateSafeURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true // optional field; use "required" tag to enforce presence
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// validateFelt accepts a 0x-prefixed hex StarkNet address.
func validateFelt(fl validator.FieldLevel) bool {
	return feltRe.MatchString(strings.TrimSpace(fl.Field().String()))
}

// validateDecimal accepts a plain decimal number without exponent. Sign,
// precision and range checks are left to the ledger so the error code stays
// INVALID_AMOUNT.
func validateDecimal(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if strings.ContainsAny(s, "eE") {
		return false
	}
	_, err := decimal.NewFromString(s)
	return err == nil
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field of a struct pointer. Fields tagged sanitize:"-" are only trimmed.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() || f.Kind() != reflect.String {
			continue
		}
		s := strings.TrimSpace(f.String())
		if rt.Field(i).Tag.Get("sanitize") != "-" {
			s = html.EscapeString(s)
		}
		f.SetString(s)
	}
}

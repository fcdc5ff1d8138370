package serializer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error envelope for every non-2xx body.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// FieldError is one entry in a validation detail list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AuthErr is the generic 401 body. It never distinguishes unknown
// users from wrong passwords or expired tokens from malformed ones.
func AuthErr() ErrorResponse {
	return ErrorResponse{Error: "unauthorized"}
}

// NotFoundErr is the 404 body.
func NotFoundErr(what string) ErrorResponse {
	if what == "" {
		what = "resource"
	}
	return ErrorResponse{Error: what + " not found"}
}

// ValidationErr builds the 400 body with a per-field detail list. Every
// violated field is reported, not just the first.
func ValidationErr(err error) ErrorResponse {
	res := ErrorResponse{Error: "invalid payload"}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{
				Field:   fieldName(fe),
				Message: ruleMessage(fe),
			})
		}
		res.Details = details
		return res
	}
	if err != nil {
		res.Details = err.Error()
	}
	return res
}

// ServerErr is the 500 body. The underlying error is shown only
// outside release mode; otherwise callers log it server-side.
func ServerErr(err error) ErrorResponse {
	res := ErrorResponse{Error: "internal server error"}
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Details = fmt.Sprintf("%+v", err)
	}
	return res
}

// RegisterWireNames makes the validator report fields by their json
// tag, so detail lists carry the exact wire names ("projectId", not
// "projectID"). Untagged fields fall back to the struct name, which
// fieldName then lowercases.
func RegisterWireNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if tag == "-" {
			return ""
		}
		return tag
	})
}

func fieldName(fe validator.FieldError) string {
	f := fe.Field()
	if f == "" {
		return "body"
	}
	// Struct field -> lowerCamel to match the JSON wire names.
	return strings.ToLower(f[:1]) + f[1:]
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "email":
		return "must be a valid email"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

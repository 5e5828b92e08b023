package rest

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	msgInvalidEmail   = "Invalid email"
	msgNameTooShort   = "Name must have atleast 2 characters."
	msgPasswordPolicy = "Password must contain Minimum 8 and maximum 20 characters, at least one uppercase letter, one lowercase letter, one number and one special character"
	msgRequired       = "must not be empty"
)

const (
	passwordMinLen   = 8
	passwordMaxLen   = 20
	passwordSpecials = "@$!%*#?&"
)

var emailRegexp = regexp.MustCompile(`^([a-zA-Z0-9_\-\.]+)@([a-zA-Z0-9_\-\.]+)\.([a-zA-Z]{2,5})$`)

// newValidator returns a validator with the "account_email" and
// "account_password" rules registered and JSON field names in errors.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("account_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("account_password", func(fl validator.FieldLevel) bool {
		return IsValidPassword(fl.Field().String())
	})

	return v
}

// IsValidEmail reports whether s looks like an account email.
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// IsValidPassword enforces the password policy: 8 to 20 characters drawn
// from letters, digits and @$!%*#?&, with at least one upper case letter,
// one lower case letter, one digit and one of the special characters.
func IsValidPassword(s string) bool {
	if len(s) < passwordMinLen || len(s) > passwordMaxLen {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			return false
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		default:
			return false
		}
	}

	return upper && lower && digit && special
}

// fieldErrors turns validator errors into a field -> message map.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := out[field]; seen {
			continue
		}
		out[field] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "email":
		return msgInvalidEmail
	case "password":
		if fe.Tag() == "account_password" {
			return msgPasswordPolicy
		}
	case "name":
		if fe.Tag() == "min" {
			return msgNameTooShort
		}
	}
	if fe.Tag() == "required" {
		return fe.Field() + " " + msgRequired
	}
	return fe.Field() + " is invalid"
}

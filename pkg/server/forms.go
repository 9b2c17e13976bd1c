package server

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const csrfField = "csrf_token"

type ideaForm struct {
	Idea string `form:"idea" json:"idea" validate:"notblank"`
}

type choiceForm struct {
	Choice string `form:"choice" json:"choice" validate:"notblank"`
}

type promptForm struct {
	Prompt string `form:"prompt" json:"prompt" validate:"notblank"`
}

type formValidator struct {
	validate *validator.Validate
}

func newFormValidator() *formValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// whitespace-only input counts as missing, values themselves are left as typed
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	return &formValidator{validate: v}
}

func (v *formValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// bindForm binds and validates form. Validation failures come back as
// validator.ValidationErrors; anything else is a malformed request.
func bindForm(c echo.Context, form any) error {
	if err := c.Bind(form); err != nil {
		return err
	}
	return c.Validate(form)
}

// fieldErrors maps validation failures to per-field messages.
func fieldErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "notblank", "required":
			out[fe.Field()] = "This field is required."
		default:
			out[fe.Field()] = "Invalid value."
		}
	}
	return out, true
}

// page is embedded in every template payload.
type page struct {
	Title  string
	CSRF   string
	Errors map[string]string
}

func newPage(c echo.Context, title string) page {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return page{Title: title, CSRF: token}
}

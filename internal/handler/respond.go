package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flightbooking/internal/metrics"
	"github.com/dharmasatrya/flightbooking/internal/models"
	"github.com/dharmasatrya/flightbooking/internal/validation"
	"github.com/dharmasatrya/flightbooking/internal/wizard"
)

type ValidationErrorResponse struct {
	Error   string                   `json:"error"`
	Message string                   `json:"message"`
	Code    int                      `json:"code"`
	Fields  []validation.FieldResult `json:"fields"`
}

func errorJSON(c echo.Context, status int, code, message string) error {
	return c.JSON(status, models.ErrorResponse{
		Error:   code,
		Message: message,
		Code:    status,
	})
}

func invalidForm(c echo.Context, m *metrics.Recorder, form string, result *validation.Result) error {
	failures := result.Failures()
	fields := make([]string, len(failures))
	for i, f := range failures {
		fields[i] = f.Field
	}
	m.ValidationFailed(form, fields)

	return c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:   "validation_error",
		Message: "Please correct the highlighted fields",
		Code:    http.StatusUnprocessableEntity,
		Fields:  failures,
	})
}

// redirect sends the client back to an earlier step. Missing state is not
// an error from the user's point of view.
func redirect(c echo.Context, m *metrics.Recorder, step wizard.Step) error {
	m.Redirected(string(step))
	c.Response().Header().Set(echo.HeaderLocation, wizard.Route(step))
	return c.JSON(http.StatusSeeOther, models.RedirectResponse{Redirect: string(step)})
}

// guard redirects when the session cannot enter step. It returns true when
// the response has been written.
func guard(c echo.Context, m *metrics.Recorder, step wizard.Step) (bool, error) {
	to, ok := wizard.Guard(stateOf(c), step)
	if ok {
		return false, nil
	}
	return true, redirect(c, m, to)
}

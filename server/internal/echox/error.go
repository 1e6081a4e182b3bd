package echox

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/starudream/e2e-kit/server/internal/errx"
)

func ErrorHandler(app *echo.Echo) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		ee := toError(err)

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(ee.Status)
		} else {
			err = c.JSON(ee.Status, ee)
		}
		if err != nil {
			app.Logger.Error(err)
		}
	}
}

func toError(err error) *errx.Error {
	var ee *errx.Error
	if errors.As(err, &ee) {
		return ee
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		ee = errx.BadRequest()
		for _, fe := range ve {
			ee.AppendMetadata(map[string]any{fe.Field(): fe.Tag()})
		}
		return ee
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			var _he *echo.HTTPError
			if errors.As(he.Internal, &_he) {
				he = _he
			}
		}
		return errx.Newf(he.Code, cast.To[string](he.Message))
	}

	return errx.Default()
}

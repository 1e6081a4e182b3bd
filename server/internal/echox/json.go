package echox

import (
	stdjson "encoding/json"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/starudream/e2e-kit/server/internal/json"
)

type JSONSerializer struct{}

func (JSONSerializer) Serialize(c echo.Context, v any, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(v)
}

func (JSONSerializer) Deserialize(c echo.Context, v any) error {
	err := json.NewDecoder(c.Request().Body).Decode(v)
	var se *stdjson.SyntaxError
	if errors.As(err, &se) {
		return echo.NewHTTPError(400, fmt.Sprintf("syntax error: offset=%v, error=%v", se.Offset, se.Error())).SetInternal(err)
	}
	return err
}

package router

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
)

// compactJSON writes JSON bodies exactly as json.Marshal produces them: no
// indentation (Echo would indent for ?pretty or in debug mode) and no
// trailing newline.  Request decoding is Echo's default.
type compactJSON struct {
	echo.DefaultJSONSerializer
}

func (compactJSON) Serialize(c echo.Context, i interface{}, _ string) error {
	b, err := json.Marshal(i)
	if err != nil {
		return err
	}
	_, err = c.Response().Write(b)
	return err
}

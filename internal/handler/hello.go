package handler

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/example-api/internal/model"
)

// DefaultGreetingName is used when the name query parameter is absent.
const DefaultGreetingName = "world"

// Hello greets the caller by the optional ?name= query parameter.  A present
// but empty name is echoed as is; only a missing parameter falls back to
// DefaultGreetingName.
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, Greet(nameParam(c)))
}

// Greet builds the greeting for name.  The name is not sanitized.
func Greet(name string) model.Greeting {
	return model.Greeting{Message: "Hello, " + name + "!"}
}

func nameParam(c echo.Context) string {
	if name, ok := lastQueryValue(c.Request().URL.RawQuery, "name"); ok {
		return name
	}
	return DefaultGreetingName
}

// lastQueryValue returns the last value of key in a raw query string.  Unlike
// url.ParseQuery it never drops a pair: only '&' separates pairs, a key
// without '=' has an empty value, and malformed escapes are kept verbatim.
func lastQueryValue(rawQuery, key string) (value string, found bool) {
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		if unescapeLenient(k) == key {
			value, found = unescapeLenient(v), true
		}
	}
	return value, found
}

// unescapeLenient decodes '+' and valid %XX escapes; any other '%' is kept
// as is.  Invalid UTF-8 in the result is replaced with U+FFFD.
func unescapeLenient(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '+':
			b = append(b, ' ')
		case s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b = append(b, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			b = append(b, s[i])
		}
	}
	if !utf8.Valid(b) {
		return strings.ToValidUTF8(string(b), "\uFFFD")
	}
	return string(b)
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

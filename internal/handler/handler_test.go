package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/example-api/internal/model"
)

func serve(t *testing.T, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestHealth(t *testing.T) {
	rec := serve(t, Health, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
}

func TestAPIHealth(t *testing.T) {
	rec := serve(t, APIHealth, "/api/v1/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
	assert.JSONEq(t, `{"status":"ok","service":"example-api"}`, rec.Body.String())
}

func TestHello(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "default name", target: "/api/v1/hello", want: "Hello, world!"},
		{name: "named", target: "/api/v1/hello?name=Ada", want: "Hello, Ada!"},
		{name: "empty name is not defaulted", target: "/api/v1/hello?name=", want: "Hello, !"},
		{name: "bare key is empty", target: "/api/v1/hello?name", want: "Hello, !"},
		{name: "last value wins", target: "/api/v1/hello?name=a&name=b", want: "Hello, b!"},
		{name: "semicolon kept", target: "/api/v1/hello?name=a;b", want: "Hello, a;b!"},
		{name: "stray percent kept", target: "/api/v1/hello?name=100%", want: "Hello, 100%!"},
		{name: "bad escape kept", target: "/api/v1/hello?name=%ZZ", want: "Hello, %ZZ!"},
		{name: "mixed escapes", target: "/api/v1/hello?name=50%25%ZZ", want: "Hello, 50%%ZZ!"},
		{name: "plus is space", target: "/api/v1/hello?name=Ada+Lovelace", want: "Hello, Ada Lovelace!"},
		{name: "malformed sibling pair", target: "/api/v1/hello?x=%ZZ&name=Ada", want: "Hello, Ada!"},
		{name: "escaped key", target: "/api/v1/hello?na%6De=Ada", want: "Hello, Ada!"},
		{name: "escaped input", target: "/api/v1/hello?name=%3Cb%3E%20%26%20%22x%22", want: `Hello, <b> & "x"!`},
		{name: "unicode", target: "/api/v1/hello?name=%E4%B8%96%E7%95%8C", want: "Hello, 世界!"},
		{name: "other params ignored", target: "/api/v1/hello?nam=Ada", want: "Hello, world!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, Hello, tt.target)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

			var got model.Greeting
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got.Message)
		})
	}
}

func TestGreet(t *testing.T) {
	assert.Equal(t, model.Greeting{Message: "Hello, Ada!"}, Greet("Ada"))
	assert.Equal(t, model.Greeting{Message: "Hello, !"}, Greet(""))
}

func TestLastQueryValue(t *testing.T) {
	tests := []struct {
		raw       string
		wantValue string
		wantFound bool
	}{
		{raw: "", wantFound: false},
		{raw: "&&", wantFound: false},
		{raw: "name", wantValue: "", wantFound: true},
		{raw: "name=", wantValue: "", wantFound: true},
		{raw: "name=a=b", wantValue: "a=b", wantFound: true},
		{raw: "name=a&other=1&name=c", wantValue: "c", wantFound: true},
		{raw: "names=a", wantFound: false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, found := lastQueryValue(tt.raw, "name")
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantValue, got)
		})
	}
}

func TestUnescapeLenient(t *testing.T) {
	assert.Equal(t, "a b", unescapeLenient("a+b"))
	assert.Equal(t, "é", unescapeLenient("%C3%A9"))
	assert.Equal(t, "%", unescapeLenient("%"))
	assert.Equal(t, "%4", unescapeLenient("%4"))
	assert.Equal(t, "\uFFFD", unescapeLenient("%FF"))
}

package observability

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := InitRegistry()

	// record samples so every vector has a series
	ObserveHTTP("/v1/resolve", "GET", 200, 12*time.Millisecond)
	ObserveResolution("fuzzy", true)
	ObserveExternal("openai", "chat_completions", 200, 300*time.Millisecond)
	ObserveToolCall("get_ticket_price")

	rr := httptest.NewRecorder()
	MetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	for _, name := range []string{
		"flight_http_requests_total",
		"flight_http_request_duration_seconds",
		"flight_resolutions_total",
		"flight_external_requests_total",
		"flight_tool_calls_total",
	} {
		assert.Contains(t, string(body), name)
	}
}

func TestObserveResolution(t *testing.T) {
	before := testutil.ToFloat64(Resolutions.WithLabelValues("containment", "true"))

	ObserveResolution("containment", true)
	ObserveResolution("containment", true)

	after := testutil.ToFloat64(Resolutions.WithLabelValues("containment", "true"))
	assert.Equal(t, before+2, after)
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantLevel zerolog.Level
		wantJSON  bool
	}{
		{name: "defaults to info", level: "", format: "json", wantLevel: zerolog.InfoLevel, wantJSON: true},
		{name: "debug json", level: "debug", format: "json", wantLevel: zerolog.DebugLevel, wantJSON: true},
		{name: "upper case level", level: "WARN", format: "", wantLevel: zerolog.WarnLevel, wantJSON: true},
		{name: "console", level: "error", format: "console", wantLevel: zerolog.ErrorLevel, wantJSON: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := newLogger(&buf, tt.level, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, l.GetLevel())

			l.WithLevel(tt.wantLevel).Str("k", "v").Msg("hello")
			out := buf.String()
			assert.Contains(t, out, "hello")
			if tt.wantJSON {
				assert.Contains(t, out, `"k":"v"`)
			} else {
				assert.NotContains(t, out, `"k":"v"`)
			}
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger("loud", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing log level")
}

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesServiceField(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "info", ServiceName: "gif-service", Writer: &buf})

	l.Debug().Msg("hidden")
	l.Info().Str("query", "cats").Msg("served")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "gif-service", entry[FieldService])
	assert.Equal(t, "cats", entry["query"])
	assert.Equal(t, "served", entry["message"])
}

func TestCtx_ReturnsStoredLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Writer: &buf})
	ctx := WithLogger(context.Background(), l)

	got := Ctx(ctx)
	got.Info().Msg("from ctx")
	assert.Contains(t, buf.String(), "from ctx")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel(" DEBUG ").String())
	assert.Equal(t, "warn", parseLevel("warning").String())
	assert.Equal(t, "info", parseLevel("nonsense").String())
}

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("debug"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("WARNING"))
	assert.Equal(t, Error, ParseLevel(" error "))
	assert.Equal(t, Info, ParseLevel("loud"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("whatever"))
}

func TestFormatText_StableKeyOrder(t *testing.T) {
	out := formatText(map[string]any{
		"msg":   "hello",
		"app":   "pet-registry",
		"level": "info",
	})
	assert.Equal(t, "app=pet-registry level=info msg=hello", out)
}

func TestWith_DoesNotMutateParent(t *testing.T) {
	parent := New(Options{App: "pet-registry"}).(*StdLogger)
	child := parent.With(map[string]any{"request_id": "abc"}).(*StdLogger)

	assert.NotContains(t, parent.base, "request_id")
	assert.Equal(t, "abc", child.base["request_id"])
	assert.Equal(t, "pet-registry", child.base["app"])
}

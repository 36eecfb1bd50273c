package registry

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoTool(name string) Tool {
	return Tool{
		Name:        name,
		Description: "echoes its arguments",
		Handler: func(_ context.Context, args json.RawMessage) (any, error) {
			return string(args), nil
		},
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := New()

	require.NoError(t, reg.Register(echoTool("alpha")))

	tool, ok := reg.Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, "alpha", tool.Name)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	reg := New()

	require.NoError(t, reg.Register(echoTool("alpha")))
	err := reg.Register(echoTool("alpha"))
	assert.ErrorIs(t, err, ErrDuplicateTool)
}

func TestRegistry_RejectsInvalidTools(t *testing.T) {
	reg := New()

	assert.Error(t, reg.Register(Tool{Name: "", Handler: echoTool("x").Handler}))
	assert.Error(t, reg.Register(Tool{Name: "no-handler"}))
}

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	reg := New()

	names := []string{"charlie", "alpha", "bravo"}
	for _, name := range names {
		require.NoError(t, reg.Register(echoTool(name)))
	}

	tools := reg.Tools()
	require.Len(t, tools, 3)
	for i, tool := range tools {
		assert.Equal(t, names[i], tool.Name)
	}
}

func TestRegistry_InvokeDispatchesByName(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register(echoTool("alpha")))

	result, err := reg.Invoke(context.Background(), "alpha", json.RawMessage(`{"k":"v"}`))
	require.NoError(t, err)
	assert.Equal(t, `{"k":"v"}`, result)

	_, err = reg.Invoke(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestArgumentError_Message(t *testing.T) {
	err := NewArgumentError(map[string]string{"startDate": "is required"})
	assert.Contains(t, err.Error(), "startDate: is required")
}

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driving"
)

func TestBackendsCmd_Use(t *testing.T) {
	assert.Equal(t, "backends", backendsCmd.Use)
}

func TestBackendsCmd_ListsRegisteredBackends(t *testing.T) {
	cleanup := setupTestApp(nil, nil)
	defer cleanup()
	app.Registry = &mockRegistry{infos: []driving.BackendInfo{
		{Name: "builtvalue", Description: "Immutable built_value classes"},
		{Name: "manual", Description: "Plain Dart classes"},
	}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"backends"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "builtvalue")
	assert.Contains(t, buf.String(), "manual")
	assert.Contains(t, buf.String(), "Plain Dart classes")
}

func TestBackendsCmd_NotConfigured(t *testing.T) {
	oldApp := app
	app = nil
	defer func() { app = oldApp }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"backends"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "registry not configured")
}

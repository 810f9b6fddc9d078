package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkinmodi/add-license-header/internal/config"
)

func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("writes default config", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "repo")

		cmd := NewInitCmd()
		var stdout bytes.Buffer
		cmd.SetOut(&stdout)
		cmd.SetArgs([]string{dir})
		require.NoError(t, cmd.Execute())

		data, err := os.ReadFile(filepath.Join(dir, ".add-license-header.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.DefaultConfigContent, string(data))
		assert.Contains(t, stdout.String(), "Successfully created config")
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".add-license-header.yaml"), []byte("x"), 0o600))

		cmd := NewInitCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{dir})
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config already exists")
	})

	t.Run("default config is loadable", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()

		cmd := NewInitCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{dir})
		require.NoError(t, cmd.Execute())

		cfg, err := config.Load(filepath.Join(dir, ".add-license-header.yaml"))
		require.NoError(t, err)
		assert.Empty(t, cfg.LicenseFile)
	})
}

func TestNewStylesCmd(t *testing.T) {
	t.Parallel()

	mockMgr := &MockManager{}
	cmd := NewStylesCmd(mockMgr)

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, ".py")
	assert.Contains(t, out, "Makefile")
	assert.Contains(t, out, "/*")
}

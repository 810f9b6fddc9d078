package app

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arkinmodi/add-license-header/internal/header"
)

func setupRootCmd(mgr Manager) (*slog.LevelVar, *cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	lazy := &LazyManager{}
	if mgr != nil {
		lazy.SetInner(mgr)
	}
	logLevel := &slog.LevelVar{}
	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCmd(lazy, logLevel, &stderr)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	return logLevel, rootCmd, &stdout, &stderr
}

func TestRootCmd(t *testing.T) {
	t.Parallel()

	t.Run("execute help", func(t *testing.T) {
		t.Parallel()
		_, rootCmd, stdout, _ := setupRootCmd(&MockManager{})
		rootCmd.SetArgs([]string{"--help"})
		err := rootCmd.Execute()
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "pre-commit hook")
	})

	t.Run("test version flag", func(t *testing.T) {
		t.Parallel()
		_, rootCmd, _, _ := setupRootCmd(&MockManager{})
		rootCmd.SetArgs([]string{"--version"})
		err := rootCmd.Execute()
		require.NoError(t, err)
	})

	t.Run("test debug flag", func(t *testing.T) {
		t.Parallel()
		logLevel, rootCmd, _, _ := setupRootCmd(&MockManager{})
		rootCmd.SetArgs([]string{"--debug"})
		err := rootCmd.Execute()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, logLevel.Level())
	})

	t.Run("no files shows help", func(t *testing.T) {
		t.Parallel()
		_, rootCmd, stdout, _ := setupRootCmd(&MockManager{})
		rootCmd.SetArgs([]string{})
		err := rootCmd.Execute()
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("license and license-file are mutually exclusive", func(t *testing.T) {
		t.Parallel()
		_, rootCmd, _, _ := setupRootCmd(&MockManager{})
		rootCmd.SetArgs([]string{"--license", "X", "--license-file", "y.tmpl", "t.py"})
		err := rootCmd.Execute()
		var target *header.AmbiguousTemplateError
		require.ErrorAs(t, err, &target)
	})

	t.Run("template is required", func(t *testing.T) {
		t.Parallel()
		_, rootCmd, _, _ := setupRootCmd(&MockManager{})
		rootCmd.SetArgs([]string{"t.py"})
		err := rootCmd.Execute()
		var target *header.NoTemplateError
		require.ErrorAs(t, err, &target)
	})

	t.Run("flags flow into the job", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		mockMgr.On("ProcessFiles", mock.Anything, mock.MatchedBy(func(job header.Job) bool {
			return job.Values.AuthorName == "John Smith" &&
				job.Values.CreateYear == "2023" &&
				job.Values.EditYear == "2024" &&
				job.SingleYearIfSame &&
				job.Unmanaged &&
				job.Check
		}), []string{"a.py", "b.py"}, 4).Return([]Outcome{{Path: "a.py"}, {Path: "b.py"}})

		_, rootCmd, _, _ := setupRootCmd(mockMgr)
		rootCmd.SetArgs([]string{
			"--license", "TEST LICENSE",
			"--author-name", "John Smith",
			"--create-year", "2023",
			"--edit-year", "2024",
			"--single-year-if-same",
			"--unmanaged",
			"--check",
			"--jobs", "4",
			"a.py", "b.py",
		})
		err := rootCmd.Execute()
		require.NoError(t, err)
		mockMgr.AssertExpectations(t)
	})

	t.Run("changed files fail the run", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		mockMgr.On("ProcessFiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]Outcome{{Path: "a.py", Result: header.Result{Path: "a.py", Action: header.ActionInsert}}})

		_, rootCmd, _, stderr := setupRootCmd(mockMgr)
		rootCmd.SetArgs([]string{"--license", "TEST LICENSE", "a.py"})
		err := rootCmd.Execute()
		var target *HeadersUpdatedError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 1, target.Count)
		assert.Contains(t, stderr.String(), "updating license in a.py")
	})

	t.Run("check mode reports out of date files", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		mockMgr.On("ProcessFiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]Outcome{{Path: "a.py", Result: header.Result{Path: "a.py", Action: header.ActionReplace}}})

		_, rootCmd, _, stderr := setupRootCmd(mockMgr)
		rootCmd.SetArgs([]string{"--license", "TEST LICENSE", "--check", "a.py"})
		err := rootCmd.Execute()
		var target *HeadersOutOfDateError
		require.ErrorAs(t, err, &target)
		assert.Contains(t, stderr.String(), "license header out of date in a.py")
	})

	t.Run("exit zero suppresses update failure", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		mockMgr.On("ProcessFiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]Outcome{{Path: "a.py", Result: header.Result{Path: "a.py", Action: header.ActionInsert}}})

		_, rootCmd, _, _ := setupRootCmd(mockMgr)
		rootCmd.SetArgs([]string{"--license", "TEST LICENSE", "--exit-zero", "a.py"})
		err := rootCmd.Execute()
		require.NoError(t, err)
	})

	t.Run("unsupported file fails the run", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		mockMgr.On("ProcessFiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]Outcome{{Path: "t.unsupported", Err: &header.UnsupportedFileError{Path: "t.unsupported"}}})

		_, rootCmd, _, stderr := setupRootCmd(mockMgr)
		rootCmd.SetArgs([]string{"--license", "TEST LICENSE", "t.unsupported"})
		err := rootCmd.Execute()
		var target *ProcessingFailedError
		require.ErrorAs(t, err, &target)
		assert.Contains(t, stderr.String(), "unsupported file format: t.unsupported")
		assert.Contains(t, stderr.String(), "feel free to open an issue/pr")
	})

	t.Run("exit zero if unsupported", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		mockMgr.On("ProcessFiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]Outcome{{Path: "t.unsupported", Err: &header.UnsupportedFileError{Path: "t.unsupported"}}})

		_, rootCmd, _, _ := setupRootCmd(mockMgr)
		rootCmd.SetArgs([]string{"--license", "TEST LICENSE", "--exit-zero-if-unsupported", "t.unsupported"})
		err := rootCmd.Execute()
		require.NoError(t, err)
	})

	t.Run("binary file still fails with exit-zero-if-unsupported", func(t *testing.T) {
		t.Parallel()
		mockMgr := &MockManager{}
		mockMgr.On("ProcessFiles", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]Outcome{{Path: "t.exe", Err: &header.BinaryFileError{Path: "t.exe"}}})

		_, rootCmd, _, stderr := setupRootCmd(mockMgr)
		rootCmd.SetArgs([]string{"--license", "TEST LICENSE", "--exit-zero-if-unsupported", "t.exe"})
		err := rootCmd.Execute()
		var target *ProcessingFailedError
		require.ErrorAs(t, err, &target)
		assert.Contains(t, stderr.String(), "cannot add license to binary file: t.exe")
	})
}

//nolint:paralleltest // os.Chdir is used
func TestRootCmd_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "LICENSE.tmpl"),
		[]byte("TEST LICENSE $author_name\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".add-license-header.yaml"),
		[]byte("licenseFile: LICENSE.tmpl\nauthorName: Jane Doe\nunmanaged: true\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "t.py"),
		[]byte("print(1)\n"), 0o600))

	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	err = Run(context.Background(), []string{"add-license-header", "t.py"}, os.Stdout, os.Stderr)
	var target *HeadersUpdatedError
	require.ErrorAs(t, err, &target)

	got, err := os.ReadFile(filepath.Join(dir, "t.py"))
	require.NoError(t, err)
	assert.Equal(t, "#\n"+
		"# TEST LICENSE Jane Doe\n"+
		"#\n"+
		"\n"+
		"print(1)\n", string(got))
}

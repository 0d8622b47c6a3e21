// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cliconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("verbose", false, "")
	fs.Bool("dry-run", false, "")
	fs.String("report", "", "")
	return fs
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\nreport: out.yaml\n"), 0o644))

	v := viper.New()
	fs := newFlags(t)
	require.NoError(t, BindFlags(v, fs, "verbose", "report", "dry-run"))

	var stderr bytes.Buffer
	require.NoError(t, Load(v, path, &stderr))

	assert.True(t, v.GetBool("verbose"))
	assert.Equal(t, "out.yaml", v.GetString("report"))
	assert.False(t, v.GetBool("dry-run"))
	assert.Contains(t, stderr.String(), "Using config file:")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	v := viper.New()
	var stderr bytes.Buffer
	err := Load(v, filepath.Join(t.TempDir(), "absent.yaml"), &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadWithoutDefaultFile(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	var stderr bytes.Buffer
	require.NoError(t, Load(v, "", &stderr))
	assert.Empty(t, stderr.String())
}

func TestLoadDefaultFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pdf-tools.yaml"), []byte("dry-run: true\n"), 0o644))
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	v := viper.New()
	require.NoError(t, BindFlags(v, newFlags(t), "dry-run"))
	var stderr bytes.Buffer
	require.NoError(t, Load(v, "", &stderr))

	assert.True(t, v.GetBool("dry-run"))
}

func TestPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report: from-file.yaml\ndry-run: false\n"), 0o644))
	t.Setenv("PDF_TOOLS_REPORT", "from-env.yaml")
	t.Setenv("PDF_TOOLS_DRY_RUN", "true")

	v := viper.New()
	fs := newFlags(t)
	require.NoError(t, BindFlags(v, fs, "report", "dry-run", "verbose"))
	var stderr bytes.Buffer
	require.NoError(t, Load(v, path, &stderr))

	assert.Equal(t, "from-env.yaml", v.GetString("report"), "env beats file")
	assert.True(t, v.GetBool("dry-run"), "env beats file")

	require.NoError(t, fs.Parse([]string{"--report", "from-flag.yaml"}))
	assert.Equal(t, "from-flag.yaml", v.GetString("report"), "flag beats env")
}

func TestBindUnknownFlag(t *testing.T) {
	err := BindFlags(viper.New(), newFlags(t), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such flag")
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

package main

import (
	"fmt"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/gofrac/io"
)

func TestPlotName(t *testing.T) {
	assert.Equal(t, "agg_01", plotName("data/agg_01.txt"))
	assert.Equal(t, "agg", plotName("agg"))
	assert.Equal(t, "a.b", plotName("/tmp/a.b.dat"))
}

func TestInputFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{ "b.txt", "a.txt" } {
		err := os.WriteFile(path.Join(dir, name), []byte("0 0 0 1\n"), 0644)
		require.NoError(t, err)
	}
	require.NoError(t, os.Mkdir(path.Join(dir, "sub"), 0755))

	con := &io.DefaultFractalWrapper().Fractal

	files, err := inputFiles(con, []string{ "x.txt" })
	require.NoError(t, err)
	assert.Equal(t, []string{ "x.txt" }, files)

	_, err = inputFiles(con, nil)
	assert.Error(t, err)

	con.Input = dir
	files, err = inputFiles(con, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		path.Join(dir, "a.txt"), path.Join(dir, "b.txt"),
	}, files)

	con.Input = path.Join(dir, "b.txt")
	files, err = inputFiles(con, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{ con.Input }, files)

	con.Input = path.Join(dir, "sub")
	_, err = inputFiles(con, nil)
	assert.Error(t, err)
}

func TestAnalyzeErrorClosesProfile(t *testing.T) {
	dir := t.TempDir()
	prof := path.Join(dir, "prof.out")
	config := path.Join(dir, "gofrac.config")
	err := os.WriteFile(config, []byte(fmt.Sprintf(
		"[Fractal]\nProfileFile = %s\n", prof,
	)), 0644)
	require.NoError(t, err)

	configFile = config
	defer func() { configFile = "" }()

	err = analyzeCmd.RunE(
		analyzeCmd, []string{ path.Join(dir, "missing.txt") },
	)
	assert.Error(t, err)

	// The profile is only written out by StopCPUProfile.
	info, err := os.Stat(prof)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

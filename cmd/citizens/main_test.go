package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpggio/citizens/internal/domain/citizen"
	"github.com/stretchr/testify/require"
)

const people = `
people:
  - {id: 1, first_name: Alex, last_name: Wolfson, birth_date: "1993-06-15"}
  - {id: 2, first_name: Emma, last_name: Johnson, birth_date: "1999-06-15"}
  - {id: 3, first_name: Liam, last_name: Johnson, birth_date: "1996-06-15"}
  - {id: 4, first_name: Sophia, last_name: Brown, birth_date: "2002-06-15"}
  - {id: 5, first_name: Noah, last_name: Davis, birth_date: "1989-06-15"}
`

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "people.yaml")
	require.NoError(t, os.WriteFile(path, []byte(people), 0o644))

	t.Setenv("CITIZENS_SOURCE_KIND", "yaml")
	t.Setenv("CITIZENS_SOURCE_PATH", path)
	t.Setenv("CITIZENS_TODAY", "2024-06-15")
	t.Setenv("CITIZENS_LOG_LEVEL", "error")
	return dir
}

func runViews(t *testing.T, args ...string) []citizen.PersonView {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	var out []citizen.PersonView
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	return out
}

func viewIDs(views []citizen.PersonView) []int {
	out := make([]int, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func TestRun_Queries(t *testing.T) {
	setupEnv(t)

	require.Equal(t, []int{1, 2, 3, 4, 5}, viewIDs(runViews(t)))
	require.Equal(t, []int{4, 2, 3, 1, 5}, viewIDs(runViews(t, "-list", "age")))
	require.Equal(t, []int{4, 5, 2, 3, 1}, viewIDs(runViews(t, "-list", "last_name")))
	require.Equal(t, []int{2, 3}, viewIDs(runViews(t, "-last-name", "JOHNSON")))

	young := runViews(t, "-age-min", "20", "-age-max", "28")
	require.Equal(t, []int{4, 2, 3}, viewIDs(young))
	require.Equal(t, 22, young[0].Age)
}

func TestRun_FindByID(t *testing.T) {
	setupEnv(t)

	var stdout, stderr bytes.Buffer
	require.Equal(t, exitOK, run(context.Background(), []string{"-id", "2"}, &stdout, &stderr))

	var v citizen.PersonView
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &v))
	require.Equal(t, "Emma", v.FirstName)
	require.Equal(t, 25, v.Age)

	stdout.Reset()
	require.Equal(t, exitError, run(context.Background(), []string{"-id", "9"}, &stdout, &stderr))
	require.Empty(t, stdout.String())
}

func TestRun_UsageErrors(t *testing.T) {
	setupEnv(t)

	var stdout, stderr bytes.Buffer
	require.Equal(t, exitUsage, run(context.Background(), []string{"-id", "1", "-last-name", "Brown"}, &stdout, &stderr))
	require.Equal(t, exitUsage, run(context.Background(), []string{"-list", "height"}, &stdout, &stderr))
	require.Equal(t, exitUsage, run(context.Background(), []string{"-bogus"}, &stdout, &stderr))
}

func TestRun_WritesMetrics(t *testing.T) {
	dir := setupEnv(t)
	metricsPath := filepath.Join(dir, "citizens.prom")
	t.Setenv("CITIZENS_METRICS_PATH", metricsPath)

	runViews(t, "-last-name", "Johnson")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "citizens_registered 5")
	require.Contains(t, string(data), `citizens_queries_total{query="last_name"} 1`)
}

func TestRun_SourceError(t *testing.T) {
	setupEnv(t)
	t.Setenv("CITIZENS_SOURCE_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	var stdout, stderr bytes.Buffer
	require.Equal(t, exitError, run(context.Background(), nil, &stdout, &stderr))
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/teyvatcalc/internal/calcerr"
	"github.com/udisondev/teyvatcalc/internal/data"
	"github.com/udisondev/teyvatcalc/internal/game/calc"
	"github.com/udisondev/teyvatcalc/internal/model"
	"github.com/udisondev/teyvatcalc/internal/testutil"
)

const simpleYAML = `
mode: simple
character:
  name: Hu Tao
  element: pyro
  level: 90
  base_atk: 300
  weapon: {name: Deathmatch, base_attack: 311}
  talents: {normal: 1, skill: 1, burst: 1}
`

const teamJSON = `{
  "mode": "team",
  "build_ref": {"uid": "700000001", "name": "Hu Tao"},
  "team_members": [{"name": "Bennett"}, {"name": "Zhongli"}]
}`

type stubBuilds map[string]*model.CharacterBuild

func (s stubBuilds) GetBuild(_ context.Context, uid, name string) (*model.CharacterBuild, error) {
	if uid == "broken" {
		return nil, errors.New("connection refused")
	}
	return s[uid+"/"+name], nil
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newEngine(t *testing.T) *calc.Engine {
	t.Helper()
	e, err := calc.New(data.MustDefaultReference(), calc.DefaultOptions())
	require.NoError(t, err)
	return e
}

func TestLoadRequest(t *testing.T) {
	dir := t.TempDir()
	huTao := testutil.HuTaoBuild()
	builds := stubBuilds{testutil.Fixtures.UID + "/Hu Tao": &huTao}

	req, err := loadRequest(context.Background(), writeFile(t, dir, "simple.yml", simpleYAML), nil)
	require.NoError(t, err)
	assert.IsType(t, calc.SimpleRequest{}, req)

	req, err = loadRequest(context.Background(), writeFile(t, dir, "team.json", teamJSON), builds)
	require.NoError(t, err)
	team, ok := req.(calc.TeamRequest)
	require.True(t, ok)
	require.NotNil(t, team.Character)
	assert.Equal(t, huTao, *team.Character)
}

func TestLoadRequestErrors(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "team.json", teamJSON)

	tests := []struct {
		name   string
		path   string
		builds BuildSource
		want   string
	}{
		{"unsupported extension", writeFile(t, dir, "req.toml", ""), nil, "unsupported request file"},
		{"missing file", filepath.Join(dir, "absent.json"), nil, "reading request"},
		{"build store disabled", ref, nil, "needs the build store"},
		{"build not found", ref, stubBuilds{}, "not found"},
		{"store failure", writeFile(t, dir, "broken.json", `{"mode":"simple","build_ref":{"uid":"broken","name":"x"}}`), stubBuilds{}, "connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadRequest(context.Background(), tt.path, tt.builds)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := loadRequest(context.Background(), writeFile(t, dir, "mode.json", `{"mode":"meta"}`), nil)
	require.ErrorIs(t, err, calcerr.ErrConfiguration)
}

func TestEvaluateKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.yaml", simpleYAML),
		writeFile(t, dir, "b.json", `{"mode":"simple"}`),
		writeFile(t, dir, "c.yaml", simpleYAML),
	}

	results, err := evaluate(context.Background(), newEngine(t), nil, paths, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, paths[i], r.File)
	}
	require.NotNil(t, results[0].Result)
	assert.Equal(t, "Hu Tao", results[0].Result.CharacterName)
	assert.Nil(t, results[1].Result)
	assert.Contains(t, results[1].Error, "requires a main character")
	assert.Equal(t, results[0].Result, results[2].Result)
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := writeFile(t, t.TempDir(), "a.yaml", simpleYAML)
	_, err := evaluate(ctx, newEngine(t), nil, []string{path}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun(t *testing.T) {
	t.Setenv("TEYVAT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	dir := t.TempDir()
	path := writeFile(t, dir, "simple.yaml", simpleYAML)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{path}, &out))

	var got []struct {
		File   string `json:"file"`
		Result struct {
			Mode            string            `json:"mode"`
			DamageBreakdown []json.RawMessage `json:"damage_breakdown"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "simple", got[0].Result.Mode)
	assert.Len(t, got[0].Result.DamageBreakdown, 3)
}

func TestRunReportsFailures(t *testing.T) {
	t.Setenv("TEYVAT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	path := writeFile(t, t.TempDir(), "bad.json", `{"mode":"advanced","character":{"name":"Hu Tao","element":"pyro"}}`)

	var out bytes.Buffer
	err := run(context.Background(), []string{path}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 requests failed")
	assert.Contains(t, out.String(), "advanced mode requires at least one scenario")

	require.Error(t, run(context.Background(), nil, &out))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "WARN", parseLogLevel("warn").String())
	assert.Equal(t, "INFO", parseLogLevel("verbose").String())
}

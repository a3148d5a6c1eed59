package render_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/disksort/pkg/disks"
	"github.com/matzehuels/disksort/pkg/errors"
	"github.com/matzehuels/disksort/pkg/render"
	"github.com/matzehuels/disksort/pkg/sorting"
)

func twoLightRun(t *testing.T) sorting.Run {
	t.Helper()
	run, err := sorting.Record(string(sorting.Lawnmower), disks.MustNew(2))
	require.NoError(t, err)
	return run
}

func TestText(t *testing.T) {
	want := "lawnmower\n" +
		"start            D L D L\n" +
		"pass 1  ->  2    L D L D\n" +
		"pass 2  <-  1    L L D D\n" +
		"swaps 3, passes 2, comparisons 5\n"
	assert.Equal(t, want, string(render.Text(twoLightRun(t))))
}

func TestTextWithoutSteps(t *testing.T) {
	before := disks.MustNew(2)
	res, err := sorting.SortLeftToRight(before)
	require.NoError(t, err)

	out := string(render.Text(sorting.Run{Before: before, Result: res}))
	assert.Contains(t, out, "end              L L D D\n")
	assert.NotContains(t, out, "pass 1")
}

func TestJSON(t *testing.T) {
	data, err := render.JSON(twoLightRun(t))
	require.NoError(t, err)

	var doc struct {
		Before string `json:"before"`
		Result struct {
			SwapCount int `json:"swap_count"`
		} `json:"result"`
		Steps []struct {
			Direction string `json:"direction"`
		} `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "D L D L", doc.Before)
	assert.Equal(t, 3, doc.Result.SwapCount)
	require.Len(t, doc.Steps, 2)
	assert.Equal(t, "right-to-left", doc.Steps[1].Direction)
}

func TestYAML(t *testing.T) {
	data, err := render.YAML(twoLightRun(t))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "D L D L", doc["before"])

	result, ok := doc["result"].(map[string]any)
	require.True(t, ok, "result should be a mapping")
	assert.Equal(t, "lawnmower", result["algorithm"])
	assert.Equal(t, "L L D D", result["after"])
	assert.Equal(t, 3, result["swap_count"])
}

func TestToDOT(t *testing.T) {
	dot := render.ToDOT(twoLightRun(t))

	assert.True(t, strings.HasPrefix(dot, "digraph disks {\n"))
	assert.Contains(t, dot, `r0 [shape=plaintext, fixedsize=false, style="", label="start", fontsize=10];`)
	assert.Contains(t, dot, `label="2 right-to-left (1)"`)
	assert.Contains(t, dot, "r0_0 [fillcolor=gray20];")
	assert.Contains(t, dot, "r2_0 [fillcolor=white];")
	assert.Contains(t, dot, "r1 -> r2;")
	assert.NotContains(t, dot, "r3")
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := render.Render(context.Background(), "png", twoLightRun(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestRenderSVG(t *testing.T) {
	svg, err := render.Render(context.Background(), render.FormatSVG, twoLightRun(t))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
	assert.Contains(t, string(svg), "</svg>")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/svg+xml", render.ContentType(render.FormatSVG))
	assert.Equal(t, "text/plain; charset=utf-8", render.ContentType(render.FormatText))
}

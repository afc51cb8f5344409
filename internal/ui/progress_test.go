package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridgec/internal/buildpipeline"
)

func TestApplyTracksFiles(t *testing.T) {
	model, ok := NewProgressModel("check", []string{"a.bdl", "b.bdl"}, nil).(*checkModel)
	require.True(t, ok)

	model.apply(buildpipeline.Event{File: "a.bdl", Stage: buildpipeline.StageParse, Status: buildpipeline.StatusWorking})
	assert.Equal(t, "parsing", model.files[0].label())
	assert.InDelta(t, 0.25, model.percent(), 1e-9)

	model.apply(buildpipeline.Event{File: "a.bdl", Stage: buildpipeline.StageVerify, Status: buildpipeline.StatusError, Elapsed: 1500 * time.Microsecond})
	model.apply(buildpipeline.Event{File: "b.bdl", Stage: buildpipeline.StageLoad, Status: buildpipeline.StatusCached})
	model.apply(buildpipeline.Event{File: "unknown.bdl", Status: buildpipeline.StatusDone})
	assert.InDelta(t, 1.0, model.percent(), 1e-9)
	assert.Equal(t, tally{failed: 1, cached: 1}, model.tally())

	view := model.View()
	for _, want := range []string{"check 2/2", "error", "cached", "a.bdl", "b.bdl", "1.5ms", "1 failed"} {
		assert.True(t, strings.Contains(view, want), "view misses %q:\n%s", want, view)
	}
}

func TestLabelForQueuedAndLoading(t *testing.T) {
	f := fileState{path: "x.bdl", stage: buildpipeline.StageLoad, status: buildpipeline.StatusQueued}
	assert.Equal(t, "queued", f.label())
	f.status = buildpipeline.StatusWorking
	assert.Equal(t, "loading", f.label())
	assert.False(t, f.finished())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "interfa...", truncate("interfaces/geo.bdl", 10))
	assert.Equal(t, "geo.bdl", truncate("geo.bdl", 10))
}

package delaunay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildContextSilentWhenNotVerbose(t *testing.T) {
	ctx := NewBuildContext(false)
	ctx.Logf("this should not be recorded")
	assert.Empty(t, ctx.log)
}

func TestBuildContextRecordsWhenVerbose(t *testing.T) {
	ctx := NewBuildContext(true)
	ctx.Logf("step %d", 1)
	ctx.Logf("step %d", 2)
	assert.Equal(t, []string{"step 1", "step 2"}, ctx.log)
}

func TestBuildContextNilReceiverIsSafe(t *testing.T) {
	var ctx *BuildContext
	assert.NotPanics(t, func() {
		ctx.Logf("noop")
		ctx.DumpLog("noop")
	})
}

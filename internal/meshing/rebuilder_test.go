package meshing

import (
	"testing"
	"time"

	"mini-voxel/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuilderProducesMesh(t *testing.T) {
	r := NewRebuilder()
	defer r.Close()

	g := mustGrid(t, 3, 3, 3)
	g.Set(1, 1, 1, world.BlockTypeGrass)
	require.True(t, r.Submit(g.Clone()))

	select {
	case res := <-r.Results():
		assert.Equal(t, g.Revision(), res.Revision)
		assert.Equal(t, 36, res.Vertices.VertexCount())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mesh")
	}
}

func TestRebuilderSnapshotIsolation(t *testing.T) {
	r := NewRebuilder()
	defer r.Close()

	g := mustGrid(t, 3, 3, 3)
	g.Set(1, 1, 1, world.BlockTypeGrass)
	require.True(t, r.Submit(g.Clone()))
	// edits after submission must not leak into the pending job
	g.Set(0, 0, 0, world.BlockTypeGrass)

	select {
	case res := <-r.Results():
		assert.Equal(t, 6, res.Vertices.FaceCount())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for mesh")
	}
}

func TestRebuilderLatest(t *testing.T) {
	r := NewRebuilder()
	defer r.Close()

	_, ok := r.Latest()
	assert.False(t, ok)

	g := mustGrid(t, 2, 2, 2)
	g.Fill(world.BlockTypeDirt)
	require.True(t, r.Submit(g.Clone()))

	assert.Eventually(t, func() bool {
		res, ok := r.Latest()
		return ok && res.Vertices.FaceCount() == 24
	}, 2*time.Second, 5*time.Millisecond)
}

func TestRebuilderClose(t *testing.T) {
	r := NewRebuilder()
	r.Close()
	r.Close()

	g := mustGrid(t, 1, 1, 1)
	assert.False(t, r.Submit(g))
}

func TestRebuilderDropsSupersededSnapshot(t *testing.T) {
	r := NewRebuilder()
	defer r.Close()

	g := mustGrid(t, 3, 3, 3)
	snapshot := func(x int) *world.Grid {
		g.Set(x, 0, 0, world.BlockTypeDirt)
		return g.Clone()
	}

	// fill the result buffer, then park the worker on a second send
	first := snapshot(0)
	require.True(t, r.Submit(first))
	require.Eventually(t, func() bool { return len(r.results) == 1 }, 2*time.Second, time.Millisecond)
	second := snapshot(1)
	require.True(t, r.Submit(second))
	require.Eventually(t, func() bool { return len(r.jobs) == 0 }, 2*time.Second, time.Millisecond)

	// the worker is blocked until the first result is read, so these queue up
	stale := snapshot(2)
	require.True(t, r.Submit(stale))
	g.Set(0, 1, 0, world.BlockTypeGrass)
	latest := g.Clone()
	require.True(t, r.Submit(latest))
	assert.Len(t, r.jobs, 1, "only one pending snapshot is kept")

	var got []uint64
	for len(got) < 3 {
		select {
		case res := <-r.Results():
			got = append(got, res.Revision)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out, got revisions %v", got)
		}
	}
	assert.Equal(t, []uint64{first.Revision(), second.Revision(), latest.Revision()}, got)
	assert.NotContains(t, got, stale.Revision())
}

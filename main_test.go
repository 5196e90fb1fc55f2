package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/task"
	"github.com/yudono/gta/utils/config"
	"gopkg.in/yaml.v2"
)

func TestPrintGraph(t *testing.T) {
	ctx := task.NewContext(config.Default())
	ctx.BuildCity()

	var buf bytes.Buffer
	printGraph(&buf, ctx)
	out := buf.String()
	assert.Contains(t, out, "roads: 13 horizontal, 13 vertical")
	assert.Contains(t, out, "vehicle: 52 lanes, 169 junctions, lanes per junction map[4:169]")
	assert.Contains(t, out, "sidewalk: 52 lanes, 169 junctions")
	assert.Contains(t, out, "buildings: 729")
}

func TestDumpMotions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "motions.yaml")
	err := dumpMotions(path, []entity.AgentMotion{
		{ID: 1, Kind: entity.Vehicle, Position: orb.Point{3, -4}, Heading: 1.5, LaneID: "h_1_right", Progress: .5},
		{ID: 2, Kind: entity.Pedestrian, Position: orb.Point{1, 2}, Animation: entity.AnimationRun, LaneID: "sw_v_4_up", Progress: .1},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []motionRecord
	require.NoError(t, yaml.UnmarshalStrict(data, &records))
	require.Len(t, records, 2)
	assert.Equal(t, motionRecord{ID: 1, Kind: "vehicle", X: 3, Z: -4, Heading: 1.5, Lane: "h_1_right", Progress: .5}, records[0])
	assert.Equal(t, "Run", records[1].Animation)
	assert.Equal(t, "pedestrian", records[1].Kind)
}

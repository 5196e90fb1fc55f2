package building

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/utils/config"
	"github.com/yudono/gta/utils/randengine"
)

// cell 一个非街道的网格单元
type cell struct {
	id       int32
	row, col int
	center   orb.Point
}

// Building 建筑
// 功能：占据一个非街道网格单元，以轴对齐矩形作为静态障碍物
type Building struct {
	id        int32
	row, col  int
	footprint entity.Obstacle

	generator *randengine.Engine // 随机数生成器，以种子和ID派生
}

// newBuilding 在网格单元内随机生成建筑占地
// 参数：c-网格单元，city-城市参数，seed-城市种子
// 说明：边长为 BlockSize × U(MinFill, MaxFill)，中心在单元内抖动但不越出单元
func newBuilding(c cell, city config.City, seed uint64) *Building {
	b := &Building{
		id:        c.id,
		row:       c.row,
		col:       c.col,
		generator: randengine.New(randengine.Derive(seed, uint64(c.id))),
	}
	fill := city.Building
	width := city.BlockSize * b.generator.Uniform(fill.MinFill, fill.MaxFill)
	depth := city.BlockSize * b.generator.Uniform(fill.MinFill, fill.MaxFill)
	slackX := (city.BlockSize - width) / 2
	slackZ := (city.BlockSize - depth) / 2
	b.footprint = entity.Obstacle{
		X:     c.center.X() + b.generator.Uniform(-slackX, slackX),
		Z:     c.center.Y() + b.generator.Uniform(-slackZ, slackZ),
		Width: width,
		Depth: depth,
	}
	return b
}

func (b *Building) String() string {
	return fmt.Sprintf("Building %d(%d, %d)", b.id, b.row, b.col)
}

func (b *Building) ID() int32 {
	return b.id
}

func (b *Building) Footprint() entity.Obstacle {
	return b.footprint
}

package clock

import (
	"fmt"

	"github.com/yudono/gta/utils/config"
)

// Clock 仿真时钟
// 功能：记录当前步数与仿真时间，支持外部帧时钟传入的可变时间间隔
// 说明：headless运行时每步使用固定的DT；接入渲染层时由每帧的delta-time驱动
type Clock struct {
	DT         float64 // 默认时间间隔（秒）
	START_STEP int32   // 起始步
	END_STEP   int32   // 结束步，模拟区间[START, END)

	T            float64 // 当前时间（秒）
	InternalStep int32   // 当前步数
	LastDT       float64 // 最近一步实际使用的时间间隔
}

// New 根据配置创建新的时钟实例
// 参数：stepConfig-控制步配置
// 返回：初始化完成的时钟实例
func New(stepConfig config.ControlStep) *Clock {
	c := &Clock{
		DT:         stepConfig.Interval,
		START_STEP: stepConfig.Start,
		END_STEP:   stepConfig.Start + stepConfig.Total,
	}
	c.Init()
	return c
}

// Init 重置时钟状态
func (c *Clock) Init() {
	c.InternalStep = c.START_STEP
	c.T = float64(c.InternalStep) * c.DT
	c.LastDT = 0
}

// Tick 推进一步
// 功能：按外部传入的时间间隔推进时钟，步数总是加一
// 返回：本步实际使用的时间间隔
// 说明：dt<=0视为暂停帧，仿真时间不变，返回0
func (c *Clock) Tick(dt float64) float64 {
	if dt < 0 {
		dt = 0
	}
	c.InternalStep++
	c.T += dt
	c.LastDT = dt
	return dt
}

// Done 是否已到达结束步
func (c *Clock) Done() bool {
	return c.InternalStep >= c.END_STEP
}

// String 获取时钟的字符串表示（HH:MM:SS）
func (c *Clock) String() string {
	h, m, s := c.GetHourMinuteSecond()
	return fmt.Sprintf("%02d:%02d:%02d", h, m, int(s))
}

// GetHourMinuteSecond 获取当前时间的小时、分钟、秒
// 返回：小时、分钟、秒（秒为浮点数，支持亚秒级精度）
func (c *Clock) GetHourMinuteSecond() (int, int, float64) {
	hour := int(c.T) / 3600
	minute := int(c.T) % 3600 / 60
	second := c.T - float64(hour*3600+minute*60)
	return hour, minute, second
}

package task

import (
	"flag"
	"math"

	"github.com/paulmach/orb"
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// prepare 准备阶段
// 功能：应用本步的增删并保存快照，使外部读取到完整的一帧，下一步的检测读取这份快照
// 说明：两个种群互不读取对方的状态，顺序执行即可
func (ctx *Context) prepare() {
	ctx.vehicles.Prepare()
	ctx.pedestrians.Prepare()
}

// update 更新阶段，每步执行一次
// 参数：dt-本步时间间隔，reference-参考角色位置（可为nil）
func (ctx *Context) update(dt float64, reference *orb.Point) {
	ctx.vehicles.Update(dt, reference)
	ctx.pedestrians.Update(dt, reference)
}

// Step 推进一步
// 功能：由外部帧时钟驱动，完成一次更新与准备
// 参数：dt-帧间隔（<=0为暂停帧），reference-参考角色位置（可为nil）
// 算法说明：
// 1. 推进时钟
// 2. 定期输出心跳日志
// 3. 更新阶段：推进所有agent，移除过期agent并补充生成；暂停帧跳过该阶段
// 4. 准备阶段：应用增删、保存快照
func (ctx *Context) Step(dt float64, reference *orb.Point) {
	dt = ctx.clock.Tick(dt)
	if reference != nil {
		ctx.reference = *reference
	}
	if *heartBeatInterval > 0 && ctx.clock.InternalStep%int32(*heartBeatInterval) == 0 {
		hour, minute, second := ctx.clock.GetHourMinuteSecond()
		log.Infof(
			"STEP: %d(%d:%d:%.2f) vehicle: %d %+v pedestrian: %d %+v",
			ctx.clock.InternalStep,
			hour, minute, second,
			ctx.vehicles.Len(), ctx.vehicles.Stats(),
			ctx.pedestrians.Len(), ctx.pedestrians.Stats(),
		)
	}
	if dt > 0 {
		ctx.update(dt, reference)
	}
	ctx.prepare()
}

// orbit 参考角色在headless运行时绕初始位置做圆周运动
func (ctx *Context) orbit() orb.Point {
	r := ctx.runtimeConfig.All.Reference
	if r.OrbitRadius <= 0 {
		return orb.Point{r.X, r.Z}
	}
	angle := r.OrbitSpeed * ctx.clock.T
	return orb.Point{
		r.X + r.OrbitRadius*math.Sin(angle),
		r.Z + r.OrbitRadius*math.Cos(angle),
	}
}

// Run 运行
// 功能：headless运行，以配置的固定间隔推进到结束步，参考角色按环绕轨迹移动
func (ctx *Context) Run() {
	ctx.Init()
	for !ctx.clock.Done() {
		reference := ctx.orbit()
		ctx.Step(ctx.clock.DT, &reference)
	}
	log.Infof("simulation finished at step %d, vehicle: %+v pedestrian: %+v",
		ctx.clock.InternalStep, ctx.vehicles.Stats(), ctx.pedestrians.Stats())
}

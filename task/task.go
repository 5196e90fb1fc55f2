package task

import (
	"github.com/paulmach/orb"
	"github.com/yudono/gta/clock"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/entity/agent"
	"github.com/yudono/gta/entity/building"
	"github.com/yudono/gta/entity/junction"
	"github.com/yudono/gta/entity/lane"
	"github.com/yudono/gta/entity/road"
	"github.com/yudono/gta/utils/config"
	"github.com/yudono/gta/utils/randengine"
)

// 种群随机种子派生编号
const (
	vehicleSeedID    = 1
	pedestrianSeedID = 2
)

// Network 一套车道方案生成的车道与路口
type Network struct {
	Lanes     *lane.LaneManager
	Junctions *junction.JunctionManager
}

// BuildNetwork 生成车道网络
// 功能：由街道和车道方案生成车道与路口，是网格参数与方案的纯函数
// 参数：roadManager-已初始化的街道管理器，scheme-车道方案（Offset已解析），laneWidth-车道宽度
// 返回：车道网络
// 说明：车道与路口相连的横向容差为 Offset + laneWidth/2
func BuildNetwork(roadManager entity.IRoadManager, scheme config.LaneScheme, laneWidth float64) Network {
	laneManager := lane.NewManager(scheme)
	laneManager.Init(roadManager.Roads())
	junctionManager := junction.NewManager()
	junctionManager.Init(roadManager, laneManager, scheme.Offset+laneWidth/2)
	return Network{Lanes: laneManager, Junctions: junctionManager}
}

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态
// 说明：城市（街道、车道、路口、建筑）在Init时生成且之后不变；车辆与行人两个种群逐帧推进
type Context struct {
	// 时钟
	clock *clock.Clock

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig

	// Road管理器
	roadManager *road.RoadManager
	// 车行道网络
	vehicleNetwork Network
	// 人行道网络
	sidewalkNetwork Network
	// 建筑管理器
	buildingManager *building.BuildingManager

	// 车辆种群
	vehicles *agent.Manager
	// 行人种群
	pedestrians *agent.Manager

	// 参考角色（玩家）位置
	reference orb.Point
}

// NewContext 创建新的仿真任务上下文
// 参数：c-已补全默认值并校验的配置
// 返回：尚未生成城市的Context实例，需调用Init
func NewContext(c config.Config) *Context {
	ctx := &Context{}
	ctx.clock = clock.New(c.Control.Step)
	ctx.runtimeConfig = config.NewRuntimeConfig(c)

	seed := c.Control.Seed
	ctx.roadManager = road.NewManager()
	ctx.buildingManager = building.NewManager()
	ctx.vehicles = agent.NewManager(
		entity.Vehicle, c.Populations.Vehicle, c.PedestrianBehavior,
		randengine.Derive(seed, vehicleSeedID),
	)
	ctx.pedestrians = agent.NewManager(
		entity.Pedestrian, c.Populations.Pedestrian, c.PedestrianBehavior,
		randengine.Derive(seed, pedestrianSeedID),
	)
	ctx.reference = orb.Point{c.Reference.X, c.Reference.Z}
	return ctx
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

func (ctx *Context) RoadManager() entity.IRoadManager {
	return ctx.roadManager
}

func (ctx *Context) VehicleNetwork() Network {
	return ctx.vehicleNetwork
}

func (ctx *Context) SidewalkNetwork() Network {
	return ctx.sidewalkNetwork
}

func (ctx *Context) BuildingManager() entity.IBuildingManager {
	return ctx.buildingManager
}

func (ctx *Context) Vehicles() *agent.Manager {
	return ctx.vehicles
}

func (ctx *Context) Pedestrians() *agent.Manager {
	return ctx.pedestrians
}

// Reference 参考角色当前位置
func (ctx *Context) Reference() orb.Point {
	return ctx.reference
}

// BuildCity 生成城市：街道、车行道与人行道网络、建筑
func (ctx *Context) BuildCity() {
	rc := ctx.runtimeConfig
	city := rc.All.City
	ctx.roadManager.Init(city)
	ctx.vehicleNetwork = BuildNetwork(ctx.roadManager, rc.Vehicle, city.LaneWidth)
	ctx.sidewalkNetwork = BuildNetwork(ctx.roadManager, rc.Sidewalk, city.LaneWidth)
	ctx.buildingManager.Init(city, ctx.roadManager, rc.C.Seed)

	log.Infof("Road: %v", len(ctx.roadManager.Roads()))
	log.Infof("Lane: %v (vehicle) %v (sidewalk)", ctx.vehicleNetwork.Lanes.Len(), ctx.sidewalkNetwork.Lanes.Len())
	log.Infof("Junction: %v (vehicle) %v (sidewalk)", ctx.vehicleNetwork.Junctions.Len(), ctx.sidewalkNetwork.Junctions.Len())
	log.Infof("Building: %v", ctx.buildingManager.Len())
}

// Init 初始化
// 功能：重置时钟，生成城市，在参考角色的初始位置附近生成初始种群
func (ctx *Context) Init() {
	ctx.clock.Init()
	ctx.BuildCity()

	obstacles := ctx.buildingManager.Obstacles()
	ctx.reference = ctx.orbit()
	ref := ctx.reference
	ctx.vehicles.Init(ctx.vehicleNetwork.Lanes.Lanes(), ctx.vehicleNetwork.Junctions, obstacles, &ref)
	ctx.pedestrians.Init(ctx.sidewalkNetwork.Lanes.Lanes(), ctx.sidewalkNetwork.Junctions, obstacles, &ref)
}

// Motions 所有agent的当前状态（车辆在前）
func (ctx *Context) Motions() []entity.AgentMotion {
	return append(ctx.vehicles.Motions(), ctx.pedestrians.Motions()...)
}

package config

// ControlStep 指定模拟器模拟时间范围和间隔的配置项
// 功能：定义仿真时间控制参数
// 说明：interval为无外部帧时钟时（headless运行）每步使用的时间间隔
type ControlStep struct {
	Start    int32   `yaml:"start"`    // 开始步数
	Total    int32   `yaml:"total"`    // 总步数
	Interval float64 `yaml:"interval"` // 每步的时间间隔（秒）
}

// Control 模拟器控制配置
type Control struct {
	Step ControlStep `yaml:"step"`
	Seed uint64      `yaml:"seed,omitempty"` // 随机种子，城市生成与各类随机决策都由它派生
}

// Building 建筑生成参数
type Building struct {
	MinFill float64 `yaml:"min_fill"` // 建筑边长占街区边长的最小比例
	MaxFill float64 `yaml:"max_fill"` // 建筑边长占街区边长的最大比例
}

// City 城市网格参数，启动后不可修改
type City struct {
	GridSize      int      `yaml:"grid_size"`      // 网格行列数
	BlockSize     float64  `yaml:"block_size"`     // 网格单元边长
	LaneWidth     float64  `yaml:"lane_width"`     // 车道宽度
	StreetEvery   int      `yaml:"street_every"`   // 每隔多少条网格线一条街道
	StreetResidue int      `yaml:"street_residue"` // 街道所在网格线的余数
	Building      Building `yaml:"building"`
}

// Range 闭区间
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Turn 路口转向参数
type Turn struct {
	Probability   float64 `yaml:"probability"`    // 进入路口后转向的概率
	Cooldown      float64 `yaml:"cooldown"`       // 一次转向判定后的冷却时间（秒）
	TriggerRadius float64 `yaml:"trigger_radius"` // 路口触发半径
	Window        Range   `yaml:"window"`         // 允许判定转向的progress窗口（开区间）
}

// Spawn 生成位置约束
type Spawn struct {
	Radius               float64 `yaml:"radius,omitempty"`                 // 只在参考点该半径内的车道上生成，0表示不限制
	MinSpacing           float64 `yaml:"min_spacing"`                      // 与现有agent的最小间距
	MinReferenceDistance float64 `yaml:"min_reference_distance,omitempty"` // 与参考点（玩家）的最小距离
	Progress             Range   `yaml:"progress"`                         // 允许生成的车道progress区间
}

// LaneScheme 车道集合的命名与偏移方案
type LaneScheme struct {
	Prefix string  `yaml:"prefix,omitempty"` // 车道ID前缀，用于区分车道集合
	Offset float64 `yaml:"offset,omitempty"` // 车道中心线距街道中心线的偏移，0表示lane_width/2
}

// Population 一类agent（车辆或行人）的参数
type Population struct {
	Target        int        `yaml:"target"`                   // 目标数量
	Speed         Range      `yaml:"speed"`                    // 随机速度范围
	Radius        float64    `yaml:"radius"`                   // 与建筑做碰撞检测时的半径
	Turn          Turn       `yaml:"turn"`                     // 转向参数
	Spawn         Spawn      `yaml:"spawn"`                    // 生成参数
	Lane          LaneScheme `yaml:"lane"`                     // 车道方案
	AvoidAgents   bool       `yaml:"avoid_agents,omitempty"`   // 是否与同类agent做距离检测
	AgentDistance float64    `yaml:"agent_distance,omitempty"` // 与同类agent的最小距离
}

// Populations 所有agent类别
type Populations struct {
	Vehicle    Population `yaml:"vehicle"`
	Pedestrian Population `yaml:"pedestrian"`
}

// PedestrianBehavior 行人跟随玩家的行为阈值
type PedestrianBehavior struct {
	FollowRadius float64 `yaml:"follow_radius"` // 进入跟随模式的距离
	RunDistance  float64 `yaml:"run_distance"`  // 跟随模式下超过该距离则为Run动画
	StopDistance float64 `yaml:"stop_distance"` // 跟随模式下小于该距离则为Idle动画
}

// Reference 参考角色（玩家）在headless运行时的位置与环绕运动
type Reference struct {
	X           float64 `yaml:"x"`
	Z           float64 `yaml:"z"`
	OrbitRadius float64 `yaml:"orbit_radius,omitempty"`
	OrbitSpeed  float64 `yaml:"orbit_speed,omitempty"` // 弧度/秒
}

// Config YAML配置文件的根结构
type Config struct {
	Control            Control            `yaml:"control"`
	City               City               `yaml:"city"`
	Populations        Populations        `yaml:"populations"`
	PedestrianBehavior PedestrianBehavior `yaml:"pedestrian_behavior"`
	Reference          Reference          `yaml:"reference"`
}

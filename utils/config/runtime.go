package config

// RuntimeConfig 运行时配置
// 功能：存储校验后的配置以及由网格参数推导出的常用量
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 全局控制配置

	HalfExtent float64    // 城市半边长，网格索引i的世界坐标为 i*BlockSize - HalfExtent
	Vehicle    LaneScheme // 车辆车道方案（Offset已解析）
	Sidewalk   LaneScheme // 行人道方案（Offset已解析）
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：解析车道方案的默认偏移，计算城市范围
// 参数：config-已补全默认值的配置
// 返回：运行时配置指针
func NewRuntimeConfig(config Config) *RuntimeConfig {
	rc := &RuntimeConfig{}

	rc.All = config
	rc.C = config.Control
	rc.HalfExtent = float64(config.City.GridSize) * config.City.BlockSize / 2
	rc.Vehicle = resolveScheme(config.Populations.Vehicle.Lane, config.City.LaneWidth)
	rc.Sidewalk = resolveScheme(config.Populations.Pedestrian.Lane, config.City.LaneWidth)
	return rc
}

func resolveScheme(s LaneScheme, laneWidth float64) LaneScheme {
	if s.Offset <= 0 {
		s.Offset = laneWidth / 2
	}
	return s
}

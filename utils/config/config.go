package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v2"
)

var (
	ErrInvalid = errors.New("invalid config")
)

const (
	MovementScale    = 0.01 // progress += speed * dt * MovementScale
	ExpireProgress   = 1.2  // progress超过该值的agent被移除并重新生成
	MaxSpawnAttempts = 20   // 单次生成的最大采样次数
)

// Default 返回默认配置
// 说明：与演示城市一致，40x40网格，每3条网格线一条双向街道
func Default() Config {
	return Config{
		Control: Control{
			Step: ControlStep{Start: 0, Total: 3600, Interval: 1. / 60},
			Seed: 42,
		},
		City: City{
			GridSize:      40,
			BlockSize:     15,
			LaneWidth:     1.2,
			StreetEvery:   3,
			StreetResidue: 1,
			Building:      Building{MinFill: .5, MaxFill: .8},
		},
		Populations: Populations{
			Vehicle: Population{
				Target: 20,
				Speed:  Range{Min: 2, Max: 4},
				Radius: 1.5,
				Turn: Turn{
					Probability:   .3,
					Cooldown:      2,
					TriggerRadius: 3,
					Window:        Range{Min: .4, Max: .6},
				},
				Spawn: Spawn{
					MinSpacing:           10,
					MinReferenceDistance: 8,
					Progress:             Range{Min: .1, Max: .9},
				},
			},
			Pedestrian: Population{
				Target: 30,
				Speed:  Range{Min: .3, Max: .6},
				Radius: .5,
				Turn: Turn{
					Probability:   .4,
					Cooldown:      2,
					TriggerRadius: 3.5,
					Window:        Range{Min: .4, Max: .6},
				},
				Spawn: Spawn{
					Radius:               60,
					MinSpacing:           3,
					MinReferenceDistance: 4,
					Progress:             Range{Min: .1, Max: .9},
				},
				Lane:          LaneScheme{Prefix: "sw_", Offset: 2.5},
				AvoidAgents:   true,
				AgentDistance: 1,
			},
		},
		PedestrianBehavior: PedestrianBehavior{
			FollowRadius: 15,
			RunDistance:  8,
			StopDistance: 2,
		},
		Reference: Reference{OrbitRadius: 40, OrbitSpeed: .05},
	}
}

// Parse 解析YAML配置，未填写的字段使用默认值
// 功能：在默认配置之上严格解析YAML（未知字段报错），补全显式写为0的字段并校验
// 参数：data-YAML内容
// 返回：配置与错误
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// WithDefaults 对零值字段填充默认值
func (c Config) WithDefaults() Config {
	d := Default()
	if c.Control.Step.Interval <= 0 {
		c.Control.Step.Interval = d.Control.Step.Interval
	}
	if c.Control.Step.Total <= 0 {
		c.Control.Step.Total = d.Control.Step.Total
	}
	if c.Control.Seed == 0 {
		c.Control.Seed = d.Control.Seed
	}
	if c.City.GridSize == 0 {
		c.City.GridSize = d.City.GridSize
	}
	if c.City.BlockSize == 0 {
		c.City.BlockSize = d.City.BlockSize
	}
	if c.City.LaneWidth == 0 {
		c.City.LaneWidth = d.City.LaneWidth
	}
	if c.City.StreetEvery == 0 {
		c.City.StreetEvery = d.City.StreetEvery
		c.City.StreetResidue = d.City.StreetResidue
	}
	if c.City.Building == (Building{}) {
		c.City.Building = d.City.Building
	}
	c.Populations.Vehicle = c.Populations.Vehicle.withDefaults(d.Populations.Vehicle)
	c.Populations.Pedestrian = c.Populations.Pedestrian.withDefaults(d.Populations.Pedestrian)
	if c.PedestrianBehavior == (PedestrianBehavior{}) {
		c.PedestrianBehavior = d.PedestrianBehavior
	}
	return c
}

func (p Population) withDefaults(d Population) Population {
	if p.Speed == (Range{}) {
		p.Speed = d.Speed
	}
	if p.Radius == 0 {
		p.Radius = d.Radius
	}
	if p.Turn == (Turn{}) {
		p.Turn = d.Turn
	}
	if p.Turn.Window == (Range{}) {
		p.Turn.Window = d.Turn.Window
	}
	if p.Spawn.Progress == (Range{}) {
		p.Spawn.Progress = d.Spawn.Progress
	}
	if p.Lane == (LaneScheme{}) {
		p.Lane = d.Lane
	}
	return p
}

// Validate 校验配置
// 返回：不合法时返回包装了ErrInvalid的错误
func (c Config) Validate() error {
	if c.City.GridSize <= 0 {
		return fmt.Errorf("%w: city.grid_size must be positive, got %d", ErrInvalid, c.City.GridSize)
	}
	if c.City.BlockSize <= 0 || c.City.LaneWidth <= 0 {
		return fmt.Errorf("%w: city.block_size and city.lane_width must be positive", ErrInvalid)
	}
	if c.City.StreetEvery <= 0 || c.City.StreetResidue < 0 || c.City.StreetResidue >= c.City.StreetEvery {
		return fmt.Errorf("%w: city.street_residue must be in [0, street_every)", ErrInvalid)
	}
	b := c.City.Building
	if b.MinFill <= 0 || b.MaxFill > 1 || b.MinFill > b.MaxFill {
		return fmt.Errorf("%w: city.building fill must satisfy 0 < min_fill <= max_fill <= 1", ErrInvalid)
	}
	for name, p := range map[string]Population{
		"vehicle":    c.Populations.Vehicle,
		"pedestrian": c.Populations.Pedestrian,
	} {
		if err := p.validate(); err != nil {
			return fmt.Errorf("%w: populations.%s: %v", ErrInvalid, name, err)
		}
	}
	// 两个车道集合共用同一ID空间时前缀必须不同
	if c.Populations.Vehicle.Lane.Prefix == c.Populations.Pedestrian.Lane.Prefix {
		return fmt.Errorf("%w: populations: vehicle and pedestrian lane.prefix must differ, both are %q",
			ErrInvalid, c.Populations.Vehicle.Lane.Prefix)
	}
	return nil
}

func (p Population) validate() error {
	switch {
	case p.Target < 0:
		return errors.New("target must not be negative")
	case p.Speed.Min <= 0 || p.Speed.Min > p.Speed.Max:
		return errors.New("speed must satisfy 0 < min <= max")
	case p.Turn.Probability < 0 || p.Turn.Probability > 1:
		return errors.New("turn.probability must be in [0, 1]")
	case p.Turn.Window.Min >= p.Turn.Window.Max:
		return errors.New("turn.window must satisfy min < max")
	case p.Turn.TriggerRadius <= 0:
		return errors.New("turn.trigger_radius must be positive")
	case p.Turn.Cooldown < 0:
		return errors.New("turn.cooldown must not be negative")
	case p.AvoidAgents && p.AgentDistance <= 0:
		return errors.New("agent_distance must be positive when avoid_agents is set")
	case p.Spawn.Progress.Min < 0 || p.Spawn.Progress.Min > p.Spawn.Progress.Max || p.Spawn.Progress.Max > 1:
		return errors.New("spawn.progress must satisfy 0 <= min <= max <= 1")
	case p.Spawn.Radius < 0 || p.Spawn.MinSpacing < 0:
		return errors.New("spawn.radius and spawn.min_spacing must not be negative")
	}
	return nil
}

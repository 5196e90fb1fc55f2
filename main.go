package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"os"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yudono/gta/entity"
	"github.com/yudono/gta/task"
	"github.com/yudono/gta/utils/config"
	"gopkg.in/yaml.v2"
)

var (
	// 配置文件路径
	configPath = flag.String("config", "", "config file path (empty means built-in defaults)")
	// 配置文件Base64编码后的数据
	configData = flag.String("config-data", "", "config file base64 encoded data")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "gta")
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gta",
		Short: "Open-city lane navigation and agent simulation",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLog()
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(graphCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLog() error {
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	level, ok := logLevels[*logLevel]
	if !ok {
		return fmt.Errorf("log.level must be one of %v", lo.Keys(logLevels))
	}
	logrus.SetLevel(level)
	return nil
}

// loadConfig 获取配置
// 说明：优先读取--config，其次--config-data，都未指定时使用默认配置
func loadConfig() (config.Config, error) {
	var file []byte
	var err error
	switch {
	case *configPath != "":
		file, err = os.ReadFile(*configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("config file load err: %w", err)
		}
	case *configData != "":
		file, err = base64.StdEncoding.DecodeString(*configData)
		if err != nil {
			return config.Config{}, fmt.Errorf("config data load err: %w", err)
		}
	default:
		log.Info("no config specified, use defaults")
		return config.Default(), nil
	}
	c, err := config.Parse(file)
	if err != nil {
		return config.Config{}, err
	}
	log.Debugf("%+v", c)
	return c, nil
}

func runCmd() *cobra.Command {
	var dump string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the headless simulation with an orbiting reference actor",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			t := task.NewContext(c)
			t.Run()
			if dump == "" {
				return nil
			}
			return dumpMotions(dump, t.Motions())
		},
	}

	cmd.Flags().StringVar(&dump, "dump", "", "write the final agent motions to this YAML file")
	return cmd
}

func graphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Build the city and summarize its lane graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			t := task.NewContext(c)
			t.BuildCity()
			printGraph(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func printGraph(w io.Writer, t *task.Context) {
	roads := t.RoadManager()
	fmt.Fprintf(w, "roads: %d horizontal, %d vertical\n", len(roads.Horizontal()), len(roads.Vertical()))
	for _, n := range []struct {
		name    string
		network task.Network
	}{
		{"vehicle", t.VehicleNetwork()},
		{"sidewalk", t.SidewalkNetwork()},
	} {
		fmt.Fprintf(w, "%s: %d lanes, %d junctions, lanes per junction %v\n",
			n.name, n.network.Lanes.Len(), n.network.Junctions.Len(), n.network.Junctions.ConnectionCounts())
	}
	buildings := t.BuildingManager()
	fmt.Fprintf(w, "buildings: %d within %v\n", buildings.Len(), buildings.Bound())
}

// motionRecord 导出的agent状态
type motionRecord struct {
	ID        int32   `yaml:"id"`
	Kind      string  `yaml:"kind"`
	X         float64 `yaml:"x"`
	Z         float64 `yaml:"z"`
	Heading   float64 `yaml:"heading"`
	Animation string  `yaml:"animation,omitempty"`
	Lane      string  `yaml:"lane"`
	Progress  float64 `yaml:"progress"`
}

func dumpMotions(path string, motions []entity.AgentMotion) error {
	records := lo.Map(motions, func(m entity.AgentMotion, _ int) motionRecord {
		return motionRecord{
			ID:        m.ID,
			Kind:      m.Kind.String(),
			X:         m.Position.X(),
			Z:         m.Position.Y(),
			Heading:   m.Heading,
			Animation: m.Animation.String(),
			Lane:      m.LaneID,
			Progress:  m.Progress,
		}
	})
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal motions: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.Infof("dumped %d motions to %s", len(records), path)
	return nil
}

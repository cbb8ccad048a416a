package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	log "github.com/sirupsen/logrus"
)

var (
	cfgFile = "viruswar/config.json"
)

const maxDepth = 8

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type SelfPlayConfig struct {
	Games        int `json:"games"`
	Workers      int `json:"workers"`
	Depth        int `json:"depth"`
	OpeningPlies int `json:"opening_plies"`
	MaxPlies     int `json:"max_plies"`
}

type Config struct {
	Depth    int            `json:"depth"`
	LogLevel string         `json:"log_level"`
	SelfPlay SelfPlayConfig `json:"selfplay"`
}

// Load 默认值 + XDG 配置目录下的 config.json（如果有）
func Load() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFile 读取指定路径的配置文件，缺省字段取默认值
func LoadFile(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Depth < 0 || c.Depth > maxDepth {
		return &InvalidConfig{fmt.Sprintf("depth must be in [0,%d], got %d", maxDepth, c.Depth)}
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	sp := c.SelfPlay
	if sp.Depth < 1 || sp.Depth > maxDepth {
		return &InvalidConfig{fmt.Sprintf("selfplay depth must be in [1,%d], got %d", maxDepth, sp.Depth)}
	}
	if sp.Games < 1 {
		return &InvalidConfig{"selfplay games must be at least 1"}
	}
	if sp.Workers < 1 {
		return &InvalidConfig{"selfplay workers must be at least 1"}
	}
	if sp.OpeningPlies < 0 {
		return &InvalidConfig{"selfplay opening plies must not be negative"}
	}
	if sp.MaxPlies < 1 {
		return &InvalidConfig{"selfplay max plies must be at least 1"}
	}
	return nil
}

// Level 已经过 Validate，解析不会失败
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm os.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}

package config

import (
	"fmt"
	"log"

	"github.com/decker502/alienblitz/pkg/embedded"
)

// LoadStartupConfig 构建两个前端启动时使用的配置：
// 先加载内嵌默认配置，再叠加可选的用户配置文件
//
// 参数:
//   - overridePath: 用户配置文件（.yaml/.yml/.toml），为空则不叠加
//
// 返回:
//   - *GameConfig: 校验通过的配置
//   - error: 文件存在但无效时返回错误
func LoadStartupConfig(overridePath string) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	if embedded.IsInitialized() {
		data, err := embedded.ReadFile(DefaultConfigPath)
		if err != nil {
			log.Printf("[Config] Warning: %s not embedded, using built-in defaults: %v", DefaultConfigPath, err)
		} else {
			cfg, err = ParseGameConfig(data)
			if err != nil {
				return nil, fmt.Errorf("embedded %s: %w", DefaultConfigPath, err)
			}
			log.Printf("[Config] Loaded %s", DefaultConfigPath)
		}
	}

	if overridePath == "" {
		return cfg, nil
	}

	cfg, err := LoadGameConfig(overridePath, cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] Applied overrides from %s", overridePath)
	return cfg, nil
}

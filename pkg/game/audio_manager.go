package game

import (
	"log"

	"github.com/decker502/alienblitz/pkg/audio"
	"github.com/decker502/alienblitz/pkg/config"
)

// AudioManager 按音效ID播放游戏音效
//
// 职责：
//   - 将音效ID映射到音效库中的片段
//   - 应用配置中的开关与音量
//   - 不阻塞、不向调用方报错：缺失片段或输出错误只记录日志，返回"未播放"
type AudioManager struct {
	bank    *audio.Bank
	output  audio.Output
	enabled bool
	volume  float64
}

// NewAudioManager 创建音频管理器
//
// 参数:
//   - bank: 已解码的音效库
//   - output: 播放输出，nil 表示静音
//   - cfg: 开关与音量
func NewAudioManager(bank *audio.Bank, output audio.Output, cfg config.SoundConfig) *AudioManager {
	return &AudioManager{
		bank:    bank,
		output:  output,
		enabled: cfg.Enabled && output != nil,
		volume:  cfg.Volume,
	}
}

// PlaySound 播放一次音效，实现 SoundPlayer 接口
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.enabled {
		return false
	}

	clip := am.bank.Clip(soundID)
	if clip == nil {
		log.Printf("[AudioManager] Warning: unknown sound %s", soundID)
		return false
	}

	if err := am.output.Play(clip, am.volume); err != nil {
		log.Printf("[AudioManager] Warning: Failed to play %s: %v", soundID, err)
		return false
	}
	return true
}

package game

// 游戏使用的音效ID
const (
	SoundBombed     = "bombed"
	SoundPlaneCrash = "plane_crash"
	SoundVictory    = "victory"
)

// SoundPlayer 非阻塞地按ID播放音效
// 未播放（静音、缺失、无设备）时返回 false
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// SilentPlayer 什么都不播放，音频不可用时替代使用
type SilentPlayer struct{}

// PlaySound 实现 SoundPlayer 接口
func (SilentPlayer) PlaySound(string) bool { return false }

// Package speaker 通过 beep 扬声器播放音效，供终端版使用
//
// 该包依赖系统音频设备（Linux 下为 ALSA），单独成包以免其他包被迫链接它。
package speaker

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/decker502/alienblitz/pkg/audio"
)

// Output 通过 beep 扬声器播放音效片段
// 每次 Play 混入一个新声部，重叠的音效会同时响起
type Output struct{}

// New 打开系统音频设备
// 没有可用设备时返回错误，调用方改用静音
func New() (*Output, error) {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}
	return &Output{}, nil
}

// Play 把片段混入扬声器输出，实现 audio.Output 接口
func (o *Output) Play(clip *audio.Clip, volume float64) error {
	speaker.Play(clip.Streamer(volume))
	return nil
}

// Close 释放音频设备
func (o *Output) Close() {
	speaker.Clear()
	speaker.Close()
}

// Package audio 加载游戏音效
//
// 音效片段只解码（或合成）一次，存为 SampleRate 采样率的立体声浮点采样。
// Output 负责把片段变成声音，具体实现由窗口版与终端版各自提供。
package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate 所有片段与输出共用的采样率
const SampleRate = beep.SampleRate(48000)

// Clip 完整解码的音效
type Clip struct {
	ID      string
	Samples [][2]float64
}

// Duration 片段时长
func (c *Clip) Duration() time.Duration {
	return SampleRate.D(len(c.Samples))
}

// PCM16 编码为 16 位小端交错立体声
func (c *Clip) PCM16() []byte {
	out := make([]byte, len(c.Samples)*4)
	for i, s := range c.Samples {
		binary.LittleEndian.PutUint16(out[i*4:], uint16(toInt16(s[0])))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(toInt16(s[1])))
	}
	return out
}

// Streamer 以给定音量播放一次片段的 beep 流
func (c *Clip) Streamer(volume float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= len(c.Samples) {
			return 0, false
		}
		n := copy(samples, c.Samples[pos:])
		for i := 0; i < n; i++ {
			samples[i][0] *= volume
			samples[i][1] *= volume
		}
		pos += n
		return n, true
	})
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// collect 把流全部读入内存
func collect(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

type note struct {
	freq float64 // 0 为休止
	dur  time.Duration
}

// tunes 音效文件缺失时使用的合成曲调
var tunes = map[string][]note{
	"bombed": {
		{freq: 330, dur: 60 * time.Millisecond},
		{freq: 220, dur: 90 * time.Millisecond},
	},
	"plane_crash": {
		{freq: 196, dur: 200 * time.Millisecond},
		{freq: 147, dur: 200 * time.Millisecond},
		{freq: 98, dur: 400 * time.Millisecond},
	},
	"victory": {
		{freq: 523, dur: 120 * time.Millisecond},
		{freq: 659, dur: 120 * time.Millisecond},
		{freq: 784, dur: 120 * time.Millisecond},
		{freq: 0, dur: 60 * time.Millisecond},
		{freq: 1047, dur: 300 * time.Millisecond},
	},
}

var silence = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{}
	}
	return len(samples), true
})

// fallbackTune 没有专属曲调的音效ID使用
var fallbackTune = []note{{freq: 440, dur: 100 * time.Millisecond}}

// Synthesize 为 soundID 合成一段短音序列
func Synthesize(soundID string) (*Clip, error) {
	tune, ok := tunes[soundID]
	if !ok {
		tune = fallbackTune
	}

	parts := make([]beep.Streamer, 0, len(tune))
	for _, n := range tune {
		samples := SampleRate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Take(samples, silence))
			continue
		}
		tone, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize %s at %.0fHz: %w", soundID, n.freq, err)
		}
		parts = append(parts, beep.Take(samples, tone))
	}

	samples := collect(beep.Seq(parts...))
	shape(samples)
	return &Clip{ID: soundID, Samples: samples}, nil
}

// shape 振幅减半，并在最后 20ms 淡出以免爆音
func shape(samples [][2]float64) {
	fade := SampleRate.N(20 * time.Millisecond)
	for i := range samples {
		gain := 0.5
		if left := len(samples) - i; left < fade {
			gain *= float64(left) / float64(fade)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
	}
}

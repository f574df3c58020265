package audio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Bank 按音效ID保存已解码的片段
type Bank struct {
	clips map[string]*Clip
}

// NewBank 创建空音效库
func NewBank() *Bank {
	return &Bank{clips: make(map[string]*Clip)}
}

// LoadBank 从 dir 加载 files 中列出的每个片段
//
// 参数:
//   - dir: 音效目录
//   - files: 音效ID -> 文件名
//
// 返回:
//   - *Bank: 每个列出的ID都有片段，缺失或无法读取的文件以合成音代替
func LoadBank(dir string, files map[string]string) *Bank {
	b := NewBank()
	for id, name := range files {
		path := filepath.Join(dir, name)
		clip, err := LoadWAV(id, path)
		if err != nil {
			log.Printf("[AudioBank] %s: %v (using synthesized tone)", id, err)
			clip, err = Synthesize(id)
			if err != nil {
				log.Printf("[AudioBank] Warning: no sound for %s: %v", id, err)
				continue
			}
		} else {
			log.Printf("[AudioBank] Loaded %s from %s (%v)", id, path, clip.Duration())
		}
		b.Put(clip)
	}
	return b
}

// Put 添加或替换片段
func (b *Bank) Put(clip *Clip) {
	b.clips[clip.ID] = clip
}

// Clip 返回 soundID 对应的片段，没有时返回 nil
func (b *Bank) Clip(soundID string) *Clip {
	return b.clips[soundID]
}

// Len 片段数量
func (b *Bank) Len() int {
	return len(b.clips)
}

// LoadWAV 解码 WAV 文件并重采样到 SampleRate
func LoadWAV(soundID, path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}
	defer f.Close()

	stream, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV %s: %w", path, err)
	}
	defer stream.Close()

	var s beep.Streamer = stream
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, stream)
	}

	samples := collect(s)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("failed to read WAV %s: %w", path, err)
	}
	return &Clip{ID: soundID, Samples: samples}, nil
}

package app

import (
	"log"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/alienblitz/pkg/audio"
)

// ebitenOutput 通过 ebiten 音频上下文播放音效片段
// 每个片段只创建一次播放器，重播时倒带
type ebitenOutput struct {
	context *ebitenaudio.Context
	players map[*audio.Clip]*ebitenaudio.Player
}

// newEbitenOutput 包装一个以 audio.SampleRate 创建的音频上下文
func newEbitenOutput(context *ebitenaudio.Context) *ebitenOutput {
	return &ebitenOutput{
		context: context,
		players: make(map[*audio.Clip]*ebitenaudio.Player),
	}
}

// Play 从头播放片段，实现 audio.Output 接口
func (o *ebitenOutput) Play(clip *audio.Clip, volume float64) error {
	player, ok := o.players[clip]
	if !ok {
		player = o.context.NewPlayerFromBytes(clip.PCM16())
		o.players[clip] = player
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[ebitenOutput] Warning: Failed to rewind %s: %v", clip.ID, err)
	}
	player.Play()
	return nil
}

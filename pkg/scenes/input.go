package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 本帧新按下的投弹输入
// 键盘、鼠标与触摸一起读取，窗口版在触摸屏上也能玩
type InputState struct {
	KeyPressed   bool // 空格
	ClickPressed bool // 鼠标左键
	TouchPressed bool // 任意新的触摸
}

// GetInputState 从 ebiten 读取本帧输入
func GetInputState() InputState {
	return InputState{
		KeyPressed:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		ClickPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		TouchPressed: len(inpututil.AppendJustPressedTouchIDs(nil)) > 0,
	}
}

// BombPressed 本帧是否按下了任一投弹输入
func (s InputState) BombPressed() bool {
	return s.KeyPressed || s.ClickPressed || s.TouchPressed
}

package systems

import (
	"image/color"
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/alienblitz/pkg/components"
	"github.com/decker502/alienblitz/pkg/config"
	"github.com/decker502/alienblitz/pkg/ecs"
	"github.com/decker502/alienblitz/pkg/entities"
	"github.com/decker502/alienblitz/pkg/game"
)

// recordingSounds 记录游戏请求播放的每个音效
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) PlaySound(id string) bool {
	r.played = append(r.played, id)
	return true
}

func (r *recordingSounds) count(id string) int {
	n := 0
	for _, p := range r.played {
		if p == id {
			n++
		}
	}
	return n
}

// testCell 测试用塔楼格子的摆放
type testCell struct {
	x, y          float64
	column, level int
}

// testField 按顺序生成的一组格子
type testField []testCell

// spawn 在实体管理器中创建这些格子
func (f testField) spawn(em *ecs.EntityManager) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(f))
	for _, c := range f {
		ids = append(ids, entities.NewCellEntity(em, c.x, c.y, c.column, c.level, color.RGBA{A: 255}))
	}
	return ids
}

// fieldOf 每个中心点一座单格塔楼
func fieldOf(cells ...[2]float64) testField {
	f := make(testField, 0, len(cells))
	for i, c := range cells {
		f = append(f, testCell{x: c[0], y: c[1], column: i})
	}
	return f
}

// safeField 右下角的一座塔楼，第一轮扫过时不挡飞机，也远离左侧早早投下的炸弹
func safeField(n int) testField {
	f := make(testField, 0, n)
	for i := 0; i < n; i++ {
		f = append(f, testCell{x: 356.25, y: -256.25 + float64(i)*37.5, column: 9, level: i})
	}
	return f
}

// newTestLoop 按顺序使用给定的塔楼，用完后改用三格的 safeField
func newTestLoop(t *testing.T, cfg *config.GameConfig, fields ...testField) (*GameLoop, *recordingSounds) {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	sounds := &recordingSounds{}
	loop := NewGameLoop(game.NewGameState(cfg), rand.New(rand.NewSource(1)), sounds)

	next := 0
	loop.SetFieldGenerator(func(em *ecs.EntityManager) []ecs.EntityID {
		if next < len(fields) {
			f := fields[next]
			next++
			return f.spawn(em)
		}
		return safeField(3).spawn(em)
	})
	return loop, sounds
}

// cellYs 剩余格子的 Y 坐标，按实体ID升序
func cellYs(gs *game.GameState) []float64 {
	var ys []float64
	for _, id := range gs.Cells() {
		pos, _ := ecs.GetComponent[*components.PositionComponent](gs.EntityManager, id)
		ys = append(ys, pos.Y)
	}
	return ys
}

// runFor 以 16ms 一帧推进游戏循环
func runFor(loop *GameLoop, d time.Duration) {
	const frame = 16 * time.Millisecond
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		loop.Update(frame)
	}
}

package game

import "fmt"

// ScoreTracker 当前得分、本次运行的最高分与过关目标
//
// 得分只会按 PointsPerCell 增加或清零，所以始终是 PointsPerCell 的非负倍数。
// 最高分不会减少。
type ScoreTracker struct {
	Score        int
	HighScore    int
	WinningScore int // 当前关卡的累计目标分
	Level        int // 从 1 开始，用于 HUD

	PointsPerCell int
}

// NewScoreTracker 创建全部为零的计分器
func NewScoreTracker(pointsPerCell int) *ScoreTracker {
	return &ScoreTracker{PointsPerCell: pointsPerCell}
}

// Award 炸毁一格得分，并更新最高分
func (st *ScoreTracker) Award() {
	st.Score += st.PointsPerCell
	if st.Score > st.HighScore {
		st.HighScore = st.Score
	}
}

// ResetForCrash 坠毁后重新开始：得分清零，目标分为新塔楼的总分，保留最高分
//
// 参数:
//   - cells: 新塔楼的格子数
func (st *ScoreTracker) ResetForCrash(cells int) {
	st.Score = 0
	st.WinningScore = cells * st.PointsPerCell
	st.Level = 1
}

// AdvanceLevel 过关：目标分累加新塔楼的总分，得分保留
func (st *ScoreTracker) AdvanceLevel(cells int) {
	st.WinningScore += cells * st.PointsPerCell
	st.Level++
}

// LevelComplete 得分是否已达到目标分
func (st *ScoreTracker) LevelComplete() bool {
	return st.Score >= st.WinningScore
}

// HUDText 屏幕顶部显示的得分行
func (st *ScoreTracker) HUDText() string {
	return fmt.Sprintf("Score:%2d High Score:%2d", st.Score, st.HighScore)
}

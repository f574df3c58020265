package utils

import (
	"math/rand"
	"time"
)

// NewRand 创建随机数源，种子为 0 时取当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

package audio

// Output 把片段变成声音
type Output interface {
	Play(clip *Clip, volume float64) error
}

// internal/sprite/animated.go
package sprite

// Animated — покадровая анимация с фиксированной длительностью кадра
type Animated struct {
	name      string
	frames    int
	frameTime float64 // секунд на кадр
	looping   bool

	animating bool
	current   int
	elapsed   float64 // время внутри текущего кадра
}

// NewAnimated создаёт остановленную анимацию на первом кадре.
// Некорректные frames/frameTime приводятся к одному кадру.
func NewAnimated(name string, frames int, frameTime float64, looping bool) *Animated {
	if frames < 1 || frameTime <= 0 {
		frames = 1
		frameTime = 1
	}
	return &Animated{
		name:      name,
		frames:    frames,
		frameTime: frameTime,
		looping:   looping,
	}
}

func (a *Animated) Name() string      { return a.name }
func (a *Animated) Frame() int        { return a.current }
func (a *Animated) Frames() int       { return a.frames }
func (a *Animated) IsAnimating() bool { return a.animating }

// SetAnimating запускает или ставит на паузу проигрывание с текущего кадра
func (a *Animated) SetAnimating(animating bool) {
	a.animating = animating
}

// Restart перематывает на первый кадр и запускает проигрывание
func (a *Animated) Restart() {
	a.current = 0
	a.elapsed = 0
	a.animating = true
}

// Update продвигает анимацию на deltaTime секунд.
// Незацикленная анимация останавливается на последнем кадре.
func (a *Animated) Update(deltaTime float64) {
	if !a.animating || deltaTime <= 0 {
		return
	}
	a.elapsed += deltaTime
	for a.elapsed >= a.frameTime {
		a.elapsed -= a.frameTime
		if a.current+1 < a.frames {
			a.current++
			continue
		}
		if a.looping {
			a.current = 0
			continue
		}
		a.animating = false
		a.elapsed = 0
		return
	}
}

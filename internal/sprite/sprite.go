// internal/sprite/sprite.go
package sprite

// Sprite — дескриптор изображения: имя в наборе графики и текущий кадр.
// Сама отрисовка выполняется в ui по этим данным.
type Sprite interface {
	Name() string
	Frame() int
}

// Animation — спрайт, который умеет проигрываться
type Animation interface {
	Sprite
	SetAnimating(animating bool)
	Restart()
	IsAnimating() bool
	Update(deltaTime float64)
}

// Still — неподвижный спрайт из одного кадра
type Still struct {
	name string
}

// NewStill создаёт неподвижный спрайт
func NewStill(name string) *Still {
	return &Still{name: name}
}

func (s *Still) Name() string { return s.name }
func (s *Still) Frame() int   { return 0 }

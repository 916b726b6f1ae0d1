// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обёртка над генератором случайных чисел,
// позволяет повторять партию при одинаковом сиде.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создаёт сервис с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseIndex выбирает индекс из n элементов; -1 для пустого набора
func (s *PRNGService) ChooseIndex(n int) int {
	if n <= 0 {
		return -1
	}
	return s.rng.Intn(n)
}

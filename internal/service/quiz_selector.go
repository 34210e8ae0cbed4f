package service

import (
	"math/rand/v2"

	"trivia-api/internal/domain"
)

// QuizSelector picks the next quiz question from a candidate pool.
type QuizSelector struct {
	intn func(n int) int
}

// NewQuizSelector returns a selector backed by the global math/rand/v2 source.
func NewQuizSelector() *QuizSelector {
	return &QuizSelector{intn: rand.IntN}
}

// Select returns a uniformly random question from pool whose id is not in
// previous, or nil when every question was already asked.
func (s *QuizSelector) Select(pool []*domain.Question, previous []int64) *domain.Question {
	asked := make(map[int64]struct{}, len(previous))
	for _, id := range previous {
		asked[id] = struct{}{}
	}

	candidates := make([]*domain.Question, 0, len(pool))
	for _, q := range pool {
		if _, ok := asked[q.ID]; !ok {
			candidates = append(candidates, q)
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	return candidates[s.intn(len(candidates))]
}

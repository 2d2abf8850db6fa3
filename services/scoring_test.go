package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreExactMatch(t *testing.T) {
	engine := NewScoringEngine()

	cases := [][2]int{{0, 0}, {1, 0}, {0, 1}, {2, 1}, {3, 3}, {5, 4}, {10, 0}}
	for _, c := range cases {
		points, reason := engine.Score(c[0], c[1], c[0], c[1])
		assert.Equal(t, 3, points, "exact %d-%d", c[0], c[1])
		assert.Equal(t, ReasonExact, reason)
	}
}

func TestScoreCorrectWinner(t *testing.T) {
	engine := NewScoringEngine()

	cases := []struct {
		ph, pa, ah, aw int
	}{
		{2, 0, 1, 0},  // home win, different score
		{3, 1, 2, 1},  // home win
		{0, 2, 1, 3},  // away win
		{1, 4, 0, 1},  // away win
		{1, 1, 2, 2},  // draw, different score
		{0, 0, 3, 3},  // draw
	}
	for _, c := range cases {
		points, reason := engine.Score(c.ph, c.pa, c.ah, c.aw)
		assert.Equal(t, 1, points, "winner %d-%d vs %d-%d", c.ph, c.pa, c.ah, c.aw)
		assert.Equal(t, ReasonWinner, reason)
	}
}

func TestScoreWrongOutcome(t *testing.T) {
	engine := NewScoringEngine()

	cases := []struct {
		ph, pa, ah, aw int
	}{
		{2, 1, 1, 2}, // home vs away
		{0, 1, 1, 0}, // away vs home
		{1, 1, 2, 1}, // draw vs home
		{2, 2, 0, 1}, // draw vs away
		{3, 0, 1, 1}, // home vs draw
		{0, 2, 0, 0}, // away vs draw
	}
	for _, c := range cases {
		points, reason := engine.Score(c.ph, c.pa, c.ah, c.aw)
		assert.Equal(t, 0, points, "wrong %d-%d vs %d-%d", c.ph, c.pa, c.ah, c.aw)
		assert.Equal(t, ReasonWrong, reason)
	}
}

// Swapping home and away flips the outcome class on purpose: predicting a
// 2-1 home win against an actual 1-2 away win scores nothing.
func TestScoreNotCommutative(t *testing.T) {
	engine := NewScoringEngine()

	points, reason := engine.Score(2, 1, 2, 1)
	assert.Equal(t, 3, points)
	assert.Equal(t, ReasonExact, reason)

	points, reason = engine.Score(2, 1, 1, 2)
	assert.Equal(t, 0, points)
	assert.Equal(t, ReasonWrong, reason)
}

func TestScoreConfigurablePoints(t *testing.T) {
	engine := ScoringEngine{ExactPoints: 10, WinnerPoints: 5}

	points, reason := engine.Score(1, 0, 1, 0)
	assert.Equal(t, 10, points)
	assert.Equal(t, ReasonExact, reason)

	points, reason = engine.Score(2, 0, 1, 0)
	assert.Equal(t, 5, points)
	assert.Equal(t, ReasonWinner, reason)
}

func TestScorePtrTreatsNilAsZero(t *testing.T) {
	engine := NewScoringEngine()
	one := 1

	// nil actual scores behave like 0-0
	points, reason := engine.ScorePtr(intPtr(0), intPtr(0), nil, nil)
	assert.Equal(t, 3, points)
	assert.Equal(t, ReasonExact, reason)

	points, reason = engine.ScorePtr(&one, &one, nil, nil)
	assert.Equal(t, 1, points, "1-1 draw against defaulted 0-0 draw")
	assert.Equal(t, ReasonWinner, reason)

	points, reason = engine.ScorePtr(&one, intPtr(0), nil, nil)
	assert.Equal(t, 0, points)
	assert.Equal(t, ReasonWrong, reason)
}

func intPtr(v int) *int { return &v }

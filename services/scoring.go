package services

// Reason classifies why a prediction scored the points it did.
type Reason string

const (
	ReasonExact  Reason = "exact"
	ReasonWinner Reason = "winner"
	ReasonWrong  Reason = "wrong"
)

// ScoringEngine encapsulates the prediction scoring rules:
//   - exact score (home and away both match): ExactPoints
//   - correct winner but not exact: WinnerPoints
//   - anything else: 0
//
// The engine is pure and holds no storage references, so it can be used
// from the score calculator, endpoints and tests alike.
type ScoringEngine struct {
	ExactPoints  int
	WinnerPoints int
}

// NewScoringEngine returns an engine with the default point table (3/1).
func NewScoringEngine() ScoringEngine {
	return ScoringEngine{ExactPoints: 3, WinnerPoints: 1}
}

type outcome int

const (
	outcomeHome outcome = iota
	outcomeAway
	outcomeDraw
)

func winner(goalsHome, goalsAway int) outcome {
	switch {
	case goalsHome > goalsAway:
		return outcomeHome
	case goalsAway > goalsHome:
		return outcomeAway
	default:
		return outcomeDraw
	}
}

// intOrZero normalizes missing values so upstream nils never panic the
// scoring path.
func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// Score returns (points, reason) for a predicted score against an actual
// result. Deterministic and side-effect free; never fails.
func (e ScoringEngine) Score(predHome, predAway, actualHome, actualAway int) (int, Reason) {
	if predHome == actualHome && predAway == actualAway {
		return e.ExactPoints, ReasonExact
	}

	if winner(predHome, predAway) == winner(actualHome, actualAway) {
		return e.WinnerPoints, ReasonWinner
	}

	return 0, ReasonWrong
}

// ScorePtr is Score with nullable inputs; nil values are treated as 0.
func (e ScoringEngine) ScorePtr(predHome, predAway, actualHome, actualAway *int) (int, Reason) {
	return e.Score(intOrZero(predHome), intOrZero(predAway), intOrZero(actualHome), intOrZero(actualAway))
}

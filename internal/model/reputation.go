package model

// ReputationNextLevel is the point total that fills the progress bar.
const ReputationNextLevel = 500

// Reputation computes campus reputation points from stats. It is derived on
// every read and never stored.
func Reputation(s Stats) int {
	return s.AnswersGiven*10 + s.HelpedCount*20 + s.TotalUpvotes*5
}

// ReputationProgress returns Reputation as a percentage of
// ReputationNextLevel, clamped to [0, 100].
func ReputationProgress(s Stats) float64 {
	p := float64(Reputation(s)) / ReputationNextLevel * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

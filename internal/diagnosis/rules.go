package diagnosis

import (
	"github.com/bscre8/website-diagnosis/internal/locale"
	"github.com/bscre8/website-diagnosis/internal/model"
)

// finding is the outcome of one rule evaluation. A rule may award points and
// still report an issue (partial-credit tiers); it contributes to at most
// one of the success/issue lists.
type finding struct {
	points     int
	success    string
	issue      string
	explainKey string // locale explanation attached to the issue, if any
	skipped    bool   // rule did not apply (e.g. page has no images)
}

// rule is one named sub-check of a category rubric. Rules are evaluated in
// order and are independent of each other.
type rule struct {
	name string
	run  func(s *Snapshot) finding
}

// runRules evaluates a category's rule table against the snapshot and
// assembles the category result. The score is the sum of awarded points
// clamped to [0,100].
func runRules(category model.Category, rules []rule, s *Snapshot) model.CategoryResult {
	res := model.CategoryResult{Category: category}

	score := 0
	for _, r := range rules {
		f := r.run(s)
		if f.skipped {
			continue
		}

		score += f.points
		if f.success != "" {
			res.Success = append(res.Success, f.success)
		}
		if f.issue != "" {
			res.Issues = append(res.Issues, f.issue)
			if f.explainKey != "" {
				if exp, ok := locale.Explain(category, f.explainKey); ok {
					res.Explanations = append(res.Explanations, model.ExplanationPair{
						Issue:       f.issue,
						Explanation: exp,
					})
				}
			}
		}
	}

	res.Score = clampScore(score)
	return res
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}

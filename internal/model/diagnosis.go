package model

// Category identifies one scoring dimension of a diagnosis.
type Category string

const (
	CategorySEO           Category = "seo"
	CategorySecurity      Category = "security"
	CategoryPerformance   Category = "performance"
	CategoryAccessibility Category = "accessibility"
)

// Categories lists every scoring dimension in report order.
var Categories = []Category{
	CategorySEO,
	CategorySecurity,
	CategoryPerformance,
	CategoryAccessibility,
}

// Explanation is a plain-language description of a finding: what the checked
// item is, why it matters, and how to fix it. Risk is set only for the
// high-impact security findings.
type Explanation struct {
	What string `json:"what"`
	Why  string `json:"why"`
	How  string `json:"how"`
	Risk string `json:"risk,omitempty"`
}

// ExplanationPair ties a reported issue to its explanation.
type ExplanationPair struct {
	Issue       string      `json:"issue"`
	Explanation Explanation `json:"explanation"`
}

// CategoryResult holds the outcome of one category analyzer. Issues and
// Success are in discovery order; a sub-check contributes to exactly one of
// the two lists.
type CategoryResult struct {
	Category     Category          `json:"category"`
	Score        int               `json:"score"`
	Issues       []string          `json:"issues"`
	Success      []string          `json:"success"`
	Explanations []ExplanationPair `json:"explanations,omitempty"`
}

// DiagnosisResult is the complete record of one diagnosis run. It is built
// once per run and never mutated afterwards.
type DiagnosisResult struct {
	URL           string           `json:"url"`
	Timestamp     string           `json:"timestamp"`
	SEO           CategoryResult   `json:"seo"`
	Security      CategoryResult   `json:"security"`
	Performance   CategoryResult   `json:"performance"`
	Accessibility CategoryResult   `json:"accessibility"`
	Scores        map[Category]int `json:"scores"`
	OverallScore  float64          `json:"overall_score"`
}

// ByCategory returns the result for the given category, or nil for an
// unknown category key.
func (d *DiagnosisResult) ByCategory(c Category) *CategoryResult {
	switch c {
	case CategorySEO:
		return &d.SEO
	case CategorySecurity:
		return &d.Security
	case CategoryPerformance:
		return &d.Performance
	case CategoryAccessibility:
		return &d.Accessibility
	}
	return nil
}

// RecommendationEntry is one ranked remediation item, derived from the
// issues of a DiagnosisResult.
type RecommendationEntry struct {
	Rank     int      `json:"rank"`
	Category Category `json:"category"`
	Issue    string   `json:"issue"`
	IssueEN  string   `json:"issue_en"`
	Priority float64  `json:"priority"`
}

// StatusLabel maps a score to the bilingual report status label.
func StatusLabel(score float64) string {
	switch {
	case score >= 80:
		return "Excellent / 優秀"
	case score >= 60:
		return "Good / 良好"
	case score >= 40:
		return "Average / 平均"
	default:
		return "Poor / 要改善"
	}
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

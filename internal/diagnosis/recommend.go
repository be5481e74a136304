package diagnosis

import (
	"sort"

	"github.com/bscre8/website-diagnosis/internal/locale"
	"github.com/bscre8/website-diagnosis/internal/model"
)

// priorityWeights rank categories by remediation urgency when pooling
// issues across the whole diagnosis.
var priorityWeights = map[model.Category]float64{
	model.CategorySecurity:      1.5,
	model.CategoryAccessibility: 1.3,
	model.CategorySEO:           1.2,
	model.CategoryPerformance:   1.0,
}

const maxRecommendations = 10

// NoIssuesMessage is reported when a diagnosis produced no issues at all.
const NoIssuesMessage = "重大な問題は見つかりませんでした / No critical issues found"

// Recommend pools every issue across the four categories, assigns each the
// priority (100 − category score) × category weight, and returns the top
// entries in descending priority with 1-based ranks. The sort is stable, so
// ties keep category order (seo, security, performance, accessibility) and
// then discovery order. Recommendations are derived on demand and never
// persisted with the result.
func Recommend(res *model.DiagnosisResult) []model.RecommendationEntry {
	var entries []model.RecommendationEntry

	for _, c := range model.Categories {
		cr := res.ByCategory(c)
		priority := (100 - float64(cr.Score)) * priorityWeights[c]
		for _, issue := range cr.Issues {
			entries = append(entries, model.RecommendationEntry{
				Category: c,
				Issue:    issue,
				IssueEN:  locale.Translate(issue),
				Priority: priority,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority > entries[j].Priority
	})

	if len(entries) > maxRecommendations {
		entries = entries[:maxRecommendations]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

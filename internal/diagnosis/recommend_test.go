package diagnosis

import (
	"fmt"
	"testing"

	"github.com/bscre8/website-diagnosis/internal/model"
)

func TestRecommend_PriorityOrdering(t *testing.T) {
	res := &model.DiagnosisResult{
		SEO: model.CategoryResult{
			Category: model.CategorySEO,
			Score:    55,
			Issues:   []string{"titleタグが見つかりません"},
		},
		Security: model.CategoryResult{
			Category: model.CategorySecurity,
			Score:    30,
			Issues:   []string{"Content-Security-Policyヘッダーが設定されていません"},
		},
		Performance:   model.CategoryResult{Category: model.CategoryPerformance, Score: 100},
		Accessibility: model.CategoryResult{Category: model.CategoryAccessibility, Score: 100},
	}

	got := Recommend(res)

	if len(got) != 2 {
		t.Fatalf("entries = %d, want 2", len(got))
	}
	// Security at 30: (100-30)*1.5 = 105. SEO at 55: (100-55)*1.2 = 54.
	if got[0].Category != model.CategorySecurity || got[0].Priority != 105 {
		t.Errorf("first = %s/%v, want security/105", got[0].Category, got[0].Priority)
	}
	if got[1].Category != model.CategorySEO || got[1].Priority != 54 {
		t.Errorf("second = %s/%v, want seo/54", got[1].Category, got[1].Priority)
	}
	if got[0].Rank != 1 || got[1].Rank != 2 {
		t.Errorf("ranks = %d,%d, want 1,2", got[0].Rank, got[1].Rank)
	}
}

func TestRecommend_TiesKeepCategoryOrder(t *testing.T) {
	// Security 90 and performance 85 both yield priority 15; SEO and
	// accessibility are crafted to tie at 12.
	res := &model.DiagnosisResult{
		SEO: model.CategoryResult{
			Category: model.CategorySEO,
			Score:    90,
			Issues:   []string{"seo-a", "seo-b"},
		},
		Security: model.CategoryResult{
			Category: model.CategorySecurity,
			Score:    90,
			Issues:   []string{"sec-a"},
		},
		Performance: model.CategoryResult{
			Category: model.CategoryPerformance,
			Score:    85,
			Issues:   []string{"perf-a"},
		},
		Accessibility: model.CategoryResult{Category: model.CategoryAccessibility, Score: 100},
	}

	got := Recommend(res)

	wantOrder := []string{"sec-a", "perf-a", "seo-a", "seo-b"}
	if len(got) != len(wantOrder) {
		t.Fatalf("entries = %d, want %d", len(got), len(wantOrder))
	}
	for i, want := range wantOrder {
		if got[i].Issue != want {
			t.Errorf("entry[%d] = %q, want %q", i, got[i].Issue, want)
		}
	}
}

func TestRecommend_CapsAtTen(t *testing.T) {
	var issues []string
	for i := 0; i < 15; i++ {
		issues = append(issues, fmt.Sprintf("issue %d", i))
	}
	res := &model.DiagnosisResult{
		SEO:           model.CategoryResult{Category: model.CategorySEO, Score: 10, Issues: issues},
		Security:      model.CategoryResult{Category: model.CategorySecurity, Score: 100},
		Performance:   model.CategoryResult{Category: model.CategoryPerformance, Score: 100},
		Accessibility: model.CategoryResult{Category: model.CategoryAccessibility, Score: 100},
	}

	got := Recommend(res)

	if len(got) != 10 {
		t.Fatalf("entries = %d, want 10", len(got))
	}
	for i, e := range got {
		if e.Rank != i+1 {
			t.Errorf("entry[%d].Rank = %d, want %d", i, e.Rank, i+1)
		}
	}
}

func TestRecommend_NoIssues(t *testing.T) {
	res := &model.DiagnosisResult{
		SEO:           model.CategoryResult{Category: model.CategorySEO, Score: 95},
		Security:      model.CategoryResult{Category: model.CategorySecurity, Score: 100},
		Performance:   model.CategoryResult{Category: model.CategoryPerformance, Score: 100},
		Accessibility: model.CategoryResult{Category: model.CategoryAccessibility, Score: 100},
	}

	if got := Recommend(res); len(got) != 0 {
		t.Errorf("entries = %v, want none", got)
	}
}

func TestRecommend_TranslatesIssues(t *testing.T) {
	res := &model.DiagnosisResult{
		SEO: model.CategoryResult{
			Category: model.CategorySEO,
			Score:    80,
			Issues:   []string{"alt属性のない画像があります: 68/118"},
		},
		Security:      model.CategoryResult{Category: model.CategorySecurity, Score: 100},
		Performance:   model.CategoryResult{Category: model.CategoryPerformance, Score: 100},
		Accessibility: model.CategoryResult{Category: model.CategoryAccessibility, Score: 100},
	}

	got := Recommend(res)

	if len(got) != 1 {
		t.Fatalf("entries = %d, want 1", len(got))
	}
	if got[0].IssueEN != "Images without alt attributes: 68/118" {
		t.Errorf("IssueEN = %q", got[0].IssueEN)
	}
	if got[0].Issue != "alt属性のない画像があります: 68/118" {
		t.Errorf("Issue = %q", got[0].Issue)
	}
}

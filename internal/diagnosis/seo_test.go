package diagnosis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bscre8/website-diagnosis/internal/model"
)

// maxSEOScore is the total achievable under the SEO rubric:
// 15+15+10+5+15+10+5+5+5+10.
const maxSEOScore = 95

func fullyOptimizedPage(t *testing.T) string {
	t.Helper()
	title := "This Is A Perfectly Sized Page Title Example."
	if n := len(title); n != 45 {
		t.Fatalf("test title length = %d, want 45", n)
	}
	desc := strings.Repeat("d", 140)

	return `<!DOCTYPE html><html lang="en"><head>` +
		`<title>` + title + `</title>` +
		`<meta name="description" content="` + desc + `">` +
		`<meta property="og:title" content="x">` +
		`<meta name="twitter:card" content="summary">` +
		`<link rel="canonical" href="https://example.com/">` +
		`<script type="application/ld+json">{"@type":"WebPage"}</script>` +
		`</head><body>` +
		`<h1>Heading</h1><h2>Sub</h2>` +
		`<img src="a.png" alt="a">` +
		`<a href="/about">About</a>` +
		`</body></html>`
}

func TestAnalyzeSEO_FullyOptimized(t *testing.T) {
	snap := testSnapshot(t, "https://example.com", fullyOptimizedPage(t), nil, 0)

	res := analyzeSEO(snap)

	if res.Score != maxSEOScore {
		t.Errorf("score = %d, want %d", res.Score, maxSEOScore)
	}
	if len(res.Issues) != 0 {
		t.Errorf("issues = %v, want none", res.Issues)
	}
	if len(res.Explanations) != 0 {
		t.Errorf("explanations = %v, want none", res.Explanations)
	}
	if res.Category != model.CategorySEO {
		t.Errorf("category = %q, want %q", res.Category, model.CategorySEO)
	}
}

func TestAnalyzeSEO_EmptyPage(t *testing.T) {
	snap := testSnapshot(t, "https://example.com", `<html><head></head><body></body></html>`, nil, 0)

	res := analyzeSEO(snap)

	if res.Score != 0 {
		t.Errorf("score = %d, want 0", res.Score)
	}

	wantIssues := []string{
		"titleタグが見つかりません",
		"meta descriptionが見つかりません",
		"H1タグが見つかりません",
		"H2タグが見つかりません",
		"Open Graphタグが設定されていません",
		"Twitter Cardタグが設定されていません",
		"canonicalタグが設定されていません",
		"内部リンクが見つかりません",
		"構造化データが見つかりません",
	}
	if len(res.Issues) != len(wantIssues) {
		t.Fatalf("issues = %d, want %d: %v", len(res.Issues), len(wantIssues), res.Issues)
	}
	for i, want := range wantIssues {
		if res.Issues[i] != want {
			t.Errorf("issue[%d] = %q, want %q", i, res.Issues[i], want)
		}
	}
}

func TestAnalyzeSEO_TitleLength(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		wantPoints bool
	}{
		{name: "lower bound", title: strings.Repeat("t", 30), wantPoints: true},
		{name: "upper bound", title: strings.Repeat("t", 60), wantPoints: true},
		{name: "too short", title: strings.Repeat("t", 29), wantPoints: false},
		{name: "too long", title: strings.Repeat("t", 61), wantPoints: false},
		{name: "japanese runes counted once", title: strings.Repeat("あ", 30), wantPoints: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := `<html><head><title>` + tt.title + `</title></head><body></body></html>`
			snap := testSnapshot(t, "https://example.com", page, nil, 0)

			res := analyzeSEO(snap)

			ok := false
			for _, s := range res.Success {
				if strings.HasPrefix(s, "titleタグが設定されています") {
					ok = true
				}
			}
			if ok != tt.wantPoints {
				t.Errorf("title passed = %v, want %v (success=%v issues=%v)", ok, tt.wantPoints, res.Success, res.Issues)
			}
		})
	}
}

func TestAnalyzeSEO_AltRatioBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		withAlt   int
		total     int
		wantScore int // contribution of the alt rule alone
		wantIssue bool
	}{
		{name: "exactly 90 percent", withAlt: 9, total: 10, wantScore: 15, wantIssue: false},
		{name: "just below 90 percent", withAlt: 89, total: 100, wantScore: 10, wantIssue: true},
		{name: "exactly 70 percent", withAlt: 7, total: 10, wantScore: 10, wantIssue: true},
		{name: "below 70 percent", withAlt: 6, total: 10, wantScore: 0, wantIssue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			b.WriteString(`<html><body>`)
			for i := range tt.total {
				if i < tt.withAlt {
					fmt.Fprintf(&b, `<img src="%d.png" alt="img %d">`, i, i)
				} else {
					fmt.Fprintf(&b, `<img src="%d.png">`, i)
				}
			}
			b.WriteString(`</body></html>`)

			snap := testSnapshot(t, "https://example.com", b.String(), nil, 0)
			res := analyzeSEO(snap)

			// Only the alt rule can award points on this page.
			if res.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", res.Score, tt.wantScore)
			}

			hasAltIssue := false
			for _, issue := range res.Issues {
				if strings.Contains(issue, "alt属性") {
					hasAltIssue = true
				}
			}
			if hasAltIssue != tt.wantIssue {
				t.Errorf("alt issue = %v, want %v: %v", hasAltIssue, tt.wantIssue, res.Issues)
			}
		})
	}
}

func TestAnalyzeSEO_NoImagesSkipsAltRule(t *testing.T) {
	snap := testSnapshot(t, "https://example.com", `<html><body><p>text</p></body></html>`, nil, 0)

	res := analyzeSEO(snap)

	for _, issue := range res.Issues {
		if strings.Contains(issue, "alt属性") {
			t.Errorf("alt issue reported for page without images: %q", issue)
		}
	}
}

func TestAnalyzeSEO_MultipleH1(t *testing.T) {
	page := `<html><body><h1>a</h1><h1>b</h1><h1>c</h1></body></html>`
	snap := testSnapshot(t, "https://example.com", page, nil, 0)

	res := analyzeSEO(snap)

	found := false
	for _, issue := range res.Issues {
		if issue == "H1タグが複数あります: 3個" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing multiple-H1 issue with count, got %v", res.Issues)
	}
}

func TestAnalyzeSEO_ExplanationsAttached(t *testing.T) {
	snap := testSnapshot(t, "https://example.com", `<html><head></head><body></body></html>`, nil, 0)

	res := analyzeSEO(snap)

	// title, meta description, and h1 carry explanations; the plain
	// element-presence rules do not.
	if len(res.Explanations) != 3 {
		t.Fatalf("explanations = %d, want 3", len(res.Explanations))
	}
	if res.Explanations[0].Issue != "titleタグが見つかりません" {
		t.Errorf("first explained issue = %q", res.Explanations[0].Issue)
	}
	if res.Explanations[0].Explanation.What == "" || res.Explanations[0].Explanation.How == "" {
		t.Error("explanation record is empty")
	}
}

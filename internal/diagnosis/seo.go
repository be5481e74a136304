package diagnosis

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bscre8/website-diagnosis/internal/model"
)

// seoRules is the SEO rubric. Lengths are counted in runes so Japanese
// titles score the same as they did under the original character counts.
var seoRules = []rule{
	{name: "title", run: func(s *Snapshot) finding {
		n := utf8.RuneCountInString(s.Title)
		switch {
		case s.Title == "":
			return finding{issue: "titleタグが見つかりません", explainKey: "title"}
		case n >= 30 && n <= 60:
			return finding{points: 15, success: fmt.Sprintf("titleタグが設定されています: %d文字", n)}
		default:
			return finding{
				issue:      fmt.Sprintf("titleタグの長さが最適ではありません: %d文字（推奨: 30〜60文字）", n),
				explainKey: "title",
			}
		}
	}},

	{name: "meta description", run: func(s *Snapshot) finding {
		n := utf8.RuneCountInString(s.MetaDescription)
		switch {
		case s.MetaDescription == "":
			return finding{issue: "meta descriptionが見つかりません", explainKey: "meta_description"}
		case n >= 120 && n <= 160:
			return finding{points: 15, success: fmt.Sprintf("meta descriptionが設定されています: %d文字", n)}
		default:
			return finding{
				issue:      fmt.Sprintf("meta descriptionの長さが最適ではありません: %d文字（推奨: 120〜160文字）", n),
				explainKey: "meta_description",
			}
		}
	}},

	{name: "single h1", run: func(s *Snapshot) finding {
		switch n := s.Headings["h1"]; {
		case n == 1:
			return finding{points: 10, success: "H1タグが1つだけあります"}
		case n == 0:
			return finding{issue: "H1タグが見つかりません", explainKey: "h1"}
		default:
			return finding{issue: fmt.Sprintf("H1タグが複数あります: %d個", n), explainKey: "h1"}
		}
	}},

	{name: "h2 present", run: func(s *Snapshot) finding {
		if s.Headings["h2"] > 0 {
			return finding{points: 5, success: "H2タグが設定されています"}
		}
		return finding{issue: "H2タグが見つかりません"}
	}},

	{name: "image alt coverage", run: func(s *Snapshot) finding {
		total := len(s.Images)
		if total == 0 {
			return finding{skipped: true}
		}
		withAlt := s.ImagesWithAlt()
		missing := total - withAlt
		ratio := float64(withAlt) / float64(total)
		switch {
		case ratio >= 0.9:
			return finding{points: 15, success: fmt.Sprintf("ほとんどの画像にalt属性が設定されています: %d/%d", withAlt, total)}
		case ratio >= 0.7:
			return finding{
				points:     10,
				issue:      fmt.Sprintf("alt属性のない画像があります: %d/%d", missing, total),
				explainKey: "alt",
			}
		default:
			return finding{
				issue:      fmt.Sprintf("多くの画像にalt属性がありません: %d/%d", missing, total),
				explainKey: "alt",
			}
		}
	}},

	{name: "open graph", run: func(s *Snapshot) finding {
		if len(s.OpenGraph) > 0 {
			return finding{points: 10, success: "Open Graphタグが設定されています"}
		}
		return finding{issue: "Open Graphタグが設定されていません"}
	}},

	{name: "twitter card", run: func(s *Snapshot) finding {
		if len(s.TwitterCard) > 0 {
			return finding{points: 5, success: "Twitter Cardタグが設定されています"}
		}
		return finding{issue: "Twitter Cardタグが設定されていません"}
	}},

	{name: "canonical", run: func(s *Snapshot) finding {
		if s.Canonical != "" {
			return finding{points: 5, success: "canonicalタグが設定されています"}
		}
		return finding{issue: "canonicalタグが設定されていません"}
	}},

	{name: "internal links", run: func(s *Snapshot) finding {
		if s.InternalLinks > 0 {
			return finding{points: 5, success: fmt.Sprintf("内部リンクがあります: %d個", s.InternalLinks)}
		}
		return finding{issue: "内部リンクが見つかりません"}
	}},

	{name: "structured data", run: func(s *Snapshot) finding {
		for _, block := range s.JSONLD {
			if json.Valid([]byte(strings.TrimSpace(block))) {
				return finding{points: 10, success: "構造化データが設定されています"}
			}
		}
		return finding{issue: "構造化データが見つかりません"}
	}},
}

// analyzeSEO scores the snapshot against the SEO rubric.
func analyzeSEO(s *Snapshot) model.CategoryResult {
	return runRules(model.CategorySEO, seoRules, s)
}

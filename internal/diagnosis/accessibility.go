package diagnosis

import (
	"fmt"

	"github.com/bscre8/website-diagnosis/internal/model"
)

// accessibilityRules is the accessibility rubric. Alt coverage is computed
// here independently of the SEO rubric: the two categories grade it on
// different tiers on purpose.
var accessibilityRules = []rule{
	{name: "lang attribute", run: func(s *Snapshot) finding {
		if s.Lang != "" {
			return finding{points: 15, success: fmt.Sprintf("HTML要素にlang属性があります: %s", s.Lang)}
		}
		return finding{issue: "HTML要素にlang属性がありません", explainKey: "lang"}
	}},

	{name: "image alt coverage", run: func(s *Snapshot) finding {
		total := len(s.Images)
		if total == 0 {
			return finding{skipped: true}
		}
		missing := total - s.ImagesWithAlt()
		ratio := float64(total-missing) / float64(total)
		switch {
		case ratio == 1:
			return finding{points: 20, success: "すべての画像にalt属性が設定されています"}
		case ratio >= 0.8:
			return finding{points: 15, issue: fmt.Sprintf("alt属性のない画像があります: %d個", missing)}
		default:
			return finding{issue: fmt.Sprintf("多くの画像にalt属性がありません: %d/%d", missing, total)}
		}
	}},

	{name: "form labels", run: func(s *Snapshot) finding {
		total := len(s.FormControls)
		if total == 0 {
			return finding{skipped: true}
		}
		labeled := 0
		for _, c := range s.FormControls {
			if c.AriaLabel != "" || (c.ID != "" && s.LabelFor[c.ID]) {
				labeled++
			}
		}
		switch {
		case labeled == total:
			return finding{points: 15, success: "すべてのフォーム要素にlabelが設定されています"}
		case float64(labeled) >= float64(total)*0.7:
			return finding{points: 10, issue: fmt.Sprintf("labelがないフォーム要素があります: %d/%d", labeled, total)}
		default:
			return finding{issue: fmt.Sprintf("多くのフォーム要素にlabelがありません: %d/%d", labeled, total)}
		}
	}},

	{name: "aria usage", run: func(s *Snapshot) finding {
		if s.RoleCount > 0 || s.AriaLabelCount > 0 {
			return finding{points: 10, success: fmt.Sprintf(
				"ARIA属性が使用されています: role %d個、aria-label %d個", s.RoleCount, s.AriaLabelCount)}
		}
		return finding{}
	}},

	{name: "main landmark", run: func(s *Snapshot) finding {
		if s.Landmarks["main"] > 0 {
			return finding{points: 10, success: "mainランドマークがあります"}
		}
		return finding{issue: "mainランドマークがありません", explainKey: "main_landmark"}
	}},

	{name: "nav landmark", run: func(s *Snapshot) finding {
		if s.Landmarks["nav"] > 0 {
			return finding{points: 5, success: "navランドマークがあります"}
		}
		return finding{}
	}},

	{name: "heading hierarchy", run: func(s *Snapshot) finding {
		levels := s.HeadingLevels
		if len(levels) == 0 {
			return finding{}
		}
		for i := 0; i < len(levels)-1; i++ {
			if levels[i+1]-levels[i] > 1 {
				return finding{issue: "見出しの階層構造に問題があります（例: h2の後にh4）"}
			}
		}
		return finding{points: 10, success: "見出しの階層構造が適切です"}
	}},

	{name: "link text", run: func(s *Snapshot) finding {
		if len(s.Anchors) == 0 {
			return finding{}
		}
		empty := 0
		for _, a := range s.Anchors {
			if a.Text == "" && a.AriaLabel == "" {
				empty++
			}
		}
		if empty == 0 {
			return finding{points: 10, success: "すべてのリンクにテキストが設定されています"}
		}
		return finding{issue: fmt.Sprintf("テキストのないリンクがあります: %d個", empty)}
	}},
}

// analyzeAccessibility scores the snapshot against the accessibility rubric.
func analyzeAccessibility(s *Snapshot) model.CategoryResult {
	return runRules(model.CategoryAccessibility, accessibilityRules, s)
}

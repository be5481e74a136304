package diagnosis

import (
	"fmt"

	"github.com/bscre8/website-diagnosis/internal/model"
)

const (
	kib = 1024
	mib = 1024 * 1024
)

// performanceRules is the performance rubric. Sizes are reported in KB below
// one MiB and in MB at or above it.
var performanceRules = []rule{
	{name: "load time", run: func(s *Snapshot) finding {
		t := s.Elapsed
		switch {
		case t < 1:
			return finding{points: 30, success: fmt.Sprintf("ページの読み込みが高速です: %.2f秒", t)}
		case t < 2:
			return finding{points: 20, issue: fmt.Sprintf("ページの読み込みがやや遅い: %.2f秒", t), explainKey: "load_time"}
		case t < 3:
			return finding{points: 10, issue: fmt.Sprintf("ページの読み込みが遅い: %.2f秒", t), explainKey: "load_time"}
		default:
			return finding{issue: fmt.Sprintf("ページの読み込みが非常に遅い: %.2f秒", t), explainKey: "load_time"}
		}
	}},

	{name: "page size", run: func(s *Snapshot) finding {
		size := s.Size
		switch {
		case size < 500*kib:
			return finding{points: 20, success: fmt.Sprintf("ページサイズが適切です: %.2f KB", float64(size)/kib)}
		case size < mib:
			return finding{points: 15, issue: fmt.Sprintf("ページサイズがやや大きい: %.2f KB", float64(size)/kib), explainKey: "page_size"}
		case size < 3*mib:
			return finding{points: 5, issue: fmt.Sprintf("ページサイズが大きい: %.2f MB", float64(size)/mib), explainKey: "page_size"}
		default:
			return finding{issue: fmt.Sprintf("ページサイズが非常に大きい: %.2f MB", float64(size)/mib), explainKey: "page_size"}
		}
	}},

	{name: "resource count", run: func(s *Snapshot) finding {
		n := s.ResourceCount()
		switch {
		case n < 30:
			return finding{points: 15, success: fmt.Sprintf("リソース数が適切です: %d個", n)}
		case n < 50:
			return finding{points: 10, success: fmt.Sprintf("リソース数は許容範囲です: %d個", n)}
		default:
			return finding{issue: fmt.Sprintf("リソース数が多すぎます: %d個", n)}
		}
	}},

	{name: "compression", run: func(s *Snapshot) finding {
		switch enc := s.Header.Get("Content-Encoding"); enc {
		case "gzip", "br", "deflate":
			return finding{points: 15, success: fmt.Sprintf("Gzip圧縮が有効です: %s", enc)}
		default:
			return finding{issue: "Gzip圧縮が有効になっていません", explainKey: "compression"}
		}
	}},

	{name: "cache control", run: func(s *Snapshot) finding {
		if s.Header.Get("Cache-Control") != "" {
			return finding{points: 10, success: "Cache-Controlが設定されています"}
		}
		return finding{issue: "Cache-Controlヘッダーが設定されていません"}
	}},
}

// analyzePerformance scores the snapshot against the performance rubric.
func analyzePerformance(s *Snapshot) model.CategoryResult {
	return runRules(model.CategoryPerformance, performanceRules, s)
}

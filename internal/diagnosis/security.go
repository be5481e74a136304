package diagnosis

import (
	"context"
	"fmt"

	"github.com/bscre8/website-diagnosis/internal/model"
)

// securityHeaders lists the checked response headers in rubric order with
// their point values. An explanation is attached only for the three
// high-impact headers.
var securityHeaders = []struct {
	name       string
	points     int
	explainKey string
}{
	{"Strict-Transport-Security", 15, "strict_transport_security"},
	{"X-Frame-Options", 10, "x_frame_options"},
	{"X-Content-Type-Options", 10, ""},
	{"X-XSS-Protection", 5, ""},
	{"Content-Security-Policy", 20, "content_security_policy"},
	{"Referrer-Policy", 5, ""},
	{"Permissions-Policy", 5, ""},
}

// analyzeSecurity scores the snapshot against the security rubric. The TLS
// handshake sub-check is the only network I/O beyond the original fetch; any
// failure there is recorded as an issue and never propagated.
func analyzeSecurity(ctx context.Context, s *Snapshot, verifier TLSVerifier) model.CategoryResult {
	rules := make([]rule, 0, len(securityHeaders)+2)

	rules = append(rules, rule{name: "https", run: func(s *Snapshot) finding {
		if s.Scheme == "https" {
			return finding{points: 30, success: "HTTPSが使用されています"}
		}
		return finding{issue: "HTTPSが使用されていません（セキュリティリスク）", explainKey: "https"}
	}})

	for _, h := range securityHeaders {
		rules = append(rules, rule{name: h.name, run: func(s *Snapshot) finding {
			if s.Header.Get(h.name) != "" {
				return finding{points: h.points, success: fmt.Sprintf("%sヘッダーが設定されています", h.name)}
			}
			return finding{
				issue:      fmt.Sprintf("%sヘッダーが設定されていません", h.name),
				explainKey: h.explainKey,
			}
		}})
	}

	rules = append(rules, rule{name: "tls certificate", run: func(s *Snapshot) finding {
		if s.Scheme != "https" {
			return finding{skipped: true}
		}
		info, err := verifier.Verify(ctx, s.Domain)
		if err != nil {
			return finding{issue: fmt.Sprintf("SSL証明書の確認に失敗しました: %v", err)}
		}
		return finding{success: fmt.Sprintf(
			"SSL証明書が有効です（発行先: %s、発行者: %s、有効期限: %s〜%s）",
			info.Subject,
			info.Issuer,
			info.NotBefore.Format("2006-01-02"),
			info.NotAfter.Format("2006-01-02"),
		)}
	}})

	return runRules(model.CategorySecurity, rules, s)
}

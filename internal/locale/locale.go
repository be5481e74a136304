// Package locale holds the presentation tables for diagnosis findings: the
// plain-language explanation records attached to known issues, and the
// ordered fragment table that renders Japanese finding text in English.
// Neither table takes part in scoring.
package locale

import (
	"strings"

	"github.com/bscre8/website-diagnosis/internal/model"
)

// Explain returns the explanation record for a known sub-check of the given
// category. The second return is false for sub-checks that carry no
// explanation.
func Explain(category model.Category, key string) (model.Explanation, bool) {
	exp, ok := explanations[category][key]
	return exp, ok
}

// Translate maps a finding to its English rendering. Exact matches win;
// otherwise the first table entry whose fragment occurs in the text is
// replaced in place, so numeric or contextual suffixes survive
// ("alt属性のない画像があります: 68/118" → "Images without alt attributes: 68/118").
// Text matching nothing is returned unchanged; that is the intended
// fallback, not an error.
func Translate(text string) string {
	for _, e := range translations {
		if e.fragment == text {
			return e.english
		}
	}
	for _, e := range translations {
		if strings.Contains(text, e.fragment) {
			return strings.Replace(text, e.fragment, e.english, 1)
		}
	}
	return text
}

type translation struct {
	fragment string
	english  string
}

// translations is scanned in order; entries whose fragment could occur
// inside a longer sibling come after it.
var translations = []translation{
	{"titleタグが見つかりません", "Title tag not found"},
	{"titleタグの長さが最適ではありません", "Title length is not optimal"},
	{"titleタグが設定されています", "Title tag configured"},
	{"meta descriptionが見つかりません", "Meta description not found"},
	{"meta descriptionの長さが最適ではありません", "Meta description length is not optimal"},
	{"meta descriptionが設定されています", "Meta description configured"},
	{"H1タグが見つかりません", "H1 tag not found"},
	{"H1タグが複数あります", "Multiple H1 tags found"},
	{"H1タグが1つだけあります", "Single H1 tag found"},
	{"H2タグが見つかりません", "H2 tag not found"},
	{"H2タグが設定されています", "H2 tags configured"},
	{"ほとんどの画像にalt属性が設定されています", "Most images have alt attributes"},
	{"すべての画像にalt属性が設定されています", "All images have alt attributes"},
	{"多くの画像にalt属性がありません", "Many images missing alt attributes"},
	{"alt属性のない画像があります", "Images without alt attributes"},
	{"Open Graphタグが設定されていません", "Open Graph tags not configured"},
	{"Open Graphタグが設定されています", "Open Graph tags configured"},
	{"Twitter Cardタグが設定されていません", "Twitter Card tags not configured"},
	{"Twitter Cardタグが設定されています", "Twitter Card tags configured"},
	{"canonicalタグが設定されていません", "Canonical tag not configured"},
	{"canonicalタグが設定されています", "Canonical tag configured"},
	{"内部リンクが見つかりません", "No internal links found"},
	{"内部リンクがあります", "Internal links found"},
	{"構造化データが見つかりません", "Structured data not found"},
	{"構造化データが設定されています", "Structured data found"},
	{"HTTPSが使用されていません（セキュリティリスク）", "HTTPS not enabled (security risk)"},
	{"HTTPSが使用されています", "HTTPS enabled"},
	{"SSL証明書の確認に失敗しました", "SSL certificate check failed"},
	{"SSL証明書が有効です", "Valid SSL certificate"},
	{"Strict-Transport-Securityヘッダーが設定されていません", "Strict-Transport-Security header missing"},
	{"Strict-Transport-Securityヘッダーが設定されています", "Strict-Transport-Security header configured"},
	{"X-Frame-Optionsヘッダーが設定されていません", "X-Frame-Options header missing"},
	{"X-Frame-Optionsヘッダーが設定されています", "X-Frame-Options header configured"},
	{"X-Content-Type-Optionsヘッダーが設定されていません", "X-Content-Type-Options header missing"},
	{"X-Content-Type-Optionsヘッダーが設定されています", "X-Content-Type-Options header configured"},
	{"X-XSS-Protectionヘッダーが設定されていません", "X-XSS-Protection header missing"},
	{"X-XSS-Protectionヘッダーが設定されています", "X-XSS-Protection header configured"},
	{"Content-Security-Policyヘッダーが設定されていません", "Content-Security-Policy header missing"},
	{"Content-Security-Policyヘッダーが設定されています", "Content-Security-Policy header configured"},
	{"Referrer-Policyヘッダーが設定されていません", "Referrer-Policy header missing"},
	{"Referrer-Policyヘッダーが設定されています", "Referrer-Policy header configured"},
	{"Permissions-Policyヘッダーが設定されていません", "Permissions-Policy header missing"},
	{"Permissions-Policyヘッダーが設定されています", "Permissions-Policy header configured"},
	{"ページの読み込みが非常に遅い", "Very slow page load time"},
	{"ページの読み込みがやや遅い", "Slightly slow page load time"},
	{"ページの読み込みが遅い", "Slow page load time"},
	{"ページの読み込みが高速です", "Fast page load time"},
	{"ページサイズが非常に大きい", "Very large page size"},
	{"ページサイズがやや大きい", "Slightly large page size"},
	{"ページサイズが大きい", "Large page size"},
	{"ページサイズが適切です", "Appropriate page size"},
	{"リソース数が多すぎます", "Too many resources"},
	{"リソース数は許容範囲です", "Moderate number of resources"},
	{"リソース数が適切です", "Appropriate number of resources"},
	{"Gzip圧縮が有効になっていません", "Gzip compression not enabled"},
	{"Gzip圧縮が有効です", "Gzip compression enabled"},
	{"Cache-Controlヘッダーが設定されていません", "Cache-Control header missing"},
	{"Cache-Controlが設定されています", "Cache-Control configured"},
	{"HTML要素にlang属性がありません", "HTML element missing lang attribute"},
	{"HTML要素にlang属性があります", "HTML lang attribute present"},
	{"多くのフォーム要素にlabelがありません", "Many form elements without labels"},
	{"labelがないフォーム要素があります", "Form elements without labels"},
	{"すべてのフォーム要素にlabelが設定されています", "All form elements have labels"},
	{"ARIA属性が使用されています", "ARIA attributes used"},
	{"mainランドマークがありません", "Main landmark missing"},
	{"mainランドマークがあります", "Main landmark found"},
	{"navランドマークがあります", "Navigation landmark found"},
	{"見出しの階層構造に問題があります", "Heading hierarchy issues"},
	{"見出しの階層構造が適切です", "Proper heading hierarchy"},
	{"テキストのないリンクがあります", "Links without text"},
	{"すべてのリンクにテキストが設定されています", "All links have text"},
}

// explanations holds the beginner-oriented what/why/how records per
// category sub-check. Keys match the explainKey used by the analyzers.
var explanations = map[model.Category]map[string]model.Explanation{
	model.CategorySEO: {
		"title": {
			What: "タイトルタグは、ブラウザのタブやGoogle検索結果に表示される「ページのタイトル」です。",
			Why:  "わかりやすいタイトルがあると、検索結果でクリックされやすくなります。",
			How:  "タイトルは30〜60文字が最適です。会社名やページの内容を簡潔に書きましょう。",
		},
		"meta_description": {
			What: "メタディスクリプションは、Google検索結果でタイトルの下に表示される「説明文」です。",
			Why:  "魅力的な説明文があると、検索結果からのアクセスが増えます。",
			How:  "120〜160文字で、ページの内容を簡潔に説明しましょう。",
		},
		"h1": {
			What: "H1タグは、ページの「大見出し」です。新聞の1面の大きな見出しのようなものです。",
			Why:  "Googleがページの内容を理解するための重要な手がかりになります。",
			How:  "H1タグは1ページに1つだけ配置し、ページの内容を表す見出しにしましょう。",
		},
		"alt": {
			What: "alt属性は、画像の「説明文」です。画像が表示されない時や、目の不自由な方のために使われます。",
			Why:  "Googleは画像の内容を理解できないので、alt属性で説明する必要があります。",
			How:  "各画像に「何の画像か」を簡潔に説明する文章を付けましょう。",
		},
	},
	model.CategorySecurity: {
		"https": {
			What: "HTTPSは、ウェブサイトとの通信を「暗号化」する技術です。南京錠のマークが表示されます。",
			Why:  "HTTPSがないと、入力した情報（パスワードやクレジットカード番号など）が盗まれる危険があります。",
			How:  "サーバー会社に「SSL証明書」を申請してインストールする必要があります（多くは無料）。",
			Risk: "【危険度：高】HTTPSがないサイトは、Googleが「安全でない」と警告を表示します。",
		},
		"strict_transport_security": {
			What: "HSTS（HTTP Strict Transport Security）は、「必ずHTTPSで接続する」という指示です。",
			Why:  "悪意のある人が、HTTPSをHTTPに変えて情報を盗む攻撃を防ぎます。",
			How:  "サーバーの設定で「Strict-Transport-Security」ヘッダーを追加します。",
			Risk: "【危険度：中】HTTPSを使っていても、この設定がないと一部の攻撃を防げません。",
		},
		"x_frame_options": {
			What: "X-Frame-Optionsは、「他のサイトに埋め込まれるのを防ぐ」設定です。",
			Why:  "悪意のあるサイトがあなたのサイトを埋め込んで、ユーザーを騙す攻撃（クリックジャッキング）を防ぎます。",
			How:  "サーバーの設定で「X-Frame-Options: DENY」または「SAMEORIGIN」を追加します。",
			Risk: "【危険度：中】この設定がないと、偽のログイン画面などに悪用される可能性があります。",
		},
		"content_security_policy": {
			What: "CSP（Content Security Policy）は、「どこからスクリプトを読み込むか」を制限する設定です。",
			Why:  "悪意のあるスクリプトが勝手に実行されるのを防ぎます（XSS攻撃対策）。",
			How:  "サーバーの設定で「Content-Security-Policy」ヘッダーを追加します。",
			Risk: "【危険度：中〜高】この設定がないと、サイトに不正なコードを埋め込まれる危険があります。",
		},
	},
	model.CategoryPerformance: {
		"load_time": {
			What: "ページ読み込み時間は、サイトが表示されるまでにかかる時間です。",
			Why:  "読み込みが遅いと、ユーザーが待ちきれずに離脱してしまいます（3秒以上で半数が離脱）。",
			How:  "画像を圧縮する、不要なスクリプトを削除する、サーバーを高速化するなどの方法があります。",
		},
		"page_size": {
			What: "ページサイズは、ウェブページ全体のデータ量（MB）です。",
			Why:  "ページサイズが大きいと、読み込みに時間がかかり、スマホのデータ通信量も増えます。",
			How:  "画像を圧縮する、不要なコードを削除する、動画は外部サービスを使うなど。",
		},
		"compression": {
			What: "圧縮は、データを「zip形式」のように小さくして送る技術です。",
			Why:  "圧縮すると、データ量が50〜70%減少し、読み込みが速くなります。",
			How:  "サーバーの設定で「Gzip圧縮」または「Brotli圧縮」を有効にします。",
		},
	},
	model.CategoryAccessibility: {
		"lang": {
			What: "lang属性は、「このページは何語で書かれているか」を示すものです。",
			Why:  "目の不自由な方が使う「読み上げソフト」が、正しい発音で読み上げるために必要です。",
			How:  "HTMLの最初に <html lang=\"ja\"> のように言語を指定します（日本語は\"ja\"）。",
		},
		"main_landmark": {
			What: "mainランドマークは、「ページのメインコンテンツはここ」という目印です。",
			Why:  "目の不自由な方が、読み上げソフトで「本文にジャンプ」できるようになります。",
			How:  "メインコンテンツを <main> タグで囲みます。",
		},
	},
}

package diagnosis

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"
)

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("failed to parse URL %q: %v", raw, err)
	}
	return u
}

// testSnapshot parses the given HTML as if it were fetched from rawURL.
func testSnapshot(t *testing.T, rawURL, body string, header http.Header, elapsed time.Duration) *Snapshot {
	t.Helper()
	if header == nil {
		header = http.Header{}
	}
	snap, err := NewSnapshot(mustParseURL(t, rawURL), strings.NewReader(body), header, len(body), elapsed)
	if err != nil {
		t.Fatalf("unexpected snapshot error: %v", err)
	}
	return snap
}

func TestNewSnapshot_FullDocument(t *testing.T) {
	const page = `<!DOCTYPE html>
<html lang="ja">
<head>
<title>サンプルページ</title>
<meta name="description" content="説明文です">
<meta property="og:title" content="Sample">
<meta property="og:image" content="https://example.com/x.png">
<meta name="twitter:card" content="summary">
<link rel="canonical" href="https://example.com/">
<link rel="stylesheet" href="/main.css">
<script type="application/ld+json">{"@type":"WebSite"}</script>
<script src="/app.js"></script>
</head>
<body>
<header role="banner"><h1>見出し</h1></header>
<nav aria-label="主要"><a href="/about">会社情報</a></nav>
<main>
<h2>節</h2>
<h3>小節</h3>
<img src="/a.png" alt="写真A">
<img src="/b.png">
<form>
<label for="q">検索</label>
<input id="q" type="text">
<select aria-label="並び順"></select>
<textarea></textarea>
</form>
<a href="https://other.example.org/">外部サイト</a>
<a href="/empty" tabindex="-1"></a>
<iframe src="/frame"></iframe>
</main>
<footer></footer>
</body>
</html>`

	snap := testSnapshot(t, "https://example.com/page", page, nil, 1500*time.Millisecond)

	if snap.Title != "サンプルページ" {
		t.Errorf("Title = %q, want %q", snap.Title, "サンプルページ")
	}
	if snap.MetaDescription != "説明文です" {
		t.Errorf("MetaDescription = %q, want %q", snap.MetaDescription, "説明文です")
	}
	if snap.Lang != "ja" {
		t.Errorf("Lang = %q, want %q", snap.Lang, "ja")
	}
	if len(snap.OpenGraph) != 2 {
		t.Errorf("OpenGraph entries = %d, want 2: %v", len(snap.OpenGraph), snap.OpenGraph)
	}
	if len(snap.TwitterCard) != 1 {
		t.Errorf("TwitterCard entries = %d, want 1", len(snap.TwitterCard))
	}
	if snap.Canonical != "https://example.com/" {
		t.Errorf("Canonical = %q", snap.Canonical)
	}
	if got := snap.HeadingLevels; len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("HeadingLevels = %v, want [1 2 3]", got)
	}
	if snap.Headings["h1"] != 1 || snap.Headings["h2"] != 1 {
		t.Errorf("Headings = %v", snap.Headings)
	}
	if len(snap.Images) != 2 || snap.ImagesWithAlt() != 1 {
		t.Errorf("Images = %d withAlt = %d, want 2/1", len(snap.Images), snap.ImagesWithAlt())
	}
	if len(snap.FormControls) != 3 {
		t.Errorf("FormControls = %d, want 3", len(snap.FormControls))
	}
	if !snap.LabelFor["q"] {
		t.Error("LabelFor missing id \"q\"")
	}
	if snap.RoleCount != 1 {
		t.Errorf("RoleCount = %d, want 1", snap.RoleCount)
	}
	// nav aria-label + select aria-label
	if snap.AriaLabelCount != 2 {
		t.Errorf("AriaLabelCount = %d, want 2", snap.AriaLabelCount)
	}
	if snap.NegativeTabindex != 1 {
		t.Errorf("NegativeTabindex = %d, want 1", snap.NegativeTabindex)
	}
	if snap.Landmarks["main"] != 1 || snap.Landmarks["nav"] != 1 || snap.Landmarks["footer"] != 1 {
		t.Errorf("Landmarks = %v", snap.Landmarks)
	}
	if len(snap.JSONLD) != 1 || !strings.Contains(snap.JSONLD[0], "WebSite") {
		t.Errorf("JSONLD = %v", snap.JSONLD)
	}
	if snap.ScriptCount != 2 {
		t.Errorf("ScriptCount = %d, want 2", snap.ScriptCount)
	}
	if snap.StylesheetCount != 1 {
		t.Errorf("StylesheetCount = %d, want 1", snap.StylesheetCount)
	}
	if snap.IframeCount != 1 {
		t.Errorf("IframeCount = %d, want 1", snap.IframeCount)
	}
	if snap.InternalLinks != 2 {
		t.Errorf("InternalLinks = %d, want 2", snap.InternalLinks)
	}
	if snap.ExternalLinks != 1 {
		t.Errorf("ExternalLinks = %d, want 1", snap.ExternalLinks)
	}
	if len(snap.Anchors) != 3 {
		t.Fatalf("Anchors = %d, want 3", len(snap.Anchors))
	}
	if snap.Anchors[0].Text != "会社情報" || !snap.Anchors[0].Internal {
		t.Errorf("first anchor = %+v", snap.Anchors[0])
	}
	if snap.Anchors[2].Text != "" || snap.Anchors[2].AriaLabel != "" {
		t.Errorf("empty anchor = %+v", snap.Anchors[2])
	}
	if snap.Domain != "example.com" {
		t.Errorf("Domain = %q, want %q", snap.Domain, "example.com")
	}
	if snap.Elapsed != 1.5 {
		t.Errorf("Elapsed = %f, want 1.5", snap.Elapsed)
	}
	if snap.Size != len(page) {
		t.Errorf("Size = %d, want %d", snap.Size, len(page))
	}
}

func TestClassifyLink(t *testing.T) {
	base := mustParseURL(t, "https://example.com/dir/page")

	tests := []struct {
		name         string
		href         string
		wantInternal bool
		wantOK       bool
	}{
		{name: "relative path", href: "/about", wantInternal: true, wantOK: true},
		{name: "same host absolute", href: "https://example.com/x", wantInternal: true, wantOK: true},
		{name: "host case insensitive", href: "https://EXAMPLE.com/x", wantInternal: true, wantOK: true},
		{name: "external host", href: "https://other.org/", wantInternal: false, wantOK: true},
		{name: "mailto skipped", href: "mailto:hi@example.com", wantOK: false},
		{name: "javascript skipped", href: "javascript:void(0)", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			internal, ok := classifyLink(tt.href, base)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && internal != tt.wantInternal {
				t.Errorf("internal = %v, want %v", internal, tt.wantInternal)
			}
		})
	}
}

func TestNewSnapshot_ResourceCount(t *testing.T) {
	page := `<html><head><link rel="stylesheet" href="a.css"><script></script></head>` +
		`<body><img src="a.png"><img src="b.png"><iframe></iframe></body></html>`

	snap := testSnapshot(t, "https://example.com", page, nil, 0)

	if got := snap.ResourceCount(); got != 5 {
		t.Errorf("ResourceCount = %d, want 5", got)
	}
}

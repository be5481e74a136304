package diagnosis

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Image is one <img> element's src/alt pair.
type Image struct {
	Src string
	Alt string
}

// Anchor is one <a> element with its visible text and aria-label.
// Internal is set when the href resolves to the snapshot's own host; like
// ExternalLinks it is recorded for the capture but never scored.
type Anchor struct {
	Href      string
	Text      string
	AriaLabel string
	Internal  bool
}

// FormControl is one input, textarea, or select element.
type FormControl struct {
	Tag       string
	ID        string
	AriaLabel string
}

// landmarkTags are the structural regions counted for accessibility.
var landmarkTags = map[string]bool{
	"header":  true,
	"nav":     true,
	"main":    true,
	"footer":  true,
	"aside":   true,
	"section": true,
	"article": true,
}

// Snapshot is the immutable capture of one fetched page: its content,
// response headers, and timing. It is built once per diagnosis run and is
// the sole input to all four analyzers; no analyzer may mutate it.
type Snapshot struct {
	URL     string
	Scheme  string
	Domain  string
	Elapsed float64 // fetch duration in seconds
	Size    int     // body length in bytes
	Header  http.Header

	Title           string
	MetaDescription string
	OpenGraph       map[string]string
	TwitterCard     map[string]string
	Canonical       string

	// HeadingLevels holds every heading's level (1-6) in document order;
	// Headings counts them per tag.
	HeadingLevels []int
	Headings      map[string]int

	Images       []Image
	Anchors      []Anchor
	FormControls []FormControl
	LabelFor     map[string]bool // ids referenced by a <label for="...">

	RoleCount      int
	AriaLabelCount int
	// NegativeTabindex counts elements with tabindex < 0. Diagnostic only,
	// never scored.
	NegativeTabindex int

	Landmarks map[string]int
	JSONLD    []string // raw <script type="application/ld+json"> bodies
	Lang      string

	ScriptCount     int
	StylesheetCount int
	IframeCount     int
	InternalLinks   int
	ExternalLinks   int
}

// ImagesWithAlt counts images carrying a non-empty alt attribute.
func (s *Snapshot) ImagesWithAlt() int {
	n := 0
	for _, img := range s.Images {
		if strings.TrimSpace(img.Alt) != "" {
			n++
		}
	}
	return n
}

// ResourceCount is the total of scripts, stylesheets, images, and iframes.
func (s *Snapshot) ResourceCount() int {
	return s.ScriptCount + s.StylesheetCount + len(s.Images) + s.IframeCount
}

// NewSnapshot parses the page body and assembles the full capture.
func NewSnapshot(base *url.URL, body io.Reader, header http.Header, size int, elapsed time.Duration) (*Snapshot, error) {
	s := &Snapshot{
		URL:         base.String(),
		Scheme:      base.Scheme,
		Domain:      base.Hostname(),
		Elapsed:     elapsed.Seconds(),
		Size:        size,
		Header:      header,
		OpenGraph:   map[string]string{},
		TwitterCard: map[string]string{},
		Headings:    map[string]int{"h1": 0, "h2": 0, "h3": 0, "h4": 0, "h5": 0, "h6": 0},
		LabelFor:    map[string]bool{},
		Landmarks:   map[string]int{},
	}

	if err := s.parse(body, base); err != nil {
		return nil, err
	}
	return s, nil
}

// parse performs a single-pass traversal of the HTML body. Container state
// (open title, anchor, or JSON-LD script) is tracked so text tokens land in
// the right field.
func (s *Snapshot) parse(body io.Reader, base *url.URL) error {
	z := html.NewTokenizer(body)

	var (
		inTitle    bool
		inJSONLD   bool
		jsonldBuf  strings.Builder
		anchor     *Anchor
		anchorText strings.Builder
	)

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return nil
			}
			return z.Err()

		case html.StartTagToken, html.SelfClosingTagToken:
			tn, hasAttr := z.TagName()
			tag := string(tn)

			var attrs map[string]string
			if hasAttr {
				attrs = tagAttrs(z)
			}
			s.observeCommonAttrs(attrs)

			switch tag {
			case "html":
				if s.Lang == "" {
					s.Lang = strings.TrimSpace(attrs["lang"])
				}

			case "title":
				if tt == html.StartTagToken {
					inTitle = true
				}

			case "meta":
				s.observeMeta(attrs)

			case "link":
				s.observeLink(attrs)

			case "h1", "h2", "h3", "h4", "h5", "h6":
				s.Headings[tag]++
				s.HeadingLevels = append(s.HeadingLevels, int(tag[1]-'0'))

			case "img":
				s.Images = append(s.Images, Image{Src: attrs["src"], Alt: attrs["alt"]})

			case "a":
				a := Anchor{Href: attrs["href"], AriaLabel: strings.TrimSpace(attrs["aria-label"])}
				if a.Href != "" {
					if internal, ok := classifyLink(a.Href, base); ok {
						a.Internal = internal
						if internal {
							s.InternalLinks++
						} else {
							s.ExternalLinks++
						}
					}
				}
				if tt == html.SelfClosingTagToken {
					s.Anchors = append(s.Anchors, a)
				} else {
					anchor = &a
					anchorText.Reset()
				}

			case "input", "textarea", "select":
				s.FormControls = append(s.FormControls, FormControl{
					Tag:       tag,
					ID:        attrs["id"],
					AriaLabel: strings.TrimSpace(attrs["aria-label"]),
				})

			case "label":
				if forID := attrs["for"]; forID != "" {
					s.LabelFor[forID] = true
				}

			case "script":
				s.ScriptCount++
				if tt == html.StartTagToken && strings.EqualFold(attrs["type"], "application/ld+json") {
					inJSONLD = true
					jsonldBuf.Reset()
				}

			case "iframe":
				s.IframeCount++
			}

			if landmarkTags[tag] {
				s.Landmarks[tag]++
			}

		case html.TextToken:
			text := string(z.Text())
			switch {
			case inTitle:
				s.Title = strings.TrimSpace(text)
				inTitle = false
			case inJSONLD:
				jsonldBuf.WriteString(text)
			case anchor != nil:
				anchorText.WriteString(text)
			}

		case html.EndTagToken:
			tn, _ := z.TagName()
			switch string(tn) {
			case "title":
				inTitle = false
			case "script":
				if inJSONLD {
					s.JSONLD = append(s.JSONLD, jsonldBuf.String())
					inJSONLD = false
				}
			case "a":
				if anchor != nil {
					anchor.Text = strings.TrimSpace(anchorText.String())
					s.Anchors = append(s.Anchors, *anchor)
					anchor = nil
				}
			}
		}
	}
}

// observeCommonAttrs records attributes tracked on every element.
func (s *Snapshot) observeCommonAttrs(attrs map[string]string) {
	if attrs == nil {
		return
	}
	if _, ok := attrs["role"]; ok {
		s.RoleCount++
	}
	if _, ok := attrs["aria-label"]; ok {
		s.AriaLabelCount++
	}
	if v, ok := attrs["tabindex"]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n < 0 {
			s.NegativeTabindex++
		}
	}
}

func (s *Snapshot) observeMeta(attrs map[string]string) {
	name := strings.ToLower(attrs["name"])
	property := strings.ToLower(attrs["property"])
	content := attrs["content"]

	switch {
	case name == "description":
		s.MetaDescription = strings.TrimSpace(content)
	case strings.HasPrefix(property, "og:"):
		s.OpenGraph[property] = content
	case strings.HasPrefix(name, "twitter:"):
		s.TwitterCard[name] = content
	}
}

func (s *Snapshot) observeLink(attrs map[string]string) {
	for rel := range strings.FieldsSeq(strings.ToLower(attrs["rel"])) {
		switch rel {
		case "stylesheet":
			s.StylesheetCount++
		case "canonical":
			if href := attrs["href"]; href != "" {
				s.Canonical = href
			}
		}
	}
}

// tagAttrs drains the current tag's attributes into a map.
func tagAttrs(z *html.Tokenizer) map[string]string {
	attrs := map[string]string{}
	for {
		key, val, more := z.TagAttr()
		attrs[string(key)] = string(val)
		if !more {
			return attrs
		}
	}
}

// classifyLink resolves href against the base URL. The second return is
// false for non-http(s) schemes (mailto:, javascript:, tel:, etc.).
func classifyLink(href string, base *url.URL) (internal, ok bool) {
	parsed, err := url.Parse(href)
	if err != nil {
		return false, false
	}

	resolved := base.ResolveReference(parsed)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return false, false
	}

	return strings.EqualFold(resolved.Host, base.Host), true
}

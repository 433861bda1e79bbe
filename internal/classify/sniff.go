package classify

import (
	"encoding/json"
	"strings"

	"github.com/custodia-labs/clipscope/internal/core/domain"
)

// sniffRule is one content predicate and the kind it yields.
type sniffRule struct {
	name  string
	match func(mime, trimmed string) bool
	kind  func(mime string) domain.DataKind
}

func fixed(k domain.DataKind) func(string) domain.DataKind {
	return func(string) domain.DataKind { return k }
}

// rules are evaluated in order; the first match wins.
var rules = []sniffRule{
	{name: "json", match: looksLikeJSON, kind: fixed(domain.KindJSON)},
	{name: "xml-declaration", match: func(_, s string) bool {
		return strings.HasPrefix(s, "<?xml")
	}, kind: fixed(domain.KindXML)},
	{name: "html-document", match: func(_, s string) bool {
		l := strings.ToLower(s)
		return strings.HasPrefix(l, "<!doctype html") || strings.HasPrefix(l, "<html")
	}, kind: fixed(domain.KindHTML)},
	{name: "markup", match: func(_, s string) bool {
		return strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">")
	}, kind: func(mime string) domain.DataKind {
		if strings.Contains(mime, "html") {
			return domain.KindHTML
		}
		return domain.KindXML
	}},
	{name: "rtf", match: func(_, s string) bool {
		return strings.HasPrefix(s, `{\rtf`)
	}, kind: fixed(domain.KindRTF)},
	{name: "text", match: func(mime, s string) bool {
		return strings.HasPrefix(mime, "text/") || s != ""
	}, kind: fixed(domain.KindPlainText)},
}

// Rules returns the names of the sniffing rules in evaluation order.
func Rules() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

// MatchRule evaluates a single named rule against a sample.
// It reports false for unknown rule names.
func MatchRule(name, mimeType, sample string) (domain.DataKind, bool) {
	m := Normalize(mimeType)
	s := strings.TrimSpace(sample)
	for _, r := range rules {
		if r.name == name {
			if r.match(m, s) {
				return r.kind(m), true
			}
			return "", false
		}
	}
	return "", false
}

func sniff(m, sample string) (domain.DataKind, bool) {
	s := strings.TrimSpace(sample)
	for _, r := range rules {
		if r.match(m, s) {
			return r.kind(m), true
		}
	}
	return "", false
}

func looksLikeJSON(_, s string) bool {
	if len(s) < 2 {
		return false
	}
	first, last := s[0], s[len(s)-1]
	if !(first == '{' && last == '}') && !(first == '[' && last == ']') {
		return false
	}
	return json.Valid([]byte(s))
}

// Package sources implements the per-board parsers behind the
// board.Parser contract, including the workaround for boards whose
// public pages are rendered client-side.
package sources

import (
	"regexp"
	"sync"
)

var (
	patternMu       sync.Mutex
	handlerPatterns = map[string]*regexp.Regexp{}
	seqPatterns     = map[string]*regexp.Regexp{}
)

// HandlerID extracts the first quoted argument of an inline event-handler
// call such as fnView('1005200642', 'admin', ...). Boards embed the item
// identifier there instead of in a plain attribute. A missing match
// yields ""; callers must treat an empty identifier as unparseable.
func HandlerID(fn, handlerText string) string {
	re := compileCached(handlerPatterns, fn, func() string {
		return regexp.QuoteMeta(fn) + `\s*\(\s*['"]([^'"]*)['"]`
	})
	m := re.FindStringSubmatch(handlerText)
	if m == nil {
		return ""
	}
	return m[1]
}

// SeqParam extracts the first numeric value assigned to the named
// parameter in raw script text, tolerating unquoted, single-quoted, and
// double-quoted values (nttSeq=1, nttSeq='1', nttSeq="1"). A missing
// match yields "".
func SeqParam(name, text string) string {
	re := compileCached(seqPatterns, name, func() string {
		return regexp.QuoteMeta(name) + `\s*=\s*['"]?(\d+)`
	})
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

func compileCached(cache map[string]*regexp.Regexp, key string, build func() string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := cache[key]; ok {
		return re
	}
	re := regexp.MustCompile(build())
	cache[key] = re
	return re
}

// ExtractNttSeq extracts the nttSeq item sequence from raw page text.
// Some entry points only carry the sequence inside inline script rather
// than in a URL.
func ExtractNttSeq(text string) string {
	return SeqParam("nttSeq", text)
}

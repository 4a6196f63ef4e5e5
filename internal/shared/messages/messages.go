// Package messages localises user-facing validation messages. The catalog
// is embedded and keyed by document.Code; English is the fallback.
package messages

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/text/language"

	"freelancernow/internal/domain/document"
)

//go:embed catalog.json
var catalogJSON []byte

// Catalog maps a BCP 47 tag to its messages.
type Catalog struct {
	matcher  language.Matcher
	tags     []language.Tag
	messages map[language.Tag]map[document.Code]string
}

var (
	loaded   *Catalog
	loadOnce sync.Once
	loadErr  error
)

// Default returns the embedded catalog, parsed once.
// Safe to call from multiple goroutines.
func Default() (*Catalog, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(catalogJSON)
	})
	return loaded, loadErr
}

// Parse builds a catalog from JSON shaped as {"<tag>": {"<code>": "<text>"}}.
// The "en" entry is mandatory and listed first so it wins ties.
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]map[document.Code]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}
	if _, ok := raw["en"]; !ok {
		return nil, fmt.Errorf("message catalog has no \"en\" entry")
	}

	c := &Catalog{messages: make(map[language.Tag]map[document.Code]string, len(raw))}
	c.tags = append(c.tags, language.English)
	c.messages[language.English] = raw["en"]

	for name, msgs := range raw {
		if name == "en" {
			continue
		}
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("invalid language tag %q: %w", name, err)
		}
		c.tags = append(c.tags, tag)
		c.messages[tag] = msgs
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Localize replaces the result's message with the best match for an
// Accept-Language header value.
func (c *Catalog) Localize(r document.Result, acceptLanguage string) document.Result {
	r.Message = c.Lookup(r.Code, acceptLanguage)
	return r
}

// Lookup returns the message for code in the best matching language,
// falling back to English and then to the built-in default.
func (c *Catalog) Lookup(code document.Code, acceptLanguage string) string {
	prefs, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, idx, _ := c.matcher.Match(prefs...)

	if msg, ok := c.messages[c.tags[idx]][code]; ok {
		return msg
	}
	if msg, ok := c.messages[language.English][code]; ok {
		return msg
	}
	return document.DefaultMessages[code]
}

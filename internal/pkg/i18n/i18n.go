package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultLocale is used when a path carries no recognizable locale
// segment. Overridable at startup via SetDefault.
var DefaultLocale = "it"

// Locales is the closed set of languages the site ships. Content routes
// outside this set resolve to not-found.
var Locales = []string{"it", "en"}

// SetDefault changes the fallback locale. Called once during startup
// with the configured value; locales outside the closed set are
// rejected so a config typo cannot break every fallback path.
func SetDefault(locale string) bool {
	if !IsSupported(locale) {
		return false
	}
	DefaultLocale = locale
	return true
}

//go:embed messages/*.json
var messagesFS embed.FS

// catalog maps locale -> flattened "ns.key" -> message.
var catalog map[string]map[string]string

func init() {
	catalog = make(map[string]map[string]string, len(Locales))
	for _, locale := range Locales {
		raw, err := messagesFS.ReadFile(fmt.Sprintf("messages/%s.json", locale))
		if err != nil {
			panic(fmt.Sprintf("i18n: missing message catalog for %q: %v", locale, err))
		}
		var nested map[string]interface{}
		if err := json.Unmarshal(raw, &nested); err != nil {
			panic(fmt.Sprintf("i18n: invalid message catalog for %q: %v", locale, err))
		}
		flat := make(map[string]string)
		flatten("", nested, flat)
		catalog[locale] = flat
	}
}

func flatten(prefix string, nested map[string]interface{}, out map[string]string) {
	for k, v := range nested {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]interface{}:
			flatten(key, val, out)
		}
	}
}

// IsSupported reports whether locale belongs to the closed locale set.
func IsSupported(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// Resolve extracts the locale candidate from the first path segment.
// Unsupported or missing segments fall back to the default locale with
// ok=false so callers can decide between fallback and not-found.
func Resolve(path string) (locale string, ok bool) {
	seg := firstSegment(path)
	if IsSupported(seg) {
		return seg, true
	}
	return DefaultLocale, false
}

// T looks up a message by namespaced key ("contacts.form.name").
// Missing keys fall back to the default locale, then to the key itself.
func T(locale, key string) string {
	if msgs, found := catalog[locale]; found {
		if msg, found := msgs[key]; found {
			return msg
		}
	}
	if locale != DefaultLocale {
		if msg, found := catalog[DefaultLocale][key]; found {
			return msg
		}
	}
	return key
}

// Path builds a locale-prefixed path from a bare fragment.
func Path(locale, fragment string) string {
	if !IsSupported(locale) {
		locale = DefaultLocale
	}
	fragment = strings.TrimPrefix(fragment, "/")
	if fragment == "" {
		return "/" + locale
	}
	return "/" + locale + "/" + fragment
}

// SwitchLocale rewrites the locale segment of path, preserving the route.
func SwitchLocale(path, target string) string {
	if !IsSupported(target) {
		target = DefaultLocale
	}
	trimmed := strings.TrimPrefix(path, "/")
	segs := strings.Split(trimmed, "/")
	if len(segs) > 0 && IsSupported(segs[0]) {
		segs = segs[1:]
	}
	return Path(target, strings.Join(segs, "/"))
}

func firstSegment(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if idx := strings.IndexByte(trimmed, '/'); idx >= 0 {
		return trimmed[:idx]
	}
	return trimmed
}

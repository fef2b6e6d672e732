package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header processing; RFC 7231 sets no limit but
// 4KB is generous for legitimate headers.
const maxAcceptLanguageLength = 4096

type langWithQ struct {
	lang string
	q    float64
}

func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		langAndQ := strings.Split(part, ";")
		lang := strings.ToLower(strings.TrimSpace(langAndQ[0]))
		q := 1.0
		if len(langAndQ) > 1 {
			qPart := strings.TrimSpace(langAndQ[1])
			if rest, ok := strings.CutPrefix(qPart, "q="); ok {
				if qVal, err := strconv.ParseFloat(rest, 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}

		if lang != "" {
			languages = append(languages, langWithQ{lang: lang, q: q})
		}
	}

	slices.SortFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return languages
}

// ParseAcceptLanguage negotiates a catalog language from an RFC 7231
// Accept-Language header. Exact matches (en-US) are tried across all
// preferences first, then base-language fallbacks (en-US -> en), so quality
// ordering is respected before the fallback phase kicks in.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	supported := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		supported[i] = strings.ToLower(lang)
	}

	languages := parseAcceptLanguageHeader(header)

	for _, lq := range languages {
		if slices.Contains(supported, lq.lang) {
			return lq.lang
		}
	}

	for _, lq := range languages {
		if base, _, found := strings.Cut(lq.lang, "-"); found && base != "" {
			if slices.Contains(supported, base) {
				return base
			}
		}
	}

	return defaultLang
}

package recommend

import (
	"log/slog"
	"math/rand/v2"
	"strings"

	"versemood/internal/corpus"
	"versemood/internal/labels"
	"versemood/internal/textutil"
)

const (
	// PerSection caps how many verses one canon section contributes.
	PerSection = 2
	// MaxResults caps a stratified recommendation (PerSection per section).
	MaxResults = PerSection * 3
	// DefaultAnyLimit caps a non-stratified recommendation.
	DefaultAnyLimit = 5
)

// Engine draws randomized recommendations from an in-memory corpus. It holds
// no corpus state itself; every call is a pure function of its inputs aside
// from the intentional randomness of sampling.
type Engine struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// Option customizes the engine.
type Option func(*Engine)

// WithRand overrides the random source (useful for deterministic tests).
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// NewEngine constructs a recommendation engine.
func NewEngine(logger *slog.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger: logger.With("component", "recommend"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recommend returns up to MaxResults verses matching the emotion and theme,
// at most PerSection from each canon section, in shuffled order with no
// duplicate verse keys. Secondary-language query terms are mapped to the
// primary vocabulary the corpus stores. An empty result is a valid outcome,
// not an error.
func (e *Engine) Recommend(verses []corpus.Verse, emotion, theme string, lang labels.Language) []corpus.Verse {
	matched := e.filter(verses, emotion, theme, lang)
	if len(matched) == 0 {
		e.logger.Info("no matching verses", "emotion", emotion, "theme", theme, "language", string(lang))
		return nil
	}

	sections := make(map[corpus.Section][]corpus.Verse, len(corpus.Sections))
	for _, v := range matched {
		section := corpus.SectionFor(v.Book, lang)
		sections[section] = append(sections[section], v)
	}

	var result []corpus.Verse
	for _, section := range corpus.Sections {
		pool := sections[section]
		// A thin section contributes what it has; quota is never redistributed.
		result = append(result, e.sample(pool, PerSection)...)
	}

	e.rng.Shuffle(len(result), func(i, j int) {
		result[i], result[j] = result[j], result[i]
	})

	e.logger.Info("recommended verses",
		"count", len(result), "matches", len(matched),
		"emotion", emotion, "theme", theme, "language", string(lang))
	return result
}

// RecommendAny returns up to limit matching verses sampled uniformly from the
// whole corpus, without sectioning. A limit of zero or below falls back to
// DefaultAnyLimit.
func (e *Engine) RecommendAny(verses []corpus.Verse, emotion, theme string, lang labels.Language, limit int) []corpus.Verse {
	if limit <= 0 {
		limit = DefaultAnyLimit
	}
	matched := e.filter(verses, emotion, theme, lang)
	if len(matched) == 0 {
		return nil
	}
	return e.sample(matched, limit)
}

// filter applies the vocabulary mapping and the normalized emotion/theme
// match, deduplicating by verse key. Theme matching is membership against the
// joined multi-label value, so a verse labeled with several themes matches
// any one of them.
func (e *Engine) filter(verses []corpus.Verse, emotion, theme string, lang labels.Language) []corpus.Verse {
	if lang == labels.LanguageSpanish {
		emotion = labels.CanonicalEmotion(emotion)
		theme = labels.CanonicalTheme(theme)
	}
	emotionNorm := textutil.Normalize(emotion)
	themeNorm := textutil.Normalize(theme)
	// An empty normalization means "unmatched", never "matches everything".
	if emotionNorm == "" || themeNorm == "" {
		return nil
	}

	seen := make(map[corpus.Key]struct{}, len(verses))
	var matched []corpus.Verse
	for _, v := range verses {
		if textutil.Normalize(v.Emotion) != emotionNorm {
			continue
		}
		if !strings.Contains(textutil.Normalize(v.ThemeString()), themeNorm) {
			continue
		}
		key := v.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		matched = append(matched, v)
	}
	return matched
}

// sample draws up to n verses uniformly without replacement, leaving the
// input slice untouched.
func (e *Engine) sample(pool []corpus.Verse, n int) []corpus.Verse {
	if len(pool) <= n {
		out := make([]corpus.Verse, len(pool))
		copy(out, pool)
		return out
	}
	indexes := e.rng.Perm(len(pool))[:n]
	out := make([]corpus.Verse, 0, n)
	for _, i := range indexes {
		out = append(out, pool[i])
	}
	return out
}

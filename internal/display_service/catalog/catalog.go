package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/dialware/golang_services/internal/display_service/domain"
)

// Catalog resolves label keys to display strings. Lookup is layered: runtime
// overrides first, then locale bundles, then the built-in English defaults.
// Readers may call it from any goroutine; overrides and bundles are guarded
// by a RWMutex.
type Catalog struct {
	defaultLocale string
	logger        *slog.Logger

	mu        sync.RWMutex
	bundles   map[string]map[domain.LabelKey]string
	overrides map[string]map[domain.LabelKey]string
}

// New creates a Catalog serving the built-in defaults. defaultLocale is
// consulted when a request carries no locale of its own.
func New(defaultLocale string, logger *slog.Logger) *Catalog {
	if defaultLocale == "" {
		defaultLocale = "en"
	}
	return &Catalog{
		defaultLocale: normalizeLocale(defaultLocale),
		logger:        logger.With("component", "catalog"),
		bundles:       make(map[string]map[domain.LabelKey]string),
		overrides:     make(map[string]map[domain.LabelKey]string),
	}
}

// Text resolves key for the requested locale. Resolution walks the locale
// candidates ("pt-BR", then "pt", then the default locale) through the
// override and bundle layers and falls back to the built-in defaults, so a
// defined key never resolves to "".
func (c *Catalog) Text(key domain.LabelKey, locale string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, loc := range c.localeCandidates(locale) {
		if text, ok := c.overrides[loc][key]; ok {
			return text
		}
		if text, ok := c.bundles[loc][key]; ok {
			return text
		}
	}
	if text, ok := builtinEnglish[key]; ok {
		return text
	}
	// Unknown keys only arrive through direct library misuse; echoing the
	// key beats returning nothing to render.
	return string(key)
}

// TypeLabel resolves the bare name of a phone type. Only the true custom
// type honors the caller-supplied label, and only when it is non-empty;
// assistant numbers keep their fixed generic name here even though they
// count as custom for interaction labeling.
func (c *Catalog) TypeLabel(t *domain.PhoneType, customLabel, locale string) string {
	if t != nil && *t == domain.TypeCustom && customLabel != "" {
		return customLabel
	}
	return c.Text(domain.GenericLabelKey(t), locale)
}

// AddBundle installs or replaces the bundle for one locale.
func (c *Catalog) AddBundle(locale string, entries map[domain.LabelKey]string) {
	loc := normalizeLocale(locale)
	bundle := make(map[domain.LabelKey]string, len(entries))
	for k, v := range entries {
		bundle[k] = v
	}
	c.mu.Lock()
	c.bundles[loc] = bundle
	c.mu.Unlock()
}

// LoadBundles reads every *.yaml / *.yml file in dir as a locale bundle
// named after the file ("es.yaml" feeds locale "es"). Partial bundles are
// fine; entries with unknown keys or non-string values are skipped.
func (c *Catalog) LoadBundles(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading locale bundle dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		locale := strings.TrimSuffix(name, ext)

		v := viper.New()
		v.SetConfigFile(filepath.Join(dir, name))
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading locale bundle %s: %w", name, err)
		}

		bundle := make(map[domain.LabelKey]string)
		skipped := 0
		for rawKey, rawValue := range v.AllSettings() {
			key := domain.LabelKey(rawKey)
			text, ok := rawValue.(string)
			if !ok || !domain.IsKnownLabelKey(key) {
				skipped++
				continue
			}
			bundle[key] = text
		}
		c.AddBundle(locale, bundle)
		c.logger.Info("Locale bundle loaded", "locale", locale, "entries", len(bundle), "skipped", skipped)
	}
	return nil
}

// ApplyOverride installs a runtime override for one key in one locale.
// Keys outside the closed catalog key set are rejected.
func (c *Catalog) ApplyOverride(locale string, key domain.LabelKey, text string) error {
	if !domain.IsKnownLabelKey(key) {
		return domain.ErrUnknownLabelKey
	}
	loc := c.localeOrDefault(locale)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.overrides[loc] == nil {
		c.overrides[loc] = make(map[domain.LabelKey]string)
	}
	c.overrides[loc][key] = text
	return nil
}

// RemoveOverride drops a runtime override and reports whether it existed.
func (c *Catalog) RemoveOverride(locale string, key domain.LabelKey) bool {
	loc := c.localeOrDefault(locale)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.overrides[loc][key]; !ok {
		return false
	}
	delete(c.overrides[loc], key)
	if len(c.overrides[loc]) == 0 {
		delete(c.overrides, loc)
	}
	return true
}

// OverrideEntry is one runtime override as currently applied.
type OverrideEntry struct {
	Locale string          `json:"locale"`
	Key    domain.LabelKey `json:"label_key"`
	Text   string          `json:"label_text"`
}

// Overrides snapshots the applied runtime overrides in a stable order,
// optionally filtered by locale (empty means all locales).
func (c *Catalog) Overrides(locale string) []OverrideEntry {
	filter := normalizeLocale(locale)

	c.mu.RLock()
	entries := make([]OverrideEntry, 0)
	for loc, overrides := range c.overrides {
		if filter != "" && filter != loc {
			continue
		}
		for key, text := range overrides {
			entries = append(entries, OverrideEntry{Locale: loc, Key: key, Text: text})
		}
	}
	c.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Locale != entries[j].Locale {
			return entries[i].Locale < entries[j].Locale
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// DefaultLocale returns the locale used when requests carry none.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// ResolveLocale normalizes a request locale, substituting the default for
// an empty one. Persisted overrides store this form so reloads land on the
// same bundle the catalog serves from.
func (c *Catalog) ResolveLocale(locale string) string {
	return c.localeOrDefault(locale)
}

func (c *Catalog) localeOrDefault(locale string) string {
	loc := normalizeLocale(locale)
	if loc == "" {
		return c.defaultLocale
	}
	return loc
}

// localeCandidates orders the locales worth consulting for a request:
// the exact tag, its bare language, then the default locale and its bare
// language. Reads only defaultLocale, which is immutable after New, so no
// lock is required.
func (c *Catalog) localeCandidates(locale string) []string {
	candidates := make([]string, 0, 4)
	add := func(loc string) {
		if loc == "" {
			return
		}
		for _, existing := range candidates {
			if existing == loc {
				return
			}
		}
		candidates = append(candidates, loc)
	}

	norm := normalizeLocale(locale)
	add(norm)
	if i := strings.IndexByte(norm, '-'); i > 0 {
		add(norm[:i])
	}
	add(c.defaultLocale)
	if i := strings.IndexByte(c.defaultLocale, '-'); i > 0 {
		add(c.defaultLocale[:i])
	}
	return candidates
}

// normalizeLocale folds BCP 47-ish tags to the catalog's internal form:
// lowercase with dash separators ("pt_BR" and "pt-br" are the same bundle).
func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

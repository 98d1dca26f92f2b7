package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dialware/golang_services/internal/display_service/catalog"
	"github.com/dialware/golang_services/internal/display_service/domain"
	"github.com/dialware/golang_services/internal/display_service/phonenum"
)

// LabelService answers display-label and annotation queries for contact
// UIs. It is stateless apart from the catalog it serves from and safe for
// concurrent use.
type LabelService struct {
	catalog      *catalog.Catalog
	overrideRepo domain.LabelOverrideRepository
	logger       *slog.Logger
}

// NewLabelService creates a LabelService. The catalog is mandatory; passing
// nil is a wiring bug and fails with domain.ErrNilCatalog. A nil
// overrideRepo disables persistence, leaving admin overrides in memory for
// the process lifetime.
func NewLabelService(cat *catalog.Catalog, overrideRepo domain.LabelOverrideRepository, logger *slog.Logger) (*LabelService, error) {
	if cat == nil {
		return nil, domain.ErrNilCatalog
	}
	return &LabelService{
		catalog:      cat,
		overrideRepo: overrideRepo,
		logger:       logger.With("component", "label_service"),
	}, nil
}

// LabelForInteraction resolves the label describing an interaction with a
// number of the given type. Custom-typed numbers answer with their stored
// label verbatim, empty when absent, before the interaction kind is even
// looked at. An unrecognized interaction is served from the call table
// after a warning; the caller always gets a label back.
//
// The returned key names the catalog entry the label came from; it is empty
// for the custom short-circuit, where no catalog entry is involved.
func (s *LabelService) LabelForInteraction(ctx context.Context, t *domain.PhoneType, customLabel string, interaction domain.Interaction, locale string) (string, domain.LabelKey) {
	labelResolutionsCounter.WithLabelValues(interactionMetricLabel(interaction)).Inc()

	if domain.IsCustomType(t) {
		return customLabel, ""
	}

	var key domain.LabelKey
	switch interaction {
	case domain.InteractionSMS:
		key = domain.SMSLabelKey(t)
	case domain.InteractionCall:
		key = domain.CallLabelKey(t)
	default:
		s.logger.WarnContext(ctx, "Unrecognized interaction kind, serving call labels", "interaction", int(interaction))
		unknownInteractionCounter.Inc()
		key = domain.CallLabelKey(t)
	}
	return s.catalog.Text(key, locale), key
}

// CallLabel resolves the label shown on a call action. A caller-ID plugin
// name wins only for custom-typed numbers that are not in globally dialable
// form; everything else, including an empty plugin name, falls back to the
// bare type name from the catalog.
func (s *LabelService) CallLabel(ctx context.Context, number string, t *domain.PhoneType, customLabel, pluginName, locale string) string {
	if domain.IsCustomType(t) && !phonenum.IsGlobalNumber(number) && pluginName != "" {
		s.logger.DebugContext(ctx, "Call label taken from plugin", "plugin_name", pluginName)
		return pluginName
	}
	return s.catalog.TypeLabel(t, customLabel, locale)
}

// AnnotateTelephone marks occurrences of number inside message with
// telephone spans. Nil propagation follows phonenum.AnnotateTelephoneNumbers.
func (s *LabelService) AnnotateTelephone(ctx context.Context, message, number *string) *domain.AnnotatedMessage {
	annotationsCounter.Inc()
	annotated := phonenum.AnnotateTelephoneNumbers(message, number)
	if annotated != nil {
		annotationSpansHist.Observe(float64(len(annotated.Spans)))
		s.logger.DebugContext(ctx, "Message annotated", "spans", len(annotated.Spans))
	}
	return annotated
}

// ClassifyNumber runs both shape heuristics over text. The possible-number
// matcher errs toward rejection (lettered numbers fail it); the global check
// only accepts fully dialable form.
func (s *LabelService) ClassifyNumber(_ context.Context, text string) (possible, global bool) {
	return phonenum.IsPossibleNumber(text), phonenum.IsGlobalNumber(text)
}

// UpsertOverride validates, persists and applies one catalog override.
// Persistence happens before the catalog mutation so a storage failure
// never leaves the service serving text it would forget on restart.
func (s *LabelService) UpsertOverride(ctx context.Context, locale string, key domain.LabelKey, text string) (*domain.LabelOverride, error) {
	if !domain.IsKnownLabelKey(key) {
		return nil, domain.ErrUnknownLabelKey
	}

	loc := s.catalog.ResolveLocale(locale)
	override := domain.NewLabelOverride(uuid.New(), loc, key, text)

	if s.overrideRepo != nil {
		if err := s.overrideRepo.Upsert(ctx, override); err != nil {
			s.logger.ErrorContext(ctx, "Failed to persist label override", "error", err, "locale", loc, "label_key", key)
			return nil, fmt.Errorf("persisting label override: %w", err)
		}
	}
	if err := s.catalog.ApplyOverride(loc, key, text); err != nil {
		return nil, err
	}

	overrideMutationsCounter.WithLabelValues("upsert").Inc()
	s.logger.InfoContext(ctx, "Label override applied", "locale", loc, "label_key", key)
	return override, nil
}

// DeleteOverride removes an override from the catalog and, when configured,
// from storage. Removing an override that exists on neither side fails with
// domain.ErrOverrideNotFound.
func (s *LabelService) DeleteOverride(ctx context.Context, locale string, key domain.LabelKey) error {
	loc := s.catalog.ResolveLocale(locale)

	removed := s.catalog.RemoveOverride(loc, key)
	if s.overrideRepo != nil {
		err := s.overrideRepo.Delete(ctx, loc, key)
		switch {
		case err == nil:
			removed = true
		case errors.Is(err, domain.ErrOverrideNotFound):
			// The catalog may still have held a memory-only entry.
		default:
			s.logger.ErrorContext(ctx, "Failed to delete stored label override", "error", err, "locale", loc, "label_key", key)
			return fmt.Errorf("deleting label override: %w", err)
		}
	}
	if !removed {
		return domain.ErrOverrideNotFound
	}

	overrideMutationsCounter.WithLabelValues("delete").Inc()
	s.logger.InfoContext(ctx, "Label override removed", "locale", loc, "label_key", key)
	return nil
}

// ListOverrides reports the overrides currently applied to the catalog,
// optionally filtered by locale.
func (s *LabelService) ListOverrides(_ context.Context, locale string) []catalog.OverrideEntry {
	return s.catalog.Overrides(locale)
}

// LoadStoredOverrides replays persisted overrides into the catalog. Run once
// at startup, before the HTTP surface comes up. Stored rows with keys the
// catalog no longer knows are skipped, not fatal.
func (s *LabelService) LoadStoredOverrides(ctx context.Context) (int, error) {
	if s.overrideRepo == nil {
		return 0, nil
	}
	stored, err := s.overrideRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading stored label overrides: %w", err)
	}

	applied := 0
	for _, o := range stored {
		if err := s.catalog.ApplyOverride(o.Locale, o.LabelKey, o.LabelText); err != nil {
			s.logger.WarnContext(ctx, "Skipping stored override with unknown key", "locale", o.Locale, "label_key", o.LabelKey)
			continue
		}
		applied++
	}
	s.logger.InfoContext(ctx, "Stored label overrides loaded", "applied", applied, "stored", len(stored))
	return applied, nil
}

func interactionMetricLabel(i domain.Interaction) string {
	switch i {
	case domain.InteractionCall:
		return "call"
	case domain.InteractionSMS:
		return "sms"
	default:
		return "unknown"
	}
}

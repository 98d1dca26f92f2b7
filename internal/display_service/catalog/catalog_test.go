package catalog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dialware/golang_services/internal/display_service/domain"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New("en", logger)
}

func typePtr(t domain.PhoneType) *domain.PhoneType { return &t }

func TestText_BuiltinIsTotal(t *testing.T) {
	cat := newTestCatalog(t)
	for _, key := range domain.KnownLabelKeys() {
		assert.NotEmpty(t, cat.Text(key, "en"), "key %q", key)
		assert.NotEmpty(t, cat.Text(key, "xx-YY"), "key %q under unknown locale", key)
		assert.NotEmpty(t, cat.Text(key, ""), "key %q under empty locale", key)
	}
}

func TestText_SpotChecks(t *testing.T) {
	cat := newTestCatalog(t)
	assert.Equal(t, "Call home", cat.Text("call_home", "en"))
	assert.Equal(t, "Text mobile", cat.Text("sms_mobile", "en"))
	assert.Equal(t, "Call fax", cat.Text("call_other_fax", "en"))
	assert.Equal(t, "Assistant", cat.Text("type_assistant", "en"))
}

func TestText_BundleAndLanguageFallback(t *testing.T) {
	cat := newTestCatalog(t)
	cat.AddBundle("pt", map[domain.LabelKey]string{
		"call_home": "Ligar para casa",
	})

	assert.Equal(t, "Ligar para casa", cat.Text("call_home", "pt"))
	assert.Equal(t, "Ligar para casa", cat.Text("call_home", "pt-BR"), "region tag falls back to bare language")
	assert.Equal(t, "Ligar para casa", cat.Text("call_home", "pt_BR"), "underscore tags are normalized")
	assert.Equal(t, "Call mobile", cat.Text("call_mobile", "pt"), "missing bundle entry falls back to built-in")
	assert.Equal(t, "Call home", cat.Text("call_home", "en"), "other locales are untouched")
}

func TestTypeLabel(t *testing.T) {
	cat := newTestCatalog(t)

	assert.Equal(t, "Boss line", cat.TypeLabel(typePtr(domain.TypeCustom), "Boss line", "en"))
	assert.Equal(t, "Custom", cat.TypeLabel(typePtr(domain.TypeCustom), "", "en"), "empty custom label falls back to the generic name")
	assert.Equal(t, "Assistant", cat.TypeLabel(typePtr(domain.TypeAssistant), "Boss line", "en"), "assistant never takes the custom label here")
	assert.Equal(t, "Home", cat.TypeLabel(typePtr(domain.TypeHome), "ignored", "en"))
	assert.Equal(t, "Other", cat.TypeLabel(nil, "ignored", "en"))
	assert.Equal(t, "Custom", cat.TypeLabel(typePtr(domain.PhoneType(99)), "", "en"), "unlisted codes use the generic custom name")
}

func TestOverrides_LayerAndRestore(t *testing.T) {
	cat := newTestCatalog(t)
	cat.AddBundle("es", map[domain.LabelKey]string{
		"call_home": "Llamar a casa",
	})

	require.NoError(t, cat.ApplyOverride("es", "call_home", "Llamar al hogar"))
	assert.Equal(t, "Llamar al hogar", cat.Text("call_home", "es"), "override wins over the bundle")
	assert.Equal(t, "Call home", cat.Text("call_home", "en"), "override is scoped to its locale")

	assert.True(t, cat.RemoveOverride("es", "call_home"))
	assert.Equal(t, "Llamar a casa", cat.Text("call_home", "es"), "bundle text is restored")
	assert.False(t, cat.RemoveOverride("es", "call_home"), "second removal reports absence")
}

func TestApplyOverride_RejectsUnknownKey(t *testing.T) {
	cat := newTestCatalog(t)
	err := cat.ApplyOverride("en", "call_bogus", "nope")
	assert.ErrorIs(t, err, domain.ErrUnknownLabelKey)
}

func TestApplyOverride_EmptyLocaleUsesDefault(t *testing.T) {
	cat := newTestCatalog(t)
	require.NoError(t, cat.ApplyOverride("", "sms_home", "Message home"))
	assert.Equal(t, "Message home", cat.Text("sms_home", "en"))
	assert.Equal(t, "Message home", cat.Text("sms_home", ""))
}

func TestLoadBundles(t *testing.T) {
	dir := t.TempDir()
	bundle := []byte("call_home: Llamar a casa\nsms_home: Enviar SMS a casa\nnot_a_real_key: skipped\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "es.yaml"), bundle, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	cat := newTestCatalog(t)
	require.NoError(t, cat.LoadBundles(dir))

	assert.Equal(t, "Llamar a casa", cat.Text("call_home", "es"))
	assert.Equal(t, "Enviar SMS a casa", cat.Text("sms_home", "es"))
	assert.Equal(t, "Call mobile", cat.Text("call_mobile", "es"), "keys outside the bundle fall back")
	assert.Equal(t, "not_a_real_key", cat.Text("not_a_real_key", "es"), "unknown keys are not installed")
}

func TestLoadBundles_MissingDir(t *testing.T) {
	cat := newTestCatalog(t)
	assert.Error(t, cat.LoadBundles(filepath.Join(t.TempDir(), "absent")))
}

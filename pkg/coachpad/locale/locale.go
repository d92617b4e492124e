// Package locale provides the localized UI strings. Message files are TOML,
// embedded in the binary; the active language is chosen once at startup.
package locale

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/active.*.toml
var messageFS embed.FS

var localizer *i18n.Localizer

// Init loads the embedded message files and selects the active language.
// English is the fallback for missing translations. Must be called before T;
// until then T returns message IDs verbatim.
func Init(lang string) error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, name := range []string{"messages/active.en.toml", "messages/active.es.toml"} {
		if _, err := bundle.LoadMessageFileFS(messageFS, name); err != nil {
			return fmt.Errorf("locale: load %s: %w", name, err)
		}
	}

	if lang == "" {
		lang = language.English.String()
	}
	localizer = i18n.NewLocalizer(bundle, lang, language.English.String())
	return nil
}

// T returns the translation for a message ID, or the ID itself when no
// translation exists. Never fails; a missing string should render as its ID,
// not break a screen.
func T(id string) string {
	return TData(id, nil)
}

// TData is T with template data for messages containing placeholders.
func TData(id string, data map[string]any) string {
	if localizer == nil {
		return id
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

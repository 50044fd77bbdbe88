package internal

import (
	"embed"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message IDs used by the navigation engine.
const (
	MessageBackButton  = "BackButton"
	MessageNavBarTitle = "NavBarTitle"
	MessagePageChanged = "PageChanged"
)

var defaultMessages = map[string]*i18n.Message{
	MessageBackButton:  {ID: MessageBackButton, Other: "Back"},
	MessageNavBarTitle: {ID: MessageNavBarTitle, Other: "Navigation menu"},
	MessagePageChanged: {ID: MessagePageChanged, Other: "{{.Title}}, page {{.Depth}}"},
}

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func loadBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			GetInternalLogger().Error("Failed to read embedded locales", "error", err)
			return
		}
		for _, entry := range entries {
			name := path.Join("locales", entry.Name())
			data, err := localeFS.ReadFile(name)
			if err != nil {
				GetInternalLogger().Error("Failed to read locale file", "file", name, "error", err)
				continue
			}
			if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
				GetInternalLogger().Error("Failed to parse locale file", "file", name, "error", err)
			}
		}
	})
	return bundle
}

// Messages localizes the few strings the engine produces itself.
type Messages struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// NewMessages creates a localizer for the given BCP 47 language.
// Unknown or empty languages fall back to English.
func NewMessages(lang string) *Messages {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	return &Messages{
		tag:       tag,
		localizer: i18n.NewLocalizer(loadBundle(), tag.String(), language.English.String()),
	}
}

// Language returns the requested language tag.
func (m *Messages) Language() language.Tag {
	return m.tag
}

// Localize returns the translated message, or the English default when the
// message cannot be resolved.
func (m *Messages) Localize(id string, data map[string]any) string {
	msg, err := m.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		TemplateData:   data,
		DefaultMessage: defaultMessages[id],
	})
	if err != nil && msg == "" {
		GetInternalLogger().Debug("Missing translation", "id", id, "language", m.tag.String(), "error", err)
		return id
	}
	return msg
}

func (m *Messages) BackButton() string {
	return m.Localize(MessageBackButton, nil)
}

func (m *Messages) NavBarTitle() string {
	return m.Localize(MessageNavBarTitle, nil)
}

// PageChanged builds the accessibility announcement for a finished transition.
func (m *Messages) PageChanged(title string, depth int) string {
	return m.Localize(MessagePageChanged, map[string]any{
		"Title": title,
		"Depth": depth,
	})
}

package approuter

import (
	"errors"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var defaultMessages = []*i18n.Message{
	{ID: "ConstructionFailed", Other: "The {{.Screen}} screen could not be created."},
	{ID: "EmbeddingFailed", Other: "The {{.Screen}} screen could not be placed into its container."},
	{ID: "TargetConstructionFailed", Other: "There is no screen to show {{.Screen}} on."},
	{ID: "NoStackToPushOn", Other: "There is no navigation stack to push {{.Screen}} onto."},
	{ID: "PushingStack", Other: "A navigation stack cannot be pushed onto another one."},
	{ID: "NotImplemented", Other: "Showing {{.Screen}} is not supported."},
	{ID: "StepFailed", Other: "The {{.Screen}} screen could not be configured ({{.Step}})."},
}

var messageIDs = map[error]string{
	ErrConstructionFailed:       "ConstructionFailed",
	ErrEmbeddingFailed:          "EmbeddingFailed",
	ErrTargetConstructionFailed: "TargetConstructionFailed",
	ErrNoStackToPushOn:          "NoStackToPushOn",
	ErrPushingStack:             "PushingStack",
	ErrNotImplemented:           "NotImplemented",
}

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
)

func messages() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		if err := bundle.AddMessages(language.English, defaultMessages...); err != nil {
			panic(err)
		}
	})
	return bundle
}

// LoadTranslations adds a TOML message file (e.g. "active.fr.toml") to the descriptions
// returned by Describe. Message IDs match the names of the Err* sentinels without "Err",
// plus "StepFailed".
func LoadTranslations(path string) error {
	if _, err := messages().LoadMessageFile(path); err != nil {
		return fmt.Errorf("approuter: load translations: %w", err)
	}
	return nil
}

// Describe returns a user-facing description of a presentation failure in the first of
// langs that has a translation, falling back to English. Errors that are not
// presentation failures are returned as err.Error().
func Describe(err error, langs ...string) string {
	if err == nil {
		return ""
	}

	var pe *PresentationError
	if !errors.As(err, &pe) {
		if kind := KindOf(err); kind != nil {
			pe = &PresentationError{Kind: kind}
		} else {
			return err.Error()
		}
	}

	id := "StepFailed"
	if pe.Kind != nil {
		id = messageIDs[pe.Kind]
	}

	localizer := i18n.NewLocalizer(messages(), langs...)
	msg, lerr := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: id,
		TemplateData: map[string]any{
			"Screen": pe.Screen,
			"Step":   pe.Step,
		},
	})
	if lerr != nil {
		return err.Error()
	}
	return msg
}

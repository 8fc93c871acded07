package translator

import (
	"context"
	"errors"
)

// Translator translates between English and French through a provider.
// It holds no mutable state and is safe for concurrent use.
//
// No retry or timeout policy is applied here; callers bound a call through ctx.
type Translator struct {
	provider TranslationProvider
}

func New(provider TranslationProvider) *Translator {
	return &Translator{provider: provider}
}

// EnglishToFrench returns nil without contacting the provider when text is nil.
func (t *Translator) EnglishToFrench(ctx context.Context, text *string) (*string, error) {
	return t.translate(ctx, text, EnglishFrench)
}

// FrenchToEnglish returns nil without contacting the provider when text is nil.
func (t *Translator) FrenchToEnglish(ctx context.Context, text *string) (*string, error) {
	return t.translate(ctx, text, FrenchEnglish)
}

func (t *Translator) translate(ctx context.Context, text *string, dir Direction) (*string, error) {
	if text == nil {
		return nil, nil
	}

	modelID := dir.ModelID()
	translated, err := t.provider.Translate(ctx, *text, modelID)
	if err != nil {
		var perr *ProviderError
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, &ProviderError{Provider: t.provider.Name(), ModelID: modelID, Err: err}
	}

	return &translated, nil
}

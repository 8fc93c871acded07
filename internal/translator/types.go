package translator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

var (
	ErrEmptyResponse  = errors.New("no translation candidates returned")
	ErrAuthentication = errors.New("authentication rejected")
)

type ServiceConfig struct {
	APIKey      string        `mapstructure:"apikey" json:"-"`
	URL         string        `mapstructure:"url" json:"url"`
	Credentials string        `mapstructure:"google_credentials" json:"google_credentials"`
	Timeout     time.Duration `mapstructure:"timeout" json:"timeout"`
}

// TranslationProvider is the external service boundary. Implementations return
// the first translation candidate for text under the given model selector.
type TranslationProvider interface {
	Name() string
	Translate(ctx context.Context, text, modelID string) (string, error)
}

// Direction is a source/target language pair.
type Direction struct {
	Source language.Tag
	Target language.Tag
}

var (
	EnglishFrench = Direction{Source: language.English, Target: language.French}
	FrenchEnglish = Direction{Source: language.French, Target: language.English}
)

// ModelID returns the provider model selector, e.g. "en-fr".
func (d Direction) ModelID() string {
	src, _ := d.Source.Base()
	dst, _ := d.Target.Base()
	return src.String() + "-" + dst.String()
}

func (d Direction) String() string {
	return d.ModelID()
}

// ParseModelID turns a selector like "fr-en" back into a Direction.
func ParseModelID(modelID string) (Direction, error) {
	src, dst, ok := strings.Cut(modelID, "-")
	if !ok || src == "" || dst == "" {
		return Direction{}, fmt.Errorf("invalid model id %q", modelID)
	}

	srcTag, err := language.Parse(src)
	if err != nil {
		return Direction{}, fmt.Errorf("invalid source language %q: %w", src, err)
	}
	dstTag, err := language.Parse(dst)
	if err != nil {
		return Direction{}, fmt.Errorf("invalid target language %q: %w", dst, err)
	}

	return Direction{Source: srcTag, Target: dstTag}, nil
}

// ProviderError reports a failed translation call: unreachable provider,
// rejected credentials, or a malformed or empty response.
type ProviderError struct {
	Provider   string
	ModelID    string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Provider, e.ModelID, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Provider, e.ModelID, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Package validator checks that a translation result is in the expected target language.
package validator

import (
	"fmt"
	"strings"

	lingua "github.com/pemistahl/lingua-go"
	"golang.org/x/text/language"

	"github.com/valpere/machinetranslation/internal/detector"
	"github.com/valpere/machinetranslation/internal/translator"
)

// minValidationLength is the minimum rune count required to attempt language detection.
const minValidationLength = 20

// Validator checks that a translation result is written in the direction's target language.
// The underlying language detector is expensive to build; reuse the instance.
type Validator struct {
	det *detector.Detector
}

func New() *Validator {
	return &Validator{det: detector.New()}
}

// IsValid returns true when translatedText appears to be written in dir.Target.
// Short texts and texts whose language cannot be determined pass.
func (v *Validator) IsValid(translatedText string, dir translator.Direction) (bool, error) {
	text := strings.TrimSpace(translatedText)
	if text == "" {
		return false, fmt.Errorf("translation is empty")
	}

	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	detected, ok := v.det.Detect(text)
	if !ok {
		return true, nil
	}

	want, _ := dir.Target.Base()
	got := baseOf(detected)
	if got != want {
		return false, fmt.Errorf("expected %s but detected %s", want, got)
	}

	return true, nil
}

func baseOf(lang lingua.Language) language.Base {
	base, _ := language.ParseBase(strings.ToLower(lang.IsoCode639_1().String()))
	return base
}

package detector

import (
	"fmt"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/valpere/machinetranslation/internal/translator"
)

// Detector distinguishes English from French text.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.French).
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if text == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// Direction picks the translation direction whose source matches text.
func (d *Detector) Direction(text string) (translator.Direction, error) {
	lang, ok := d.Detect(text)
	if !ok {
		return translator.Direction{}, fmt.Errorf("unable to detect language of input")
	}

	switch lang {
	case lingua.English:
		return translator.EnglishFrench, nil
	case lingua.French:
		return translator.FrenchEnglish, nil
	default:
		return translator.Direction{}, fmt.Errorf("unsupported source language %s", lang)
	}
}

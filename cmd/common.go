/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/valpere/machinetranslation/internal/config"
	"github.com/valpere/machinetranslation/internal/translator"
)

// buildProvider constructs the configured translation provider. The returned
// close function releases provider resources and is never nil.
func buildProvider(ctx context.Context, cfg *config.Config) (translator.TranslationProvider, func(), error) {
	switch cfg.Provider {
	case "ibm":
		svc, err := translator.NewIBMService(cfg.Service)
		if err != nil {
			return nil, nil, err
		}
		return svc, func() {}, nil
	case "google":
		svc, err := translator.NewGoogleService(ctx, cfg.Service)
		if err != nil {
			return nil, nil, err
		}
		return svc, func() { _ = svc.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

// translateDirection routes text through the Translator operation for dir.
func translateDirection(ctx context.Context, tr *translator.Translator, dir translator.Direction, text *string) (*string, error) {
	switch dir.ModelID() {
	case translator.EnglishFrench.ModelID():
		return tr.EnglishToFrench(ctx, text)
	case translator.FrenchEnglish.ModelID():
		return tr.FrenchToEnglish(ctx, text)
	default:
		return nil, fmt.Errorf("unsupported direction: %s", dir)
	}
}

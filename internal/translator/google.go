package translator

import (
	"context"
	"fmt"
	"html"

	translate "cloud.google.com/go/translate"
	"google.golang.org/api/option"
)

type GoogleService struct {
	client *translate.Client
}

// NewGoogleService opens a Cloud Translation client. An empty cfg.Credentials
// falls back to application default credentials.
func NewGoogleService(ctx context.Context, cfg ServiceConfig) (*GoogleService, error) {
	opts := []option.ClientOption{}
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &GoogleService{client: client}, nil
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) Translate(ctx context.Context, text, modelID string) (string, error) {
	dir, err := ParseModelID(modelID)
	if err != nil {
		return "", &ProviderError{Provider: s.Name(), ModelID: modelID, Err: err}
	}

	translations, err := s.client.Translate(ctx, []string{text}, dir.Target, &translate.Options{
		Source: dir.Source,
		Format: translate.Text,
	})
	if err != nil {
		return "", &ProviderError{Provider: s.Name(), ModelID: modelID, Err: fmt.Errorf("translation failed: %w", err)}
	}

	if len(translations) == 0 {
		return "", &ProviderError{Provider: s.Name(), ModelID: modelID, Err: ErrEmptyResponse}
	}

	return html.UnescapeString(translations[0].Text), nil
}

func (s *GoogleService) Close() error {
	return s.client.Close()
}

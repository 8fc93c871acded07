package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/IBM/go-sdk-core/v5/core"
	"github.com/google/uuid"
)

// IBMAPIVersion pins the Language Translator API revision.
const IBMAPIVersion = "2018-05-01"

// Authenticator decorates outgoing requests with credentials.
// *core.IamAuthenticator and *core.BearerTokenAuthenticator satisfy it.
type Authenticator interface {
	Authenticate(req *http.Request) error
}

type IBMService struct {
	serviceURL string
	auth       Authenticator
	client     *http.Client
}

// NewIBMService builds a Watson Language Translator client that exchanges the
// API key for IAM bearer tokens. cfg.Timeout of zero leaves the client without
// a deadline.
func NewIBMService(cfg ServiceConfig) (*IBMService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("IBM API key required")
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("IBM service URL required")
	}

	auth, err := core.NewIamAuthenticatorBuilder().
		SetApiKey(cfg.APIKey).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create IAM authenticator: %w", err)
	}

	return NewIBMServiceWithAuth(cfg.URL, auth, &http.Client{Timeout: cfg.Timeout}), nil
}

func NewIBMServiceWithAuth(serviceURL string, auth Authenticator, client *http.Client) *IBMService {
	if client == nil {
		client = &http.Client{}
	}
	return &IBMService{
		serviceURL: strings.TrimRight(serviceURL, "/"),
		auth:       auth,
		client:     client,
	}
}

func (s *IBMService) Name() string {
	return "ibm"
}

type ibmTranslateRequest struct {
	Text    []string `json:"text"`
	ModelID string   `json:"model_id"`
}

type ibmTranslateResponse struct {
	Translations []struct {
		Translation string `json:"translation"`
	} `json:"translations"`
	WordCount      int `json:"word_count"`
	CharacterCount int `json:"character_count"`
}

func (s *IBMService) Translate(ctx context.Context, text, modelID string) (string, error) {
	fail := func(status int, err error) (string, error) {
		return "", &ProviderError{Provider: s.Name(), ModelID: modelID, StatusCode: status, Err: err}
	}

	jsonData, err := json.Marshal(ibmTranslateRequest{Text: []string{text}, ModelID: modelID})
	if err != nil {
		return fail(0, fmt.Errorf("failed to marshal request: %w", err))
	}

	endpoint := s.serviceURL + "/v3/translate?version=" + url.QueryEscape(IBMAPIVersion)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fail(0, fmt.Errorf("failed to create request: %w", err))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", uuid.New().String())

	if err := s.auth.Authenticate(httpReq); err != nil {
		return fail(0, fmt.Errorf("%w: %v", ErrAuthentication, err))
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fail(0, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fail(resp.StatusCode, ErrAuthentication)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fail(resp.StatusCode, fmt.Errorf("API returned: %s", strings.TrimSpace(string(body))))
	}

	var ibmResp ibmTranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&ibmResp); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}

	if len(ibmResp.Translations) == 0 {
		return fail(resp.StatusCode, ErrEmptyResponse)
	}

	return ibmResp.Translations[0].Translation, nil
}

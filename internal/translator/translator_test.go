package translator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

type mockProvider struct {
	translateFunc func(ctx context.Context, text, modelID string) (string, error)
	callCount     atomic.Int32

	mu       sync.Mutex
	modelIDs []string
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Translate(ctx context.Context, text, modelID string) (string, error) {
	m.callCount.Add(1)
	m.mu.Lock()
	m.modelIDs = append(m.modelIDs, modelID)
	m.mu.Unlock()
	if m.translateFunc != nil {
		return m.translateFunc(ctx, text, modelID)
	}
	return "", nil
}

func dictionaryProvider() *mockProvider {
	dict := map[string]map[string]string{
		"en-fr": {"Hello": "Bonjour"},
		"fr-en": {"Bonjour": "Hello"},
	}
	return &mockProvider{
		translateFunc: func(ctx context.Context, text, modelID string) (string, error) {
			out, ok := dict[modelID][text]
			if !ok {
				return "", ErrEmptyResponse
			}
			return out, nil
		},
	}
}

func strPtr(s string) *string { return &s }

func TestTranslator_NilInput(t *testing.T) {
	mock := dictionaryProvider()
	tr := New(mock)

	got, err := tr.EnglishToFrench(context.Background(), nil)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %q", *got)
	}

	got, err = tr.FrenchToEnglish(context.Background(), nil)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %q", *got)
	}

	if n := mock.callCount.Load(); n != 0 {
		t.Errorf("expected no provider calls, got %d", n)
	}
}

func TestTranslator_FrenchToEnglish(t *testing.T) {
	tr := New(dictionaryProvider())

	got, err := tr.FrenchToEnglish(context.Background(), strPtr("Bonjour"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "Hello" {
		t.Errorf("expected 'Hello', got %v", got)
	}
}

func TestTranslator_EnglishToFrench(t *testing.T) {
	tr := New(dictionaryProvider())

	got, err := tr.EnglishToFrench(context.Background(), strPtr("Hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "Bonjour" {
		t.Errorf("expected 'Bonjour', got %v", got)
	}
}

func TestTranslator_EmptyStringIsTranslated(t *testing.T) {
	mock := &mockProvider{
		translateFunc: func(ctx context.Context, text, modelID string) (string, error) {
			return text, nil
		},
	}
	tr := New(mock)

	got, err := tr.EnglishToFrench(context.Background(), strPtr(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil result for empty string")
	}
	if mock.callCount.Load() != 1 {
		t.Errorf("expected 1 provider call, got %d", mock.callCount.Load())
	}
}

func TestTranslator_ModelSelection(t *testing.T) {
	mock := &mockProvider{
		translateFunc: func(ctx context.Context, text, modelID string) (string, error) {
			return "x", nil
		},
	}
	tr := New(mock)

	if _, err := tr.EnglishToFrench(context.Background(), strPtr("Hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tr.FrenchToEnglish(context.Background(), strPtr("Bonjour")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"en-fr", "fr-en"}
	if len(mock.modelIDs) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(mock.modelIDs))
	}
	for i := range want {
		if mock.modelIDs[i] != want[i] {
			t.Errorf("call %d: expected model %q, got %q", i, want[i], mock.modelIDs[i])
		}
	}
}

func TestTranslator_ProviderError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{
			name:    "network failure",
			err:     errors.New("connection refused"),
			wantErr: nil,
		},
		{
			name:    "empty candidate list",
			err:     ErrEmptyResponse,
			wantErr: ErrEmptyResponse,
		},
		{
			name:    "auth rejected",
			err:     &ProviderError{Provider: "mock", ModelID: "en-fr", StatusCode: 401, Err: ErrAuthentication},
			wantErr: ErrAuthentication,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(&mockProvider{
				translateFunc: func(ctx context.Context, text, modelID string) (string, error) {
					return "", tt.err
				},
			})

			calls := []func(context.Context, *string) (*string, error){tr.EnglishToFrench, tr.FrenchToEnglish}
			for _, call := range calls {
				got, err := call(context.Background(), strPtr("text"))
				if got != nil {
					t.Errorf("expected nil result, got %q", *got)
				}
				var perr *ProviderError
				if !errors.As(err, &perr) {
					t.Fatalf("expected *ProviderError, got %T: %v", err, err)
				}
				if perr.Provider != "mock" {
					t.Errorf("expected provider 'mock', got %q", perr.Provider)
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error wrapping %v, got %v", tt.wantErr, err)
				}
			}
		})
	}
}

func TestTranslator_Idempotent(t *testing.T) {
	mock := dictionaryProvider()
	tr := New(mock)

	first, err := tr.EnglishToFrench(context.Background(), strPtr("Hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := tr.EnglishToFrench(context.Background(), strPtr("Hello"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *got != *first {
			t.Errorf("call %d: expected %q, got %q", i, *first, *got)
		}
	}

	if n := mock.callCount.Load(); n != 6 {
		t.Errorf("expected every call to reach the provider (6), got %d", n)
	}
}

func TestTranslator_ConcurrentCalls(t *testing.T) {
	tr := New(dictionaryProvider())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := tr.FrenchToEnglish(context.Background(), strPtr("Bonjour"))
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if *got != "Hello" {
				t.Errorf("expected 'Hello', got %q", *got)
			}
		}()
	}
	wg.Wait()
}

func TestDirection_ModelID(t *testing.T) {
	if got := EnglishFrench.ModelID(); got != "en-fr" {
		t.Errorf("expected 'en-fr', got %q", got)
	}
	if got := FrenchEnglish.ModelID(); got != "fr-en" {
		t.Errorf("expected 'fr-en', got %q", got)
	}
}

func TestParseModelID(t *testing.T) {
	tests := []struct {
		modelID string
		want    string
		wantErr bool
	}{
		{modelID: "en-fr", want: "en-fr"},
		{modelID: "fr-en", want: "fr-en"},
		{modelID: "enfr", wantErr: true},
		{modelID: "-fr", wantErr: true},
		{modelID: "en-", wantErr: true},
		{modelID: "en-zzzzzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.modelID, func(t *testing.T) {
			dir, err := ParseModelID(tt.modelID)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.modelID)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if dir.ModelID() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, dir.ModelID())
			}
		})
	}
}

package backend

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockProvider is a test double for Provider. It records the prompts it
// received and returns the configured response.
type mockProvider struct {
	response     string
	err          error
	systemPrompt string
	userPrompt   string
}

func (m *mockProvider) Complete(_ context.Context, systemPrompt, userPrompt string, _ int, _ float64) (string, error) {
	m.systemPrompt = systemPrompt
	m.userPrompt = userPrompt
	return m.response, m.err
}

// withMockProvider swaps the provider factory for the test's lifetime.
func withMockProvider(t *testing.T, m *mockProvider) {
	t.Helper()
	orig := NewProvider
	NewProvider = func(providerName, model string) (Provider, error) {
		return m, nil
	}
	t.Cleanup(func() { NewProvider = orig })
}

func TestGenerateCode(t *testing.T) {
	mock := &mockProvider{response: "```csharp\nmodelDoc.EditRebuild3();\n```"}
	withMockProvider(t, mock)

	code, err := GenerateCode(context.Background(), "rebuild the model", Options{Domain: "api"})
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	if code != "modelDoc.EditRebuild3();" {
		t.Errorf("code = %q", code)
	}
	if mock.userPrompt != "rebuild the model" {
		t.Errorf("user prompt = %q", mock.userPrompt)
	}
	if !strings.Contains(mock.systemPrompt, "SolidWorks API expert") {
		t.Errorf("system prompt = %q", mock.systemPrompt)
	}
}

func TestGenerateCodeDomainPrompts(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"", "SolidWorks API expert"},
		{"api", "SolidWorks API expert"},
		{"sketch", "AddConstraint"},
		{"gdt", "SetFrameDatumRef2"},
		{"feature", "FeatureExtrusion3"},
	}
	for _, tt := range tests {
		mock := &mockProvider{response: "x();"}
		withMockProvider(t, mock)
		_, err := GenerateCode(context.Background(), "do it", Options{Domain: tt.domain})
		if err != nil {
			t.Fatalf("domain %q: %v", tt.domain, err)
		}
		if !strings.Contains(mock.systemPrompt, tt.want) {
			t.Errorf("domain %q: system prompt missing %q", tt.domain, tt.want)
		}
	}
}

func TestGenerateCodeUnknownDomain(t *testing.T) {
	withMockProvider(t, &mockProvider{response: "x;"})
	_, err := GenerateCode(context.Background(), "do it", Options{Domain: "plumbing"})
	if err == nil {
		t.Fatal("expected error for unknown domain")
	}
	if !strings.Contains(err.Error(), "plumbing") {
		t.Errorf("error should name the bad domain: %v", err)
	}
}

func TestGenerateCodeProviderError(t *testing.T) {
	boom := errors.New("connection refused")
	withMockProvider(t, &mockProvider{err: boom})
	_, err := GenerateCode(context.Background(), "do it", Options{})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}
}

func TestGenerateCodeEmptyResponse(t *testing.T) {
	withMockProvider(t, &mockProvider{response: "```\n```"})
	_, err := GenerateCode(context.Background(), "do it", Options{})
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Errorf("error = %v, want ErrEmptyCompletion", err)
	}
}

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "code();", "code();"},
		{"backtick fence", "```\ncode();\n```", "code();"},
		{"fence with tag", "```csharp\ncode();\n```", "code();"},
		{"tilde fence", "~~~\ncode();\n~~~", "code();"},
		{"truncated fence", "```csharp\ncode();", "code();"},
		{"surrounding whitespace", "  \n```\ncode();\n```\n ", "code();"},
		{"empty fence", "```\n```", ""},
		{"multiline", "```cs\nline1();\nline2();\n```", "line1();\nline2();"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCode(tt.in); got != tt.want {
				t.Errorf("ExtractCode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultProviderDispatch(t *testing.T) {
	_, err := defaultNewProvider("nonsense", "model")
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "nonsense") {
		t.Errorf("error should name the provider: %v", err)
	}
}

func TestLocalProviderNeedsNoKey(t *testing.T) {
	t.Setenv("LOCAL_LLM_URL", "")
	p, err := newLocalProvider("qwen2.5-coder:7b")
	if err != nil {
		t.Fatalf("newLocalProvider: %v", err)
	}
	if p == nil {
		t.Fatal("nil provider")
	}
}

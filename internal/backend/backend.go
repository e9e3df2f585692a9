// Package backend handles LLM provider communication for interactive code
// completion: prompt construction, provider dispatch, and extraction of
// the code block from the model response.
package backend

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEmptyCompletion is returned when the model response contains no
// usable code after fence extraction.
var ErrEmptyCompletion = errors.New("backend: model returned no code")

// Provider is the interface for LLM backends.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error)
}

// NewProvider is the factory for creating providers. It is a package-level
// variable so tests can replace it with a mock without modifying the call
// site. Tests must restore the original value; use t.Cleanup to do so
// safely.
var NewProvider func(providerName, model string) (Provider, error) = defaultNewProvider

// Options configures a GenerateCode call.
type Options struct {
	Provider    string
	Model       string
	Domain      string // system prompt selector; "api" when empty
	MaxTokens   int
	Temperature float64
}

// Domain system prompts. Each steers the model toward one slice of the
// SolidWorks API surface.
var systemPrompts = map[string]string{
	"api": "You are a SolidWorks API expert. Generate C# code using the SolidWorks " +
		"API (SldWorks, ModelDoc2, FeatureManager interfaces). Output only code, " +
		"no explanations. The code must be complete and syntactically valid.",
	"sketch": "You are a SolidWorks sketch automation expert. Generate C# code that " +
		"manipulates sketches: constraints via ISketchManager.AddConstraint, " +
		"dimensions via AddDimension2 and its angular/radial/diameter variants, " +
		"entity selection via IModelDocExtension.SelectByID2. Output only code.",
	"gdt": "You are a GD&T expert for SolidWorks. Generate C# code that creates " +
		"feature control frames via IGtol: SetFrameSymbol2, SetFrameValues3, " +
		"SetFrameDatumRef2. Use correct swGDTCharacteristic_e constants. " +
		"Output only code.",
	"feature": "You are a SolidWorks feature automation expert. Generate C# code " +
		"using IFeatureManager: FeatureExtrusion3, FeatureCut4, FeatureRevolve2, " +
		"pattern and fillet methods. Lengths are meters, angles are radians. " +
		"Output only code.",
}

// SystemPrompt returns the prompt for the named domain, or an error
// listing the valid domains.
func SystemPrompt(domain string) (string, error) {
	if domain == "" {
		domain = "api"
	}
	p, ok := systemPrompts[domain]
	if !ok {
		return "", fmt.Errorf("backend: unknown domain %q (valid: api, feature, gdt, sketch)", domain)
	}
	return p, nil
}

// GenerateCode sends the instruction to the configured provider and
// returns the extracted code.
func GenerateCode(ctx context.Context, instruction string, opts Options) (string, error) {
	provider, err := NewProvider(opts.Provider, opts.Model)
	if err != nil {
		return "", fmt.Errorf("backend: create provider: %w", err)
	}
	sysPrompt, err := SystemPrompt(opts.Domain)
	if err != nil {
		return "", err
	}

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	raw, err := provider.Complete(ctx, sysPrompt, instruction, maxTokens, opts.Temperature)
	if err != nil {
		return "", fmt.Errorf("backend: complete: %w", err)
	}

	code := ExtractCode(raw)
	if code == "" {
		return "", ErrEmptyCompletion
	}
	return code, nil
}

// fenceRe matches a markdown code fence block (``` or ~~~) with an
// optional language tag and captures the content between the fences. The
// content group uses `.*?` (not `.+?`) to allow empty bodies.
var fenceRe = regexp.MustCompile("(?s)^(?:`{3}|~{3})[^\\n]*\\n(.*?)(?:`{3}|~{3})\\s*$")

// openFenceRe matches only an opening fence line. Used to strip orphaned
// opening fences from truncated responses.
var openFenceRe = regexp.MustCompile("^(?:`{3}|~{3})[^\\n]*\\n")

// ExtractCode removes markdown code fences that models wrap around code
// output (e.g. "```csharp\n...\n```"). A truncated response with only an
// opening fence has that line stripped so the code is still usable.
func ExtractCode(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	if loc := openFenceRe.FindStringIndex(s); loc != nil {
		return strings.TrimSpace(s[loc[1]:])
	}
	return s
}

// defaultNewProvider dispatches to the appropriate provider implementation.
func defaultNewProvider(providerName, model string) (Provider, error) {
	switch strings.ToLower(providerName) {
	case "anthropic", "":
		return newAnthropicProvider(model)
	case "openai":
		return newOpenAIProvider(model)
	case "google":
		return newGoogleProvider(model)
	case "local":
		return newLocalProvider(model)
	default:
		return nil, fmt.Errorf("backend: unknown provider %q", providerName)
	}
}

package service

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func newTestService() *Service {
	return New(hclog.NewNullLogger())
}

func requestError(t *testing.T, err error) *RequestError {
	t.Helper()
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T: %v", err, err)
	}
	return reqErr
}

func TestAssignSemanticRolesValidation(t *testing.T) {
	s := newTestService()

	t.Run("empty palette", func(t *testing.T) {
		_, err := s.AssignSemanticRoles(AssignRequest{})
		reqErr := requestError(t, err)
		if reqErr.Field != "palette" || reqErr.Index != -1 {
			t.Errorf("error = %+v, want palette field with index -1", reqErr)
		}
	})

	t.Run("bad hex reports index", func(t *testing.T) {
		_, err := s.AssignSemanticRoles(AssignRequest{
			Palette: []string{"#2563eb", "not-a-color"},
		})
		reqErr := requestError(t, err)
		if reqErr.Field != "palette" || reqErr.Index != 1 || reqErr.Value != "not-a-color" {
			t.Errorf("error = %+v, want palette[1] with offending value", reqErr)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := s.AssignSemanticRoles(AssignRequest{
			Palette: []string{"#2563eb"},
			Roles:   []string{"primary", "danger"},
		})
		reqErr := requestError(t, err)
		if reqErr.Field != "roles" || reqErr.Index != 1 || reqErr.Value != "danger" {
			t.Errorf("error = %+v, want roles[1]", reqErr)
		}
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := s.AssignSemanticRoles(AssignRequest{
			Palette:            []string{"#2563eb"},
			AccessibilityLevel: "AAAA",
		})
		reqErr := requestError(t, err)
		if reqErr.Field != "accessibility_level" {
			t.Errorf("error = %+v, want accessibility_level field", reqErr)
		}
	})

	t.Run("bad preserve colour", func(t *testing.T) {
		_, err := s.AssignSemanticRoles(AssignRequest{
			Palette:              []string{"#2563eb"},
			PreserveBrandColours: []string{"blue"},
		})
		reqErr := requestError(t, err)
		if reqErr.Field != "preserve_brand_colors" || reqErr.Index != 0 {
			t.Errorf("error = %+v, want preserve_brand_colors[0]", reqErr)
		}
	})
}

func TestAssignSemanticRolesDefaults(t *testing.T) {
	s := newTestService()

	resp, err := s.AssignSemanticRoles(AssignRequest{
		Palette: []string{"#2563eb", "#dc2626", "#16a34a"},
	})
	if err != nil {
		t.Fatalf("AssignSemanticRoles() error: %v", err)
	}
	// With no roles named, every semantic role is assigned.
	if len(resp.Mappings) != 7 {
		t.Fatalf("expected 7 mappings, got %d", len(resp.Mappings))
	}
}

func TestAssignSemanticRolesCaseInsensitive(t *testing.T) {
	s := newTestService()

	resp, err := s.AssignSemanticRoles(AssignRequest{
		Palette:            []string{"#2563eb"},
		Roles:              []string{"PRIMARY"},
		AccessibilityLevel: "aaa",
	})
	if err != nil {
		t.Fatalf("AssignSemanticRoles() error: %v", err)
	}
	if len(resp.Mappings) != 1 || resp.Mappings[0].Role != "primary" {
		t.Errorf("mappings = %+v, want single primary", resp.Mappings)
	}
}

func TestAssignSemanticRolesDeterministic(t *testing.T) {
	s := newTestService()
	req := AssignRequest{
		Palette:        []string{"#2563eb", "#777788"},
		Roles:          []string{"primary", "neutral"},
		EnsureContrast: true,
	}

	first, err := s.AssignSemanticRoles(req)
	if err != nil {
		t.Fatalf("first call error: %v", err)
	}
	second, err := s.AssignSemanticRoles(req)
	if err != nil {
		t.Fatalf("second call error: %v", err)
	}

	if len(first.Mappings) != len(second.Mappings) {
		t.Fatalf("mapping counts differ: %d vs %d", len(first.Mappings), len(second.Mappings))
	}
	for i := range first.Mappings {
		if first.Mappings[i].Colour.Hex() != second.Mappings[i].Colour.Hex() {
			t.Errorf("mapping %d differs between identical requests", i)
		}
	}
}

func TestComposeThemeValidation(t *testing.T) {
	s := newTestService()

	t.Run("unknown theme type", func(t *testing.T) {
		_, err := s.ComposeTheme(ComposeRequest{ThemeType: "sepia", PrimaryColour: "#2563eb"})
		reqErr := requestError(t, err)
		if reqErr.Field != "theme_type" || reqErr.Value != "sepia" {
			t.Errorf("error = %+v, want theme_type", reqErr)
		}
	})

	t.Run("missing primary", func(t *testing.T) {
		_, err := s.ComposeTheme(ComposeRequest{ThemeType: "light"})
		reqErr := requestError(t, err)
		if reqErr.Field != "primary_color" {
			t.Errorf("error = %+v, want primary_color", reqErr)
		}
	})

	t.Run("invalid primary syntax", func(t *testing.T) {
		_, err := s.ComposeTheme(ComposeRequest{ThemeType: "light", PrimaryColour: "#12"})
		reqErr := requestError(t, err)
		if reqErr.Field != "primary_color" || reqErr.Value != "#12" {
			t.Errorf("error = %+v, want primary_color with value", reqErr)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		_, err := s.ComposeTheme(ComposeRequest{
			ThemeType: "light", PrimaryColour: "#2563eb", Style: "bootstrap",
		})
		reqErr := requestError(t, err)
		if reqErr.Field != "style" {
			t.Errorf("error = %+v, want style", reqErr)
		}
	})

	t.Run("bad brand colour reports index", func(t *testing.T) {
		_, err := s.ComposeTheme(ComposeRequest{
			ThemeType: "light", PrimaryColour: "#2563eb",
			BrandColours: []string{"#ff0000", "red"},
		})
		reqErr := requestError(t, err)
		if reqErr.Field != "brand_colors" || reqErr.Index != 1 || reqErr.Value != "red" {
			t.Errorf("error = %+v, want brand_colors[1]", reqErr)
		}
	})
}

func TestComposeThemeDefaults(t *testing.T) {
	s := newTestService()

	resp, err := s.ComposeTheme(ComposeRequest{
		ThemeType:     "light",
		PrimaryColour: "#2563eb",
	})
	if err != nil {
		t.Fatalf("ComposeTheme() error: %v", err)
	}

	if len(resp.Variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(resp.Variants))
	}
	v := resp.Variants[0]
	// Default style is material.
	if v.Colours.Surface.Hex() != "#fafafa" {
		t.Errorf("surface = %s, want material #fafafa", v.Colours.Surface.Hex())
	}
	if v.Colours.Shadow != "rgba(0,0,0,0.1)" {
		t.Errorf("shadow = %q, want rgba(0,0,0,0.1)", v.Colours.Shadow)
	}
}

func TestComposeThemeCached(t *testing.T) {
	s := newTestService()
	req := ComposeRequest{ThemeType: "all", PrimaryColour: "#2563eb"}

	first, err := s.ComposeTheme(req)
	if err != nil {
		t.Fatalf("first call error: %v", err)
	}
	second, err := s.ComposeTheme(req)
	if err != nil {
		t.Fatalf("second call error: %v", err)
	}

	// Second call must come from cache: identical pointer.
	if first != second {
		t.Error("expected cached response to be returned")
	}
}

func TestRequestErrorMessage(t *testing.T) {
	positional := &RequestError{
		Field: "palette", Index: 2, Value: "xyz",
		Reason: "invalid color syntax", Suggestion: "colors must match #rrggbb, e.g. #2563eb",
	}
	if got := positional.Error(); got != `palette[2]: invalid color syntax (got "xyz"): colors must match #rrggbb, e.g. #2563eb` {
		t.Errorf("positional error = %q", got)
	}

	scalar := &RequestError{
		Field: "style", Index: -1, Value: "bootstrap",
		Reason: "unknown style preset", Suggestion: "use AA or AAA",
	}
	if got := scalar.Error(); got != `style: unknown style preset (got "bootstrap"): use AA or AAA` {
		t.Errorf("scalar error = %q", got)
	}
}

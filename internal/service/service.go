// Package service exposes the theme engine behind a validated, cacheable
// request/response boundary. All colours cross this boundary as 6-digit hex
// strings; shadow tokens cross as rgba() string literals.
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/hashstructure/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/tonemint/tonemint/internal/colour"
)

// Cache retention for computed results. Results are deterministic per
// request, so the TTL only bounds memory, not staleness.
const (
	cacheTTL     = 5 * time.Minute
	cachePurge   = 10 * time.Minute
	defaultLevel = "AA"
	defaultStyle = "material"
)

// RequestError describes a caller-input fault. Every fault is detected
// before any algorithmic step runs; no partial results accompany one.
type RequestError struct {
	Field      string `json:"field"`
	Index      int    `json:"index"` // -1 when not positional
	Value      string `json:"value"`
	Reason     string `json:"reason"`
	Suggestion string `json:"suggestion"`
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]: %s (got %q): %s", e.Field, e.Index, e.Reason, e.Value, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s (got %q): %s", e.Field, e.Reason, e.Value, e.Suggestion)
}

// Service runs validated theme computations with result caching.
type Service struct {
	log   hclog.Logger
	cache *gocache.Cache
}

// New creates a Service. A nil logger defaults to hclog's shared default.
func New(log hclog.Logger) *Service {
	if log == nil {
		log = hclog.Default()
	}
	return &Service{
		log:   log.Named("service"),
		cache: gocache.New(cacheTTL, cachePurge),
	}
}

// AssignRequest asks for semantic role assignments over a seed palette.
type AssignRequest struct {
	Palette              []string `json:"palette"`
	Roles                []string `json:"roles,omitempty"`
	Context              string   `json:"context,omitempty"`
	EnsureContrast       bool     `json:"ensure_contrast,omitempty"`
	AccessibilityLevel   string   `json:"accessibility_level,omitempty"`
	PreserveBrandColours []string `json:"preserve_brand_colors,omitempty"`
}

// AssignResponse is the JSON envelope for role assignment results.
type AssignResponse struct {
	Mappings []colour.Mapping `json:"mappings"`
}

// ComposeRequest asks for a full theme composition from a primary colour.
type ComposeRequest struct {
	ThemeType          string   `json:"theme_type"`
	PrimaryColour      string   `json:"primary_color"`
	Style              string   `json:"style,omitempty"`
	AccessibilityLevel string   `json:"accessibility_level,omitempty"`
	BrandColours       []string `json:"brand_colors,omitempty"`
}

// ComposeResponse is the JSON envelope for theme composition results.
type ComposeResponse struct {
	Variants            []colour.ThemeVariant         `json:"variants"`
	AccessibilityReport colour.AccessibilityReport    `json:"accessibility_report"`
	BrandReport         colour.BrandIntegrationReport `json:"brand_report"`
}

// AssignSemanticRoles validates the request, assigns each requested role a
// palette colour, and returns the mappings in request order.
func (s *Service) AssignSemanticRoles(req AssignRequest) (*AssignResponse, error) {
	if len(req.Palette) == 0 {
		return nil, &RequestError{
			Field:      "palette",
			Index:      -1,
			Reason:     "palette is required and must not be empty",
			Suggestion: "supply at least one 6-digit hex color like #2563eb",
		}
	}

	palette, err := parseHexList("palette", req.Palette)
	if err != nil {
		return nil, err
	}

	roles := make([]colour.Role, 0, len(req.Roles))
	if len(req.Roles) == 0 {
		roles = append(roles, colour.Roles...)
	}
	for i, r := range req.Roles {
		role := colour.Role(strings.ToLower(r))
		if !role.Valid() {
			return nil, &RequestError{
				Field:      "roles",
				Index:      i,
				Value:      r,
				Reason:     "unknown semantic role",
				Suggestion: "use one of: primary, secondary, success, warning, error, info, neutral",
			}
		}
		roles = append(roles, role)
	}

	level, err := parseLevel(req.AccessibilityLevel)
	if err != nil {
		return nil, err
	}

	preserve := make(map[string]bool, len(req.PreserveBrandColours))
	preserved, err := parseHexList("preserve_brand_colors", req.PreserveBrandColours)
	if err != nil {
		return nil, err
	}
	for _, c := range preserved {
		preserve[c.Hex()] = true
	}

	if cached, ok := s.cached("assign", req); ok {
		return cached.(*AssignResponse), nil
	}

	s.log.Debug("assigning semantic roles",
		"palette_size", len(palette), "roles", len(roles),
		"ensure_contrast", req.EnsureContrast, "level", string(level))

	resp := &AssignResponse{
		Mappings: colour.AssignRoles(palette, roles, colour.AssignOptions{
			Context:         strings.ToLower(req.Context),
			EnsureContrast:  req.EnsureContrast,
			TargetRatio:     level.TargetRatio(),
			PreserveColours: preserve,
		}),
	}

	s.store("assign", req, resp)
	return resp, nil
}

// ComposeTheme validates the request and composes the requested theme
// variants plus the accessibility and brand reports.
func (s *Service) ComposeTheme(req ComposeRequest) (*ComposeResponse, error) {
	kind := colour.VariantKind(strings.ToLower(req.ThemeType))
	if !kind.Valid() {
		return nil, &RequestError{
			Field:      "theme_type",
			Index:      -1,
			Value:      req.ThemeType,
			Reason:     "unknown theme type",
			Suggestion: "use one of: light, dark, high_contrast, colorblind_friendly, all",
		}
	}

	if req.PrimaryColour == "" {
		return nil, &RequestError{
			Field:      "primary_color",
			Index:      -1,
			Reason:     "primary color is required",
			Suggestion: "supply a 6-digit hex color like #2563eb",
		}
	}
	primary, err := colour.FromHex(req.PrimaryColour)
	if err != nil {
		return nil, &RequestError{
			Field:      "primary_color",
			Index:      -1,
			Value:      req.PrimaryColour,
			Reason:     "invalid color syntax",
			Suggestion: "colors must match #rrggbb, e.g. #2563eb",
		}
	}

	styleName := req.Style
	if styleName == "" {
		styleName = defaultStyle
	}
	style := colour.Style(strings.ToLower(styleName))
	if !style.Valid() {
		return nil, &RequestError{
			Field:      "style",
			Index:      -1,
			Value:      req.Style,
			Reason:     "unknown style preset",
			Suggestion: "use one of: material, ios, fluent, custom",
		}
	}

	level, err := parseLevel(req.AccessibilityLevel)
	if err != nil {
		return nil, err
	}

	brand, err := parseHexList("brand_colors", req.BrandColours)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.cached("compose", req); ok {
		return cached.(*ComposeResponse), nil
	}

	s.log.Debug("composing theme",
		"kind", string(kind), "style", string(style),
		"level", string(level), "brand_colors", len(brand))

	doc := colour.ComposeDocument(colour.ComposeRequest{
		Kind:    kind,
		Primary: primary,
		Style:   style,
		Level:   level,
		Brand:   brand,
	})

	resp := &ComposeResponse{
		Variants:            doc.Variants,
		AccessibilityReport: doc.Accessibility,
		BrandReport:         doc.Brand,
	}

	s.store("compose", req, resp)
	return resp, nil
}

// parseHexList parses a list of hex colour strings, reporting the offending
// index and value on the first failure.
func parseHexList(field string, values []string) ([]colour.Colour, error) {
	colours := make([]colour.Colour, 0, len(values))
	for i, v := range values {
		c, err := colour.FromHex(v)
		if err != nil {
			return nil, &RequestError{
				Field:      field,
				Index:      i,
				Value:      v,
				Reason:     "invalid color syntax",
				Suggestion: "colors must match #rrggbb, e.g. #2563eb",
			}
		}
		colours = append(colours, c)
	}
	return colours, nil
}

// parseLevel parses an accessibility level, defaulting empty to AA.
func parseLevel(value string) (colour.Level, error) {
	if value == "" {
		value = defaultLevel
	}
	level := colour.Level(strings.ToUpper(value))
	if !level.Valid() {
		return "", &RequestError{
			Field:      "accessibility_level",
			Index:      -1,
			Value:      value,
			Reason:     "unknown accessibility level",
			Suggestion: "use AA or AAA",
		}
	}
	return level, nil
}

// cacheKey builds a deterministic cache key from a request struct.
func cacheKey(op string, req any) (string, bool) {
	hash, err := hashstructure.Hash(req, hashstructure.FormatV2, nil)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s:%x", op, hash), true
}

func (s *Service) cached(op string, req any) (any, bool) {
	key, ok := cacheKey(op, req)
	if !ok {
		return nil, false
	}
	if v, hit := s.cache.Get(key); hit {
		s.log.Debug("cache hit", "key", key)
		return v, true
	}
	return nil, false
}

func (s *Service) store(op string, req, resp any) {
	if key, ok := cacheKey(op, req); ok {
		s.cache.SetDefault(key, resp)
	}
}

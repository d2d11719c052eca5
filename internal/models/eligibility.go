package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WildcardValue marks a rule field that imposes no constraint.
const WildcardValue = "any"

// FieldKind discriminates the shapes an eligibility rule field can take.
type FieldKind uint8

const (
	// FieldWildcard matches every candidate value.
	FieldWildcard FieldKind = iota
	// FieldLiteral requires a single value.
	FieldLiteral
	// FieldOneOf requires any one of several values.
	FieldOneOf
)

// RuleField is a tagged union of Wildcard | Literal(string) | OneOf([]string).
// The zero value is a wildcard, so absent JSON keys never disqualify.
type RuleField struct {
	Kind   FieldKind
	Values []string
}

// Wildcard returns a field that imposes no constraint.
func Wildcard() RuleField {
	return RuleField{Kind: FieldWildcard}
}

// Literal returns a field that requires exactly value. Empty or "any" yields a wildcard.
func Literal(value string) RuleField {
	norm := NormalizeTerm(value)
	if norm == "" || norm == WildcardValue {
		return Wildcard()
	}
	return RuleField{Kind: FieldLiteral, Values: []string{strings.TrimSpace(value)}}
}

// OneOf returns a field satisfied by any of values. Blank entries are dropped; an
// empty list or an "any" entry yields a wildcard.
func OneOf(values ...string) RuleField {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		norm := NormalizeTerm(v)
		if norm == WildcardValue {
			return Wildcard()
		}
		if norm != "" {
			kept = append(kept, strings.TrimSpace(v))
		}
	}
	if len(kept) == 0 {
		return Wildcard()
	}
	return RuleField{Kind: FieldOneOf, Values: kept}
}

// IsWildcard reports whether the field lets every candidate through.
func (f RuleField) IsWildcard() bool {
	return f.Kind == FieldWildcard || len(f.Values) == 0
}

// Matches compares value case-insensitively against the field.
func (f RuleField) Matches(value string) bool {
	if f.IsWildcard() {
		return true
	}
	want := NormalizeTerm(value)
	for _, v := range f.Values {
		if NormalizeTerm(v) == want {
			return true
		}
	}
	return false
}

// String renders the field for logs and exports.
func (f RuleField) String() string {
	if f.IsWildcard() {
		return WildcardValue
	}
	return strings.Join(f.Values, "/")
}

// MarshalJSON writes wildcards as "any", literals as strings and one-of fields as arrays.
func (f RuleField) MarshalJSON() ([]byte, error) {
	switch {
	case f.IsWildcard():
		return json.Marshal(WildcardValue)
	case f.Kind == FieldOneOf:
		return json.Marshal(f.Values)
	default:
		return json.Marshal(f.Values[0])
	}
}

// UnmarshalJSON accepts null, a string or an array of strings. Any other shape
// degrades to a wildcard instead of failing the whole record.
func (f *RuleField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*f = Wildcard()
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*f = Wildcard()
			return nil
		}
		*f = Literal(s)
	case '[':
		var raw []interface{}
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			*f = Wildcard()
			return nil
		}
		values := make([]string, 0, len(raw))
		for _, item := range raw {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
		*f = OneOf(values...)
	default:
		*f = Wildcard()
	}
	return nil
}

// IncomeCap is the maximum family income a rule allows, or no cap at all.
type IncomeCap struct {
	set    bool
	amount float64
}

// NoIncomeCap returns an unbounded cap.
func NoIncomeCap() IncomeCap {
	return IncomeCap{}
}

// IncomeCapOf returns a cap of amount. Non-positive amounts are treated as unbounded.
func IncomeCapOf(amount float64) IncomeCap {
	if amount <= 0 {
		return IncomeCap{}
	}
	return IncomeCap{set: true, amount: amount}
}

// Amount returns the cap and whether one is set.
func (c IncomeCap) Amount() (float64, bool) {
	return c.amount, c.set
}

// IsWildcard reports whether the cap is unbounded.
func (c IncomeCap) IsWildcard() bool {
	return !c.set
}

// Allows reports whether the cap covers the searched income ceiling.
func (c IncomeCap) Allows(limit float64) bool {
	if !c.set {
		return true
	}
	return c.amount >= limit
}

// String renders the cap for logs and exports.
func (c IncomeCap) String() string {
	if !c.set {
		return WildcardValue
	}
	return strconv.FormatFloat(c.amount, 'f', -1, 64)
}

// MarshalJSON writes an unbounded cap as "any".
func (c IncomeCap) MarshalJSON() ([]byte, error) {
	if !c.set {
		return json.Marshal(WildcardValue)
	}
	return json.Marshal(c.amount)
}

// UnmarshalJSON accepts numbers, numeric strings with thousands separators, "any" and null.
func (c *IncomeCap) UnmarshalJSON(data []byte) error {
	amount, ok := parseJSONAmount(data)
	if !ok {
		*c = NoIncomeCap()
		return nil
	}
	*c = IncomeCapOf(amount)
	return nil
}

// EligibilityRule is one OR-branch of conditions under which a scholarship is open.
type EligibilityRule struct {
	DomicileState   RuleField `json:"domicile_state"`
	Category        RuleField `json:"category"`
	Gender          RuleField `json:"gender"`
	FamilyIncomeMax IncomeCap `json:"family_income_max"`
	CourseStream    RuleField `json:"course_stream"`
}

// EligibilityRules is stored as a JSONB column.
type EligibilityRules []EligibilityRule

// Value implements driver.Valuer. The JSON is sent as text so lib/pq does not
// encode it as bytea.
func (r EligibilityRules) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	payload, err := json.Marshal([]EligibilityRule(r))
	if err != nil {
		return nil, fmt.Errorf("marshal eligibility rules: %w", err)
	}
	return string(payload), nil
}

// Scan implements sql.Scanner.
func (r *EligibilityRules) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*r = EligibilityRules{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan eligibility rules: unsupported type %T", src)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		*r = EligibilityRules{}
		return nil
	}
	var rules []EligibilityRule
	if err := json.Unmarshal(raw, &rules); err != nil {
		return fmt.Errorf("scan eligibility rules: %w", err)
	}
	*r = rules
	return nil
}

// NormalizeTerm lower-cases and trims a free-text term for comparison.
func NormalizeTerm(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ParseAmount parses a monetary amount, stripping thousands separators
// ("2,50,000", "250 000", "250_000"). Blank and "any" are not amounts.
func ParseAmount(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', '_', ' ', '\t':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if cleaned == "" || strings.EqualFold(cleaned, WildcardValue) {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseJSONAmount(data []byte) (float64, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, false
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return 0, false
		}
		return ParseAmount(s)
	}
	var n float64
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return 0, false
	}
	return n, true
}

// Package extract pulls values out of a fetched JSON body with JSONPath.
// The fetch outcome itself never depends on extraction.
package extract

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/primer/internal/domain"
)

// ParseRules turns "name=$.path" (or a bare "$.path", named after itself)
// into an ExtractSpec.
func ParseRules(args []string) (domain.ExtractSpec, error) {
	rules := domain.ExtractSpec{}
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}

		name, expr := arg, arg
		if i := strings.Index(arg, "="); i > 0 && !strings.HasPrefix(arg, "$") {
			name = strings.TrimSpace(arg[:i])
			expr = strings.TrimSpace(arg[i+1:])
		}
		if !strings.HasPrefix(expr, "$") {
			return nil, &domain.OpError{
				Op:   "extract.parse_rules",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("jsonpath %q must start with '$': %w", expr, domain.ErrInvalidConfig),
			}
		}
		rules[name] = expr
	}
	return rules, nil
}

// Apply evaluates every rule against body.
// - If body is not JSON -> every rule fails (no vars extracted).
// - A failing rule is reported in its ExtractResult; other rules still run.
func Apply(body string, rules domain.ExtractSpec) (domain.Vars, []domain.ExtractResult) {
	if len(rules) == 0 {
		return domain.Vars{}, []domain.ExtractResult{}
	}

	names := make([]string, 0, len(rules))
	for k := range rules {
		names = append(names, k)
	}
	sort.Strings(names) // stable output

	var doc any
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		out := make([]domain.ExtractResult, 0, len(names))
		for _, name := range names {
			out = append(out, failed(name, rules[name], "response body is not valid JSON"))
		}
		return domain.Vars{}, out
	}

	extracted := domain.Vars{}
	results := make([]domain.ExtractResult, 0, len(names))

	for _, name := range names {
		expr := strings.TrimSpace(rules[name])
		if expr == "" {
			results = append(results, failed(name, expr, "empty jsonpath expression"))
			continue
		}

		val, err := jsonpath.Get(expr, doc)
		if err != nil {
			results = append(results, failed(name, expr, fmt.Sprintf("jsonpath error: %v", err)))
			continue
		}
		if isEmptyValue(val) {
			results = append(results, failed(name, expr, "no value found"))
			continue
		}

		s, err := toString(val)
		if err != nil {
			results = append(results, failed(name, expr, fmt.Sprintf("cannot convert value to string: %v", err)))
			continue
		}

		extracted[name] = s
		results = append(results, domain.ExtractResult{
			Name:    name,
			Success: true,
			Message: s,
		})
	}

	return extracted, results
}

func failed(name, expr, reason string) domain.ExtractResult {
	return domain.ExtractResult{
		Name:    name,
		Success: false,
		Message: fmt.Sprintf("extract %q (%s): %s", name, expr, reason),
	}
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	// jsonpath returns a slice for wildcard/filter expressions.
	if arr, ok := v.([]any); ok {
		if len(arr) == 1 {
			return toString(arr[0])
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	switch t := v.(type) {
	case string:
		return t, nil
	case float64, bool:
		return fmt.Sprint(t), nil
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

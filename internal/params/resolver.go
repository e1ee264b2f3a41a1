// Package params turns the raw key/value bag collected by a UI or API
// caller into a validated, defaulted input object for one model, or a
// complete list of what is wrong with it.
package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/draftbox/mediaroute/internal/catalog"
)

// Result is the outcome of resolving one raw input bag against a schema.
// Errors accumulates every field-level problem found in a single pass;
// callers collect all fields in one form submission and want all the
// problems back in one round trip.
type Result struct {
	Valid   bool
	Cleaned map[string]interface{}
	Errors  []string
}

// Resolve validates raw against the schema's parameters in declaration
// order. Only a missing key or an untyped nil counts as absent; false, "",
// 0 and empty arrays are explicit values and are validated as such.
func Resolve(schema *catalog.ModelSchema, raw map[string]interface{}) Result {
	cleaned := make(map[string]interface{})
	var errs []string

	for _, spec := range schema.Parameters {
		value, present := raw[spec.Name]
		if !present || value == nil {
			if spec.Required {
				errs = append(errs, fmt.Sprintf("%s is required", spec.Name))
				continue
			}
			if spec.Default != nil {
				cleaned[spec.Name] = spec.Default
			}
			continue
		}

		fieldErrs := checkValue(spec, value)
		if len(fieldErrs) > 0 {
			errs = append(errs, fieldErrs...)
			continue
		}

		cleaned[spec.Name] = value
	}

	return Result{
		Valid:   len(errs) == 0,
		Cleaned: cleaned,
		Errors:  errs,
	}
}

func checkValue(spec catalog.ParameterSpec, value interface{}) []string {
	switch spec.Type {
	case catalog.ParamString:
		s, ok := value.(string)
		if !ok {
			return []string{fmt.Sprintf("%s must be a string", spec.Name)}
		}
		return checkString(spec, s)

	case catalog.ParamNumber:
		n, ok := toNumber(value)
		if !ok {
			return []string{fmt.Sprintf("%s must be a number", spec.Name)}
		}
		return checkNumber(spec.Name, n, spec.Min, spec.Max, spec.Options)

	case catalog.ParamBoolean:
		if _, ok := value.(bool); !ok {
			return []string{fmt.Sprintf("%s must be a boolean", spec.Name)}
		}
		return nil

	case catalog.ParamArray:
		arr, ok := value.([]interface{})
		if !ok {
			return []string{fmt.Sprintf("%s must be an array", spec.Name)}
		}
		return checkArray(spec, arr)

	default:
		return []string{fmt.Sprintf("%s has unsupported type %s", spec.Name, spec.Type)}
	}
}

func checkString(spec catalog.ParameterSpec, s string) []string {
	var errs []string

	if len(spec.Options) > 0 {
		if !inOptions(spec.Options, s) {
			errs = append(errs, fmt.Sprintf("%s must be one of: %s", spec.Name, formatOptions(spec.Options)))
		}
		return errs
	}

	if spec.MinLength != nil && len(s) < *spec.MinLength {
		errs = append(errs, fmt.Sprintf("%s must be at least %d characters", spec.Name, *spec.MinLength))
	}
	if spec.MaxLength != nil && len(s) > *spec.MaxLength {
		errs = append(errs, fmt.Sprintf("%s must be at most %d characters", spec.Name, *spec.MaxLength))
	}
	return errs
}

func checkNumber(name string, n float64, min, max *float64, options []interface{}) []string {
	var errs []string

	if len(options) > 0 {
		if !inOptions(options, n) {
			errs = append(errs, fmt.Sprintf("%s must be one of: %s", name, formatOptions(options)))
		}
		return errs
	}

	switch {
	case min != nil && max != nil && (n < *min || n > *max):
		errs = append(errs, fmt.Sprintf("%s must be between %s and %s", name, formatNumber(*min), formatNumber(*max)))
	case min != nil && max == nil && n < *min:
		errs = append(errs, fmt.Sprintf("%s must be at least %s", name, formatNumber(*min)))
	case max != nil && min == nil && n > *max:
		errs = append(errs, fmt.Sprintf("%s must be at most %s", name, formatNumber(*max)))
	}
	return errs
}

// checkArray validates element objects against the item schema, reporting
// one indexed error per failing property.
func checkArray(spec catalog.ParameterSpec, arr []interface{}) []string {
	if len(spec.Items) == 0 {
		return nil
	}

	var errs []string
	for i, el := range arr {
		obj, ok := el.(map[string]interface{})
		if !ok {
			errs = append(errs, fmt.Sprintf("%s[%d] must be an object", spec.Name, i))
			continue
		}

		for _, p := range spec.Items {
			pv, present := obj[p.Name]
			path := fmt.Sprintf("%s[%d].%s", spec.Name, i, p.Name)

			if !present || pv == nil {
				if p.Required {
					errs = append(errs, fmt.Sprintf("%s is required", path))
				}
				continue
			}

			switch p.Type {
			case catalog.ParamNumber:
				n, ok := toNumber(pv)
				if !ok {
					errs = append(errs, fmt.Sprintf("%s must be a number", path))
					continue
				}
				errs = append(errs, checkNumber(path, n, p.Min, p.Max, nil)...)
			case catalog.ParamString:
				if _, ok := pv.(string); !ok {
					errs = append(errs, fmt.Sprintf("%s must be a string", path))
				}
			case catalog.ParamBoolean:
				if _, ok := pv.(bool); !ok {
					errs = append(errs, fmt.Sprintf("%s must be a boolean", path))
				}
			}
		}
	}
	return errs
}

// toNumber accepts the numeric shapes JSON decoding and Go callers produce.
// Strings and booleans never coerce.
func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

func inOptions(options []interface{}, v interface{}) bool {
	for _, opt := range options {
		if optEquals(opt, v) {
			return true
		}
	}
	return false
}

func optEquals(opt, v interface{}) bool {
	if on, ok := toNumber(opt); ok {
		vn, ok := toNumber(v)
		return ok && on == vn
	}
	return opt == v
}

func formatOptions(options []interface{}) string {
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		switch o := opt.(type) {
		case string:
			parts = append(parts, o)
		case float64:
			parts = append(parts, formatNumber(o))
		default:
			parts = append(parts, fmt.Sprintf("%v", o))
		}
	}
	return strings.Join(parts, ", ")
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

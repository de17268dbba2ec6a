// Package validate implements struct-tag request validation.
//
// Rules live in a `validate` tag, pipe-separated, e.g.
//
//	Email string `json:"email" validate:"required|email"`
//	Qty   int    `json:"qty"   validate:"required|gte:1"`
//
// Errors is a field -> messages map that serializes directly into the
// response envelope's errors object.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

type Errors map[string][]string

func (e Errors) Any() bool { return len(e) > 0 }

func (e Errors) add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation passed"
	}
	parts := make([]string, 0, len(e))
	for field, messages := range e {
		parts = append(parts, field+": "+strings.Join(messages, ", "))
	}
	return strings.Join(parts, "; ")
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Struct validates v (a struct or pointer to struct) against its
// validate tags and returns the accumulated field errors.
func Struct(v any) Errors {
	errs := Errors{}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return errs
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errs
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		value := rv.Field(i)

		// Validate each element of a struct slice (e.g. order items)
		// with an indexed prefix.
		if isSlice(value) {
			for j := 0; j < value.Len(); j++ {
				if element := nestedStruct(value.Index(j)); element.IsValid() {
					for key, messages := range Struct(element.Interface()) {
						errs[fmt.Sprintf("%s.%d.%s", fieldName(field), j, key)] = messages
					}
				}
			}
		}

		// Validate nested structs (e.g. shipping address inside an
		// order payload) and prefix their errors with the field name.
		if field.Tag.Get("validate") == "" || strings.Contains(field.Tag.Get("validate"), "dive") {
			if nested := nestedStruct(value); nested.IsValid() {
				for key, messages := range Struct(nested.Interface()) {
					errs[fieldName(field)+"."+key] = messages
				}
				if field.Tag.Get("validate") == "" {
					continue
				}
			}
		}

		tag := field.Tag.Get("validate")
		if tag == "" {
			continue
		}

		rules := strings.Split(tag, "|")
		name := fieldName(field)

		if hasRule(rules, "nullable") && isZero(value) {
			continue
		}

		for _, rule := range rules {
			applyRule(errs, name, value, rule)
		}
	}

	return errs
}

func nestedStruct(value reflect.Value) reflect.Value {
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return reflect.Value{}
		}
		value = value.Elem()
	}
	if value.Kind() == reflect.Struct && value.Type().PkgPath() != "time" {
		return value
	}
	return reflect.Value{}
}

func fieldName(field reflect.StructField) string {
	jsonTag := field.Tag.Get("json")
	if jsonTag != "" {
		name := strings.Split(jsonTag, ",")[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(field.Name)
}

func hasRule(rules []string, target string) bool {
	for _, rule := range rules {
		if rule == target {
			return true
		}
	}
	return false
}

func applyRule(errs Errors, name string, value reflect.Value, rule string) {
	ruleName, arg := rule, ""
	if idx := strings.Index(rule, ":"); idx >= 0 {
		ruleName, arg = rule[:idx], rule[idx+1:]
	}

	switch ruleName {
	case "nullable", "dive":
		// handled by the caller
	case "required":
		if isZero(value) {
			errs.add(name, fmt.Sprintf("The %s field is required", name))
		}
	case "email":
		s := asString(value)
		if s != "" && !emailRe.MatchString(s) {
			errs.add(name, fmt.Sprintf("The %s field must be a valid email address", name))
		}
	case "min":
		n, _ := strconv.Atoi(arg)
		if s := asString(value); value.Kind() == reflect.String && len(s) < n {
			errs.add(name, fmt.Sprintf("The %s field must be at least %d characters", name, n))
		}
		if isSlice(value) && value.Len() < n {
			errs.add(name, fmt.Sprintf("The %s field must have at least %d items", name, n))
		}
	case "max":
		n, _ := strconv.Atoi(arg)
		if s := asString(value); value.Kind() == reflect.String && len(s) > n {
			errs.add(name, fmt.Sprintf("The %s field must not exceed %d characters", name, n))
		}
		if isSlice(value) && value.Len() > n {
			errs.add(name, fmt.Sprintf("The %s field must not exceed %d items", name, n))
		}
	case "gte":
		limit, _ := strconv.ParseFloat(arg, 64)
		if num, ok := asFloat(value); ok && num < limit {
			errs.add(name, fmt.Sprintf("The %s field must be at least %s", name, arg))
		}
	case "lte":
		limit, _ := strconv.ParseFloat(arg, 64)
		if num, ok := asFloat(value); ok && num > limit {
			errs.add(name, fmt.Sprintf("The %s field must be at most %s", name, arg))
		}
	case "gt":
		limit, _ := strconv.ParseFloat(arg, 64)
		if num, ok := asFloat(value); ok && num <= limit {
			errs.add(name, fmt.Sprintf("The %s field must be greater than %s", name, arg))
		}
	case "in":
		allowed := strings.Split(arg, ",")
		s := asString(value)
		if s == "" {
			return
		}
		for _, candidate := range allowed {
			if s == candidate {
				return
			}
		}
		errs.add(name, fmt.Sprintf("The %s field must be one of: %s", name, strings.Join(allowed, ", ")))
	case "digits":
		n, _ := strconv.Atoi(arg)
		s := asString(value)
		if s == "" {
			return
		}
		if len(s) != n || !isDigits(s) {
			errs.add(name, fmt.Sprintf("The %s field must be %d digits", name, n))
		}
	case "numeric":
		s := asString(value)
		if s == "" {
			return
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			errs.add(name, fmt.Sprintf("The %s field must be numeric", name))
		}
	case "regex":
		re, err := regexp.Compile(arg)
		if err != nil {
			return
		}
		s := asString(value)
		if s != "" && !re.MatchString(s) {
			errs.add(name, fmt.Sprintf("The %s field format is invalid", name))
		}
	}
}

func isZero(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.Slice, reflect.Map:
		return value.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return value.IsNil()
	default:
		return value.IsZero()
	}
}

func isSlice(value reflect.Value) bool {
	return value.Kind() == reflect.Slice || value.Kind() == reflect.Array
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func asString(value reflect.Value) string {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}
	if value.Kind() == reflect.String {
		return value.String()
	}
	return ""
}

func asFloat(value reflect.Value) (float64, bool) {
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return 0, false
		}
		value = value.Elem()
	}
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(value.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(value.Uint()), true
	case reflect.Float32, reflect.Float64:
		return value.Float(), true
	default:
		return 0, false
	}
}

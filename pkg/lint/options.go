package lint

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// ParamType is the declared type of a rule parameter.
type ParamType int

// Parameter types.
const (
	ParamString ParamType = iota
	ParamInt
	ParamBool
	ParamRegexp
	ParamEnum
)

func (t ParamType) String() string {
	switch t {
	case ParamString:
		return "string"
	case ParamInt:
		return "int"
	case ParamBool:
		return "bool"
	case ParamRegexp:
		return "regexp"
	case ParamEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Param declares one rule parameter.
type Param struct {
	Key         string
	Description string
	Type        ParamType
	Default     string
	Allowed     []string // for ParamEnum
}

// Options holds the validated parameter values of one rule.
type Options struct {
	values   map[string]string
	patterns map[string]*regexp.Regexp
}

// String returns the value of a parameter.
func (o Options) String(key string) string {
	return o.values[key]
}

// Int returns the value of an int parameter.
func (o Options) Int(key string) int {
	n, _ := strconv.Atoi(o.values[key])
	return n
}

// Bool returns the value of a bool parameter.
func (o Options) Bool(key string) bool {
	b, _ := strconv.ParseBool(o.values[key])
	return b
}

// Regexp returns the compiled value of a regexp parameter.
func (o Options) Regexp(key string) *regexp.Regexp {
	return o.patterns[key]
}

// Configure validates raw parameter values against the declared
// parameters and returns the options a check is built from. Missing
// parameters take their default. The first invalid value is returned as
// a *ConfigError.
func (r *RuleDef) Configure(repository string, raw map[string]any) (Options, error) {
	opts := Options{
		values:   make(map[string]string, len(r.Params)),
		patterns: make(map[string]*regexp.Regexp),
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if _, ok := r.Param(k); !ok {
			return Options{}, r.configError(repository, Param{Key: k}, fmt.Sprintf("unknown parameter %q.", k))
		}
	}

	for _, p := range r.Params {
		value := p.Default
		if v, ok := raw[p.Key]; ok {
			value = GetStringOption(raw, p.Key, fmt.Sprint(v))
		}
		if err := r.set(repository, &opts, p, value); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

// set validates and stores one parameter value.
func (r *RuleDef) set(repository string, opts *Options, p Param, value string) error {
	switch p.Type {
	case ParamInt:
		if _, err := strconv.Atoi(value); err != nil {
			return r.configError(repository, p, fmt.Sprintf("%s parameter %q is not a valid integer.", p.Key, value))
		}
	case ParamBool:
		if _, err := strconv.ParseBool(value); err != nil {
			return r.configError(repository, p, fmt.Sprintf("%s parameter %q is not a valid boolean.", p.Key, value))
		}
	case ParamRegexp:
		re, err := regexp.Compile(value)
		if err != nil {
			return r.configError(repository, p, fmt.Sprintf("%s parameter %q is not a valid regular expression.", p.Key, value))
		}
		opts.patterns[p.Key] = re
	case ParamEnum:
		if !slices.Contains(p.Allowed, value) {
			e := r.configError(repository, p, "")
			e.Actual = value
			e.Expected = quoteAlternatives(p.Allowed)
			return e
		}
	}
	opts.values[p.Key] = value
	return nil
}

func (r *RuleDef) configError(repository string, p Param, reason string) *ConfigError {
	return &ConfigError{
		Repository: repository,
		RuleID:     r.ID,
		RuleName:   r.Name,
		Param:      p.Key,
		Reason:     reason,
	}
}

func quoteAlternatives(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, " or ")
}

// GetStringOption extracts a string option. Numbers and booleans decoded
// from YAML or the environment are formatted back to their text form.
func GetStringOption(opts map[string]any, key string, defaultVal string) string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch s := v.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return defaultVal
	}
}

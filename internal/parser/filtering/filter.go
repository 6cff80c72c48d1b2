package filtering

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultImplementationSmellFilters lists the implementation smells left out
// of the report unless the caller overrides the filter set.
var DefaultImplementationSmellFilters = []string{
	"-Abstract Function Call From Constructor",
}

// IFilter decides whether a named element (a smell category) is reported.
type IFilter interface {
	IsElementIncludedInReport(name string) bool
	HasCustomFilters() bool
}

// DefaultFilter is the default implementation of IFilter.
// Patterns start with '+' (include) or '-' (exclude) and may use '*' and '?'
// wildcards. Matching is anchored and case-insensitive.
type DefaultFilter struct {
	includeFilters []*regexp.Regexp
	excludeFilters []*regexp.Regexp
	hasCustom      bool
}

// NewDefaultFilter creates a new DefaultFilter from +/- patterns.
func NewDefaultFilter(filters []string) (IFilter, error) {
	df := &DefaultFilter{}
	var errs []string

	for _, f := range filters {
		f = strings.TrimSpace(f)
		switch {
		case f == "":
			continue
		case strings.HasPrefix(f, "+"):
			re, err := createFilterRegex(f)
			if err != nil {
				errs = append(errs, fmt.Sprintf("invalid include filter '%s': %v", f, err))
				continue
			}
			df.includeFilters = append(df.includeFilters, re)
		case strings.HasPrefix(f, "-"):
			re, err := createFilterRegex(f)
			if err != nil {
				errs = append(errs, fmt.Sprintf("invalid exclude filter '%s': %v", f, err))
				continue
			}
			df.excludeFilters = append(df.excludeFilters, re)
		default:
			errs = append(errs, fmt.Sprintf("filter '%s' must start with '+' or '-'", f))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("error creating filter: %s", strings.Join(errs, "; "))
	}

	df.hasCustom = len(df.includeFilters) > 0 || len(df.excludeFilters) > 0

	// No include filter means everything not excluded is reported.
	if len(df.includeFilters) == 0 {
		re, _ := createFilterRegex("+*")
		df.includeFilters = append(df.includeFilters, re)
	}

	return df, nil
}

// IsElementIncludedInReport checks if the given name matches the filter rules.
// Exclusions win over inclusions.
func (df *DefaultFilter) IsElementIncludedInReport(name string) bool {
	for _, excludeRe := range df.excludeFilters {
		if excludeRe.MatchString(name) {
			return false
		}
	}

	for _, includeRe := range df.includeFilters {
		if includeRe.MatchString(name) {
			return true
		}
	}
	return false
}

// HasCustomFilters returns true if any include or exclude filters were specified.
func (df *DefaultFilter) HasCustomFilters() bool {
	return df.hasCustom
}

// createFilterRegex converts a filter string (e.g. "-Long *") to an anchored regex.
func createFilterRegex(filter string) (*regexp.Regexp, error) {
	if len(filter) < 2 {
		return nil, fmt.Errorf("empty filter pattern")
	}
	pattern := regexp.QuoteMeta(strings.TrimSpace(filter[1:]))

	// QuoteMeta escapes the wildcards, turn them back into regex.
	pattern = strings.ReplaceAll(pattern, `\*`, ".*")
	pattern = strings.ReplaceAll(pattern, `\?`, ".")

	return regexp.Compile("(?i)^" + pattern + "$")
}

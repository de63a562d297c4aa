// Package pather formats and parses path templates such as
// "{root}/{project}/{silo}/{asset}/work/{task}/{app}".
//
// A template is a path with {name} placeholders. Parse matches a path
// against a template and returns the value captured by every placeholder.
// A path matches when the template covers it completely or covers one of
// its parent directories, so a work file resolves against a work
// directory template.
package pather

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// ParseError is returned by Parse when the path does not match the template.
type ParseError struct {
	Template string
	Path     string
	Reason   string
}

func (e *ParseError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("path %q does not match template %q: %s", e.Path, e.Template, e.Reason)
	}
	return fmt.Sprintf("path %q does not match template %q", e.Path, e.Template)
}

// Fields returns the placeholder names of template in order of first appearance.
func Fields(template string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}

// Format substitutes placeholders whose key is present in data.
// Other placeholders are kept so the result can be formatted again or parsed.
func Format(template string, data map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(ph string) string {
		key := ph[1 : len(ph)-1]
		if v, ok := data[key]; ok {
			return v
		}
		return ph
	})
}

// Parse matches path against template and returns the captured fields.
func Parse(template, path string) (map[string]string, error) {
	tmpl := normalize(template)
	p := normalize(path)

	re, groups, err := compile(tmpl)
	if err != nil {
		return nil, err
	}
	m := re.FindStringSubmatch(p)
	if m == nil {
		return nil, &ParseError{Template: template, Path: path}
	}

	out := make(map[string]string, len(groups))
	for i, name := range re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		key := groups[name]
		if prev, ok := out[key]; ok && prev != m[i] {
			return nil, &ParseError{
				Template: template,
				Path:     path,
				Reason:   fmt.Sprintf("field %q captured both %q and %q", key, prev, m[i]),
			}
		}
		out[key] = m[i]
	}
	return out, nil
}

// compile turns a template into an anchored regular expression with one
// named group per placeholder occurrence. Go regexps have no
// backreferences, so repeated placeholders get distinct group names and
// groups maps each group name back to its field.
func compile(tmpl string) (*regexp.Regexp, map[string]string, error) {
	var b strings.Builder
	b.WriteString("^")
	groups := map[string]string{}
	count := map[string]int{}
	last := 0
	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(tmpl, -1) {
		b.WriteString(regexp.QuoteMeta(tmpl[last:loc[0]]))
		key := tmpl[loc[2]:loc[3]]
		count[key]++
		group := fmt.Sprintf("%s__%d", key, count[key])
		groups[group] = key
		fmt.Fprintf(&b, "(?P<%s>[^/]+)", group)
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(tmpl[last:]))
	b.WriteString("(?:/|$)")
	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, nil, fmt.Errorf("invalid template %q: %w", tmpl, err)
	}
	return re, groups, nil
}

func normalize(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	return p
}

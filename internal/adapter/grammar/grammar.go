// Package grammar parses the textual select and order terms accepted by
// queries into [domain.SelectTerm] and [domain.OrderTerm] values.
package grammar

import (
	"regexp"
	"strings"

	"github.com/vinicius-lino-figueiredo/gedq/domain"
)

const (
	ident = `[a-zA-Z_$][a-zA-Z0-9_$]*`
	path  = ident + `(?:\.` + ident + `)*`
)

var (
	selectExp = regexp.MustCompile(`^(` + path + `)(?:\s+(?:as|AS)\s+(` + ident + `))?$`)
	orderExp  = regexp.MustCompile(`^(` + path + `)(?::(String|Number|Boolean|Date))?(?:\s+(asc|ASC|desc|DESC))?$`)
)

var coercions = map[string]domain.Coercion{
	"String":  domain.String,
	"Number":  domain.Number,
	"Boolean": domain.Boolean,
	"Date":    domain.Date,
}

// ParseSelect parses terms in the form "path[ as alias]". The alias defaults
// to the path itself. Every term must be a string and aliases must be unique.
func ParseSelect(terms ...any) ([]domain.SelectTerm, error) {
	res := make([]domain.SelectTerm, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		str, ok := term.(string)
		if !ok {
			return nil, domain.ErrInvalidArgument{Method: "select", Argument: term}
		}
		match := selectExp.FindStringSubmatch(str)
		if match == nil {
			return nil, domain.ErrSyntax{Method: "select", Term: str}
		}
		alias := match[2]
		if alias == "" {
			alias = match[1]
		}
		if _, dup := seen[alias]; dup {
			return nil, domain.ErrDuplicateAlias{Alias: alias}
		}
		seen[alias] = struct{}{}
		res = append(res, domain.SelectTerm{
			Path:  strings.Split(match[1], "."),
			Alias: alias,
		})
	}
	return res, nil
}

// ParseOrder parses terms in the form "path[:Coercion][ asc|desc]". Order is
// ascending unless desc is given.
func ParseOrder(terms ...any) ([]domain.OrderTerm, error) {
	res := make([]domain.OrderTerm, 0, len(terms))
	for _, term := range terms {
		str, ok := term.(string)
		if !ok {
			return nil, domain.ErrInvalidArgument{Method: "orderBy", Argument: term}
		}
		match := orderExp.FindStringSubmatch(str)
		if match == nil {
			return nil, domain.ErrSyntax{Method: "orderBy", Term: str}
		}
		res = append(res, domain.OrderTerm{
			Path:       strings.Split(match[1], "."),
			Coercion:   coercions[match[2]],
			Descending: strings.EqualFold(match[3], "desc"),
		})
	}
	return res, nil
}

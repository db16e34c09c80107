package main

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/vinicius-lino-figueiredo/gedq"
)

var clauseExp = regexp.MustCompile(`^\s*(\S+)\s+(?:(not)\s+)?(\S+)(?:\s+(.*?))?\s*$`)

// clause is a filter read from the command line in the form
// "path [not] operator [value]". The path "." stands for the whole item.
type clause struct {
	path     []string
	negated  bool
	operator string
	operand  any
}

func parseClause(s string) (clause, error) {
	match := clauseExp.FindStringSubmatch(s)
	if match == nil {
		return clause{}, fmt.Errorf("invalid filter %q: expected \"path [not] operator [value]\"", s)
	}
	c := clause{
		negated:  match[2] != "",
		operator: match[3],
	}
	if match[1] != "." {
		c.path = []string{match[1]}
	}
	if raw := match[4]; raw != "" {
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = raw
		}
		c.operand = v
	}
	return c, nil
}

func (c clause) apply(f *gedq.Filter) *gedq.Query {
	if c.negated {
		f.Not()
	}
	return f.Apply(c.operator, c.operand)
}

package shortcut

import "strings"

// RenameRule rewrites a combination of operators into another one, e.g.
// the right cmd + left ctrl + right alt chord some keyboards send for fn.
type RenameRule struct {
	From []string `yaml:"from"`
	To   []string `yaml:"to"`
}

// RenameRules are applied in order.
type RenameRules []RenameRule

func (r RenameRule) String() string {
	return strings.Join(r.From, "+") + " => " + strings.Join(r.To, "+")
}

// ReplaceOperators returns a copy of s with every matching rule applied.
// A rule matches when all of its From tokens are operators of s; the From
// tokens are then removed and the To tokens added. Rules that only match
// partially have no effect.
func (s Shortcut) ReplaceOperators(rules RenameRules) Shortcut {
	out := s
	out.operators = s.Operators()
	for _, rule := range rules {
		if len(rule.From) == 0 || !out.hasAll(rule.From) {
			continue
		}
		kept := out.operators[:0]
		for _, op := range out.operators {
			if !contains(rule.From, op) {
				kept = append(kept, op)
			}
		}
		out.operators = appendUnique(kept, rule.To...)
	}
	return out
}

func (s Shortcut) hasAll(ops []string) bool {
	for _, op := range ops {
		if !s.HasOperator(op) {
			return false
		}
	}
	return true
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

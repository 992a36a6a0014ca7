package intent

import "strings"

// Input is a message prepared for matching. Text is trimmed and lower-cased;
// Raw is trimmed but keeps the user's casing for descriptions.
type Input struct {
	Raw  string
	Text string
}

// NewInput prepares raw text for the rules.
func NewInput(raw string) Input {
	trimmed := strings.TrimSpace(raw)
	return Input{Raw: trimmed, Text: strings.ToLower(trimmed)}
}

// after returns what follows prefix, preferring the original casing. It is
// only valid when HasPrefix(in.Text, prefix).
func (in Input) after(prefix string) string {
	if len(in.Raw) == len(in.Text) {
		return strings.TrimSpace(in.Raw[len(prefix):])
	}
	return strings.TrimSpace(in.Text[len(prefix):])
}

// Rule is one guard in the priority list. Match returns false when the rule
// does not apply, letting evaluation continue with the next rule.
type Rule struct {
	Name  string
	Match func(in Input) (Operation, bool)
}

// exact matches any of the literal commands.
func exact(name string, kind Kind, commands ...string) Rule {
	return Rule{
		Name: name,
		Match: func(in Input) (Operation, bool) {
			for _, c := range commands {
				if in.Text == c {
					return Operation{Kind: kind}, true
				}
			}
			return Operation{}, false
		},
	}
}

// prefixed matches a message starting with one of the prefixes and hands the
// remainder to parse.
func prefixed(name string, parse func(in Input, prefix, args string) Operation, prefixes ...string) Rule {
	return Rule{
		Name: name,
		Match: func(in Input) (Operation, bool) {
			for _, p := range prefixes {
				if strings.HasPrefix(in.Text, p) {
					return parse(in, p, in.after(p)), true
				}
			}
			return Operation{}, false
		},
	}
}

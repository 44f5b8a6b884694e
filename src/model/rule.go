package model

import "regexp"

// Rule is a static catalog entry pairing a text pattern with the
// metadata copied verbatim onto every issue it produces. Rules are
// immutable; the catalog builds them once at startup.
type Rule struct {
	ID       string
	Pattern  *regexp.Regexp
	FindAll  bool // every non-overlapping occurrence vs. first match only
	Kind     Kind
	Severity Severity
	Message  string
}

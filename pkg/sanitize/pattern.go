// Package sanitize masks PII and secrets in log output. It is wired into the
// log pipeline as a handler stage (see pkg/logging), never called ad hoc at
// log sites.
package sanitize

import "regexp"

// CompiledPattern holds a pre-compiled regex with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns are applied in order to every string attribute that passes
// through the sanitizing log handler. Order matters: JWTs must be masked
// before the generic token pattern would mangle them.
var builtinPatterns = []*CompiledPattern{
	{
		Name:        "jwt",
		Regex:       regexp.MustCompile(`eyJ[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}\.[A-Za-z0-9_-]{10,}`),
		Replacement: "eyJ***[JWT]",
	},
	{
		Name:        "stripe_key",
		Regex:       regexp.MustCompile(`\b(sk|pk|rk)_(live|test)?_?[A-Za-z0-9]{8,}([A-Za-z0-9]{4})\b`),
		Replacement: "sk-***$3",
	},
	{
		Name:        "oauth_token",
		Regex:       regexp.MustCompile(`\b(ya29\.[A-Za-z0-9_-]{10,}|gho_[A-Za-z0-9]{10,}|xox[baprs]-[A-Za-z0-9-]{10,})`),
		Replacement: "***[TOKEN]",
	},
	{
		Name:        "email",
		Regex:       regexp.MustCompile(`\b([A-Za-z0-9._%+-])[A-Za-z0-9._%+-]*@([A-Za-z0-9.-]+\.[A-Za-z]{2,})\b`),
		Replacement: "$1***@$2",
	},
	{
		Name:        "uuid_prefix",
		Regex:       regexp.MustCompile(`\b([0-9a-fA-F]{8})-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}\b`),
		Replacement: "$1-***",
	},
	{
		Name:        "ipv4",
		Regex:       regexp.MustCompile(`\b(\d{1,3})\.(\d{1,3})\.\d{1,3}\.\d{1,3}\b`),
		Replacement: "$1.$2.x.x",
	},
	{
		Name:        "phone_br",
		Regex:       regexp.MustCompile(`\b(?:\+55\s?)?\(?\d{2}\)?\s?9?\d{4}[-\s]?\d{4}\b`),
		Replacement: "***[PHONE]",
	},
}

// redactedKeys are attribute keys whose values are always replaced outright,
// regardless of content.
var redactedKeys = map[string]bool{
	"password":      true,
	"senha":         true,
	"secret":        true,
	"api_key":       true,
	"api_secret":    true,
	"authorization": true,
	"access_token":  true,
	"refresh_token": true,
}

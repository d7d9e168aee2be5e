package toast

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind selects how a toast is presented. It never affects the lifecycle.
type Kind uint8

const (
	KindInfo Kind = iota
	KindWarning
	KindError
)

// ParseKind maps a loose string to a Kind. Unrecognized input yields KindInfo.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warn", "warning":
		return KindWarning
	case "error", "err":
		return KindError
	default:
		return KindInfo
	}
}

// String returns the lowercase name, which doubles as the CSS class.
func (k Kind) String() string {
	switch k {
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "info"
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k <= KindError
}

// Label returns the human readable name, e.g. "Warning".
func (k Kind) Label() string {
	return cases.Title(language.English).String(k.String())
}

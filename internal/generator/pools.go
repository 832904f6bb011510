package generator

import (
	"passliss/internal/model"
)

// Built-in character classes used when no custom set is configured.
const (
	defaultLowercase = "abcdefghijklmnopqrstuvwxyz"
	defaultUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	defaultDigits    = "0123456789"
	defaultSpecial   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Pools holds the four character classes used to build generation alphabets.
// Immutable per generation call.
type Pools struct {
	Lowercase string
	Uppercase string
	Digits    string
	Special   string
}

// ResolvePools substitutes built-in defaults for any class the user has not
// overridden. Total: never fails.
func ResolvePools(custom *model.CustomCharacters) Pools {
	p := Pools{
		Lowercase: defaultLowercase,
		Uppercase: defaultUppercase,
		Digits:    defaultDigits,
		Special:   defaultSpecial,
	}
	if custom == nil {
		return p
	}
	if custom.Lowercase != "" {
		p.Lowercase = custom.Lowercase
	}
	if custom.Uppercase != "" {
		p.Uppercase = custom.Uppercase
	}
	if custom.Digits != "" {
		p.Digits = custom.Digits
	}
	if custom.Special != "" {
		p.Special = custom.Special
	}
	return p
}

// union joins the selected classes into a sampling alphabet, dropping
// duplicate runes so repeated characters do not bias the draw.
func union(parts ...string) []rune {
	seen := make(map[rune]bool)
	var out []rune
	for _, part := range parts {
		for _, c := range part {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

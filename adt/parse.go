package adt

import (
	"fmt"
	"strings"
)

// Parse declares an ADT from a textual declaration of the form
//
//     Name = Variant1 field1 field2 | Variant2 | Variant3 field
//
// Every alternative starts with the variant name, followed by its field
// names, separated by white space.
func Parse(namespace, decl string) (*Type, error) {
	name, body, ok := strings.Cut(decl, "=")
	if !ok {
		return nil, fmt.Errorf("%w: missing '=' in %q", ErrDeclaration, decl)
	}
	name = strings.TrimSpace(name)
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: type %s has no variants", ErrDeclaration, name)
	}
	alts := strings.Split(body, "|")
	variants := make([]Variant, 0, len(alts))
	for _, alt := range alts {
		words := strings.Fields(alt)
		if len(words) == 0 {
			return nil, fmt.Errorf("%w: empty alternative in %q", ErrDeclaration, decl)
		}
		variants = append(variants, V(words[0], words[1:]...))
	}
	return Data(namespace, name, variants...)
}

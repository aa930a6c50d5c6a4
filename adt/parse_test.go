package adt_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/algebra/adt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	typ, err := adt.Parse("geo", "Shape = Circle radius | Rect width height | Empty")
	require.NoError(t, err)
	assert.Equal(t, "geo:Shape{Circle(radius)|Rect(width,height)|Empty()}", typ.Signature())
	assert.Equal(t, "Shape = Circle radius | Rect width height | Empty", typ.Declaration())
	again, err := adt.Parse("geo", typ.Declaration())
	require.NoError(t, err)
	assert.True(t, again.HasInstance(typ.Constructors()[2].MustNew()))
}

func TestParseErrors(t *testing.T) {
	for _, decl := range []string{
		"Shape",
		"Shape =",
		"Shape = A | | B",
		" = A",
		"Shape = A x x",
	} {
		_, err := adt.Parse("geo", decl)
		assert.True(t, errors.Is(err, adt.ErrDeclaration), "expected %q to be rejected, got %v", decl, err)
	}
}

package either

// --- Matching --------------------------------------------------------------

// Matcher helps to switch over the variants of an Either:
//
//     var n int
//     var msg string
//     switch m := e.Match(); m {
//     case m.Right(&n):
//         // use n
//     case m.Left(&msg):
//         // use msg
//     }
//
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e Either[L, R]
}

func (e left[L, R]) Match() Matcher[L, R] {
	return &matcher[L, R]{e: e}
}

func (e right[L, R]) Match() Matcher[L, R] {
	return &matcher[L, R]{e: e}
}

func (mm *matcher[L, R]) Left(v *L) Matcher[L, R] {
	if l, ok := mm.e.(left[L, R]); ok {
		*v = l.value
		return mm
	}
	return nil
}

func (mm *matcher[L, R]) Right(v *R) Matcher[L, R] {
	if r, ok := mm.e.(right[L, R]); ok {
		*v = r.value
		return mm
	}
	return nil
}

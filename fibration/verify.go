package fibration

import (
	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/fibre"
)

// VerifyFunctoriality checks the coherence law of pull-back for a fibre
// implementation: for composable morphisms f: A→B and g: B→C and data
// over C,
//
//	pull(g∘f, data) == pull(f, pull(g, data))
//
// under the fibre's own Equal. Returns category.ErrNotComposable when
// f.TargetID != g.SourceID.
//
// This is a property-check utility for fibre authors, not a runtime
// gate: a fibre violating the law is reported, never auto-corrected.
func VerifyFunctoriality[F any](f, g *category.Morphism, fib fibre.Fibre[F], data F) (bool, error) {
	if fib == nil {
		return false, ErrNilFibre
	}
	gf, err := f.Compose(g)
	if err != nil {
		return false, err
	}

	direct := fib.Pull(gf, data)
	stepwise := fib.Pull(f, fib.Pull(g, data))

	return fib.Equal(direct, stepwise), nil
}

package provider

import (
	"context"
	"errors"

	"github.com/MSS23/vgc-mcp-sub003/engineerr"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

// SpeciesLister is an optional capability a SpeciesProvider can implement
// to supply the known-name universe fuzzy suggestions are drawn from. A
// provider that doesn't implement it still resolves names; it just can't
// offer "did you mean...?" candidates on a miss.
type SpeciesLister interface {
	ListSpeciesNames(ctx context.Context) ([]string, error)
}

// MoveLister is MoveProvider's equivalent of SpeciesLister.
type MoveLister interface {
	ListMoveNames(ctx context.Context) ([]string, error)
}

// ResolveSpecies looks up name, retrying once with its form suffix
// stripped (spec.md section 6: "landorus-therian" -> "landorus") before
// failing. A second miss returns an UnknownSpecies error carrying fuzzy
// suggestions from the provider's known-name list, when it exposes one.
func ResolveSpecies(ctx context.Context, p SpeciesProvider, name string) (types.Species, *engineerr.Error) {
	canonical := Canonicalize(name)

	species, err := p.GetSpecies(ctx, canonical)
	if err == nil {
		return species, nil
	}

	base := types.BaseSpeciesName(canonical)
	if base != canonical {
		if species, retryErr := p.GetSpecies(ctx, base); retryErr == nil {
			return species, nil
		}
	}

	return types.Species{}, engineerr.NewUnknownSpecies(name, suggestSpecies(ctx, p, canonical)...)
}

// ResolveMove is ResolveSpecies's move-side equivalent. Moves have no
// form-suffix convention, so it makes a single lookup; a miss returns an
// UnknownMove error carrying fuzzy suggestions from the provider's
// known-name list, when it exposes one.
func ResolveMove(ctx context.Context, p MoveProvider, name string) (types.Move, *engineerr.Error) {
	canonical := Canonicalize(name)

	move, err := p.GetMove(ctx, canonical)
	if err == nil {
		return move, nil
	}

	return types.Move{}, engineerr.NewUnknownMove(name, suggestMove(ctx, p, canonical)...)
}

func suggestSpecies(ctx context.Context, p SpeciesProvider, canonical string) []string {
	lister, ok := p.(SpeciesLister)
	if !ok {
		return nil
	}
	known, err := lister.ListSpeciesNames(ctx)
	if err != nil || errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return engineerr.Suggest(canonical, known, 3, 0.6)
}

func suggestMove(ctx context.Context, p MoveProvider, canonical string) []string {
	lister, ok := p.(MoveLister)
	if !ok {
		return nil
	}
	known, err := lister.ListMoveNames(ctx)
	if err != nil || errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return engineerr.Suggest(canonical, known, 3, 0.6)
}

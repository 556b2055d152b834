package smogon

import (
	"context"
	"errors"
	"testing"

	"github.com/MSS23/vgc-mcp-sub003/provider"
	"github.com/MSS23/vgc-mcp-sub003/types"
)

type fakeUsageProvider struct {
	record  provider.UsageRecord
	err     error
	calls   int
	failFor int
}

func (f *fakeUsageProvider) GetUsage(ctx context.Context, species, format string, rating int) (provider.UsageRecord, error) {
	f.calls++
	if f.calls <= f.failFor {
		return provider.UsageRecord{}, f.err
	}
	return f.record, nil
}

func incineroar() types.Species {
	return types.Species{
		Name:      "incineroar",
		BaseStats: types.BaseStats{HP: 95, Attack: 115, Defense: 90, SpAttack: 80, SpDefense: 90, Speed: 60},
		Types:     types.NewDualTypeList(types.Fire, types.Dark),
	}
}

func TestSynthesizePrefersLiveUsageData(t *testing.T) {
	usage := &fakeUsageProvider{
		record: provider.UsageRecord{
			TopItems:     []string{"safety-goggles"},
			TopAbilities: []string{"intimidate"},
			TopSpreads:   []provider.SpreadUsage{{Nature: types.Careful, EVs: types.EVSpread{HP: 252, Attack: 4, SpDefense: 252}, UsagePct: 42.1}},
		},
	}

	result := Synthesize(context.Background(), usage, Request{Species: incineroar(), Format: "gen9vgc2024regh", Rating: 1760})
	if result.Source != SourceSmogonUsage {
		t.Fatalf("expected SourceSmogonUsage, got %v", result.Source)
	}
	if result.Build.Item != "safety-goggles" || result.Build.Ability != "intimidate" {
		t.Fatalf("expected top item/ability to be copied through, got %+v", result.Build)
	}
}

func TestSynthesizeFallsBackAfterExhaustingRetries(t *testing.T) {
	usage := &fakeUsageProvider{err: errors.New("network unreachable"), failFor: 999}

	result := Synthesize(context.Background(), usage, Request{Species: incineroar()})
	if result.Source != SourceMetaSynergy {
		t.Fatalf("expected SourceMetaSynergy fallback, got %v", result.Source)
	}
	if result.Build.Item == "" {
		t.Fatal("expected the synergy table to assign some item")
	}
}

func TestSynthesizeUsesBlandFallbackForUnknownType(t *testing.T) {
	obscure := types.Species{Name: "arceus-unknown", Types: types.NewTypeList(types.Bug)}
	result := Synthesize(context.Background(), nil, Request{Species: obscure})
	if result.Source != SourceBlandFallback {
		t.Fatalf("expected SourceBlandFallback, got %v", result.Source)
	}
	if result.Build.Nature != types.Hardy {
		t.Fatalf("expected a neutral Hardy nature, got %v", result.Build.Nature)
	}
}

func TestSynthesizeRetriesTransientFailuresBeforeSucceeding(t *testing.T) {
	usage := &fakeUsageProvider{
		err:     errors.New("timeout"),
		failFor: 2,
		record: provider.UsageRecord{
			TopSpreads: []provider.SpreadUsage{{Nature: types.Jolly, EVs: types.EVSpread{Speed: 252, Attack: 252, HP: 4}}},
		},
	}

	result := Synthesize(context.Background(), usage, Request{Species: incineroar()})
	if result.Source != SourceSmogonUsage {
		t.Fatalf("expected the retry to eventually succeed with live usage data, got %v", result.Source)
	}
	if usage.calls != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", usage.calls)
	}
}

package domain

import "testing"

func TestResolvePrice(t *testing.T) {
	p := Product{
		ID:         "1",
		PriceCents: 18900,
		SizePrices: map[Size]int64{Size15ml: 6500, Size35ml: 0},
	}

	cases := []struct {
		size Size
		want int64
	}{
		{Size15ml, 6500},
		{Size35ml, 18900},
		{Size100ml, 18900},
		{"", 18900},
	}
	for _, tc := range cases {
		if got := p.ResolvePrice(tc.size); got != tc.want {
			t.Fatalf("ResolvePrice(%q) = %d, want %d", tc.size, got, tc.want)
		}
	}
}

func TestResolvePrice_NoPricesIsZero(t *testing.T) {
	var p Product
	if got := p.ResolvePrice(Size35ml); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestVariants_MarksMissingSizesUnavailable(t *testing.T) {
	p := Product{PriceCents: 1000, SizePrices: map[Size]int64{Size100ml: 3000}}
	vs := p.Variants()
	if len(vs) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(vs))
	}
	if vs[0].Available || vs[0].PriceCents != 1000 {
		t.Fatalf("unexpected 15ml variant %+v", vs[0])
	}
	if !vs[2].Available || vs[2].PriceCents != 3000 {
		t.Fatalf("unexpected 100ml variant %+v", vs[2])
	}
}

func TestParseSize(t *testing.T) {
	if s, ok := ParseSize(" 100ML "); !ok || s != Size100ml {
		t.Fatalf("expected 100ml, got %q %v", s, ok)
	}
	if s, ok := ParseSize(""); !ok || s != "" {
		t.Fatalf("expected empty size accepted, got %q %v", s, ok)
	}
	if _, ok := ParseSize("50ml"); ok {
		t.Fatalf("expected 50ml rejected")
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("Woody"); !ok || c != CategoryWoody {
		t.Fatalf("expected woody, got %q %v", c, ok)
	}
	if _, ok := ParseCategory("gourmand"); ok {
		t.Fatalf("expected unknown category rejected")
	}
}

package domain

import (
	"errors"
	"math"
	"testing"
)

func testProduct(id string, price int64) *Product {
	return &Product{ID: id, Name: "Product " + id, PriceCents: price, Category: CategoryFloral}
}

func TestCartAdd_MergesSameProductAndSize(t *testing.T) {
	var c Cart
	p := testProduct("1", 1000)

	if err := c.Add(p, 1, Size35ml); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.Add(p, 2, Size35ml); err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if c.Lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", c.Lines[0].Quantity)
	}
}

func TestCartAdd_NilProductIsNoop(t *testing.T) {
	var c Cart
	if err := c.Add(nil, 5, ""); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", c.Lines)
	}
}

func TestCartAdd_RejectsNonPositiveQuantity(t *testing.T) {
	var c Cart
	err := c.Add(testProduct("1", 100), 0, "")
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if !c.IsEmpty() {
		t.Fatalf("cart mutated on invalid add")
	}
}

func TestCartAdd_NoSizeIsOwnBucket(t *testing.T) {
	var c Cart
	p := testProduct("1", 100)
	_ = c.Add(p, 1, "")
	_ = c.Add(p, 1, Size15ml)
	_ = c.Add(p, 4, "")

	if len(c.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Lines))
	}
	if c.Lines[0].Size != "" || c.Lines[0].Quantity != 5 {
		t.Fatalf("unexpected sizeless line %+v", c.Lines[0])
	}
}

func TestCartUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	var c Cart
	_ = c.Add(testProduct("1", 100), 1, "")
	_ = c.Add(testProduct("2", 100), 1, "")

	if err := c.UpdateQuantity("1", 0, ""); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(c.Lines) != 1 || c.Lines[0].Product.ID != "2" {
		t.Fatalf("expected only product 2 left, got %+v", c.Lines)
	}
}

func TestCartUpdateQuantity_SetsNotIncrements(t *testing.T) {
	var c Cart
	_ = c.Add(testProduct("1", 100), 4, Size100ml)

	if err := c.UpdateQuantity("1", 2, Size100ml); err != nil {
		t.Fatalf("update: %v", err)
	}
	if c.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", c.Lines[0].Quantity)
	}
}

func TestCartUpdateQuantity_Negative(t *testing.T) {
	var c Cart
	_ = c.Add(testProduct("1", 100), 1, "")
	if err := c.UpdateQuantity("1", -1, ""); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if c.Lines[0].Quantity != 1 {
		t.Fatalf("quantity changed on invalid update")
	}
}

func TestCartUpdateQuantity_MissingLineIsNoop(t *testing.T) {
	var c Cart
	_ = c.Add(testProduct("1", 100), 1, Size15ml)
	if err := c.UpdateQuantity("1", 7, Size35ml); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(c.Lines) != 1 || c.Lines[0].Quantity != 1 {
		t.Fatalf("unexpected lines %+v", c.Lines)
	}
}

func TestCartRemove_DifferentSizesAreIndependent(t *testing.T) {
	var c Cart
	p := testProduct("1", 100)
	_ = c.Add(p, 2, Size15ml)
	_ = c.Add(p, 3, Size100ml)

	c.Remove("1", Size15ml)

	if len(c.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(c.Lines))
	}
	if c.Lines[0].Size != Size100ml || c.Lines[0].Quantity != 3 {
		t.Fatalf("unexpected remaining line %+v", c.Lines[0])
	}

	c.Remove("missing", "")
	if len(c.Lines) != 1 {
		t.Fatalf("removing an absent line changed the cart")
	}
}

func TestCartTotals(t *testing.T) {
	var c Cart
	_ = c.Add(testProduct("a", 10), 2, "")
	_ = c.Add(testProduct("b", 5), 3, "")

	if got := c.TotalPrice(); got != 35 {
		t.Fatalf("expected total 35, got %d", got)
	}
	if got := c.TotalItemCount(); got != 5 {
		t.Fatalf("expected 5 items, got %d", got)
	}
}

func TestCartTotals_UsesSizePrice(t *testing.T) {
	var c Cart
	p := &Product{ID: "1", PriceCents: 1000, SizePrices: map[Size]int64{Size100ml: 2500}}
	_ = c.Add(p, 2, Size100ml)
	_ = c.Add(p, 1, Size15ml)

	if got := c.TotalPrice(); got != 2*2500+1000 {
		t.Fatalf("unexpected total %d", got)
	}
}

func TestCartSnapshot_IsDetached(t *testing.T) {
	var c Cart
	_ = c.Add(testProduct("1", 100), 1, "")
	snap := c.Snapshot()
	c.Clear()
	if len(snap) != 1 {
		t.Fatalf("snapshot changed after clear")
	}
	if !c.IsEmpty() {
		t.Fatalf("expected cleared cart")
	}
}

func TestCartAdd_CapsLineQuantity(t *testing.T) {
	var c Cart
	p := testProduct("1", 1000)

	if err := c.Add(p, 1, Size35ml); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := c.Add(p, math.MaxInt, Size35ml); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for overflowing add, got %v", err)
	}
	if err := c.Add(p, MaxLineQuantity, Size35ml); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity past the cap, got %v", err)
	}
	if c.Lines[0].Quantity != 1 || c.TotalPrice() != 1000 {
		t.Fatalf("rejected adds must leave the line alone, got %+v", c.Lines)
	}

	if err := c.Add(p, MaxLineQuantity-1, Size35ml); err != nil {
		t.Fatalf("add up to the cap: %v", err)
	}
	if c.Lines[0].Quantity != MaxLineQuantity {
		t.Fatalf("expected quantity %d, got %d", MaxLineQuantity, c.Lines[0].Quantity)
	}
	if err := c.Add(testProduct("2", 500), MaxLineQuantity+1, ""); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity for a new line past the cap, got %v", err)
	}
	if len(c.Lines) != 1 {
		t.Fatalf("expected no new line, got %+v", c.Lines)
	}
}

func TestCartUpdateQuantity_CapsLineQuantity(t *testing.T) {
	var c Cart
	p := testProduct("1", 1000)
	if err := c.Add(p, 2, ""); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := c.UpdateQuantity("1", MaxLineQuantity+1, ""); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if err := c.UpdateQuantity("1", MaxLineQuantity, ""); err != nil {
		t.Fatalf("update to the cap: %v", err)
	}
	if c.TotalItemCount() != MaxLineQuantity {
		t.Fatalf("expected %d items, got %d", MaxLineQuantity, c.TotalItemCount())
	}
}

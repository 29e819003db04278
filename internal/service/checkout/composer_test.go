package checkout

import (
	"strings"
	"testing"

	"perfume-storefront/internal/domain"
)

func testLines() []domain.CartLine {
	rose := domain.Product{
		ID:         "1",
		Name:       "Rose Éternelle",
		PriceCents: 18900,
		SizePrices: map[domain.Size]int64{domain.Size15ml: 6500},
	}
	lavande := domain.Product{ID: "2", Name: "Lavande Noir", PriceCents: 16500}
	return []domain.CartLine{
		{Product: rose, Quantity: 2, Size: domain.Size15ml},
		{Product: lavande, Quantity: 1},
	}
}

func TestComposeOrderMessage(t *testing.T) {
	customer := domain.Customer{
		FullName: "Arta Krasniqi",
		Phone:    "+383 44 000 000",
		Address:  "Rr. Nënë Tereza 1",
		City:     "Prishtinë",
		Notes:    "Pas orës 17",
	}
	got := ComposeOrderMessage(customer, testLines(), 29500)

	want := "*POROSI E RE*\n\n" +
		"Arta Krasniqi\n" +
		"+383 44 000 000\n" +
		"Rr. Nënë Tereza 1, Prishtinë\n" +
		"Pas orës 17\n" +
		"\n*Artikujt:*\n" +
		"Rose Éternelle 15ml - 2×€65.00\n" +
		"Lavande Noir - 1×€165.00\n" +
		"\n*Totali: €295.00*\n" +
		"Pagesë në Dorëzim\n\n" +
		"Ju lutem konfirmoni porosinë."
	if got != want {
		t.Fatalf("unexpected message:\n%s\nwant:\n%s", got, want)
	}
}

func TestComposeOrderMessage_BlankNotesOmitted(t *testing.T) {
	customer := domain.Customer{FullName: "A", Phone: "1", Address: "B", City: "C", Notes: "   "}
	got := ComposeOrderMessage(customer, nil, 0)
	if !strings.HasPrefix(got, "*POROSI E RE*\n\nA\n1\nB, C\n\n*Artikujt:*\n") {
		t.Fatalf("expected notes line omitted, got %q", got)
	}
	if !strings.Contains(got, "*Totali: €0.00*") {
		t.Fatalf("expected zero total, got %q", got)
	}
}

func TestComposeInquiryMessage(t *testing.T) {
	got := ComposeInquiryMessage(Inquiry{
		Product:    domain.Product{Name: "Bois Mystique"},
		Size:       domain.Size100ml,
		PriceCents: 19900,
		Quantity:   2,
	})
	want := "Përshëndetje!\n\n" +
		"Jam i interesuar për:\n" +
		"*Bois Mystique*\n\n" +
		"Madhësia: 100ml\n" +
		"Çmimi: €199.00\n" +
		"Sasia: 2\n\n" +
		"A mund të më jepni më shumë informacion?"
	if got != want {
		t.Fatalf("unexpected inquiry message:\n%s", got)
	}
}

func TestFormatEuros(t *testing.T) {
	cases := map[int64]string{
		0:      "€0.00",
		5:      "€0.05",
		18900:  "€189.00",
		6490:   "€64.90",
		-150:   "-€1.50",
		123456: "€1234.56",
	}
	for in, want := range cases {
		if got := FormatEuros(in); got != want {
			t.Fatalf("FormatEuros(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestMessageLink(t *testing.T) {
	got := MessageLink("+383 49 153 002", "Hi there! (1×€5.00) a+b&c=d")
	want := "https://wa.me/38349153002?text=Hi%20there!%20(1%C3%97%E2%82%AC5.00)%20a%2Bb%26c%3Dd"
	if got != want {
		t.Fatalf("unexpected link:\n%s\nwant:\n%s", got, want)
	}

	if got := MessageLink("38349153002", "a\nb*"); got != "https://wa.me/38349153002?text=a%0Ab*" {
		t.Fatalf("unexpected link %s", got)
	}
}

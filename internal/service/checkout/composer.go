package checkout

import (
	"fmt"
	"strings"

	"perfume-storefront/internal/domain"
)

// ComposeOrderMessage renders the order summary sent to the shop. It lists the
// customer fields, one row per line with its unit price, the total and the
// cash on delivery notice. Notes are included only when not blank.
func ComposeOrderMessage(customer domain.Customer, lines []domain.CartLine, totalCents int64) string {
	var b strings.Builder
	b.WriteString("*POROSI E RE*\n\n")

	b.WriteString(customer.FullName + "\n")
	b.WriteString(customer.Phone + "\n")
	b.WriteString(customer.Address + ", " + customer.City + "\n")
	if notes := strings.TrimSpace(customer.Notes); notes != "" {
		b.WriteString(customer.Notes + "\n")
	}

	b.WriteString("\n*Artikujt:*\n")
	for _, l := range lines {
		b.WriteString(l.Product.Name)
		if l.Size != "" {
			b.WriteString(" " + string(l.Size))
		}
		fmt.Fprintf(&b, " - %d×%s\n", l.Quantity, FormatEuros(l.UnitPriceCents()))
	}

	fmt.Fprintf(&b, "\n*Totali: %s*\n", FormatEuros(totalCents))
	b.WriteString("Pagesë në Dorëzim\n\n")
	b.WriteString("Ju lutem konfirmoni porosinë.")
	return b.String()
}

// Inquiry is a product detail question: which product, size and quantity the
// shopper is looking at.
type Inquiry struct {
	Product    domain.Product
	Size       domain.Size
	PriceCents int64
	Quantity   int
}

// ComposeInquiryMessage renders the "ask about this product" message.
func ComposeInquiryMessage(in Inquiry) string {
	var b strings.Builder
	b.WriteString("Përshëndetje!\n\n")
	b.WriteString("Jam i interesuar për:\n")
	fmt.Fprintf(&b, "*%s*\n\n", in.Product.Name)
	fmt.Fprintf(&b, "Madhësia: %s\n", in.Size)
	fmt.Fprintf(&b, "Çmimi: %s\n", FormatEuros(in.PriceCents))
	fmt.Fprintf(&b, "Sasia: %d\n\n", in.Quantity)
	b.WriteString("A mund të më jepni më shumë informacion?")
	return b.String()
}

// FormatEuros renders cents as "€189.00".
func FormatEuros(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s€%d.%02d", sign, cents/100, cents%100)
}

package sales

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// BuildOrderMessage arma el texto del pedido que se entrega por WhatsApp:
// líneas con cantidad y precio por nivel, método de pago y total.
func BuildOrderMessage(sale entity.Sale) string {
	var b strings.Builder
	b.WriteString("*NUEVO PEDIDO*\n\n")
	for _, it := range sale.Items {
		fmt.Fprintf(&b, "• %s x%d (%s c/u) = %s\n",
			it.Name, it.Quantity, FormatCOP(it.UnitPrice), FormatCOP(int64(it.Quantity)*it.UnitPrice))
	}
	fmt.Fprintf(&b, "\nMétodo de pago: %s\n", sale.PaymentMethod)
	fmt.Fprintf(&b, "*TOTAL: %s*", FormatCOP(sale.Total))
	return b.String()
}

// BuildWhatsAppLink construye el deep link wa.me con el mensaje escapado.
func BuildWhatsAppLink(phone, message string) string {
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}

// FormatCOP formatea un monto COP entero con separador de miles: $ 55.000.
func FormatCOP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-$ " + b.String()
	}
	return "$ " + b.String()
}

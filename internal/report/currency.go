package report

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Impresor es-CO compartido por todos los exportadores. Separador de
// miles "." y cero decimales: los montos se manejan en pesos enteros.
var copPrinter = message.NewPrinter(language.MustParse("es-CO"))

// FormatCOP formatea un monto en pesos colombianos, con agrupación de
// miles y sin decimales.
func FormatCOP(v float64) string {
	return copPrinter.Sprintf("$%v", number.Decimal(v,
		number.MaxFractionDigits(0),
		number.MinFractionDigits(0),
	))
}

package core

// order.go turns a cart into an order summary, the chat message sent to the
// store, and the wa.me deep link that carries it.

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// WhatsAppBaseURL is the deep-link root of the messaging app.
const WhatsAppBaseURL = "https://wa.me/"

const (
	unnamedItem      = "Item sem nome"
	missingLab       = "-"
	messageSeparator = "--------------------------------\n"
)

var (
	// ErrEmptyCart is returned when an order is requested with nothing selected.
	ErrEmptyCart = errors.New("empty cart")

	// ErrUnknownDestination is returned for a destination key that is not configured.
	ErrUnknownDestination = errors.New("unknown destination")
)

// Summarize prices the cart items against table.
// Without a price column every line has a zero price and HasPrice is false.
func Summarize(items []CartItem, table *Table) OrderSummary {
	cols := ClassifyColumns(table)
	summary := OrderSummary{
		Lines:    make([]OrderLine, 0, len(items)),
		HasPrice: table.HasPrice(),
		HasLab:   cols.Lab != "",
	}

	for _, item := range items {
		line := OrderLine{
			Name:     item.Data[cols.Name],
			Quantity: item.Quantity,
		}
		if line.Name == "" {
			line.Name = unnamedItem
		}
		if summary.HasLab {
			line.Lab = item.Data[cols.Lab]
			if line.Lab == "" {
				line.Lab = missingLab
			}
		}
		if summary.HasPrice {
			line.UnitPrice = ParseCurrency(item.Data[cols.Price])
			line.Subtotal = line.UnitPrice * float64(item.Quantity)
			summary.Total += line.Subtotal
		}

		summary.TotalItems += item.Quantity
		summary.Lines = append(summary.Lines, line)
	}

	return summary
}

// BuildOrderMessage renders the order as the chat message sent to the store.
// now is shown in loc as "dd/mm/yyyy hh:mm".
func BuildOrderMessage(summary OrderSummary, storeName string, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🚀 *NOVO PEDIDO - %s*\n", storeName)
	fmt.Fprintf(&b, "📅 Data: %s\n", now.In(loc).Format("02/01/2006 15:04"))
	b.WriteString(messageSeparator)

	for i, line := range summary.Lines {
		fmt.Fprintf(&b, "*%d. %s*\n", i+1, line.Name)
		if line.Lab != "" {
			fmt.Fprintf(&b, "   🏭 Lab: %s\n", line.Lab)
		}
		fmt.Fprintf(&b, "   📦 Qtd: %d", line.Quantity)
		if line.UnitPrice > 0 {
			fmt.Fprintf(&b, " x %s\n", FormatCurrency(line.UnitPrice))
			fmt.Fprintf(&b, "   💰 *Subtotal: %s*\n", FormatCurrency(line.Subtotal))
		} else {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(messageSeparator)
	if summary.HasPrice {
		fmt.Fprintf(&b, "💲 *TOTAL DO PEDIDO: %s*", FormatCurrency(summary.Total))
	} else {
		fmt.Fprintf(&b, "📦 *Total de Itens: %d*", summary.TotalItems)
	}

	return b.String()
}

// WhatsAppURL builds a deep link that opens a chat with number prefilled
// with message. An empty number opens the app's generic share target.
func WhatsAppURL(number, message string) string {
	return WhatsAppBaseURL + number + "?text=" + encodeURIComponent(message)
}

// uriComponentReplacer undoes the query escapes that encodeURIComponent
// leaves literal.
var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeURIComponent percent-encodes s for use as a query value, writing
// spaces as %20.
func encodeURIComponent(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}

// ResolveDestination finds the destination with the given key.
// The empty key selects the generic share target and returns a zero Destination.
func ResolveDestination(destinations []Destination, key string) (Destination, error) {
	if key == "" {
		return Destination{}, nil
	}
	for _, d := range destinations {
		if d.Key == key && d.Number != "" {
			return d, nil
		}
	}
	return Destination{}, fmt.Errorf("%w: %q", ErrUnknownDestination, key)
}

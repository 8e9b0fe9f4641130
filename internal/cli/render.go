package cli

import (
	"fmt"
	"io"

	"github.com/andy/reconnect/internal/display"
	"github.com/andy/reconnect/internal/domain"
)

func printClients(out io.Writer, clients []domain.Client) {
	if len(clients) == 0 {
		fmt.Fprintln(out, "No clients found")
		return
	}
	fmt.Fprintf(out, "%-4s %-30s %-15s %-30s %s\n", "#", "Name", "Phone", "Email", "Address")
	fmt.Fprintln(out, "--------------------------------------------------------------------------------------------")
	for i, c := range clients {
		fmt.Fprintf(out, "%-4d %-30s %-15s %-30s %s\n",
			i+1, display.Truncate(c.Name.String(), 30), c.Phone, display.Truncate(c.Email.String(), 30), c.Address)
	}
}

func printProperties(out io.Writer, properties []domain.Property) {
	if len(properties) == 0 {
		fmt.Fprintln(out, "No properties found")
		return
	}
	fmt.Fprintf(out, "%-4s %-30s %-12s %-14s %-25s %s\n", "#", "Name", "Price", "Size", "Owner", "Address")
	fmt.Fprintln(out, "--------------------------------------------------------------------------------------------")
	for i, p := range properties {
		fmt.Fprintf(out, "%-4d %-30s %-12s %-14s %-25s %s\n",
			i+1, display.Truncate(p.Name.String(), 30), display.Price(p.Price), display.Size(p.Size),
			display.Truncate(p.Owner.String(), 25), p.Address)
		if !p.Description.IsZero() {
			fmt.Fprintf(out, "     %s\n", p.Description)
		}
	}
}

func printDeals(out io.Writer, deals []domain.Deal) {
	if len(deals) == 0 {
		fmt.Fprintln(out, "No deals found")
		return
	}
	fmt.Fprintf(out, "%-4s %-30s %-22s %-22s %-12s %s\n", "#", "Property", "Buyer", "Seller", "Price", "Status")
	fmt.Fprintln(out, "--------------------------------------------------------------------------------------------")
	for i, d := range deals {
		fmt.Fprintf(out, "%-4d %-30s %-22s %-22s %-12s %s\n",
			i+1, display.Truncate(d.Property.String(), 30), display.Truncate(d.Buyer.String(), 22),
			display.Truncate(d.Seller.String(), 22), display.Price(d.Price), d.Status)
	}
}

func printEvents(out io.Writer, events []domain.Event) {
	if len(events) == 0 {
		fmt.Fprintln(out, "No events found")
		return
	}
	fmt.Fprintf(out, "%-4s %-9s %-17s %-30s %-22s %s\n", "#", "Heading", "When", "Property", "Client", "Note")
	fmt.Fprintln(out, "--------------------------------------------------------------------------------------------")
	for i, e := range events {
		fmt.Fprintf(out, "%-4d %-9s %-17s %-30s %-22s %s\n",
			i+1, e.Heading, e.DateTime, display.Truncate(e.Property.String(), 30), display.Truncate(e.Client.String(), 22), e.Note)
	}
}

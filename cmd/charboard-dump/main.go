// Command charboard-dump prints the symbol table to stdout, optionally
// filtered by category or search query. Useful for checking the catalog
// without starting the GUI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"charboard/internal/catalog"
	"charboard/internal/logger"
	"charboard/internal/search"

	"github.com/olekukonko/tablewriter"
)

func main() {
	os.Exit(run())
}

func run() int {
	categoryFlag := flag.String("category", "", "Limit output to one category")
	queryFlag := flag.String("query", "", "Search by name or character")
	flag.Parse()

	cat := catalog.New()

	symbols, err := selectSymbols(cat, *categoryFlag, *queryFlag)
	if err != nil {
		log.Println(err)
		return 1
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Char", "Name", "Category", "Unicode", "Dec", "HTML", "HTML Hex"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, sym := range symbols {
		table.Append([]string{
			sym.String(),
			sym.Name,
			sym.Category,
			sym.CodeHex(),
			sym.CodeDec(),
			sym.HTMLDec(),
			sym.HTMLHex(),
		})
	}

	table.Render()
	fmt.Printf("\n%d symbol(s)\n", len(symbols))
	return 0
}

func selectSymbols(cat *catalog.Catalog, category, query string) ([]catalog.Symbol, error) {
	switch {
	case category != "":
		c, ok := cat.Category(category)
		if !ok {
			return nil, fmt.Errorf("unknown category %q", category)
		}
		return c.Symbols, nil

	case query != "":
		quiet := logger.NewConsoleLogger(logger.ErrorLevel)
		idx, err := search.NewIndex(cat, quiet, cat.Len())
		if err != nil {
			return nil, err
		}
		defer idx.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return idx.Search(ctx, query)

	default:
		return cat.Symbols(), nil
	}
}

// Command preview renders a table document to the terminal, as Mermaid or as
// SQL DDL.
//
//	preview -color "Light Blue" -format text table.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"umlwidget/internal/palette"
	"umlwidget/internal/render"
	"umlwidget/internal/tablemodel"
)

func main() {
	colorName := flag.String("color", palette.DefaultName, "header colour name from the palette")
	format := flag.String("format", "text", "output format: text, mermaid or sql")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: preview [-color name] [-format text|mermaid|sql] table.json")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *colorName, *format); err != nil {
		fmt.Fprintln(os.Stderr, "preview:", err)
		os.Exit(1)
	}
}

func run(path, colorName, format string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var table tablemodel.Table
	if err := json.Unmarshal(data, &table); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	color, ok := palette.ByName(colorName)
	if !ok {
		return fmt.Errorf("unknown colour %q", colorName)
	}

	switch format {
	case "text":
		fmt.Println(render.Terminal(table, color.Value))
	case "mermaid":
		fmt.Print(render.Mermaid(table))
	case "sql":
		out, err := render.SQL(table)
		if err != nil {
			return err
		}
		fmt.Print(out)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

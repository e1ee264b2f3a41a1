// Catalog dumps the model registry as JSON, one operation per key. Useful
// for diffing catalog changes in review and feeding external pickers.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/draftbox/mediaroute/internal/catalog"
	"github.com/draftbox/mediaroute/internal/cli"
)

func main() {
	operation := flag.String("operation", "", "Limit output to one operation")
	pretty := flag.Bool("pretty", false, "Colorized, indented output")
	flag.Parse()

	registry := catalog.NewRegistry()

	out := make(map[string][]catalog.ModelSchema)
	total := 0
	for _, op := range registry.Operations() {
		if *operation != "" && string(op) != *operation {
			continue
		}
		models := registry.ModelsForOperation(op)
		out[string(op)] = models
		total += len(models)
	}

	if len(out) == 0 {
		log.Fatalf("unknown operation %q", *operation)
	}

	if *pretty {
		cli.PrettyPrint(out)
	} else {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Fprintf(os.Stderr, "%s %d models\n", cli.CheckMark(), total)
}

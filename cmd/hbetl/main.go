// Command hbetl compiles Handlebars-style templates to ETL source text
// from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hbetl",
	Short: "Transpile Handlebars-style templates to ETL",
	Long: `hbetl transpiles Handlebars-style source templates into ETL
(Embedded Template Language) text: variable interpolations become
"<%= ... %>", comments become "<%# ... %>", and Base/Sendgrid dialect
block-helpers become "cond do ... end" / "for ... do ... end" ETL
control-flow. It never evaluates a template; the output is always text.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Tonemint is a semantic theme token generator: it assigns colors to UI
// roles and derives accessibility-compliant theme variants from a small
// seed of brand colors.
package main

import "github.com/tonemint/tonemint/internal/cli"

func main() {
	cli.Execute()
}

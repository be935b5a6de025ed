// Command quoter quotes values and identifiers as SQL literals.
package main

import "github.com/honeynil/quoter/cli"

func main() {
	cli.Run()
}

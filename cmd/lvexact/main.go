// Command lvexact runs the exact solvers from the command line.
package main

import "github.com/katalvlaran/lvexact/internal/cli"

func main() {
	cli.Execute()
}

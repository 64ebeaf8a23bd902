// Package main provides the bambanta CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("bambanta %s\n", version)
		return
	}

	fmt.Println("bambanta - forward and reverse mode automatic differentiation for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Import github.com/born-ml/bambanta/autodiff to differentiate expressions.")
}

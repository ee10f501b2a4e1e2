package main

import "github.com/sw33tLie/catalogo/cmd"

func main() {
	cmd.Execute()
}

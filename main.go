package main

import "github.com/gaurav-prasanna/headlink/cmd"

func main() {
	cmd.Execute()
}

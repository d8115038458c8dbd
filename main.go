package main

import "github.com/alexiusacademia/goshaft/cmd"

func main() {
	cmd.Execute()
}

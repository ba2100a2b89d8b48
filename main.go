package main

import "github.com/bhukkad-app/bhukkad/cmd"

func main() {
	cmd.Execute()
}

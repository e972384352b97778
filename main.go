package main

import "github.com/wbuf81/oscar/cmd"

func main() {
	cmd.Execute()
}

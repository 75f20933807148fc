package main

import "github.com/m4cbeth/16dollars/cmd"

func main() {
	cmd.Execute()
}

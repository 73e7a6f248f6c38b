package main

import "cursorchat/cmd"

func main() {
	cmd.Execute()
}

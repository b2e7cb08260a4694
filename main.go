package main

import "hburn/cmd"

func main() {
	cmd.Execute()
}

package main

import "skyscraper/mcgd/cmd"

func main() {
	cmd.Execute()
}

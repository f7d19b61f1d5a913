package main

import "github.com/theirongolddev/rockpile/cmd"

func main() {
	cmd.Execute()
}

package main

import (
	"pixelsteg/cmd"
)

func main() {
	cmd.Execute()
}

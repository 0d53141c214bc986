package main

import (
	cmd "github.com/getzep/textparser/cmd/textparser"
)

func main() {
	cmd.Execute()
}

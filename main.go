package main

import (
	"os"

	"goldencmp/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

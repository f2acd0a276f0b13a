package main

import (
	"os"

	"github.com/leonardinius/golury/cmd"
)

func main() {
	app := cmd.NewLuryApp()
	os.Exit(app.Main(os.Args[1:]))
}

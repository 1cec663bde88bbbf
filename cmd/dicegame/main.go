package main

import (
	"github.com/dicegame/dicegame/internal/cli"
)

func main() {
	cli.Execute()
}

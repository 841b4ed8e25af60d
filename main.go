package main

import (
	"os"

	"github.com/GoFolio-Admin/GoFolio-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

package main

import "github.com/pageza/recipecard/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/MegaPintoos/Courses/internal/cli"

func main() {
	cli.Execute()
}

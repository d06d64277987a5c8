package main

import (
	"github.com/shelfkv/shelf/cmd"
)

func main() {
	cmd.Execute()
}

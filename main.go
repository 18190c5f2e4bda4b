package main

import (
	"github.com/lawmaster-kr/lawmaster/cmd"
)

func main() {
	cmd.Execute()
}

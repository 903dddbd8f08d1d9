package main

import "github.com/nutritrip/identity/internal/register"

func main() {
	register.Main()
}

package main

import "github.com/DRSN-tech/cosmetic-product/internal/app"

func main() {
	app.Run()
}

package main

import "vraee_backend/internal/app"

func main() {
	app.Run()
}

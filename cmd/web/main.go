package main

import "jobhunt_backend/internal/app"

func main() {
	app.Run()
}

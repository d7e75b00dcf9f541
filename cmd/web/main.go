package main

import "inspirahub/internal/app"

func main() {
	app.Run()
}

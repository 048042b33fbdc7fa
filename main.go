package main

import (
	"os"

	"todoapi/app"
	"todoapi/config"

	_ "todoapi/docs"
)

func getPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else {
		port = ":" + port
	}

	return port
}

// @title Todo List API
// @version 0.1
// @description A CRUD REST API for a to-do list with an address book.
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// .env is optional outside development
	_ = config.LoadENV()

	err := app.SetupAndRunApp(getPort())
	if err != nil {
		panic(err)
	}
}

package main

//go:generate swag init -g cmd/server/main.go -o docs

// @title           CS2 Match Catalog API
// @version         2.0.0
// @description     CS2 teams and matches catalog with generated match analyses.
// @host            localhost:5002
// @BasePath        /
// @schemes         http

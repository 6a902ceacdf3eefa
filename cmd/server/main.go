package main

import "github.com/nikharmsingh/leetcode-scraper/internal/server"

func main() {
	server.StartGinServer()
}

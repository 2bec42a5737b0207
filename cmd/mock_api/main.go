package main

import (
	"log"
	"net/http"
	"os"

	"github.com/uug-ai/slackbot/internal/mockapi"
)

func main() {
	port := os.Getenv("MOCK_API_PORT")
	if port == "" {
		port = "8082"
	}

	log.Printf("Mock Kerberos.io API listening on port %s", port)
	log.Println("Available endpoints:")
	log.Println("   POST /auth/login")
	log.Println("   GET  /profile")
	log.Println("   GET  /cameras")
	log.Println("   GET  /health")

	log.Fatal(http.ListenAndServe(":"+port, mockapi.Handler()))
}

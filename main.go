package main

import (
	"log"

	"github.com/joho/godotenv"

	"agentes/internal/config"
	"agentes/internal/server"
	"agentes/internal/words"
)

func main() {
	// A missing .env is fine; the environment itself still applies.
	if err := godotenv.Load(); err == nil {
		log.Print("loaded configuration from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	wordList, err := words.Load(cfg.WordListPath)
	if err != nil {
		log.Fatalf("word list: %v", err)
	}
	log.Printf("loaded %d words from %s", len(wordList), cfg.WordListPath)

	srv := server.New(cfg.Port, cfg.FrontendOrigin, wordList)
	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

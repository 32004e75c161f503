package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"

	"word-rush/internal/config"
	"word-rush/internal/db"
)

func main() {
	filePath := flag.String("file", "words.txt", "path to newline-delimited word list")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	words, err := readWords(*filePath)
	if err != nil {
		log.Fatalf("failed to read word list: %v", err)
	}

	inserted := 0
	for _, word := range words {
		entry := db.Word{Text: word}
		if err := conn.FirstOrCreate(&entry, db.Word{Text: word}).Error; err != nil {
			log.Fatalf("failed to upsert word: %v", err)
		}
		inserted++
	}

	log.Printf("loaded %d words", inserted)
}

func readWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	seen := make(map[string]struct{})
	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words, scanner.Err()
}

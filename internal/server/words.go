package server

import (
	"log"
	"math/rand"
	"strings"

	"word-rush/internal/db"
)

// defaultWords seeds games when no word catalog is available, mirroring how
// the server runs without a database.
var defaultWords = []string{
	"accordion", "airport", "anchor", "avalanche", "backpack", "bakery",
	"balloon", "bicycle", "blanket", "bonfire", "bridge", "bubble",
	"cactus", "campfire", "candle", "carousel", "castle", "compass",
	"crayon", "dinosaur", "dolphin", "dragon", "elevator", "envelope",
	"firefly", "fountain", "glacier", "hammock", "harbor", "helmet",
	"iceberg", "igloo", "jungle", "kangaroo", "kayak", "lantern",
	"lighthouse", "magnet", "mermaid", "microscope", "mountain", "mushroom",
	"ninja", "octopus", "orchard", "parachute", "penguin", "pirate",
	"pyramid", "rainbow", "robot", "rocket", "sandcastle", "scarecrow",
	"snowball", "submarine", "telescope", "tornado", "treasure", "umbrella",
	"unicorn", "volcano", "waterfall", "windmill", "wizard", "zeppelin",
}

// materializeWords attaches a batch of n words sampled without replacement
// from catalog (all of it when the catalog is smaller). The batch is fixed
// for the life of the game.
func materializeWords(game *Game, catalog []string, n int) {
	seen := make(map[string]struct{}, len(catalog))
	pool := make([]string, 0, len(catalog))
	for _, word := range catalog {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		key := strings.ToLower(word)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		pool = append(pool, word)
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if n > len(pool) {
		n = len(pool)
	}
	game.Words = make([]WordEntry, 0, n)
	for _, word := range pool[:n] {
		game.Words = append(game.Words, WordEntry{Text: word})
	}
}

// drawNext picks one unguessed word uniformly at random. Returns false when
// the pool is exhausted.
func drawNext(game *Game) (string, bool) {
	return drawExcluding(game, "")
}

// drawExcluding is drawNext with one word (the current one, on a skip)
// removed from consideration.
func drawExcluding(game *Game, exclude string) (string, bool) {
	candidates := make([]string, 0, len(game.Words))
	for _, entry := range game.Words {
		if entry.Guessed || entry.Text == exclude {
			continue
		}
		candidates = append(candidates, entry.Text)
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[rand.Intn(len(candidates))], true
}

func unguessedCount(game *Game) int {
	count := 0
	for _, entry := range game.Words {
		if !entry.Guessed {
			count++
		}
	}
	return count
}

// catalogWords loads the shared catalog, falling back to the built-in list
// when no database is attached or the catalog is empty.
func (s *Server) catalogWords() []string {
	if s.db == nil {
		return defaultWords
	}
	var words []string
	if err := s.db.Model(&db.Word{}).Order("text asc").Pluck("text", &words).Error; err != nil {
		log.Printf("word catalog load failed, using built-in list: %v", err)
		return defaultWords
	}
	if len(words) == 0 {
		return defaultWords
	}
	return words
}

func markGuessed(game *Game, word string, team int) bool {
	for i := range game.Words {
		if game.Words[i].Text == word && !game.Words[i].Guessed {
			game.Words[i].Guessed = true
			game.Words[i].GuessedByTeam = team
			return true
		}
	}
	return false
}

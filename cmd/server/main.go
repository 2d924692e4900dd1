package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"braillecorrect/internal/config"
	"braillecorrect/internal/store"
	"braillecorrect/internal/wordlist"
	"braillecorrect/pkg/braille"
	"braillecorrect/pkg/corrector"
	"braillecorrect/pkg/lexicon"
	"braillecorrect/pkg/options"
)

func main() {
	cfg := loadConfig()

	lex := lexicon.New()
	for _, w := range wordlist.Builtin() {
		lex.AddWord(w)
	}
	if cfg.Dictionary.Path != "" {
		words, err := wordlist.LoadFile(cfg.Dictionary.Path)
		if err != nil {
			log.Fatalf("init error: %v", err)
		}
		for _, w := range words {
			lex.AddWord(w)
		}
	}

	var st *store.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		st = store.New(client)
		reseed(lex, st)
	}

	engine := corrector.NewAutocorrector(lex, options.WithMaxSuggestions(cfg.MaxSuggestions))

	// The lexicon is not safe for concurrent use; handlers serialize
	// every engine and lexicon call.
	var mu sync.Mutex

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/correct", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text           string `json:"text"`
			MaxSuggestions int    `json:"max_suggestions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		mu.Lock()
		results := engine.Autocorrect(req.Text, req.MaxSuggestions)
		mu.Unlock()
		corrected := make([]string, len(results))
		for i, res := range results {
			corrected[i] = res.BestMatch
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"original":  req.Text,
			"corrected": strings.Join(corrected, " "),
			"results":   results,
		})
	})

	mux.HandleFunc("/api/v1/decode", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"decoded": braille.Decode(req.Text)})
	})

	mux.HandleFunc("/api/v1/learn", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Wrong   string `json:"wrong"`
			Correct string `json:"correct"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
			strings.TrimSpace(req.Wrong) == "" || strings.TrimSpace(req.Correct) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		mu.Lock()
		engine.LearnCorrection(req.Wrong, req.Correct)
		mu.Unlock()
		if st != nil {
			if err := st.SaveFix(strings.ToLower(req.Wrong), strings.ToLower(req.Correct)); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
				return
			}
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/custom-word", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word string `json:"word"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		mu.Lock()
		lex.AddWord(req.Word)
		mu.Unlock()
		if st != nil {
			if err := st.AddWord(strings.ToLower(strings.TrimSpace(req.Word))); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
				return
			}
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Deleting only unpersists: the running lexicon keeps the word until
	// restart, the next run will not reseed it.
	mux.HandleFunc("/api/v1/custom-word/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		word := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-word/")
		if word == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "word is required"})
			return
		}
		if st == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "no store configured"})
			return
		}
		if err := st.RemoveWord(strings.ToLower(word)); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/learned-fix/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		wrong := strings.TrimPrefix(r.URL.Path, "/api/v1/learned-fix/")
		if wrong == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "word is required"})
			return
		}
		if st == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "no store configured"})
			return
		}
		if err := st.RemoveFix(strings.ToLower(wrong)); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		mu.Lock()
		stats := lex.Stats()
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	})

	addr := getenv("HTTP_ADDR", ":8080")
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func loadConfig() config.Config {
	cfg := config.Default()
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("config error: %v", err)
		}
		cfg = loaded
	}
	cfg.Dictionary.Path = getenv("DICTIONARY_PATH", cfg.Dictionary.Path)
	cfg.Redis.Addr = getenv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getenv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt("REDIS_DB", cfg.Redis.DB)
	cfg.MaxSuggestions = getEnvInt("MAX_SUGGESTIONS", cfg.MaxSuggestions)
	return cfg
}

func reseed(lex *lexicon.Lexicon, st *store.Store) {
	words, err := st.Words()
	if err != nil {
		log.Printf("warning: could not load custom words: %v", err)
		return
	}
	for _, w := range words {
		lex.AddWord(w)
	}
	fixes, err := st.Fixes()
	if err != nil {
		log.Printf("warning: could not load learned fixes: %v", err)
		return
	}
	for wrong, correct := range fixes {
		lex.LearnCorrection(wrong, correct)
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}

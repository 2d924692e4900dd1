package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cheynewallace/tabby"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

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

	if len(os.Args) > 1 && os.Args[1] == "demo" {
		runDemo(engine, lex)
		return
	}
	runREPL(engine, lex, st)
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

// reseed replays persisted vocabulary into the lexicon. Store errors are
// not fatal; the built-in words are already loaded.
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

func runDemo(engine *corrector.Autocorrector, lex *lexicon.Lexicon) {
	fmt.Println("=== Braille Autocorrect Demo ===")
	fmt.Println()

	inputs := []string{
		"DK",
		"DW",
		"helo",
		"wrold",
		"computr",
		"DW hello",
		"the quck brown fox",
	}
	for _, in := range inputs {
		fmt.Printf("Input: %q\n", in)
		printResults(engine.Autocorrect(in, 0))
		fmt.Println(strings.Repeat("-", 40))
	}

	fmt.Println()
	fmt.Println("=== Learning Example ===")
	fmt.Println("Teaching: 'wrold' should be 'world'")
	engine.LearnCorrection("wrold", "world")
	results := engine.Autocorrect("wrold", 0)
	fmt.Printf("After learning: 'wrold' -> '%s'\n", results[0].BestMatch)

	fmt.Println()
	fmt.Println("=== System Stats ===")
	printStats(lex)
}

func runREPL(engine *corrector.Autocorrector, lex *lexicon.Lexicon, st *store.Store) {
	fmt.Println("Braille autocorrect. Chord keys: D W Q K O P.")
	fmt.Println("Commands: learn <wrong> <correct>, add <word>, remove <word>, decode <text>, stats, save <path>, load <path>, quit.")
	fmt.Println("Anything else is corrected.")

	scn := bufio.NewScanner(os.Stdin)
	for {
		io.WriteString(os.Stdout, "braille>> ")
		if !scn.Scan() {
			return
		}
		line := strings.TrimSpace(scn.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit", "exit":
			return

		case "learn":
			if len(fields) != 3 {
				fmt.Println("usage: learn <wrong> <correct>")
				continue
			}
			wrong, correct := fields[1], fields[2]
			engine.LearnCorrection(wrong, correct)
			if st != nil {
				if err := st.SaveFix(strings.ToLower(wrong), strings.ToLower(correct)); err != nil {
					log.Printf("warning: could not persist fix: %v", err)
				}
			}
			fmt.Printf("learned: %s -> %s\n", wrong, correct)

		case "add":
			if len(fields) != 2 {
				fmt.Println("usage: add <word>")
				continue
			}
			lex.AddWord(fields[1])
			if st != nil {
				if err := st.AddWord(strings.ToLower(fields[1])); err != nil {
					log.Printf("warning: could not persist word: %v", err)
				}
			}
			fmt.Printf("added: %s\n", strings.ToLower(fields[1]))

		case "remove":
			if len(fields) != 2 {
				fmt.Println("usage: remove <word>")
				continue
			}
			if st == nil {
				fmt.Println("no store configured; nothing is persisted")
				continue
			}
			if err := st.RemoveWord(strings.ToLower(fields[1])); err != nil {
				log.Printf("warning: could not remove word: %v", err)
				continue
			}
			fmt.Printf("removed from persisted vocabulary: %s\n", strings.ToLower(fields[1]))

		case "decode":
			arg := strings.TrimSpace(line[len("decode"):])
			if arg == "" {
				fmt.Println("usage: decode <text>")
				continue
			}
			fmt.Println(braille.Decode(arg))

		case "stats":
			printStats(lex)

		case "save":
			if len(fields) != 2 {
				fmt.Println("usage: save <path>")
				continue
			}
			if err := saveLexicon(lex, fields[1]); err != nil {
				log.Printf("warning: save failed: %v", err)
				continue
			}
			fmt.Printf("saved to %s\n", fields[1])

		case "load":
			if len(fields) != 2 {
				fmt.Println("usage: load <path>")
				continue
			}
			if err := loadLexicon(lex, fields[1]); err != nil {
				log.Printf("warning: load failed: %v", err)
				continue
			}
			fmt.Printf("loaded from %s\n", fields[1])

		default:
			printResults(engine.Autocorrect(line, 0))
		}
	}
}

func printResults(results []corrector.CorrectionResult) {
	table := tabby.New()
	table.AddHeader("Original", "Best", "Other Suggestions")
	for _, r := range results {
		others := ""
		if len(r.Suggestions) > 1 {
			others = strings.Join(r.Suggestions[1:], ", ")
		}
		table.AddLine(r.Original, r.BestMatch, others)
	}
	table.Print()
	fmt.Printf("Corrected: %q\n", correctedLine(results))
}

func correctedLine(results []corrector.CorrectionResult) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.BestMatch
	}
	return strings.Join(parts, " ")
}

func printStats(lex *lexicon.Lexicon) {
	stats := lex.Stats()
	fmt.Printf("Total words in dictionary: %d\n", stats.TotalWords)
	fmt.Printf("Learned corrections: %d\n", stats.LearnedCorrections)
	table := tabby.New()
	table.AddHeader("Word", "Count")
	for _, wc := range stats.TopWords {
		table.AddLine(wc.Word, wc.Count)
	}
	table.Print()
}

func saveLexicon(lex *lexicon.Lexicon, path string) error {
	data, err := yaml.Marshal(lex.Snapshot())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func loadLexicon(lex *lexicon.Lexicon, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var snap lexicon.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return err
	}
	lex.Restore(snap)
	return nil
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

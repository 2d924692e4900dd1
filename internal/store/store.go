package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Store wraps a Redis client to persist user vocabulary between runs:
// custom words in a set, learned fixes in a hash.
type Store struct {
	client   *redis.Client
	wordsKey string
	fixesKey string
}

// New creates a new Store with the provided Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client, wordsKey: "custom_words", fixesKey: "learned_fixes"}
}

// AddWord inserts a word into the persisted vocabulary.
func (s *Store) AddWord(word string) error {
	return s.client.SAdd(context.Background(), s.wordsKey, word).Err()
}

// RemoveWord deletes a word from the persisted vocabulary.
func (s *Store) RemoveWord(word string) error {
	return s.client.SRem(context.Background(), s.wordsKey, word).Err()
}

// Words returns all persisted vocabulary words.
func (s *Store) Words() ([]string, error) {
	return s.client.SMembers(context.Background(), s.wordsKey).Result()
}

// SaveFix persists a learned wrong-to-correct mapping.
func (s *Store) SaveFix(wrong, correct string) error {
	return s.client.HSet(context.Background(), s.fixesKey, wrong, correct).Err()
}

// RemoveFix deletes a learned mapping.
func (s *Store) RemoveFix(wrong string) error {
	return s.client.HDel(context.Background(), s.fixesKey, wrong).Err()
}

// Fixes returns all persisted wrong-to-correct mappings.
func (s *Store) Fixes() (map[string]string, error) {
	return s.client.HGetAll(context.Background(), s.fixesKey).Result()
}

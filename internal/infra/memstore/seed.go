package memstore

import (
	"fmt"
	"os"

	"shareit/internal/domain/item"
	"shareit/internal/domain/user"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Seed is the directory content the memory driver starts with.
type Seed struct {
	Users []SeedUser `json:"users"`
	Items []SeedItem `json:"items"`
}

type SeedUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SeedItem struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

func LoadSeedFile(path string) (*Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) (*Seed, error) {
	var seed Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	return &seed, nil
}

// Apply loads users before items so every item owner must already be known.
func (s *Store) Apply(seed *Seed) error {
	for _, su := range seed.Users {
		email, err := user.NewEmail(su.Email)
		if err != nil {
			return fmt.Errorf("seed user %d: %w", su.ID, err)
		}
		u, err := user.NewUser(su.ID, su.Name, email)
		if err != nil {
			return fmt.Errorf("seed user %d: %w", su.ID, err)
		}
		s.PutUser(u)
	}

	for _, si := range seed.Items {
		if !s.hasUser(si.OwnerID) {
			return fmt.Errorf("seed item %d: unknown owner %d", si.ID, si.OwnerID)
		}
		it, err := item.NewItem(si.ID, si.OwnerID, si.Name, si.Description, si.Available)
		if err != nil {
			return fmt.Errorf("seed item %d: %w", si.ID, err)
		}
		s.PutItem(it)
	}
	return nil
}

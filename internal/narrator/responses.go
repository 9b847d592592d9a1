package narrator

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category classifies a player command. The narrator keeps one response
// pool per category; unrecognized input lands in CategoryUnknown.
type Category string

const (
	CategoryLook    Category = "look"
	CategoryGo      Category = "go"
	CategoryAttack  Category = "attack"
	CategoryRest    Category = "rest"
	CategoryTalk    Category = "talk"
	CategoryUnknown Category = "unknown"
)

// LineDef is one response line loaded from JSON. Lines with higher
// weight are more likely to be picked.
type LineDef struct {
	Text   string `json:"text"`
	Weight int    `json:"weight"`
}

// PoolDef is the response pool for one category.
type PoolDef struct {
	Category string    `json:"category"`
	Lines    []LineDef `json:"lines"`
}

// ResponsesFile represents the structure of responses.json.
type ResponsesFile struct {
	Pools []PoolDef `json:"pools"`
}

// classifiers maps command verbs to categories. The first word of the
// input decides; anything unlisted is CategoryUnknown.
var classifiers = map[string]Category{
	"look":    CategoryLook,
	"examine": CategoryLook,
	"inspect": CategoryLook,
	"search":  CategoryLook,
	"go":      CategoryGo,
	"move":    CategoryGo,
	"walk":    CategoryGo,
	"enter":   CategoryGo,
	"climb":   CategoryGo,
	"north":   CategoryGo,
	"south":   CategoryGo,
	"east":    CategoryGo,
	"west":    CategoryGo,
	"attack":  CategoryAttack,
	"fight":   CategoryAttack,
	"strike":  CategoryAttack,
	"cast":    CategoryAttack,
	"shoot":   CategoryAttack,
	"rest":    CategoryRest,
	"sleep":   CategoryRest,
	"camp":    CategoryRest,
	"talk":    CategoryTalk,
	"say":     CategoryTalk,
	"ask":     CategoryTalk,
	"greet":   CategoryTalk,
}

// Classify maps a raw command line to its category by first word,
// case-insensitively.
func Classify(input string) Category {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 {
		return CategoryUnknown
	}
	if cat, ok := classifiers[fields[0]]; ok {
		return cat
	}
	return CategoryUnknown
}

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadPools loads the response pools from the embedded responses.json.
func LoadPools() ([]PoolDef, error) {
	file, err := Load[ResponsesFile]("responses.json")
	if err != nil {
		return nil, err
	}
	return file.Pools, nil
}

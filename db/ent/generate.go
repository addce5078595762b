package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Run from the repository root: go run ./db/ent
// The keyed upserts in internal/repository need the sql/upsert feature.
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:   "gen/ent",
			Package:  "github.com/edtech-ng/question-bank/gen/ent",
			Schema:   "github.com/edtech-ng/question-bank/db/ent/schema",
			Features: []gen.Feature{gen.FeatureUpsert},
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}

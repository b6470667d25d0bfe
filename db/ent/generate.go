package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/laitim2001/ai-document-extraction/gen/ent",
			Schema:  "github.com/laitim2001/ai-document-extraction/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
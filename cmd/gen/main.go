package main

import (
	"bizhub/internal/infra/persistence/postgres"

	"gorm.io/gen"
)

func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(postgres.Models()...)

	gen.Execute()
}

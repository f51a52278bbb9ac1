package main

import (
	"agroleads/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.LeadModel{},
		model.RuralPropertyModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}

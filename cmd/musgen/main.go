package main

import (
	"os"
	"reflect"
	"strings"

	musgen "github.com/mus-format/musgen-go/mus"
	genops "github.com/mus-format/musgen-go/options/generate"
	structops "github.com/mus-format/musgen-go/options/struct"
	typeops "github.com/mus-format/musgen-go/options/type"

	"github.com/mike-arbuzov/findmyangel-backend/core"
)

func main() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	// If we're in the core subpackage, cd up to project root
	if strings.HasSuffix(cwd, "core") {
		if err := os.Chdir(".."); err != nil {
			panic(err)
		}
	}
	g, err := musgen.NewCodeGenerator(
		genops.WithPkgPath("github.com/mike-arbuzov/findmyangel-backend/core"),
	)
	if err != nil {
		panic(err)
	}

	g.AddDefinedType(reflect.TypeFor[core.ID]())

	err = g.AddStruct(reflect.TypeFor[core.Experience](),
		structops.WithField(),
		structops.WithField(),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	err = g.AddStruct(reflect.TypeFor[core.Education](),
		structops.WithField(),
		structops.WithField())
	if err != nil {
		panic(err)
	}

	// Unix micro timestamps
	opts := typeops.WithTimeUnit(typeops.Micro)
	err = g.AddStruct(reflect.TypeFor[core.ProfileRecord](),
		structops.WithField(), // Id
		structops.WithField(), // LinkedInURL
		structops.WithField(), // Name
		structops.WithField(), // Headline
		structops.WithField(), // Location
		structops.WithField(), // CurrentRole
		structops.WithField(), // Company
		structops.WithField(), // Summary
		structops.WithField(), // Experience
		structops.WithField(), // Education
		structops.WithField(), // IsInvestor
		structops.WithField(), // InvestmentRole
		structops.WithField(), // InvestmentFocus
		structops.WithField(), // PortfolioCompanies
		structops.WithField(), // SectorsOfInterest
		structops.WithField(), // InvestmentStage
		structops.WithField(), // Vector
		structops.WithField(opts), // InsertedAt
		structops.WithField(opts)) // UpdatedAt
	if err != nil {
		panic(err)
	}

	bs, err := g.Generate()
	if err != nil {
		panic(err)
	}
	err = os.WriteFile("./core/records_mus.gen.go", bs, 0644)
	if err != nil {
		panic(err)
	}
}

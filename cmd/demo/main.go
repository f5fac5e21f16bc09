package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tbeaudouin05/checkenv/api/checkenv"
	"github.com/tbeaudouin05/checkenv/api/log"
	"github.com/tbeaudouin05/checkenv/api/report"
)

func main() {
	env := checkenv.Env{
		"NODE_ENV":                     "production",
		"LOCAL_OVERRIDE_DISABLE_HTTPS": "foo",
		"INSECURE_COOKIES":             "bar",
	}
	prod := env["NODE_ENV"] == "production"

	spec := checkenv.Spec{
		NoThrow: true,
		// reported as missing, and fatal without NoThrow
		Required: checkenv.NameList{
			"SOME_API_SECRET",
			"PRIVATE_TOKEN",
			"SOME_OTHER_IMPORTANT_THING",
			checkenv.When(prod, "ONLY_REQUIRED_IN_PRODUCTION"),
		},
		// reported when set in production
		Unsafe: checkenv.NameList{
			"LOCAL_OVERRIDE_DISABLE_HTTPS",
			"INSECURE_COOKIES",
		},
	}
	if len(os.Args) > 1 && os.Args[1] == "-json" {
		spec.Use(report.Zerolog(log.WithComponent("demo")))
	}

	res, err := checkenv.Check(spec, env)
	var missingErr *checkenv.MissingError
	switch {
	case errors.As(err, &missingErr):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	fmt.Printf("missing=%v unsafe=%v\n", res.Required, res.Unsafe)
}

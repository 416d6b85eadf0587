package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/guardsignal/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
	packageKey           = "package"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed ComputedN helpers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of source signals to generate helpers for",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "signal/computed_gen.go",
			},
			&cli.StringFlag{
				Name:  packageKey,
				Usage: "Package name of the generated file",
				Value: "signal",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for computed helpers started !")
	defer func() {
		log.Printf("Codegen for computed helpers finished in %v", time.Since(start))
	}()

	genericParamCount := int(cmd.Uint(genericParamCountKey))
	out := cmd.String(outputKey)
	log.Printf("Generating Computed1..Computed%d into %s", genericParamCount, out)

	contents, err := templates.ComputedGen(cmd.String(packageKey), genericParamCount)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}

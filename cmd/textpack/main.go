package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dargueta/textpack"
	"github.com/dargueta/textpack/utilities/packing"
	"github.com/urfave/cli/v2"
)

const sampleText = "I am very proud of my country and its citizens"

func main() {
	cli := cli.App{
		Name:  "textpack",
		Usage: "Pack text into five bits per character",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "highlight",
				Usage:   "highlight chorded characters when decoding",
				EnvVars: []string{"TEXTPACK_HIGHLIGHT"},
			},
			&cli.BoolFlag{
				Name:    "trim",
				Usage:   "remove trailing whitespace when decoding",
				Value:   true,
				EnvVars: []string{"TEXTPACK_TRIM"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "Encode a sample sentence and show the sizes",
				Action: runDemo,
			},
			{
				Name:      "encode",
				Usage:     "Pack a text file",
				Action:    encodeFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
			},
			{
				Name:      "decode",
				Usage:     "Unpack a file written by `encode`",
				Action:    decodeFile,
				ArgsUsage: "INPUT_FILE  OUTPUT_FILE",
			},
		},
	}

	err := cli.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newRenderer(context *cli.Context) packing.Renderer {
	if context.Bool("highlight") {
		return packing.NewRenderer(packing.WithDefaultHighlight())
	}
	return packing.NewRenderer()
}

func runDemo(context *cli.Context) error {
	artifact, err := textpack.Encode(sampleText)
	if err != nil {
		return err
	}

	decoded, err := textpack.DecodeWith(artifact, newRenderer(context))
	if err != nil {
		return err
	}
	if context.Bool("trim") {
		decoded = strings.TrimRight(decoded, " \n")
	}

	fmt.Printf("Original:   %q\n", sampleText)
	fmt.Printf("Compressed: %s\n", artifact)
	fmt.Printf("Decoded:    %q\n", decoded)
	fmt.Printf("Size: %d -> %d bytes\n", len(sampleText), artifact.Len())
	return nil
}

func checkArgs(context *cli.Context) error {
	if context.NArg() != 2 {
		return cli.Exit(
			fmt.Sprintf("expected 2 arguments, got %d", context.NArg()), 1)
	}
	return nil
}

func encodeFile(context *cli.Context) error {
	err := checkArgs(context)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(context.Args().Get(0))
	if err != nil {
		return err
	}

	artifact, err := textpack.Encode(string(text))
	if err != nil {
		return err
	}

	nWritten, err := writeArtifactFile(context.Args().Get(1), artifact)
	if err != nil {
		return err
	}
	fmt.Printf("Compressed %d bytes to %d bytes.\n", len(text), nWritten)
	return nil
}

// writeArtifactFile writes the artifact to a new file. A failure to close the
// file is reported, since that's where buffered data gets flushed.
func writeArtifactFile(path string, artifact textpack.Artifact) (int64, error) {
	outFile, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	nWritten, err := artifact.WriteTo(outFile)
	if err != nil {
		outFile.Close()
		return nWritten, err
	}
	return nWritten, outFile.Close()
}

func decodeFile(context *cli.Context) error {
	err := checkArgs(context)
	if err != nil {
		return err
	}

	sourceFile, err := os.Open(context.Args().Get(0))
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	artifact, err := textpack.ReadArtifact(sourceFile)
	if err != nil {
		return err
	}

	decoded, err := textpack.DecodeWith(artifact, newRenderer(context))
	if err != nil {
		return err
	}
	if context.Bool("trim") {
		decoded = strings.TrimRight(decoded, " \n")
	}
	return os.WriteFile(context.Args().Get(1), []byte(decoded), 0o644)
}

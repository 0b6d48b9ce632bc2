package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dargueta/textpack"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(
			os.Stderr,
			"Unpack a file written by `textpack encode`.\nUsage: %s input-file output-file\n",
			os.Args[0])
		os.Exit(1)
	}

	sourceFilePath := os.Args[1]
	outputFilePath := os.Args[2]

	sourceFile, errSrc := os.Open(sourceFilePath)
	if errSrc != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to open file for reading: `%v`: %s\n", sourceFilePath, errSrc)
		os.Exit(1)
	}
	defer sourceFile.Close()

	artifact, err := textpack.ReadArtifact(sourceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(2)
	}

	decoded, err := textpack.Decode(artifact)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error expanding file: %s\n", err)
		os.Exit(2)
	}
	decoded = strings.TrimRight(decoded, " \n")

	errOut := os.WriteFile(outputFilePath, []byte(decoded), 0o644)
	if errOut != nil {
		fmt.Fprintf(
			os.Stderr, "Failed to write file: `%v`: %s\n", outputFilePath, errOut)
		os.Exit(1)
	}

	fmt.Printf("Expanded %d bytes to %d characters.\n", artifact.Len(), len([]rune(decoded)))
}

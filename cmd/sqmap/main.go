// sqmap is the tomography visualisation CLI: bloch, concise, projected,
// chip, precision and synth.
//
// Usage:
//
//	sqmap bloch     [-i QUBIT_INDEX] [-o OUT] BACKUP_FILE
//	sqmap concise   [-i QUBIT_INDEX] [-o OUT] BACKUP_FILE
//	sqmap projected [-i QUBIT_INDEX] [-o OUT] [--projection NAME] BACKUP_FILE
//	sqmap chip      [-o OUT] BACKUP_FILE
//	sqmap precision [--metric NAME] [--summary NAME] [-o OUT] BACKUP_FILE...
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

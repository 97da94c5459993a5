package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/novalym/velm-native/internal/digest"
)

var flagAlgo string

var digestCmd = &cobra.Command{
	Use:   "digest <path>...",
	Short: "Print the content digest of each file",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDigest,
}

func init() {
	digestCmd.Flags().StringVar(&flagAlgo, "algo", "", "digest algorithm: sha256|xxh3 (default from .velmconfig, else sha256)")
}

type digestResult struct {
	Path      string           `json:"path"`
	Algorithm digest.Algorithm `json:"algorithm"`
	Digest    string           `json:"digest,omitempty"`
	Error     string           `json:"error,omitempty"`
}

func runDigest(cmd *cobra.Command, args []string) error {
	algo := cfg.EffectiveAlgorithm()
	if flagAlgo != "" {
		algo = digest.Algorithm(flagAlgo)
	}

	results := make([]digestResult, 0, len(args))
	failed := 0
	for _, p := range args {
		r := digestResult{Path: p, Algorithm: algo}
		sum, err := digest.FileWith(p, algo)
		if err != nil {
			r.Error = err.Error()
			failed++
		} else {
			r.Digest = sum
		}
		results = append(results, r)
	}

	if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be hashed", failed, len(args))
	}
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/novalym/velm-native/internal/entropy"
)

var flagWindow int

var entropyCmd = &cobra.Command{
	Use:   "entropy [path|-]",
	Short: "Print the Shannon entropy of a file or stdin in bits per byte",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEntropy,
}

func init() {
	entropyCmd.Flags().IntVar(&flagWindow, "window", 0, "also report entropy per window of this many bytes")
}

type entropyResult struct {
	Bytes      int       `json:"bytes"`
	Entropy    float64   `json:"entropy"`
	Window     int       `json:"window,omitempty"`
	Windows    []float64 `json:"windows,omitempty"`
	MaxEntropy *float64  `json:"max_window_entropy,omitempty"`
}

func runEntropy(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	r := entropyResult{Bytes: len(data), Entropy: entropy.Shannon(data)}
	if flagWindow > 0 {
		m := entropy.MaxChunk(data, flagWindow)
		r.Window = flagWindow
		r.Windows = entropy.Chunks(data, flagWindow)
		r.MaxEntropy = &m
	}
	return writeJSON(cmd.OutOrStdout(), r)
}

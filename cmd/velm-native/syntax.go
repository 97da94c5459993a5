package main

import (
	"github.com/spf13/cobra"

	"github.com/novalym/velm-native/internal/parser"
	"github.com/novalym/velm-native/internal/tools"
)

var (
	flagLang    string
	flagPattern string
)

var queryCmd = &cobra.Command{
	Use:   "query [file|-]",
	Short: "Run a tree-sitter query over a source file and print its captures",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQuery,
}

var checkCmd = &cobra.Command{
	Use:   "check [file|-]",
	Short: "Report syntax errors and missing tokens in a source file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

var astCmd = &cobra.Command{
	Use:   "ast [file|-]",
	Short: "Print the syntax tree of a source file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAST,
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages with aliases and extensions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeJSON(cmd.OutOrStdout(), tools.Languages())
	},
}

func init() {
	for _, c := range []*cobra.Command{queryCmd, checkCmd, astCmd} {
		c.Flags().StringVar(&flagLang, "lang", "", "language tag or alias (inferred from the file extension when omitted)")
	}
	queryCmd.Flags().StringVar(&flagPattern, "pattern", "", "tree-sitter query pattern")
	_ = queryCmd.MarkFlagRequired("pattern")
}

func runQuery(cmd *cobra.Command, args []string) error {
	language, err := resolveLanguage(flagLang, args)
	if err != nil {
		return err
	}
	source, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	caps, err := parser.Query(source, language, flagPattern)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), caps)
}

type checkResult struct {
	Valid       bool                `json:"valid"`
	Diagnostics []parser.Diagnostic `json:"diagnostics"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	language, err := resolveLanguage(flagLang, args)
	if err != nil {
		return err
	}
	source, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	diags, err := parser.Check(source, language)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), checkResult{Valid: len(diags) == 0, Diagnostics: diags})
}

func runAST(cmd *cobra.Command, args []string) error {
	language, err := resolveLanguage(flagLang, args)
	if err != nil {
		return err
	}
	source, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	l, err := parser.Resolve(language)
	if err != nil {
		return err
	}
	tree, err := parser.Parse(l, source)
	if err != nil {
		return err
	}
	defer tree.Close()
	return parser.DumpTree(cmd.OutOrStdout(), tree.RootNode(), source)
}

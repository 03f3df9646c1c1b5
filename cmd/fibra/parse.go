package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fibra/embedding"
	"github.com/katalvlaran/fibra/fibration"
	"github.com/katalvlaran/fibra/probability"
	"github.com/katalvlaran/fibra/proof"
	"github.com/katalvlaran/fibra/relevance"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [tokens...]",
	Short: "Parse tokens into a derivation tree and annotate it with a fibre",
	Long: `Builds a binary derivation tree over the given tokens, computes fibre
data bottom-up, and prints a summary of the root annotation. With
--export the whole registry (trees, morphisms, annotations) is written
as JSON.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("fibre")
		config, _ := cmd.Flags().GetString("config")
		export, _ := cmd.Flags().GetString("export")
		dim, _ := cmd.Flags().GetInt("dim")
		verbose, _ := cmd.Flags().GetBool("verbose")

		log := newLogger(verbose)
		log.Debug("parsing", "fibre", name, "tokens", len(args))

		fb := fibration.New()
		if err := runParse(fb, name, config, dim, args); err != nil {
			return err
		}

		if export != "" {
			raw, err := fb.ExportJSON()
			if err != nil {
				return err
			}
			if err := os.WriteFile(export, raw, 0o644); err != nil {
				return err
			}
			log.Info("registry exported", "path", export)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("fibre", "f", "probability", "Fibre to annotate with: probability, embedding, proof, relevance")
	parseCmd.Flags().StringP("config", "c", "", "YAML config: vector table (embedding) or BM25 options (relevance)")
	parseCmd.Flags().StringP("export", "e", "", "Write the registry snapshot as JSON to this path")
	parseCmd.Flags().Int("dim", 8, "Vector dimension for the embedding fibre")
}

// runParse dispatches on the fibre name. Each branch parses with its
// concrete fibre type and prints a fibre-specific summary.
func runParse(fb *fibration.Fibration, name, config string, dim int, tokens []string) error {
	switch name {
	case "probability":
		root, data, err := fibration.Parse(fb, probability.New(), tokens)
		if err != nil {
			return err
		}
		fmt.Printf("yield: %s\n", root.Yield())
		for _, e := range data.TopK(5) {
			fmt.Printf("  %.4f  %s\n", e.Prob, e.Yield)
		}

		return nil

	case "embedding":
		opts := embedding.DefaultOptions(dim)
		if config != "" {
			table, err := loadTableFile(config)
			if err != nil {
				return err
			}
			opts.Table = table
		}
		f, err := embedding.New(opts)
		if err != nil {
			return err
		}
		root, data, err := fibration.Parse(fb, f, tokens)
		if err != nil {
			return err
		}
		fmt.Printf("yield: %s\n", root.Yield())
		fmt.Printf("dim: %d  norm: %.4f\n", len(data), data.Norm())

		return nil

	case "proof":
		root, data, err := fibration.Parse(fb, proof.New(), tokens)
		if err != nil {
			return err
		}
		fmt.Printf("yield: %s\n", root.Yield())
		fmt.Printf("verified: %t\n", data.FullyVerified())
		for _, ob := range data.PendingObligations() {
			fmt.Printf("  pending: %s\n", ob)
		}

		return nil

	case "relevance":
		opts := relevance.DefaultOptions()
		opts.Documents = demoDocuments()
		if config != "" {
			loaded, err := loadOptionsFile(config)
			if err != nil {
				return err
			}
			opts = loaded
		}
		f, err := relevance.New(opts)
		if err != nil {
			return err
		}
		root, data, err := fibration.Parse(fb, f, tokens)
		if err != nil {
			return err
		}
		fmt.Printf("yield: %s\n", root.Yield())
		for _, ds := range data.TopK(5) {
			fmt.Printf("  %.4f  %s\n", ds.Score, ds.DocID)
		}

		return nil

	default:
		return fmt.Errorf("unknown fibre %q (want probability, embedding, proof, or relevance)", name)
	}
}

func loadTableFile(path string) (map[string][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return embedding.LoadTable(f)
}

func loadOptionsFile(path string) (relevance.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return relevance.Options{}, err
	}
	defer f.Close()

	return relevance.LoadOptions(f)
}

// demoDocuments is the built-in corpus used when relevance runs without
// a config file.
func demoDocuments() map[string]string {
	return map[string]string{
		"doc1": "the student studies machine learning",
		"doc2": "the teacher explains recursion theory",
		"doc3": "students learn about formal grammars",
		"doc4": "recursive functions in programming",
		"doc5": "the professor teaches linguistics",
	}
}

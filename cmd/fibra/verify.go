package main

import (
	"fmt"

	"github.com/katalvlaran/fibra/category"
	"github.com/katalvlaran/fibra/embedding"
	"github.com/katalvlaran/fibra/fibration"
	"github.com/katalvlaran/fibra/probability"
	"github.com/katalvlaran/fibra/proof"
	"github.com/katalvlaran/fibra/relevance"
	"github.com/spf13/cobra"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the pull-back coherence law for every shipped fibre",
	Long: `Builds a pair of composable morphisms and checks, for each shipped
fibre, that pulling data back along the composite equals pulling it
back stepwise. A fibre violating the law is reported, not corrected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := &category.Morphism{SourceID: "a", TargetID: "b", Mapping: map[string]string{"a": "b", "a1": "b1"}}
		g := &category.Morphism{SourceID: "b", TargetID: "c", Mapping: map[string]string{"b": "c", "b1": "c1"}}

		failed := 0
		report := func(name string, ok bool, err error) {
			if err != nil {
				fmt.Printf("%-12s error: %v\n", name, err)
				failed++
				return
			}
			verdict := "ok"
			if !ok {
				verdict = "VIOLATED"
				failed++
			}
			fmt.Printf("%-12s %s\n", name, verdict)
		}

		ok, err := fibration.VerifyFunctoriality(f, g, probability.New(),
			probability.Dist{"the student left": 0.7, "student the left": 0.3})
		report("probability", ok, err)

		emb, err := embedding.New(embedding.DefaultOptions(8))
		if err != nil {
			return err
		}
		ok, err = fibration.VerifyFunctoriality(f, g, emb,
			embedding.Vector{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8})
		report("embedding", ok, err)

		data := proof.NewData()
		data.AddInvariant("well_formed")
		data.Obligations["well_formed"] = proof.Obligation{Property: "well_formed", Status: proof.Proven}
		ok, err = fibration.VerifyFunctoriality(f, g, proof.New(), data)
		report("proof", ok, err)

		rel, err := relevance.New(relevance.Options{
			K1: 1.2, B: 0.75, MergeLeft: 0.6, MergeRight: 0.4,
			Documents: demoDocuments(),
		})
		if err != nil {
			return err
		}
		ok, err = fibration.VerifyFunctoriality(f, g, rel, relevance.Scores{"doc1": 0.8})
		report("relevance", ok, err)

		if failed > 0 {
			return fmt.Errorf("%d fibre(s) failed the coherence check", failed)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

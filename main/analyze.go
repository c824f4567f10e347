package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/gofrac/analyze"
	"github.com/phil-mansfield/gofrac/io"
	"github.com/phil-mansfield/gofrac/particle"
)

var summaryOnly bool

func init() {
	analyzeCmd.Flags().BoolVarP(
		&summaryOnly, "summary", "s", false,
		"Only print the summary block of each point file.",
	)
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use: "analyze [point files...]",
	Short: "Classify particles and trace chains in point files",
	Long: `
Finds the contacts of every point file, classifies each particle by its
number of contacts, and traces the chains between junctions and tips. The
results are printed to stdout as a "#"-prefixed summary followed by a
particle table and a chain table.

If no files are given, the configured Input file or directory is used.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := loadConfig(cmd)
		if err != nil { return err }

		fg, err := setupFileGroup(con)
		if err != nil { return err }
		defer fg.Close()

		files, err := inputFiles(con, args)
		if err != nil { return err }

		out := bufio.NewWriter(os.Stdout)
		defer out.Flush()

		opt := con.Options()
		return forEachFile(files, "Analyzed",
			func(fname string, s *particle.Set) error {
				return printAnalysis(out, fname, s, opt)
			},
		)
	},
}

// printAnalysis runs the pipeline on one particle set and writes its tables.
func printAnalysis(
	out *bufio.Writer, fname string, s *particle.Set, opt analyze.Options,
) error {
	res, err := analyze.Run(s, opt)
	if err != nil { return err }

	for _, warn := range res.Measurement.Warnings() {
		log.Printf("%s: %s", fname, warn)
	}

	err = io.PrintSummary(
		out, fname, res.Classification, res.Chains, res.Measurement,
	)
	if err != nil { return err }
	if summaryOnly { return nil }

	if _, err = fmt.Fprintln(out); err != nil { return err }
	if err = io.PrintParticles(out, s, res.Classification); err != nil {
		return err
	}
	if _, err = fmt.Fprintln(out); err != nil { return err }
	if err = io.PrintChains(out, res.Chains); err != nil { return err }
	_, err = fmt.Fprintln(out)
	return err
}

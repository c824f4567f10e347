package main

import (
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phil-mansfield/gofrac/analyze"
	"github.com/phil-mansfield/gofrac/particle"
	"github.com/phil-mansfield/gofrac/plot"
)

var (
	plotDir string
	axisName string
)

func init() {
	plotCmd.Flags().StringVarP(
		&plotDir, "out", "o", "",
		"Directory that images are written to. Overrides PlotDir.",
	)
	plotCmd.Flags().StringVarP(
		&axisName, "axis", "a", "Z",
		"Axis that aggregates are projected along: X, Y, or Z.",
	)
	rootCmd.AddCommand(plotCmd)
}

var plotCmd = &cobra.Command{
	Use: "plot [point files...]",
	Short: "Plot aggregates coloured by particle role",
	Long: `
Writes two images per point file: a projection of the aggregate with each
particle coloured by its role and each chain drawn as a line, and a
histogram of chain lengths. Plotting goes through matplotlib, so python
must be on the PATH.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		con, err := loadConfig(cmd)
		if err != nil { return err }
		if cmd.Flags().Changed("out") { con.PlotDir = plotDir }

		axis, ok := plot.AxisFromString(axisName)
		if !ok {
			return fmt.Errorf(
				"--axis must be one of [X | Y | Z], not '%s'", axisName,
			)
		}

		dir := "."
		if con.ValidPlotDir() { dir = con.PlotDir }
		if err = os.MkdirAll(dir, 0755); err != nil { return err }

		fg, err := setupFileGroup(con)
		if err != nil { return err }
		defer fg.Close()

		files, err := inputFiles(con, args)
		if err != nil { return err }

		opt := con.Options()
		images := []string{}
		err = forEachFile(files, "Plotted",
			func(fname string, s *particle.Set) error {
				res, err := analyze.Run(s, opt)
				if err != nil { return err }

				name := plotName(fname)
				images = append(images,
					plot.Aggregate(s, res, axis, name, dir),
					plot.ChainLengths(res.Chains, name, dir),
				)
				return nil
			},
		)
		if err != nil { return err }

		plot.Execute()
		for _, image := range images { log.Printf("Wrote %s", image) }
		return nil
	},
}

// plotName is the base name of a point file without its extension.
func plotName(fname string) string {
	base := path.Base(fname)
	return strings.TrimSuffix(base, path.Ext(base))
}

package main

import (
	"fmt"
	stdio "io"
	"log"
	"os"
	"path"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/phil-mansfield/gofrac/chain"
	"github.com/phil-mansfield/gofrac/io"
	"github.com/phil-mansfield/gofrac/particle"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		log.SetOutput(&logWriter{ os.Stderr })
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

// setupFileGroup redirects logging and starts profiling if con asks for it.
func setupFileGroup(con *io.FractalConfig) (*FileGroup, error) {
	var err error
	fg := new(FileGroup)

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil { return nil, err }
		log.SetOutput(&logWriter{ fg.log })
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil { return nil, err }
		if err = pprof.StartCPUProfile(fg.prof); err != nil { return nil, err }
	}

	return fg, nil
}

type logWriter struct {
	writer stdio.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(
		w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"),
		string(bytes),
	)
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{ os.Stderr })

	rootCmd.PersistentFlags().StringVarP(
		&configFile, "config", "c", "",
		"Configuration file with a [Fractal] section. Run 'gofrac " +
			"example-config' for an annotated example.",
	)
	rootCmd.PersistentFlags().Float64Var(
		&tolerance, "tolerance", 0,
		"Extra distance allowed between touching particles. Overrides " +
			"ContactTolerance.",
	)
	rootCmd.PersistentFlags().StringVar(
		&isolated, "isolated", "",
		"What to do with particles that touch nothing: Chain, Exclude, or " +
			"Error. Overrides IsolatedParticles.",
	)

	rootCmd.AddCommand(exampleConfigCmd)
}

var (
	configFile string
	tolerance float64
	isolated string
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use: "gofrac",
	Short: "contact and chain analysis of fractal aggregates",
	Long: `
gofrac reads aggregates of primary particles from point files, finds which
particles touch, labels each particle as a tip, link, junction, or isolated
particle, and traces the chains that run between junctions and tips.

Point files have one particle per row, written as "x y z r".
`,
	Version: Version,
	SilenceUsage: true,
}

var exampleConfigCmd = &cobra.Command{
	Use: "example-config",
	Short: "Print an annotated example configuration file",
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(io.ExampleFractalFile)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil { os.Exit(1) }
}

// loadConfig reads the configuration file, if one was given, and applies
// command line overrides on top of it.
func loadConfig(cmd *cobra.Command) (*io.FractalConfig, error) {
	con := &io.DefaultFractalWrapper().Fractal
	if configFile != "" {
		var err error
		con, err = io.ReadFractalConfig(configFile)
		if err != nil { return nil, err }
	}

	flags := cmd.Flags()
	if flags.Changed("tolerance") { con.ContactTolerance = tolerance }
	if flags.Changed("isolated") {
		if _, ok := chain.PolicyFromString(isolated); !ok {
			return nil, fmt.Errorf(
				"%w: --isolated must be one of [Chain | Exclude | Error], " +
					"not '%s'", io.ErrInvalidConfig, isolated,
			)
		}
		con.IsolatedParticles = isolated
	}

	if err := con.Check(); err != nil { return nil, err }
	return con, nil
}

// inputFiles returns the point files named on the command line or, if there
// are none, the configured Input. A directory Input expands to every file
// inside it.
func inputFiles(con *io.FractalConfig, args []string) ([]string, error) {
	if len(args) > 0 { return args, nil }
	if !con.ValidInput() {
		return nil, fmt.Errorf(
			"No point files given and no 'Input' value configured.",
		)
	}

	info, err := os.Stat(con.Input)
	if err != nil { return nil, err }
	if !info.IsDir() { return []string{ con.Input }, nil }

	entries, err := os.ReadDir(con.Input)
	if err != nil { return nil, err }
	files := []string{}
	for _, e := range entries {
		if e.IsDir() { continue }
		files = append(files, path.Join(con.Input, e.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("Input directory %s is empty.", con.Input)
	}
	return files, nil
}

// forEachFile reads every point file in order and hands it to fn. Files are
// processed one at a time. Progress goes to a bar when stderr is a terminal,
// and to the log otherwise.
func forEachFile(
	files []string, desc string,
	fn func(fname string, s *particle.Set) error,
) error {
	var bar *progressbar.ProgressBar
	if len(files) > 1 && isatty.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription(desc),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for i, fname := range files {
		s, err := particle.ReadFile(fname)
		if err != nil { return err }
		if err = fn(fname, s); err != nil {
			return fmt.Errorf("%s: %w", fname, err)
		}

		if bar != nil {
			if err := bar.Add(1); err != nil { return err }
		} else if len(files) > 1 && ((i + 1) % 25 == 0 || i + 1 == len(files)) {
			log.Printf("%s %d/%d point files", desc, i + 1, len(files))
		}
	}

	return nil
}

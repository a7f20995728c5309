package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/strext/core/config"
	strexterror "github.com/msto63/strext/core/error"
	"github.com/msto63/strext/core/log"
	"github.com/msto63/strext/internal/pipeline"
)

var (
	runConfigFile string
	runWatch      bool
	runOutput     string
)

var runCmd = &cobra.Command{
	Use:   "run [input-file]",
	Short: "Run a pipeline file",
	Long: `Runs the steps of a TOML or YAML pipeline file over every line of the
input file, or of stdin when no file is given.

Without --config the pipeline file is looked up as strext.toml,
strext.yaml, pipeline.toml and so on in the working directory and in the
user configuration directory.

With --watch the pipeline file is watched and the input is processed
again after every change. --watch needs an input file.

Examples:
  strext run -c clean.toml names.txt
  strext run -c clean.yaml --watch names.txt -o cleaned.txt
  cat names.txt | strext run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigFile, "config", "c", "", "Pipeline file (default: discover)")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "Re-run when the pipeline file changes")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "Output file (default: stdout)")
}

func runRun(cmd *cobra.Command, args []string) error {
	pf, err := loadPipelineFile()
	if err != nil {
		return err
	}

	base := logger
	logger = pipelineLogger(cmd, base, pf)

	inputFile := ""
	if len(args) == 1 {
		inputFile = args[0]
	}
	if runWatch && inputFile == "" {
		return strexterror.New("--watch needs an input file").
			WithCode(strexterror.CodeInvalidInput).
			WithOperation("cmd.run")
	}

	p, err := pipeline.Compile(pf, pipeline.CompileOptions{Logger: logger})
	if err != nil {
		return err
	}

	if err := processInput(cmd, p, inputFile); err != nil {
		return err
	}
	if !runWatch {
		return nil
	}

	logger.Info("watching pipeline file", log.Fields{"path": pf.Path()})
	return config.Watch(commandContext(cmd), pf.Path(), func(next *config.PipelineFile, err error) {
		if err != nil {
			logger.LogError(err)
			return
		}
		logger = pipelineLogger(cmd, base, next)

		compiled, err := pipeline.Compile(next, pipeline.CompileOptions{Logger: logger})
		if err != nil {
			logger.LogError(err)
			return
		}
		p = compiled

		logger.Info("pipeline reloaded", log.Fields{"steps": p.Len()})
		if err := processInput(cmd, p, inputFile); err != nil {
			logger.LogError(err)
		}
	})
}

// pipelineLogger applies the log_level and log_format of pf to base unless
// a logging flag was given on the command line
func pipelineLogger(cmd *cobra.Command, base *log.Logger, pf *config.PipelineFile) *log.Logger {
	if flagsChanged(cmd) {
		return base
	}
	level, format := pf.LoggerConfig(base.GetLevel(), log.FormatConsole)
	return base.WithLevel(level).WithFormat(format)
}

func loadPipelineFile() (*config.PipelineFile, error) {
	if runConfigFile != "" {
		return config.Load(runConfigFile)
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

// processInput runs p over the input file (or stdin) into the output file
// (or stdout)
func processInput(cmd *cobra.Command, p *pipeline.Pipeline, inputFile string) error {
	var in io.Reader = cmd.InOrStdin()
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fileError(err, "failed to open input", inputFile)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = cmd.OutOrStdout()
	if runOutput != "" {
		f, err := os.Create(runOutput)
		if err != nil {
			return fileError(err, "failed to create output", runOutput)
		}
		defer f.Close()
		out = f
	}

	_, err := p.ApplyLines(commandContext(cmd), in, out)
	return err
}

func fileError(err error, message, path string) error {
	code := strexterror.CodeInternal
	if os.IsNotExist(err) {
		code = strexterror.CodeNotFound
	}
	return strexterror.Wrap(err, message).
		WithCode(code).
		WithOperation("cmd.run").
		WithDetail("path", path)
}

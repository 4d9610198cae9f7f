// Package cli implements the tabwrite command.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/tabwriter"
)

// Execute runs the tabwrite command with args, reading from stdin and writing
// the aligned table to stdout. Every error, including flag errors, is logged
// to stderr before it is returned.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if args == nil {
		args = []string{}
	}
	cmd := newCommand(stdin, stdout, stderr, log)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		log.Error(err)
		return err
	}
	return nil
}

func newCommand(stdin io.Reader, stdout, stderr io.Writer, log *logrus.Logger) *cobra.Command {
	var configFile string
	cmd := &cobra.Command{
		Use:   path.Base(os.Args[0]) + " [file...]",
		Short: "Align tab separated columns",
		Long: "Read tab separated lines from the given files, or stdin, and print them " +
			"with every column padded to its widest cell.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			return run(cfg, args, stdin, stdout, stderr, log)
		},
	}
	addFlags(cmd.Flags(), &configFile)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func run(cfg config, files []string, stdin io.Reader, stdout, stderr io.Writer, log *logrus.Logger) error {
	level, err := getLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	closing, err := tabwriter.ParseClosing(cfg.Closing)
	if err != nil {
		return err
	}
	var dump tabwriter.DumpFormat
	if cfg.DumpState != "" {
		if dump, err = tabwriter.ParseDumpFormat(cfg.DumpState); err != nil {
			return err
		}
	}

	w := tabwriter.New(cfg.Sep,
		tabwriter.WithOutput(stdout),
		tabwriter.WithClosing(closing),
		tabwriter.WithLogger(log),
	)

	if len(files) == 0 {
		if err := readInto(w, "<stdin>", stdin); err != nil {
			return err
		}
	}
	for _, name := range files {
		if err := readFile(w, name); err != nil {
			return err
		}
	}

	if dump != "" {
		if err := tabwriter.DumpState(stderr, dump, w.State()); err != nil {
			return err
		}
	}
	return w.Flush()
}

func readFile(w *tabwriter.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return readInto(w, name, f)
}

// readInto buffers every line of r. A \r directly before the \n is dropped;
// any other illegal character fails with the file and line number.
func readInto(w *tabwriter.Writer, name string, r io.Reader) error {
	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		if line == "" && err == io.EOF {
			return nil
		}
		n++
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if werr := w.WriteLine(line); werr != nil {
			return fmt.Errorf("%s:%d: %w", name, n, werr)
		}
		if err == io.EOF {
			return nil
		}
	}
}

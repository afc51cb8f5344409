package main

import (
	"github.com/spf13/cobra"

	"bridgec/internal/prof"
)

var profSession *prof.Session

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file")
	pf.String("trace", "", "write a runtime trace to file")

	rootCmd.PersistentPreRunE = startProfiling
	rootCmd.PersistentPostRunE = stopProfiling
}

func startProfiling(cmd *cobra.Command, _ []string) error {
	pf := cmd.Root().PersistentFlags()
	var opts prof.Options
	opts.CPU, _ = pf.GetString("cpuprofile")
	opts.Mem, _ = pf.GetString("memprofile")
	opts.Trace, _ = pf.GetString("trace")
	if !opts.Enabled() {
		return nil
	}
	s, err := prof.Start(opts)
	if err != nil {
		return err
	}
	profSession = s
	return nil
}

func stopProfiling(*cobra.Command, []string) error {
	err := profSession.Stop()
	profSession = nil
	return err
}

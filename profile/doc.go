// Package profile adds runtime profiling capabilities to CLI
// applications.
//
// It supports CPU and heap profiles through command-line flags. Use
// [Config.RegisterFlags] to add CLI flags and [Config.NewProfiler] to
// create a [Profiler] wrapping command execution:
//
//	cfg := profile.NewConfig()
//	p := cfg.NewProfiler()
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Start()
//	    },
//	}
//
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	err := rootCmd.Execute()
//	stopErr := p.Stop()
//
// Users can then enable profiling via flags like --cpu-profile=cpu.prof.
package profile

package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/DigiCloudTeam/digicloud/internal/fs"
	"github.com/DigiCloudTeam/digicloud/internal/model"
)

var cpCmd = &cobra.Command{
	Use:   "cp <src>... <dstFolder>",
	Short: "Copy nodes into a destination folder",
	Long: `Copy one or more nodes into a destination folder. Name collisions
in the destination are resolved by appending a counter, "report (1).txt".`,
	Args: cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runTransfer(args, true)
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv <src>... <dstFolder>",
	Short: "Move nodes into a destination folder",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runTransfer(args, false)
	},
}

var rmForce bool

var rmCmd = &cobra.Command{
	Use:   "rm <src>...",
	Short: "Delete nodes",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		sources := parseSources(args)
		if !rmForce && !confirmDelete(len(sources)) {
			return
		}
		s := newService()
		report, err := s.Delete(context.Background(), sources)
		if err != nil {
			log.Fatalf("delete failed: %+v", err)
		}
		printReport(report)
	},
}

func runTransfer(args []string, isCopy bool) {
	Init()
	requireToken()
	sources := parseSources(args[:len(args)-1])
	dst := parseLocation(args[len(args)-1], true)
	s := newService()
	var report fs.Report
	var err error
	if isCopy {
		report, err = s.Copy(context.Background(), sources, dst)
	} else {
		report, err = s.Move(context.Background(), sources, dst)
	}
	if err != nil {
		log.Fatalf("transfer failed: %+v", err)
	}
	printReport(report)
}

func parseSources(args []string) []model.Location {
	sources := make([]model.Location, len(args))
	for i, a := range args {
		// a trailing slash marks a folder source
		sources[i] = parseLocation(a, false)
		if strings.HasSuffix(a, "/") {
			sources[i].Path = sources[i].Path + "/"
		}
	}
	return sources
}

func printReport(report fs.Report) {
	if err := report.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", report.Verdict())
		for _, o := range report.Failed() {
			if o.Err != nil {
				fmt.Fprintf(os.Stderr, "  %s: %v\n", o.Source, o.Err)
			} else {
				fmt.Fprintf(os.Stderr, "  %s: status %d\n", o.Source, o.Status)
			}
		}
		os.Exit(1)
	}
}

// delete is not reversible, ask first unless --force
func confirmDelete(n int) bool {
	if n == 1 {
		fmt.Print("Delete this element? It is not reversible. [y/N] ")
	} else {
		fmt.Printf("Delete these %d elements? It is not reversible. [y/N] ", n)
	}
	var answer string
	fmt.Scanln(&answer)
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func init() {
	rmCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "skip the confirmation prompt")
	RootCmd.AddCommand(cpCmd)
	RootCmd.AddCommand(mvCmd)
	RootCmd.AddCommand(rmCmd)
}

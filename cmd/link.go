package cmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/DigiCloudTeam/digicloud/internal/model"
)

var linkCmd = &cobra.Command{
	Use:   "link <src>",
	Short: "Fetch or create the download link for a node",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		loc := parseSources(args[:1])[0]
		link, err := s.ShareLink(context.Background(), loc)
		if err != nil {
			log.Fatalf("link failed: %+v", err)
		}
		printBaseLink(link.BaseLink)
	},
}

var linkDeleteCmd = &cobra.Command{
	Use:   "delete <mountID> <linkID>",
	Short: "Delete a download link",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		if err := s.Client().DeleteLink(context.Background(), args[0], args[1]); err != nil {
			log.Fatalf("delete link failed: %+v", err)
		}
	},
}

var linkResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <mountID> <linkID>",
	Short: "Generate a fresh password for a download link",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		link, err := s.Client().ResetLinkPassword(context.Background(), args[0], args[1])
		if err != nil {
			log.Fatalf("reset password failed: %+v", err)
		}
		fmt.Printf("password: %s\n", link.Password)
	},
}

var linkRemovePasswordCmd = &cobra.Command{
	Use:   "remove-password <mountID> <linkID>",
	Short: "Make a download link public again",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		link, err := s.Client().RemoveLinkPassword(context.Background(), args[0], args[1])
		if err != nil {
			log.Fatalf("remove password failed: %+v", err)
		}
		printBaseLink(link.BaseLink)
	},
}

var linkShuffleHashCmd = &cobra.Command{
	Use:   "shuffle-hash <mountID> <linkID>",
	Short: "Pick a new random short-URL hash for a download link",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		link, err := s.ShuffleLinkHash(context.Background(), args[0], args[1], 5)
		if err != nil {
			log.Fatalf("shuffle hash failed: %+v", err)
		}
		fmt.Printf("short url: %s\n", link.ShortURL)
	},
}

var linkValidityCmd = &cobra.Command{
	Use:   "validity <mountID> <linkID> <from|-> <to|->",
	Short: "Set or clear the validity window of a download link",
	Long:  `Set the validity window of a download link. From and to take "2006-01-02 15:04" timestamps; "-" leaves that bound open.`,
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		from := parseValidity(args[2])
		to := parseValidity(args[3])
		link, err := s.Client().SetLinkValidity(context.Background(), args[0], args[1], from, to)
		if err != nil {
			log.Fatalf("set validity failed: %+v", err)
		}
		printBaseLink(link.BaseLink)
	},
}

var receiverCmd = &cobra.Command{
	Use:   "receiver <folder>",
	Short: "Fetch or create the upload receiver for a folder",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		loc := parseLocation(args[0], true)
		rec, err := s.ShareReceiver(context.Background(), loc)
		if err != nil {
			log.Fatalf("receiver failed: %+v", err)
		}
		printBaseLink(rec.BaseLink)
		fmt.Printf("email alert: %v\n", rec.AlertEnabled)
	},
}

var receiverDeleteCmd = &cobra.Command{
	Use:   "delete <mountID> <receiverID>",
	Short: "Delete an upload receiver",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		if err := s.Client().DeleteReceiver(context.Background(), args[0], args[1]); err != nil {
			log.Fatalf("delete receiver failed: %+v", err)
		}
	},
}

var receiverAlertCmd = &cobra.Command{
	Use:   "alert <mountID> <receiverID> <on|off>",
	Short: "Toggle the email alert on uploads",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		rec, err := s.Client().SetReceiverAlert(context.Background(), args[0], args[1], args[2] == "on")
		if err != nil {
			log.Fatalf("set alert failed: %+v", err)
		}
		fmt.Printf("email alert: %v\n", rec.AlertEnabled)
	},
}

var receiverShuffleHashCmd = &cobra.Command{
	Use:   "shuffle-hash <mountID> <receiverID>",
	Short: "Pick a new random short-URL hash for an upload receiver",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		rec, err := s.ShuffleReceiverHash(context.Background(), args[0], args[1], 5)
		if err != nil {
			log.Fatalf("shuffle hash failed: %+v", err)
		}
		fmt.Printf("short url: %s\n", rec.ShortURL)
	},
}

var receiverResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <mountID> <receiverID>",
	Short: "Generate a fresh password for an upload receiver",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		rec, err := s.Client().ResetReceiverPassword(context.Background(), args[0], args[1])
		if err != nil {
			log.Fatalf("reset password failed: %+v", err)
		}
		fmt.Printf("password: %s\n", rec.Password)
	},
}

var receiverRemovePasswordCmd = &cobra.Command{
	Use:   "remove-password <mountID> <receiverID>",
	Short: "Make an upload receiver public again",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		rec, err := s.Client().RemoveReceiverPassword(context.Background(), args[0], args[1])
		if err != nil {
			log.Fatalf("remove password failed: %+v", err)
		}
		printBaseLink(rec.BaseLink)
	},
}

var receiverValidityCmd = &cobra.Command{
	Use:   "validity <mountID> <receiverID> <from|-> <to|->",
	Short: "Set or clear the validity window of an upload receiver",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		from := parseValidity(args[2])
		to := parseValidity(args[3])
		rec, err := s.Client().SetReceiverValidity(context.Background(), args[0], args[1], from, to)
		if err != nil {
			log.Fatalf("set validity failed: %+v", err)
		}
		printBaseLink(rec.BaseLink)
	},
}

const validityLayout = "2006-01-02 15:04"

func parseValidity(arg string) *time.Time {
	if arg == "-" {
		return nil
	}
	t, err := time.Parse(validityLayout, arg)
	if err != nil {
		log.Fatalf("invalid timestamp %q, want %q or -", arg, validityLayout)
	}
	return &t
}

func printBaseLink(l model.BaseLink) {
	fmt.Printf("url: %s\nshort url: %s\n", l.URL, l.ShortURL)
	if l.HasPassword {
		fmt.Printf("password: %s\n", l.Password)
	}
	if l.ValidFrom != nil {
		fmt.Printf("valid from: %s\n", l.ValidFrom.Format(validityLayout))
	}
	if l.ValidTo != nil {
		fmt.Printf("valid to: %s\n", l.ValidTo.Format(validityLayout))
	}
}

func init() {
	linkCmd.AddCommand(linkDeleteCmd, linkResetPasswordCmd, linkRemovePasswordCmd,
		linkShuffleHashCmd, linkValidityCmd)
	receiverCmd.AddCommand(receiverDeleteCmd, receiverAlertCmd, receiverShuffleHashCmd,
		receiverResetPasswordCmd, receiverRemovePasswordCmd, receiverValidityCmd)
	RootCmd.AddCommand(linkCmd)
	RootCmd.AddCommand(receiverCmd)
}

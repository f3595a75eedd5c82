package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JohnDeved/docfmt/internal/config"
	"github.com/JohnDeved/docfmt/internal/listing"
	"github.com/JohnDeved/docfmt/internal/util"
	"github.com/JohnDeved/docfmt/internal/view"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docfmt",
		Short: "Format file sizes, names and dates for document listings",
		Long: `docfmt - Human-readable sizes, middle-truncated names and UTC+8 timestamps,
the way document lists display them.`,
		SilenceUsage: true,
	}

	sizeCmd := &cobra.Command{
		Use:   "size <bytes>...",
		Short: "Format byte counts as bytes/KB/MB/GB",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSize,
	}

	truncateCmd := &cobra.Command{
		Use:   "truncate <text>",
		Short: "Keep the start and end of a string, joined by an ellipsis",
		Args:  cobra.ExactArgs(1),
		RunE:  runTruncate,
	}
	truncateCmd.Flags().Int("front", 0, "Leading characters to keep (default from config)")
	truncateCmd.Flags().Int("back", 0, "Trailing characters to keep (default from config)")
	truncateCmd.Flags().String("ellipsis", "", "Ellipsis to insert (default from config)")

	dateCmd := &cobra.Command{
		Use:   "date <date-string>...",
		Short: "Format dates as \"Jan 2, 2006 15:04\" in UTC+8",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDate,
	}
	dateCmd.Flags().Bool("unix-ms", false, "Treat arguments as milliseconds since the Unix epoch")

	listCmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List a directory with formatted names, sizes and dates",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runList,
	}
	listCmd.Flags().Bool("json", false, "Output JSON")
	listCmd.Flags().Bool("plain", false, "Plain tab-separated output even on a terminal")
	listCmd.Flags().Int("limit", 0, "Limit number of entries (0 = config default)")

	rootCmd.AddCommand(sizeCmd, truncateCmd, dateCmd, listCmd)
	return rootCmd
}

func runSize(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, arg := range args {
		size, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", arg, err)
		}
		fmt.Fprintln(out, util.FormatFileSize(size))
	}
	return nil
}

func runTruncate(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault(cmd)

	front, back, ellipsis := cfg.FrontChars, cfg.BackChars, cfg.Ellipsis
	if cmd.Flags().Changed("front") {
		front, _ = cmd.Flags().GetInt("front")
	}
	if cmd.Flags().Changed("back") {
		back, _ = cmd.Flags().GetInt("back")
	}
	if cmd.Flags().Changed("ellipsis") {
		ellipsis, _ = cmd.Flags().GetString("ellipsis")
	}

	fmt.Fprintln(cmd.OutOrStdout(), util.TruncateStringWith(args[0], front, back, ellipsis))
	return nil
}

func runDate(cmd *cobra.Command, args []string) error {
	unixMS, _ := cmd.Flags().GetBool("unix-ms")
	out := cmd.OutOrStdout()
	for _, arg := range args {
		if !unixMS {
			fmt.Fprintln(out, util.FormatDate(arg))
			continue
		}
		ms, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid epoch milliseconds %q: %w", arg, err)
		}
		fmt.Fprintln(out, util.FormatUnixMilli(ms))
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOrDefault(cmd)

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	entries, err := listing.Read(ctx, dir)
	if err != nil {
		return err
	}

	limit := cfg.ListLimit
	if cmd.Flags().Changed("limit") {
		limit, _ = cmd.Flags().GetInt("limit")
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	rows := make([]listing.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.Row(cfg))
	}

	out := cmd.OutOrStdout()
	jsonMode, _ := cmd.Flags().GetBool("json")
	if jsonMode {
		res := struct {
			Path    string        `json:"path"`
			Count   int           `json:"count"`
			Entries []listing.Row `json:"entries"`
		}{
			Path:    dir,
			Count:   len(rows),
			Entries: rows,
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	plainMode, _ := cmd.Flags().GetBool("plain")
	if plainMode || !isInteractiveTerminal() {
		for _, r := range rows {
			kind := "F"
			if r.IsDir {
				kind = "D"
			}
			fmt.Fprintf(out, "%s\t%-12s\t%-20s\t%s\n", kind, r.Size, r.Date, r.Name)
		}
		return nil
	}

	width := terminalWidth()
	fmt.Fprintln(out, view.Title(dir))
	if len(rows) == 0 {
		fmt.Fprintln(out, view.Help("  (empty directory)"))
		return nil
	}
	for _, r := range rows {
		fmt.Fprintln(out, view.RenderRow(r, width))
	}
	fmt.Fprintln(out, view.Help(fmt.Sprintf("  %d items", len(rows))))
	return nil
}

func loadConfigOrDefault(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not load config, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

func isInteractiveTerminal() bool {
	inInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	outInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (inInfo.Mode()&os.ModeCharDevice) != 0 && (outInfo.Mode()&os.ModeCharDevice) != 0
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

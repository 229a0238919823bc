package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/disposal"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/display"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/errors"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/logger"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/match"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/pairing"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/usercfg"
	"github.com/Hariprajwal/video-gif-pair-cleaner/internal/version"

	"github.com/AlecAivazis/survey/v2"
	"github.com/BurntSushi/toml"
	selfupdate "github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// runConfig is the fully resolved configuration for one run: user config
// overlaid with env vars and then command-line flags.
type runConfig struct {
	TargetDir    string
	DownloadsDir string
	Thresholds   pairing.Thresholds
	UseTrash     bool
	DryRun       bool
	AutoConfirm  bool
	Review       bool
}

var updateCheckCh <-chan version.UpdateCheckResult

var rootCmd = &cobra.Command{
	Use:   "vgpc",
	Short: "Delete .gifs folders together with the videos they were made from",
	Long: `vgpc scans a target directory for folders ending in ".gifs", fuzzy-matches
each one against the video files in a downloads directory, and removes both
members of every confirmed pair. Nothing is deleted without a preview and an
explicit confirmation, and removals go to the trash by default.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)

		name := cmd.Name()
		if name != "update" && name != "version" {
			updateCheckCh = version.StartUpdateCheck()
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if updateCheckCh == nil {
			return
		}
		select {
		case result := <-updateCheckCh:
			if result.NewVersion != "" {
				fmt.Fprintf(os.Stderr, "\n\033[33mA new version of vgpc is available: %s (current: %s)\033[0m\n", result.NewVersion, version.GetShortVersion())
				fmt.Fprintf(os.Stderr, "\033[33mRun 'vgpc update' to upgrade.\033[0m\n")
			}
		case <-time.After(500 * time.Millisecond):
		}
	},
	Run: runClean,
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Preview the pairs that would be removed, without deleting anything",
	Long:  "Run the full matching pipeline and print the pair list, the unmatched folders, and (when nothing matches) diagnostics for the first few folders.",
	Run:   runScan,
}

var debugCmd = &cobra.Command{
	Use:   "debug <folder-name>",
	Short: "Show per-candidate similarity scores for one .gifs folder",
	Long:  "Print the folder's core string and every candidate video scoring at or above the diagnostic floor, so threshold misses can be inspected.",
	Args:  cobra.ExactArgs(1),
	Run:   runDebug,
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure vgpc settings interactively",
	Long:  "Launch a setup wizard to configure the target directory, downloads directory, matching threshold and trash behavior",
	Run:   runSetup,
}

// configCmd provides config management subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vgpc configuration",
	Long:  "Commands for managing vgpc configuration files, migrations, and settings",
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate config file to current schema version",
	Long:  "Load the config file, apply any necessary schema migrations, and save it back to disk with the current schema version",
	Run:   runConfigMigrate,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the path to the configuration file",
	Long:  "Display the path where vgpc looks for its configuration file (XDG-compliant location)",
	Run:   runConfigPath,
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the current configuration",
	Long:  "Display the current effective configuration, including defaults and environment variable overlays",
	Run:   runConfigPrint,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  "Retrieve and display a specific configuration value. Keys: target_dir, downloads_dir, strict_threshold, use_trash",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  "Set a configuration value and save to file. Keys: target_dir, downloads_dir, strict_threshold, use_trash",
	Args:  cobra.ExactArgs(2),
	Run:   runConfigSet,
}

var configDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration health",
	Long:  "Validate configuration file, check for common issues, and suggest fixes",
	Run:   runConfigDoctor,
}

// versionCmd displays version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display version, build information, and platform details for vgpc",
	Run:   runVersion,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Self-update vgpc to the latest release",
	Long:  "Check GitHub Releases for a newer version of vgpc and replace the current binary.",
	Run:   runUpdate,
}

var (
	verbose       bool
	targetFlag    string
	downloadsFlag string
	thresholdFlag string
)

// clean (root) command flags
var (
	dryRunFlag  bool
	yesFlag     bool
	noTrashFlag bool
	reviewFlag  bool
)

// debug command flags
var debugFloorFlag float64

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&targetFlag, "target", "t", "", "Directory scanned for .gifs folders (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&downloadsFlag, "downloads", "d", "", "Directory containing the video files (overrides config)")
	rootCmd.PersistentFlags().StringVar(&thresholdFlag, "threshold", "", "Strict similarity threshold, 0.3-0.95 (overrides config)")

	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Preview only; do not delete anything")
	rootCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the interactive confirmation")
	rootCmd.Flags().BoolVar(&noTrashFlag, "no-trash", false, "Delete permanently instead of moving to trash")
	rootCmd.Flags().BoolVarP(&reviewFlag, "review", "r", false, "Review pairs in an interactive list before removal")

	debugCmd.Flags().Float64Var(&debugFloorFlag, "floor", match.DefaultDiagnosticFloor, "Diagnostic floor; candidates scoring below it are hidden")

	// Add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)

	// Add config subcommands
	configCmd.AddCommand(configMigrateCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configDoctorCmd)

	// Setup graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\n\033[93mOperation cancelled by user.\033[0m")
		os.Exit(0)
	}()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// loadRunConfig resolves the effective run configuration: user config,
// env overlays, then command-line flags.
func loadRunConfig(cmd *cobra.Command) (*runConfig, error) {
	userConfig := usercfg.GetRuntimeConfig()

	cfg := &runConfig{
		TargetDir:    userConfig.TargetDir,
		DownloadsDir: userConfig.DownloadsDir,
		Thresholds:   pairing.FromStrict(userConfig.StrictThreshold),
		UseTrash:     userConfig.TrashEnabled(),
		DryRun:       dryRunFlag,
		AutoConfirm:  yesFlag,
		Review:       reviewFlag,
	}

	if targetFlag != "" {
		cfg.TargetDir = targetFlag
	}
	if downloadsFlag != "" {
		cfg.DownloadsDir = downloadsFlag
	}
	if thresholdFlag != "" {
		strict, err := strconv.ParseFloat(thresholdFlag, 64)
		if err != nil || strict < usercfg.MinThreshold || strict > usercfg.MaxThreshold {
			return nil, errors.NewThresholdError(thresholdFlag)
		}
		cfg.Thresholds = pairing.FromStrict(strict)
	}
	if noTrashFlag {
		cfg.UseTrash = false
	}

	if cfg.TargetDir == "" || cfg.DownloadsDir == "" {
		return nil, errors.NewNotConfiguredError()
	}

	logger.Config("target=%s downloads=%s strict=%.2f relaxed=%.2f trash=%v",
		cfg.TargetDir, cfg.DownloadsDir, cfg.Thresholds.Strict, cfg.Thresholds.Relaxed, cfg.UseTrash)
	return cfg, nil
}

// scanForPairs runs the listing/indexing/matching pipeline once.
func scanForPairs(cfg *runConfig) ([]pairing.Source, []pairing.Pair, error) {
	sources, err := pairing.ListSources(cfg.TargetDir)
	if err != nil {
		return nil, nil, err
	}

	index, err := pairing.BuildIndex(cfg.DownloadsDir)
	if err != nil {
		return nil, nil, err
	}

	pairs := pairing.GatherPairs(sources, index, cfg.Thresholds)
	return sources, pairs, nil
}

// printNoPairsDiagnostics mirrors the scan report when nothing matched:
// the first few folders get a per-candidate score dump so the user can
// see how close the misses were.
func printNoPairsDiagnostics(cfg *runConfig, sources []pairing.Source) {
	fmt.Println("\033[93mNo matching pairs found with the current thresholds.\033[0m")
	if len(sources) == 0 {
		return
	}

	index, err := pairing.BuildIndex(cfg.DownloadsDir)
	if err != nil {
		return
	}

	limit := len(sources)
	if limit > 3 {
		limit = 3
	}
	fmt.Println("Diagnostics for the first folders:")
	for _, source := range sources[:limit] {
		core, scores := match.Explain(source.Name, index, match.DefaultDiagnosticFloor)
		fmt.Print(display.RenderDiagnostics(source.Name, core, scores))
	}
}

func runClean(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		log.Fatalf("%v", err)
	}

	sources, pairs, err := scanForPairs(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if len(sources) == 0 {
		fmt.Printf("\033[93mNo %s folders found in %s.\033[0m\n", pairing.MarkerSuffix, cfg.TargetDir)
		return
	}
	if len(pairs) == 0 {
		printNoPairsDiagnostics(cfg, sources)
		return
	}

	fmt.Print(display.RenderPairs(pairs))
	if out := display.RenderUnmatched(pairing.Unmatched(sources, pairs)); out != "" {
		fmt.Print(out)
	}

	if cfg.DryRun {
		fmt.Print(display.RenderSummary(display.Summary{DryRun: true}))
		return
	}

	if cfg.Review {
		kept, err := reviewPairs(pairs)
		if err != nil {
			fmt.Println("\n\033[93mReview cancelled; nothing was removed.\033[0m")
			return
		}
		pairs = kept
		if len(pairs) == 0 {
			fmt.Println("\033[93mNothing selected; nothing was removed.\033[0m")
			return
		}
	}

	if !cfg.AutoConfirm && !cfg.Review {
		var confirmed bool
		mode := "moved to the trash"
		if !cfg.UseTrash {
			mode = "PERMANENTLY deleted"
		}
		if err := survey.AskOne(&survey.Confirm{
			Message: fmt.Sprintf("Remove %d pair(s)? Both folders and videos will be %s.", len(pairs), mode),
			Default: false,
		}, &confirmed); err != nil || !confirmed {
			fmt.Println("\033[93mDeletion cancelled by user.\033[0m")
			return
		}
	}

	disposer, err := disposal.ForConfig(cfg.UseTrash)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Print(display.RenderSummary(disposePairs(pairs, disposer)))
}

// disposePairs removes both members of each pair, folder first. A
// failed folder removal skips the video so a half-deleted pair never
// loses the evidence of what matched it.
func disposePairs(pairs []pairing.Pair, disposer disposal.Disposer) display.Summary {
	summary := display.Summary{Label: disposer.Label()}
	for _, pair := range pairs {
		folderSize := pathSize(pair.SourcePath)
		if err := disposer.Dispose(pair.SourcePath); err != nil {
			logger.Error("failed to remove folder %s: %v", pair.SourcePath, err)
			fmt.Printf("\033[91m✗ %s\033[0m\n", err)
			summary.Failures++
			continue
		}
		summary.FoldersDisposed++
		summary.BytesFreed += folderSize
		fmt.Printf("\033[92m✓ Folder %s %s\033[0m\n", pair.SourceName, disposer.Label())

		videoSize := pathSize(pair.VideoPath)
		if err := disposer.Dispose(pair.VideoPath); err != nil {
			logger.Error("failed to remove video %s: %v", pair.VideoPath, err)
			fmt.Printf("\033[91m✗ %s\033[0m\n", err)
			summary.Failures++
			continue
		}
		summary.VideosDisposed++
		summary.BytesFreed += videoSize
		fmt.Printf("\033[92m✓ Video %s %s\033[0m\n", pair.VideoName, disposer.Label())
	}
	return summary
}

// pathSize sums the file sizes under path. Best effort; unreadable
// entries count as zero so disposal is never blocked by accounting.
func pathSize(path string) int64 {
	var total int64
	filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}

func runScan(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		log.Fatalf("%v", err)
	}

	sources, pairs, err := scanForPairs(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if len(sources) == 0 {
		fmt.Printf("\033[93mNo %s folders found in %s.\033[0m\n", pairing.MarkerSuffix, cfg.TargetDir)
		return
	}
	if len(pairs) == 0 {
		printNoPairsDiagnostics(cfg, sources)
		return
	}

	fmt.Print(display.RenderPairs(pairs))
	if out := display.RenderUnmatched(pairing.Unmatched(sources, pairs)); out != "" {
		fmt.Print(out)
	}
	fmt.Println("\033[93mScan only — nothing was removed. Run 'vgpc' to clean these pairs.\033[0m")
}

func runDebug(cmd *cobra.Command, args []string) {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		log.Fatalf("%v", err)
	}

	index, err := pairing.BuildIndex(cfg.DownloadsDir)
	if err != nil {
		log.Fatalf("%v", err)
	}

	folder := args[0]
	core, scores := match.Explain(folder, index, debugFloorFlag)
	fmt.Print(display.RenderDiagnostics(folder, core, scores))

	result := match.SelectBest(folder, index, cfg.Thresholds.Strict, cfg.Thresholds.Relaxed)
	if result.Empty() {
		fmt.Println("  no candidate clears the thresholds")
		return
	}
	fmt.Printf("  BEST MATCH: %s (score %.2f)\n", result.Name, result.Score)
}

func runSetup(cmd *cobra.Command, args []string) {
	fmt.Println("vgpc Setup Wizard")
	fmt.Println("=================")

	currentConfig := usercfg.GetRuntimeConfig()
	newConfig := currentConfig
	isFirstRun := !usercfg.IsConfigured()

	if isFirstRun {
		fmt.Println("Welcome! Let's configure vgpc for your directories.")
		fmt.Println()
	} else {
		fmt.Printf("Existing config found at %s — modifying.\n\n", usercfg.Path())
		fmt.Printf("  Target directory: %s\n", currentConfig.TargetDir)
		fmt.Printf("  Downloads directory: %s\n", currentConfig.DownloadsDir)
		fmt.Printf("  Strict threshold: %.2f\n", currentConfig.StrictThreshold)
		fmt.Printf("  Use trash: %v\n", currentConfig.TrashEnabled())
		fmt.Println()
	}

	var targetDir string
	if err := survey.AskOne(&survey.Input{
		Message: "Directory scanned for .gifs folders:",
		Default: currentConfig.TargetDir,
	}, &targetDir, survey.WithValidator(survey.Required)); err != nil {
		fmt.Println("Setup cancelled")
		return
	}
	newConfig.TargetDir = strings.TrimSpace(targetDir)

	var downloadsDir string
	if err := survey.AskOne(&survey.Input{
		Message: "Directory containing the video files:",
		Default: currentConfig.DownloadsDir,
	}, &downloadsDir, survey.WithValidator(survey.Required)); err != nil {
		fmt.Println("Setup cancelled")
		return
	}
	newConfig.DownloadsDir = strings.TrimSpace(downloadsDir)

	var thresholdInput string
	if err := survey.AskOne(&survey.Input{
		Message: "Strict similarity threshold (0.3-0.95):",
		Default: fmt.Sprintf("%.2f", currentConfig.StrictThreshold),
	}, &thresholdInput, survey.WithValidator(func(ans interface{}) error {
		s, _ := ans.(string)
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || v < usercfg.MinThreshold || v > usercfg.MaxThreshold {
			return fmt.Errorf("enter a number between %.2f and %.2f", usercfg.MinThreshold, usercfg.MaxThreshold)
		}
		return nil
	})); err != nil {
		fmt.Println("Setup cancelled")
		return
	}
	threshold, _ := strconv.ParseFloat(strings.TrimSpace(thresholdInput), 64)
	newConfig.StrictThreshold = threshold

	var useTrash bool
	if err := survey.AskOne(&survey.Confirm{
		Message: "Move removed items to the trash instead of deleting permanently?",
		Default: currentConfig.TrashEnabled(),
	}, &useTrash); err != nil {
		fmt.Println("Setup cancelled")
		return
	}
	newConfig.UseTrash = &useTrash

	if err := usercfg.Save(newConfig); err != nil {
		log.Fatalf("%v", errors.WrapWithContext(err, "config_save"))
	}
	fmt.Printf("\n\033[92mConfiguration saved to %s\033[0m\n", usercfg.Path())
}

func runConfigMigrate(cmd *cobra.Command, args []string) {
	if err := usercfg.MigrateAndSave(); err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}
}

func runConfigPath(cmd *cobra.Command, args []string) {
	fmt.Println(usercfg.Path())
}

func runConfigPrint(cmd *cobra.Command, args []string) {
	config := usercfg.GetRuntimeConfig()
	encoder := toml.NewEncoder(os.Stdout)
	if err := encoder.Encode(config); err != nil {
		log.Fatalf("Failed to encode config: %v", err)
	}
}

func runConfigGet(cmd *cobra.Command, args []string) {
	config := usercfg.GetRuntimeConfig()
	switch args[0] {
	case "target_dir":
		fmt.Println(config.TargetDir)
	case "downloads_dir":
		fmt.Println(config.DownloadsDir)
	case "strict_threshold":
		fmt.Printf("%.2f\n", config.StrictThreshold)
	case "use_trash":
		fmt.Println(config.TrashEnabled())
	default:
		fmt.Printf("Unknown key %q. Keys: target_dir, downloads_dir, strict_threshold, use_trash\n", args[0])
		os.Exit(1)
	}
}

func runConfigSet(cmd *cobra.Command, args []string) {
	key, value := args[0], args[1]

	config, err := usercfg.Load()
	if err != nil && err != usercfg.ErrNotConfigured {
		log.Fatalf("%v", err)
	}

	switch key {
	case "target_dir":
		config.TargetDir = value
	case "downloads_dir":
		config.DownloadsDir = value
	case "strict_threshold":
		threshold, err := strconv.ParseFloat(value, 64)
		if err != nil || threshold < usercfg.MinThreshold || threshold > usercfg.MaxThreshold {
			log.Fatalf("%v", errors.NewThresholdError(value))
		}
		config.StrictThreshold = threshold
	case "use_trash":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			log.Fatalf("use_trash must be true or false, got %q", value)
		}
		config.UseTrash = &enabled
	default:
		fmt.Printf("Unknown key %q. Keys: target_dir, downloads_dir, strict_threshold, use_trash\n", key)
		os.Exit(1)
	}

	if err := usercfg.Save(config); err != nil {
		log.Fatalf("%v", errors.WrapWithContext(err, "config_save"))
	}
	fmt.Printf("Set %s = %s\n", key, value)
}

func runConfigDoctor(cmd *cobra.Command, args []string) {
	fmt.Println("vgpc configuration health check")
	fmt.Println("===============================")

	problems := 0

	if usercfg.IsConfigured() {
		fmt.Println("✅ Configuration found")
	} else {
		fmt.Println("❌ No configuration file or environment variables")
		fmt.Println("   Run: vgpc setup")
		problems++
	}

	config := usercfg.GetRuntimeConfig()

	checkDir := func(label, dir string) {
		if dir == "" {
			fmt.Printf("❌ %s is not set\n", label)
			problems++
			return
		}
		info, err := os.Stat(dir)
		switch {
		case err != nil:
			fmt.Printf("❌ %s %s is not accessible: %v\n", label, dir, err)
			problems++
		case !info.IsDir():
			fmt.Printf("❌ %s %s is not a directory\n", label, dir)
			problems++
		default:
			fmt.Printf("✅ %s: %s\n", label, dir)
		}
	}
	checkDir("Target directory", config.TargetDir)
	checkDir("Downloads directory", config.DownloadsDir)

	if config.StrictThreshold >= usercfg.MinThreshold && config.StrictThreshold <= usercfg.MaxThreshold {
		fmt.Printf("✅ Strict threshold: %.2f (relaxed: %.2f)\n",
			config.StrictThreshold, pairing.FromStrict(config.StrictThreshold).Relaxed)
	} else {
		fmt.Printf("❌ Strict threshold %.2f outside [%.2f, %.2f]\n",
			config.StrictThreshold, usercfg.MinThreshold, usercfg.MaxThreshold)
		problems++
	}

	if config.TrashEnabled() {
		if _, err := disposal.NewTrash(); err != nil {
			fmt.Printf("❌ Trash directory not usable: %v\n", err)
			fmt.Println("   Run with --no-trash, or: vgpc config set use_trash false")
			problems++
		} else {
			fmt.Println("✅ Trash directory usable")
		}
	} else {
		fmt.Println("⚠️  Trash disabled — removals are permanent")
	}

	fmt.Println()
	if problems == 0 {
		fmt.Println("\033[92mEverything looks good.\033[0m")
	} else {
		fmt.Printf("\033[93m%d problem(s) found.\033[0m\n", problems)
		os.Exit(1)
	}
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(version.GetVersionString())

	// Check for available updates (synchronous since user is asking about version)
	ch := version.StartUpdateCheck()
	select {
	case result := <-ch:
		if result.NewVersion != "" {
			fmt.Printf("\n\033[33mUpdate available: %s (current: %s)\033[0m\n", result.NewVersion, version.GetShortVersion())
			fmt.Println("\033[33mRun 'vgpc update' to upgrade.\033[0m")
		}
	case <-time.After(5 * time.Second):
		// Don't block forever if GitHub is slow
	}
}

func runUpdate(cmd *cobra.Command, args []string) {
	current := version.GetShortVersion()
	if current == "dev" {
		fmt.Println("Cannot self-update a dev build. Install a released version first.")
		return
	}

	source, err := version.NewPublicGitHubSource()
	if err != nil {
		fmt.Printf("Failed to create update source: %v\n", err)
		return
	}

	updater, err := selfupdate.NewUpdater(selfupdate.Config{
		Source:    source,
		Validator: &selfupdate.ChecksumValidator{UniqueFilename: "checksums.txt"},
	})
	if err != nil {
		fmt.Printf("Failed to create updater: %v\n", err)
		return
	}

	fmt.Printf("Current version: %s\nChecking for updates...\n", current)

	latest, found, err := updater.DetectLatest(context.Background(), selfupdate.ParseSlug(version.GitHubSlug()))
	if err != nil {
		fmt.Printf("Update check failed: %v\n", err)
		return
	}
	if !found {
		fmt.Println("No release found for your OS/architecture.")
		return
	}

	if latest.LessOrEqual(current) {
		fmt.Println("Already up to date.")
		return
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		fmt.Printf("Could not locate executable: %v\n", err)
		return
	}

	if err := updater.UpdateTo(context.Background(), latest, exe); err != nil {
		fmt.Printf("Update failed: %v\n", err)
		return
	}

	fmt.Printf("Updated to %s\n", latest.Version())
}

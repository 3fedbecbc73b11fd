package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"typoscout/internal/analyzer"
	"typoscout/internal/config"
	"typoscout/internal/git"
	"typoscout/internal/history"
	"typoscout/internal/report"
	"typoscout/internal/scorer"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

const VERSION = "1.0.0"
const PROJECT_NAME = "TypoScout"

// ASCII scout art
const SCOUT_ART = `
    🔎 TypoScout 🔎

   recieve → receive
   lenght  → length
   widht   → width

  Scout Your Identifiers
`

const MINI_SCOUT = `🔎`

func main() {
	var (
		help     = flag.Bool("help", false, "Show help message")
		h        = flag.Bool("h", false, "Show help message (short)")
		version  = flag.Bool("version", false, "Show version information")
		v        = flag.Bool("v", false, "Show version information (short)")
		showLogo = flag.Bool("logo", false, "Show TypoScout ASCII art")

		// Report flags (default to false to be opt-in)
		runCheck    = flag.Bool("check", false, "List every flagged identifier with its corrected spelling")
		showFiles   = flag.Bool("files", false, "Show file leaderboard (most typo-dense files)")
		showAuthors = flag.Bool("authors", false, "Show author leaderboard (most identifier typos)")
		showWords   = flag.Bool("words", false, "Show word leaderboard (most common misspellings)")
		showSummary = flag.Bool("summary", false, "Show analysis summary")

		showAll = flag.Bool("all", false, "Show all reports")

		// Configuration flags
		topN           = flag.Int("top", 15, "Number of entries to show in leaderboards")
		threshold      = flag.Float64("threshold", -1, "Confidence threshold for suggestions (0..1, overrides config)")
		candidates     = flag.Int("candidates", 0, "Max correction candidates per token (overrides config)")
		dictionary     = flag.String("dictionary", "", "Path to a word frequency dictionary (overrides config)")
		configFile     = flag.String("config", "", "Path to configuration file")
		generateConfig = flag.Bool("generate-config", false, "Generate a sample configuration file")
		showConfig     = flag.Bool("show-config", false, "Show current configuration and exit")

		// Advanced flags
		enableCache = flag.Bool("cache", true, "Cache git blame results for better performance")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
		quiet       = flag.Bool("quiet", false, "Suppress non-essential output")

		// History logging flags
		logHistory = flag.Bool("log-history", false, "Enable logging of report data to CSV files")
		logDir     = flag.String("log-dir", ".typoscout/history", "Directory to save report CSV logs")
	)

	flag.Usage = showUsage
	flag.Parse()

	if *help || *h {
		showUsage()
		return
	}

	if *version || *v {
		showVersion()
		return
	}

	if *showLogo {
		showScoutArt()
		return
	}

	if *generateConfig {
		filename := ".typoscout.rc"
		if err := config.GenerateConfigFile(filename); err != nil {
			log.Fatalf("Failed to generate config file: %v", err)
		}
		fmt.Printf("✅ Generated configuration file: %s\n", filename)
		return
	}

	if *showAll {
		*runCheck = true
		*showFiles = true
		*showAuthors = true
		*showWords = true
		*showSummary = true
	}

	// Check if any action was requested by the user.
	actionRequested := *runCheck || *showFiles || *showAuthors || *showWords ||
		*showSummary || *showConfig

	// A bare positional directory means "check it".
	if !actionRequested {
		if len(flag.Args()) == 0 {
			showUsage()
			return
		}
		*runCheck = true
	}

	if !*quiet {
		fmt.Print(color.CyanString(SCOUT_ART))
	}

	// Load configuration
	var cfg *config.Config
	var err error

	if *configFile != "" {
		cfg, err = config.LoadConfigFromFile(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config file %s: %v", *configFile, err)
		}
	} else {
		cfg, err = config.LoadConfig()
		if err != nil {
			if !*quiet {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
			}
			cfg = config.NewConfig()
		}
	}

	// Apply config overrides
	if *threshold >= 0 {
		if *threshold > 1 {
			log.Fatalf("Invalid --threshold %v: want a value in [0,1]", *threshold)
		}
		cfg.ConfidenceThreshold = *threshold
	}
	if *candidates > 0 {
		cfg.MaxCandidates = *candidates
	}
	if *dictionary != "" {
		cfg.DictionaryPath = *dictionary
	}
	cfg.CacheResults = *enableCache

	if *showConfig {
		cfg.PrintSummary()
		return
	}

	// Handle positional arguments (directory path)
	args := flag.Args()
	if len(args) > 0 {
		targetDir := args[0]
		absPath, err := filepath.Abs(targetDir)
		if err != nil {
			log.Fatalf("Failed to resolve path %s: %v", targetDir, err)
		}

		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			log.Fatalf("Directory does not exist: %s", absPath)
		}

		if err := os.Chdir(absPath); err != nil {
			log.Fatalf("Failed to change to directory %s: %v", absPath, err)
		}

		if !*quiet {
			fmt.Printf("%s Scouting repository in: %s\n", MINI_SCOUT, absPath)
		}
	}

	// Validate git repository
	if err := git.ValidateRepository(); err != nil {
		log.Fatal("Not in a git repository. Please run from within a git repository or specify a valid git repository path.")
	}

	git.SetCaching(cfg.CacheResults)

	// Show configuration summary if verbose
	if *verbose && !*quiet {
		cfg.PrintSummary()
		fmt.Println()
	}

	// Get tracked files
	trackedFiles, err := git.GetTrackedFiles()
	if err != nil {
		log.Fatal("Failed to get tracked files:", err)
	}

	checkable := 0
	for file := range trackedFiles {
		if cfg.ShouldCheckFile(file) {
			checkable++
		}
	}

	if *verbose && !*quiet {
		fmt.Printf("📁 Found %d tracked files (%d checkable)\n", len(trackedFiles), checkable)
	}

	if !*quiet {
		fmt.Printf("%s %s\n", MINI_SCOUT, color.BlueString("Checking identifiers..."))
	}

	wordScorer, err := scorer.New(cfg)
	if err != nil {
		log.Fatal("Failed to build scorer:", err)
	}

	var bar *progressbar.ProgressBar
	var progress func()
	if !*quiet && checkable > 0 {
		bar = progressbar.Default(int64(checkable))
		progress = func() { bar.Add(1) }
	}

	a := analyzer.New(wordScorer, cfg)
	reports, authorStats, warningLogs, err := a.AnalyzeRepository(trackedFiles, progress)
	if err != nil {
		log.Fatal("Analysis failed:", err)
	}
	if bar != nil {
		bar.Finish()
	}

	totalFlagged := 0
	for _, r := range reports {
		totalFlagged += r.TypoIdentifiers
	}

	if !*quiet {
		if totalFlagged == 0 {
			fmt.Printf("%s %s\n", MINI_SCOUT, color.GreenString("Clean codebase - no identifier typos found!"))
		} else {
			fmt.Printf("📊 %d suspicious identifiers collected.\n", totalFlagged)
		}
		fmt.Println(strings.Repeat("─", 50))
	}

	if *runCheck && totalFlagged > 0 {
		fmt.Println()
		report.PrintCheckResults(reports, *verbose)
		if *logHistory {
			if err := history.WriteIssuesCSV(*logDir, reports); err != nil {
				fmt.Printf("❌ Failed to log issues: %v\n", err)
			} else if !*quiet {
				fmt.Printf("✅ Issues logged to %s\n", *logDir)
			}
		}
	}

	if *showFiles {
		fmt.Println()
		report.PrintFileLeaderboard(reports, *topN)
		if *logHistory {
			if err := history.WriteFileReportCSV(*logDir, reports); err != nil {
				fmt.Printf("❌ Failed to log file report: %v\n", err)
			} else if !*quiet {
				fmt.Printf("✅ File report logged to %s\n", *logDir)
			}
		}
	}

	if *showAuthors {
		fmt.Println()
		authorEntries := report.GenerateAuthorLeaderboard(authorStats)
		report.PrintAuthorLeaderboard(authorEntries, *topN)
		if *logHistory {
			if err := history.WriteAuthorReportCSV(*logDir, authorEntries); err != nil {
				fmt.Printf("❌ Failed to log author report: %v\n", err)
			} else if !*quiet {
				fmt.Printf("✅ Author report logged to %s\n", *logDir)
			}
		}
	}

	if *showWords {
		fmt.Println()
		wordEntries := report.GenerateWordLeaderboard(reports)
		report.PrintWordLeaderboard(wordEntries, *topN)
		if *logHistory {
			if err := history.WriteWordReportCSV(*logDir, wordEntries); err != nil {
				fmt.Printf("❌ Failed to log word report: %v\n", err)
			} else if !*quiet {
				fmt.Printf("✅ Word report logged to %s\n", *logDir)
			}
		}
	}

	if *showSummary {
		fmt.Println()
		report.PrintSummary(reports, authorStats)
	}

	if len(warningLogs) > 0 && !*quiet {
		fmt.Printf("\n%s %s\n", MINI_SCOUT, color.YellowString("Scouting Warnings:"))
		for _, warn := range warningLogs {
			fmt.Printf("  %s\n", color.New(color.FgHiBlack).Sprint(warn))
		}
	}

	if *verbose {
		fmt.Printf("\n%s %s\n", MINI_SCOUT, color.GreenString("Scouting completed successfully!"))
	}
}

func showScoutArt() {
	fmt.Print(color.CyanString(`
       🔎 TypoScout 🔎

      ╭───────────────╮
      │  recieveBuf?  │
      │      ↓        │
      │  receiveBuf   │
      ╰───────────────╯

   Scout Your Identifiers
     for Hidden Typos

    🔎 Find Misspellings
    ✂️  Suggest Rewrites
    📊 Rank the Damage
    📈 Blame the Authors
`))

	fmt.Println(color.New(color.Bold).Sprint("\nTypoScout v" + VERSION))
	fmt.Println("Your identifier spelling scout")
}

func showVersion() {
	fmt.Printf("%s %s v%s\n", MINI_SCOUT, PROJECT_NAME, VERSION)
	fmt.Printf("An identifier typo scout for git repositories\n")
	fmt.Printf("Splits identifiers, spots misspelled sub-tokens, rebuilds the fix\n")
	fmt.Printf("Built with Go - https://github.com/your-org/typoscout\n")
}

func showUsage() {
	fmt.Print(color.CyanString(SCOUT_ART))
	fmt.Printf("%s\n", color.New(color.Bold).Sprint("TypoScout - Scout Your Identifiers for Typos"))
	fmt.Printf("\n%s\n", color.BlueString("USAGE:"))
	fmt.Printf("  %s [OPTIONS] [DIRECTORY]\n\n", os.Args[0])

	fmt.Printf("%s\n", color.BlueString("ARGUMENTS:"))
	fmt.Printf("  DIRECTORY              Target git repository directory (default: current directory)\n\n")

	fmt.Printf("%s\n", color.BlueString("REPORTS:"))
	fmt.Printf("  🔎 --check             List every flagged identifier with its corrected spelling\n")
	fmt.Printf("  🔎 --files             File leaderboard (most typo-dense files)\n")
	fmt.Printf("  🔎 --authors           Author leaderboard (most identifier typos)\n")
	fmt.Printf("  🔎 --words             Word leaderboard (most common misspellings)\n")
	fmt.Printf("  🔎 --summary           Analysis summary\n")
	fmt.Printf("  🔎 --all               All of the above\n\n")

	fmt.Printf("%s\n", color.BlueString("CONFIGURATION OPTIONS:"))
	fmt.Printf("  --config FILE          Path to configuration file (.typoscout.rc)\n")
	fmt.Printf("  --generate-config      Generate a sample configuration file\n")
	fmt.Printf("  --show-config          Show current configuration and exit\n")
	fmt.Printf("  --top N                Number of entries to show in leaderboards (default: 15)\n")
	fmt.Printf("  --threshold T          Confidence threshold for suggestions (0..1)\n")
	fmt.Printf("  --candidates N         Max correction candidates per token\n")
	fmt.Printf("  --dictionary FILE      Word frequency dictionary (\"word count\" per line)\n\n")

	fmt.Printf("%s\n", color.BlueString("DISPLAY OPTIONS:"))
	fmt.Printf("  --logo                 Show TypoScout ASCII art\n")
	fmt.Printf("  --cache                Cache git blame results (default: true)\n")
	fmt.Printf("  --verbose              Enable verbose output (per-token candidates)\n")
	fmt.Printf("  --quiet                Suppress non-essential output\n\n")

	fmt.Printf("%s\n", color.BlueString("HISTORY LOGGING OPTIONS:"))
	fmt.Printf("  --log-history          Enable logging of report data to CSV files\n")
	fmt.Printf("  --log-dir DIR          Directory to save report CSV logs (default: .typoscout/history)\n\n")

	fmt.Printf("%s\n", color.BlueString("OTHER OPTIONS:"))
	fmt.Printf("  -h, --help             Show this help message\n")
	fmt.Printf("  -v, --version          Show version information\n\n")

	fmt.Printf("%s\n", color.BlueString("EXAMPLES:"))
	fmt.Printf("  %s --all                              # Every report at once\n", os.Args[0])
	fmt.Printf("  %s                                     # Show help message\n", os.Args[0])
	fmt.Printf("  %s /path/to/repo --check              # Scout a specific repository\n", os.Args[0])
	fmt.Printf("  %s --authors --words                  # Who misspells what\n", os.Args[0])
	fmt.Printf("  %s --check --threshold 0.8            # Only confident corrections\n", os.Args[0])
	fmt.Printf("  %s --generate-config                  # Create .typoscout.rc file\n\n", os.Args[0])

	fmt.Printf("%s\n", color.BlueString("CONFIGURATION FILE:"))
	fmt.Printf("  TypoScout looks for configuration files in this order:\n")
	fmt.Printf("  1. .typoscout.rc\n")
	fmt.Printf("  2. .typoscout.config\n")
	fmt.Printf("  3. typoscout.config\n\n")

	fmt.Printf("  Use --generate-config to create a sample configuration file.\n")
}

// Package main provides the CLI entrypoint for vigcrack.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/vigcrack/internal/alphabet"
	"github.com/verte-zerg/vigcrack/internal/browse"
	"github.com/verte-zerg/vigcrack/internal/config"
	"github.com/verte-zerg/vigcrack/internal/corpus"
	"github.com/verte-zerg/vigcrack/internal/crack"
	"github.com/verte-zerg/vigcrack/internal/freq"
	"github.com/verte-zerg/vigcrack/internal/keygen"
	"github.com/verte-zerg/vigcrack/internal/model"
	"github.com/verte-zerg/vigcrack/internal/report"
	"github.com/verte-zerg/vigcrack/internal/store"
)

const (
	defaultAlphabet  = "en"
	defaultMaxKeyLen = 20
	defaultTop       = 5
	defaultPreview   = 200
)

var (
	crackAlphabet  string
	crackReference string
	crackMaxKeyLen int
	crackKeyLen    int
	crackTop       int
	crackPreview   int
	crackNoHistory bool

	inputText string
	inputFile string

	keylenPlot bool

	cipherKey       string
	cipherRandomKey int

	browseRunID int64

	historyMode     string
	historyAlphabet string
	historySince    string
	historyLast     int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vigcrack",
		Short:         "Statistical Caesar and Vigenère cryptanalysis",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newSweepCmd())
	rootCmd.AddCommand(newCrackCmd())
	rootCmd.AddCommand(newKeylenCmd())
	rootCmd.AddCommand(newEncryptCmd())
	rootCmd.AddCommand(newDecryptCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newAlphabetsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&inputText, "text", "", "input text (default: --file or stdin)")
	cmd.Flags().StringVar(&inputFile, "file", "", "read input text from file")
}

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&crackAlphabet, "alphabet", defaultAlphabet, "alphabet preset or custom:<chars>")
	cmd.Flags().StringVar(&crackReference, "reference", "", "reference corpus file (default: built-in English for en)")
	cmd.Flags().IntVar(&crackTop, "top", defaultTop, "number of candidates to print (0 for all)")
	cmd.Flags().IntVar(&crackPreview, "preview", defaultPreview, "plaintext preview width")
	cmd.Flags().BoolVar(&crackNoHistory, "no-history", false, "do not record the run in history")
	addInputFlags(cmd)
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Break a Vigenère ciphertext trying every key length up to a bound",
		Args:  cobra.NoArgs,
		RunE:  runSweepCmd,
	}
	addAnalysisFlags(cmd)
	cmd.Flags().IntVar(&crackMaxKeyLen, "max-key-len", defaultMaxKeyLen, "largest key length to try")
	return cmd
}

func runSweepCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveCrackConfig(cmd)
	if err != nil {
		return err
	}
	a, expected, err := loadReference(cfg)
	if err != nil {
		return err
	}
	text, err := readCiphertext(cmd, a)
	if err != nil {
		return err
	}

	candidates, err := crack.BreakSweep(text, expected, cfg.MaxKeyLen)
	if err != nil {
		return fmt.Errorf("failed to break ciphertext: %w", err)
	}
	ranked := report.Ranked(candidates)
	if err := report.RenderCandidates(cmd.OutOrStdout(), ranked, cfg.Top, cfg.Preview); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.History {
		saveRun(cmd.Context(), model.Run{
			Mode:       model.ModeSweep,
			Alphabet:   cfg.Alphabet,
			Reference:  cfg.Reference,
			KeyLen:     cfg.MaxKeyLen,
			TextLength: len(text),
		}, ranked)
	}
	return nil
}

func newCrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Break a Vigenère ciphertext with a known key length",
		Args:  cobra.NoArgs,
		RunE:  runCrackCmd,
	}
	addAnalysisFlags(cmd)
	cmd.Flags().IntVar(&crackKeyLen, "key-len", 0, "key length (1 breaks a Caesar cipher)")
	return cmd
}

func runCrackCmd(cmd *cobra.Command, _ []string) error {
	if crackKeyLen <= 0 {
		return fmt.Errorf("--key-len must be > 0")
	}
	cfg, err := resolveCrackConfig(cmd)
	if err != nil {
		return err
	}
	cfg.KeyLen = crackKeyLen
	a, expected, err := loadReference(cfg)
	if err != nil {
		return err
	}
	text, err := readCiphertext(cmd, a)
	if err != nil {
		return err
	}

	key, plaintext, err := crack.BreakFixedLength(text, expected, cfg.KeyLen)
	if err != nil {
		return fmt.Errorf("failed to break ciphertext: %w", err)
	}
	plain, err := a.EncodeText(plaintext)
	if err != nil {
		return fmt.Errorf("failed to score plaintext: %w", err)
	}
	score := freq.ChiSquared(plain, expected)
	if err := report.RenderFixed(cmd.OutOrStdout(), key, plaintext, score); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.History {
		saveRun(cmd.Context(), model.Run{
			Mode:       model.ModeFixed,
			Alphabet:   cfg.Alphabet,
			Reference:  cfg.Reference,
			KeyLen:     cfg.KeyLen,
			TextLength: len(text),
		}, []model.Candidate{{
			Rank:      1,
			Score:     score,
			Key:       key,
			KeyLength: cfg.KeyLen,
			Plaintext: plaintext,
		}})
	}
	return nil
}

func newKeylenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keylen",
		Short: "Rank likely key lengths by average index of coincidence",
		Args:  cobra.NoArgs,
		RunE:  runKeylenCmd,
	}
	cmd.Flags().StringVar(&crackAlphabet, "alphabet", defaultAlphabet, "alphabet preset or custom:<chars>")
	cmd.Flags().IntVar(&crackMaxKeyLen, "max-key-len", defaultMaxKeyLen, "largest key length to score")
	cmd.Flags().IntVar(&crackTop, "top", defaultTop, "number of key lengths to print (0 for all)")
	cmd.Flags().BoolVar(&keylenPlot, "plot", false, "draw a bar plot of every key length")
	addInputFlags(cmd)
	return cmd
}

func runKeylenCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveCrackConfig(cmd)
	if err != nil {
		return err
	}
	a, err := alphabet.Lookup(cfg.Alphabet)
	if err != nil {
		return err
	}
	text, err := readCiphertext(cmd, a)
	if err != nil {
		return err
	}
	scores, err := crack.GuessKeyLength(text, cfg.MaxKeyLen)
	if err != nil {
		return fmt.Errorf("failed to score key lengths: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := report.RenderKeyLengths(out, scores, cfg.Top); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if keylenPlot {
		if _, err := fmt.Fprintln(out); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if err := report.PlotKeyLengths(out, scores, 0); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newEncryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with a Vigenère key",
		Args:  cobra.NoArgs,
		RunE:  runEncryptCmd,
	}
	cmd.Flags().StringVar(&crackAlphabet, "alphabet", defaultAlphabet, "alphabet preset or custom:<chars>")
	cmd.Flags().StringVar(&cipherKey, "key", "", "encryption key")
	cmd.Flags().IntVar(&cipherRandomKey, "random-key", 0, "generate a random key of this length")
	addInputFlags(cmd)
	return cmd
}

func runEncryptCmd(cmd *cobra.Command, _ []string) error {
	a, text, err := cipherInput(cmd)
	if err != nil {
		return err
	}
	key := cipherKey
	if cipherRandomKey > 0 {
		if key != "" {
			return fmt.Errorf("--key and --random-key are mutually exclusive")
		}
		key, err = keygen.New().Key(a, cipherRandomKey)
		if err != nil {
			return err
		}
		logErrf("Key: %s\n", key)
	}
	if key == "" {
		return fmt.Errorf("--key or --random-key is required")
	}
	enc, err := crack.Encrypt(a, text, key)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), a.DecodeText(enc)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newDecryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt text with a known Vigenère key",
		Args:  cobra.NoArgs,
		RunE:  runDecryptCmd,
	}
	cmd.Flags().StringVar(&crackAlphabet, "alphabet", defaultAlphabet, "alphabet preset or custom:<chars>")
	cmd.Flags().StringVar(&cipherKey, "key", "", "decryption key")
	addInputFlags(cmd)
	return cmd
}

func runDecryptCmd(cmd *cobra.Command, _ []string) error {
	if cipherKey == "" {
		return fmt.Errorf("--key is required")
	}
	a, text, err := cipherInput(cmd)
	if err != nil {
		return err
	}
	dec, err := crack.Decrypt(a, text, cipherKey)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), a.DecodeText(dec)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func cipherInput(cmd *cobra.Command) (*alphabet.Alphabet, alphabet.Text, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "alphabet", &crackAlphabet, fileCfg.Crack.Alphabet)
	a, err := alphabet.Lookup(crackAlphabet)
	if err != nil {
		return nil, nil, err
	}
	text, err := readCiphertext(cmd, a)
	if err != nil {
		return nil, nil, err
	}
	return a, text, nil
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse sweep candidates interactively",
		Args:  cobra.NoArgs,
		RunE:  runBrowseCmd,
	}
	addAnalysisFlags(cmd)
	cmd.Flags().IntVar(&crackMaxKeyLen, "max-key-len", defaultMaxKeyLen, "largest key length to try")
	cmd.Flags().Int64Var(&browseRunID, "run", 0, "browse a stored run instead of a new sweep")
	return cmd
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	var (
		title      string
		candidates []model.Candidate
		scores     []crack.KeyLengthScore
	)
	if browseRunID > 0 {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		run, err := st.GetRun(cmd.Context(), browseRunID)
		if err != nil {
			return fmt.Errorf("failed to load run: %w", err)
		}
		candidates, err = st.ListCandidates(cmd.Context(), run.ID)
		if err != nil {
			return fmt.Errorf("failed to load candidates: %w", err)
		}
		title = fmt.Sprintf("run %d  %s  alphabet=%s", run.ID, run.Mode, run.Alphabet)
	} else {
		cfg, err := resolveCrackConfig(cmd)
		if err != nil {
			return err
		}
		a, expected, err := loadReference(cfg)
		if err != nil {
			return err
		}
		text, err := readCiphertext(cmd, a)
		if err != nil {
			return err
		}
		swept, err := crack.BreakSweep(text, expected, cfg.MaxKeyLen)
		if err != nil {
			return fmt.Errorf("failed to break ciphertext: %w", err)
		}
		scores, err = crack.GuessKeyLength(text, cfg.MaxKeyLen)
		if err != nil {
			return fmt.Errorf("failed to score key lengths: %w", err)
		}
		candidates = report.Ranked(swept)
		title = fmt.Sprintf("sweep  alphabet=%s  chars=%d", cfg.Alphabet, len(text))
		if cfg.History {
			saveRun(cmd.Context(), model.Run{
				Mode:       model.ModeSweep,
				Alphabet:   cfg.Alphabet,
				Reference:  cfg.Reference,
				KeyLen:     cfg.MaxKeyLen,
				TextLength: len(text),
			}, candidates)
		}
	}

	m := browse.NewModel(title, candidates, scores)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyMode, "mode", "", "mode filter (sweep or fixed)")
	cmd.Flags().StringVar(&historyAlphabet, "alphabet", "", "alphabet filter")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N runs")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the candidates of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShowCmd,
	}
	showCmd.Flags().IntVar(&crackPreview, "preview", defaultPreview, "plaintext preview width")
	cmd.AddCommand(showCmd)
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyMode != "" && historyMode != model.ModeSweep && historyMode != model.ModeFixed {
		return fmt.Errorf("--mode must be %q or %q", model.ModeSweep, model.ModeFixed)
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	cfg := model.HistoryConfig{
		Mode:     historyMode,
		Alphabet: historyAlphabet,
		Since:    sinceTime,
		Last:     historyLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	runs, err := st.ListRuns(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if err := report.RenderHistory(cmd.OutOrStdout(), runs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runHistoryShowCmd(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid run id %q", args[0])
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "preview", &crackPreview, fileCfg.Crack.Preview)

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	run, err := st.GetRun(cmd.Context(), id)
	if err != nil {
		return err
	}
	candidates, err := st.ListCandidates(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}
	if err := report.RenderRun(cmd.OutOrStdout(), run, candidates, crackPreview); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newAlphabetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabets",
		Short: "List built-in alphabets",
		Args:  cobra.NoArgs,
		RunE:  runAlphabetsCmd,
	}
}

func runAlphabetsCmd(cmd *cobra.Command, _ []string) error {
	for _, name := range alphabet.Presets() {
		a, err := alphabet.Lookup(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, a.String()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

// resolveCrackConfig merges the config file under the command's flags.
func resolveCrackConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "alphabet", &crackAlphabet, fileCfg.Crack.Alphabet)
	applyStringConfig(cmd, "reference", &crackReference, fileCfg.Crack.Reference)
	applyIntConfig(cmd, "max-key-len", &crackMaxKeyLen, fileCfg.Crack.MaxKeyLen)
	applyIntConfig(cmd, "top", &crackTop, fileCfg.Crack.Top)
	applyIntConfig(cmd, "preview", &crackPreview, fileCfg.Crack.Preview)

	history := !crackNoHistory
	if fileCfg.Crack.History != nil && !cmd.Flags().Changed("no-history") {
		history = *fileCfg.Crack.History
	}

	cfg := model.Config{
		Alphabet:  crackAlphabet,
		Reference: crackReference,
		MaxKeyLen: crackMaxKeyLen,
		Top:       crackTop,
		Preview:   crackPreview,
		History:   history,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// loadReference resolves the alphabet and the expected distribution.
func loadReference(cfg model.Config) (*alphabet.Alphabet, freq.Distribution, error) {
	a, err := alphabet.Lookup(cfg.Alphabet)
	if err != nil {
		return nil, freq.Distribution{}, err
	}
	if cfg.Reference == "" {
		if a.String() != englishLetters {
			return nil, freq.Distribution{}, fmt.Errorf("--reference is required for alphabet %q", cfg.Alphabet)
		}
		d, err := freq.English()
		if err != nil {
			return nil, freq.Distribution{}, fmt.Errorf("failed to build English distribution: %w", err)
		}
		return a, d, nil
	}
	content, err := corpus.LoadFile(cfg.Reference)
	if err != nil {
		return nil, freq.Distribution{}, fmt.Errorf("failed to read reference: %w", err)
	}
	d, err := freq.Frequencies(a, content)
	if err != nil {
		return nil, freq.Distribution{}, fmt.Errorf("failed to build reference distribution from %s: %w", cfg.Reference, err)
	}
	return a, d, nil
}

const englishLetters = "abcdefghijklmnopqrstuvwxyz"

func readCiphertext(cmd *cobra.Command, a *alphabet.Alphabet) (alphabet.Text, error) {
	raw, err := corpus.Resolve(inputText, inputFile, cmd.InOrStdin(), stdinIsTerminal(cmd))
	if err != nil {
		if errors.Is(err, corpus.ErrNoInput) {
			return nil, fmt.Errorf("%w (use --text, --file or pipe text on stdin)", err)
		}
		return nil, err
	}
	text, err := a.EncodeText(a.Clean(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to encode input: %w", err)
	}
	if len(text) == 0 {
		return nil, fmt.Errorf("input has no characters from alphabet %q", a.String())
	}
	return text, nil
}

func stdinIsTerminal(cmd *cobra.Command) bool {
	file, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func saveRun(ctx context.Context, run model.Run, candidates []model.Candidate) {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	run.CreatedAt = time.Now().UTC()
	if _, err := st.InsertRun(ctx, run, candidates); err != nil {
		logErrf("failed to save run: %v\n", err)
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# vigcrack configuration
# Uncomment a value to enable it. CLI flags override config values.

[crack]
# alphabet = %q          # Alphabet preset (en, sv) or custom:<chars>
# reference = ""          # Reference corpus file (built-in English when empty and alphabet is en)
# max-key-len = %d        # Largest key length tried by sweep and keylen
# top = %d                 # Number of candidates to print
# preview = %d           # Plaintext preview width
# history = true          # Record runs in the history database
`,
		defaultAlphabet,
		defaultMaxKeyLen,
		defaultTop,
		defaultPreview,
	)
}

func validateConfig(cfg model.Config) error {
	if _, err := alphabet.Lookup(cfg.Alphabet); err != nil {
		return err
	}
	if cfg.MaxKeyLen <= 0 {
		return fmt.Errorf("--max-key-len must be > 0")
	}
	if cfg.Top < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	if cfg.Preview < 0 {
		return fmt.Errorf("--preview must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

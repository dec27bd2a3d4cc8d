package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/askskill"
	"github.com/fwojciec/askskill/agent"
	"github.com/fwojciec/askskill/analyze"
	"github.com/fwojciec/askskill/bloom"
	"github.com/fwojciec/askskill/fs"
	"github.com/fwojciec/askskill/goquery"
	"github.com/fwojciec/askskill/gosseract"
	"github.com/fwojciec/askskill/htmltomarkdown"
	askhttp "github.com/fwojciec/askskill/http"
	"github.com/fwojciec/askskill/rod"
	"github.com/fwojciec/askskill/search"
	askslog "github.com/fwojciec/askskill/slog"
	"github.com/fwojciec/askskill/sqlite"
	"github.com/fwojciec/askskill/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database and skills directory paths. Set before calling Run().
	DBPath    string
	SkillsDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SkillService askskill.SkillService
	Conversation askskill.ConversationService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		SkillsDir: defaultSkillsDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("askskill"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'askskill --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set ASKSKILL_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.SkillService = sqlite.NewSkillService(m.DB)
	deps.Skills = m.SkillService

	if cmd == "chat" {
		conversation, closeFn, err := m.buildConversation(stderr)
		if err != nil {
			return err
		}
		defer closeFn()
		m.Conversation = conversation
		deps.Conversation = conversation
	}

	return kongCtx.Run(deps)
}

// buildConversation wires the full browser-backed conversation stack.
func (m *Main) buildConversation(stderr io.Writer) (askskill.ConversationService, func(), error) {
	browser, err := rod.NewBrowser()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, nil, fmt.Errorf("failed to start browser: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	analyzer := &analyze.Analyzer{
		Browser:   browser,
		Extractor: trafilatura.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Sitemaps:  askhttp.NewSitemapProber(nil),
		Platforms: goquery.NewDetector(),
		Selectors: goquery.NewDefaultRegistry(),
		Detector:  gosseract.NewDetector(),
	}

	resolver := search.NewResolver(askhttp.NewSearcher())

	conversation := &agent.Agent{
		Resolver: askslog.NewLoggingResolver(resolver, logger),
		Analyzer: askslog.NewLoggingAnalyzer(analyzer, logger),
		Writer:   fs.NewWriter(m.SkillsDir),
		Skills:   m.SkillService,
		NewSeenFilter: func() askskill.SeenFilter {
			return bloom.NewFilter(1000, 0.01)
		},
	}

	return conversation, func() { _ = browser.Close() }, nil
}

func defaultDBPath() string {
	if path := os.Getenv("ASKSKILL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "askskill.db"
	}
	dir := filepath.Join(home, ".askskill")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "askskill.db")
}

func defaultSkillsDir() string {
	if dir := os.Getenv("ASKSKILL_SKILLS_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "skills"
	}
	dir := filepath.Join(home, ".askskill", "skills")
	_ = os.MkdirAll(dir, 0755)
	return dir
}

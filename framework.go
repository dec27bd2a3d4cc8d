package askskill

// Framework identifies a documentation platform.
type Framework string

// Supported documentation platforms.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkSphinx     Framework = "sphinx"
	FrameworkVuePress   Framework = "vuepress"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkNextra     Framework = "nextra"
	FrameworkMintlify   Framework = "mintlify"
)

// FrameworkDetector identifies documentation platforms from HTML.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified platform.
	// Returns FrameworkUnknown if the platform cannot be determined.
	Detect(html string) Framework
}

// AffordanceSelectors holds the CSS selectors a documentation platform's
// theme uses for its embedded AI assistant. Selectors within each list are
// ordered by priority; the first match wins.
type AffordanceSelectors struct {
	// Launcher opens the assistant (a button or a floating widget).
	Launcher []string

	// Input is the question input field inside the opened assistant.
	Input []string

	// Response contains the assistant's answer once it has settled.
	Response []string

	// Busy is present while the response is still streaming or the
	// assistant shows a typing indicator.
	Busy []string
}

// SelectorRegistry manages platform-specific affordance selectors.
type SelectorRegistry interface {
	// Get returns the selectors for a specific platform.
	// Returns nil if no selectors are registered for the platform.
	Get(framework Framework) *AffordanceSelectors

	// GetForHTML detects the platform from HTML and returns the appropriate
	// selectors, falling back to a generic set when the platform is unknown.
	GetForHTML(html string) *AffordanceSelectors

	// Register adds selectors for a platform.
	Register(framework Framework, selectors *AffordanceSelectors)

	// List returns all registered platforms.
	List() []Framework
}

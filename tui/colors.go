package tui

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"

	BrightCyan = "\033[96m"
	BoldWhite  = "\033[1;37m"
)

// Colorizer wraps text with ANSI color codes if colors are enabled.
type Colorizer struct {
	enabled bool
}

// NewColorizer creates a new Colorizer.
func NewColorizer(enabled bool) *Colorizer {
	return &Colorizer{enabled: enabled}
}

// Apply applies the given color to the text.
func (c *Colorizer) Apply(color, text string) string {
	if !c.enabled {
		return text
	}
	return color + text + Reset
}

// Header formats text as a header.
func (c *Colorizer) Header(text string) string {
	return c.Apply(BoldWhite, text)
}

// Preset formats a preset label.
func (c *Colorizer) Preset(text string) string {
	return c.Apply(BrightCyan, text)
}

// Path formats a file path or URL.
func (c *Colorizer) Path(text string) string {
	return c.Apply(Blue, text)
}

// Success formats success text.
func (c *Colorizer) Success(text string) string {
	return c.Apply(Green, text)
}

// Error formats error text.
func (c *Colorizer) Error(text string) string {
	return c.Apply(Red, text)
}

// Dim formats secondary/dim text.
func (c *Colorizer) Dim(text string) string {
	return c.Apply(Gray, text)
}

// Cyan formats text in cyan color.
func (c *Colorizer) Cyan(text string) string {
	return c.Apply(Cyan, text)
}

// Number formats numbers/stats.
func (c *Colorizer) Number(text string) string {
	return c.Apply(Yellow, text)
}

// StatusOK formats an OK status indicator.
func (c *Colorizer) StatusOK() string {
	return c.Apply(Green, "[ok]")
}

// StatusFail formats a fail status indicator.
func (c *Colorizer) StatusFail() string {
	return c.Apply(Red, "[!!]")
}

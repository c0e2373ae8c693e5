package alphabet

// Report summarizes a Checker run.
type Report struct {
	Bytes         int64
	Lines         int64 // line terminators seen
	Invalid       int64
	LongestLine   int // longest run between terminators
	First         *Violation
	TrailingSpace int64 // lines ending in SP or HT before their terminator
}

// Valid reports whether every byte seen belongs to the alphabet.
func (r Report) Valid() bool {
	return r.Invalid == 0
}

// Checker continuously analyzes input for bytes the encoder cannot carry safely.
// Note: a Checker is meant to be fed from a single goroutine, so no synchronization is
// done.
type Checker struct {
	report  Report
	lineLen int
	last    byte
}

// NewChecker creates an empty Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Analyze updates the checker with p.
func (c *Checker) Analyze(p []byte) {
	for _, b := range p {
		switch Classify(b) {
		case Newline:
			if c.lineLen > 0 && IsWhitespace(c.last) {
				c.report.TrailingSpace++
			}
			c.report.Lines++
			c.lineLen = 0
		case Invalid:
			c.report.Invalid++
			if c.report.First == nil {
				c.report.First = &Violation{
					Offset: c.report.Bytes,
					Line:   c.report.Lines + 1,
					Byte:   b,
				}
			}
			c.lineLen++
		default:
			c.lineLen++
		}
		if c.lineLen > c.report.LongestLine {
			c.report.LongestLine = c.lineLen
		}
		c.last = b
		c.report.Bytes++
	}
}

// Write implements io.Writer so a Checker can sit behind an io.TeeReader.
func (c *Checker) Write(p []byte) (int, error) {
	c.Analyze(p)
	return len(p), nil
}

// Report returns the result so far.
func (c *Checker) Report() Report {
	r := c.report
	if r.First != nil {
		first := *r.First
		r.First = &first
	}
	return r
}

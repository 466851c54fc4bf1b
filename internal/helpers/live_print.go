package helpers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/acarl005/stripansi"
	"golang.org/x/term"
)

// LiveLogger prints log lines above a block of footer lines which are redrawn
// in place on every write.
type LiveLogger struct {
	footers []string
	out     io.Writer

	lock sync.Mutex
}

var _ Logger = &LiveLogger{}

func NewLiveLogger() *LiveLogger {
	return NewLiveLoggerTo(os.Stdout)
}

func NewLiveLoggerTo(out io.Writer) *LiveLogger {
	l := &LiveLogger{footers: []string{}, out: out}
	l.PrintLive(Empty[string](), "", l.FooterString())
	return l
}

func (l *LiveLogger) FooterString() string {
	return strings.Join(l.footers, "\n")
}

func (l *LiveLogger) FlushFooter() {
	l.Println(l.FooterString())
}

func (l *LiveLogger) Println(v ...interface{}) {
	l.Print(fmt.Sprintln(v...))
}

func (l *LiveLogger) Printf(format string, v ...interface{}) {
	l.Print(fmt.Sprintf(format, v...))
}

func (l *LiveLogger) Print(xs ...interface{}) {
	l.PrintLive(Some(fmt.Sprint(xs...)), l.FooterString(), l.FooterString())
}

func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if !IsNil(err) {
		return 80
	}
	return MaxInt(40, MinInt(120, width))
}

func runeCountIgnoringAnsi(s string) int {
	return utf8.RuneCountInString(stripansi.Strip(s))
}

func wrapLine(s string, width int) string {
	if runeCountIgnoringAnsi(s) < width {
		return s
	}

	words := strings.Split(s, " ")
	lines := []string{}
	line := []string{}
	for _, word := range words {
		joinedLine := strings.Join(line, " ")
		if runeCountIgnoringAnsi(joinedLine)+runeCountIgnoringAnsi(word)+1 > width && len(line) != 0 {
			lines = append(lines, joinedLine)
			line = []string{word}
		} else {
			line = append(line, word)
		}
	}
	lines = append(lines, strings.Join(line, " "))
	return strings.Join(
		MapSlice(lines, func(s string) string { return strings.TrimSpace(s) }), "\n")
}

func wrapText(s string, width int) string {
	result := []string{}
	for _, line := range strings.Split(s, "\n") {
		result = append(result, wrapLine(line, width))
	}
	return strings.Join(result, "\n")
}

func (l *LiveLogger) SetFooter(s string, index int) {
	s = wrapText(strings.TrimSpace(s), termWidth())

	prevFooterString := l.FooterString()

	for len(l.footers) <= index {
		l.footers = append(l.footers, "")
	}
	l.footers[index] = s

	l.PrintLive(Empty[string](), prevFooterString, l.FooterString())
}

// PrintLive moves the cursor above the previously drawn footer, clears to the
// end of the screen, prints output and then redraws the footer.
func (l *LiveLogger) PrintLive(output Optional[string], previousFooter string, footer string) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if previousFooter != "" {
		for i := 0; i < len(strings.Split(previousFooter, "\n")); i++ {
			fmt.Fprint(l.out, "\033[A")
		}
	}

	fmt.Fprint(l.out, "\033[J")

	if output.HasValue() {
		fmt.Fprint(l.out, output.Value())
	}

	if footer != "" {
		fmt.Fprintln(l.out, footer)
	}
}

type _footerLogger struct {
	logger *LiveLogger
	i      int
}

// NewFooterLogger returns a Logger whose every write replaces footer line i.
func NewFooterLogger(logger *LiveLogger, i int) Logger {
	return &_footerLogger{logger: logger, i: i}
}

func (l *_footerLogger) Println(v ...any) {
	l.logger.SetFooter(fmt.Sprintln(v...), l.i)
}
func (l *_footerLogger) Printf(format string, v ...any) {
	l.logger.SetFooter(fmt.Sprintf(format, v...), l.i)
}
func (l *_footerLogger) Print(v ...any) {
	l.logger.SetFooter(fmt.Sprint(v...), l.i)
}

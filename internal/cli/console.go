package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/frontdesk/internal/cli/formatter"
	"github.com/alexanderramin/frontdesk/internal/intelligence"
)

// Console is the operator's line-oriented terminal.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a Console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	if in == nil {
		in = eofReader{}
	}
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine reads until LF or CR so Enter works in normal and raw terminal
// modes. A CR LF pair counts as one line end. Input that ends without a
// newline is returned before io.EOF.
func (c *Console) ReadLine() (string, error) {
	var buf []byte
	for {
		b, err := c.in.ReadByte()
		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}

		switch b {
		case '\n':
			return string(buf), nil
		case '\r':
			// Only swallow an LF that has already arrived; peeking would block a raw terminal.
			if c.in.Buffered() > 0 {
				if next, _ := c.in.Peek(1); len(next) == 1 && next[0] == '\n' {
					_, _ = c.in.ReadByte()
				}
			}
			return string(buf), nil
		default:
			buf = append(buf, b)
		}
	}
}

// Prompt writes message and reads the answer line.
func (c *Console) Prompt(message string) (string, error) {
	if c.out != nil {
		fmt.Fprint(c.out, message)
	}
	return c.ReadLine()
}

// Println writes one line of output.
func (c *Console) Println(s string) {
	if c.out != nil {
		fmt.Fprintln(c.out, s)
	}
}

// Ask puts an onboarding question to the operator.
func (c *Console) Ask(_ context.Context, q intelligence.OperatorQuestion) (string, error) {
	label := "Question"
	if q.Kind == intelligence.QuestionGenerated {
		label = "AI Question"
	}
	c.Println("")
	c.Println(formatter.FormatQuestion(label, q.Text, q.Index, q.Total))
	return c.Prompt("> ")
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

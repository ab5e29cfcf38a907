package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Presenter writes the word of the day as plain console text.
type Presenter struct {
	out       io.Writer
	bold      *color.Color
	highlight *color.Color
}

func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{
		out:       out,
		bold:      color.New(color.Bold),
		highlight: color.New(color.Bold, color.FgGreen),
	}
}

func (p *Presenter) PrintHeader(date, solution string) error {
	if _, err := fmt.Fprintf(p.out, "Date: %s\n", date); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	if _, err := fmt.Fprintf(p.out, "Wordle word of the day: %s\n", p.highlight.Sprint(strings.ToUpper(solution))); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	return nil
}

func (p *Presenter) PrintDefinition(definition string) error {
	if _, err := fmt.Fprintf(p.out, "\n%s\n%s\n", p.bold.Sprint("Definition:"), definition); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	return nil
}

// PrintFullResponse prints raw re-encoded and indented by two spaces. Key order
// is kept; strings are written unescaped and numbers in their shortest form.
func (p *Presenter) PrintFullResponse(raw json.RawMessage) error {
	compact, err := reencode(raw)
	if err != nil {
		return fmt.Errorf("reencode > %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, compact, "", "  "); err != nil {
		return fmt.Errorf("json.Indent > %w", err)
	}
	if _, err := fmt.Fprintf(p.out, "\n%s\n%s\n", p.bold.Sprint("Full response:"), indented.String()); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	return nil
}

// reencode walks the tokens of raw and writes them back as compact JSON.
// Decoding into a map would lose the key order.
func reencode(raw []byte) ([]byte, error) {
	if !json.Valid(raw) {
		return nil, errors.New("invalid JSON")
	}

	type container struct {
		object bool
		count  int
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var stack []container
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dec.Token > %w", err)
		}

		if delim, ok := tok.(json.Delim); ok && (delim == '}' || delim == ']') {
			stack = stack[:len(stack)-1]
			buf.WriteByte(byte(delim))
			continue
		}
		if n := len(stack); n > 0 {
			parent := &stack[n-1]
			switch {
			case parent.object && parent.count%2 == 1:
				buf.WriteByte(':')
			case parent.count > 0:
				buf.WriteByte(',')
			}
			parent.count++
		}

		switch v := tok.(type) {
		case json.Delim:
			buf.WriteByte(byte(v))
			stack = append(stack, container{object: v == '{'})
		case string:
			if err := enc.Encode(v); err != nil {
				return nil, fmt.Errorf("enc.Encode > %w", err)
			}
			// Encode terminates every value with a newline.
			buf.Truncate(buf.Len() - 1)
		case json.Number:
			buf.WriteString(formatNumber(v))
		case bool:
			buf.WriteString(strconv.FormatBool(v))
		case nil:
			buf.WriteString("null")
		}
	}
	return buf.Bytes(), nil
}

// formatNumber keeps integers as sent and writes other numbers in their
// shortest form, so 1.50 becomes 1.5.
func formatNumber(n json.Number) string {
	literal := n.String()
	if !strings.ContainsAny(literal, ".eE") {
		return literal
	}
	f, err := n.Float64()
	if err != nil {
		return literal
	}
	b, err := json.Marshal(f)
	if err != nil {
		return literal
	}
	return string(b)
}

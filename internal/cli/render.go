package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/amazing-numbers/internal/engine"
	"github.com/Veraticus/amazing-numbers/internal/filter"
	"github.com/Veraticus/amazing-numbers/internal/numbers"
	"github.com/Veraticus/amazing-numbers/internal/request"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding for classification results.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (use text, json or yaml)", ErrUnknownFormat, name)
	}
}

// Renderer writes classification results and request errors. Errors are
// always written as text.
type Renderer struct {
	w       io.Writer
	format  Format
	palette Palette
	// documents counts yaml documents written so far.
	documents int
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer, format Format, palette Palette) *Renderer {
	if format == "" {
		format = FormatText
	}
	return &Renderer{
		w:       w,
		format:  format,
		palette: palette,
	}
}

// Writer returns the underlying writer.
func (r *Renderer) Writer() io.Writer {
	return r.w
}

// Palette returns the palette used for text output.
func (r *Renderer) Palette() Palette {
	return r.palette
}

// singleView is every property of one number, in catalog order.
type singleView struct {
	Number     string      `json:"number" yaml:"number"`
	Properties propertyMap `json:"properties" yaml:"properties"`
}

// memberView is the properties that hold for one number of a listing.
type memberView struct {
	Number     string             `json:"number" yaml:"number"`
	Properties []numbers.Property `json:"properties" yaml:"properties"`
}

// propertyMap encodes property results as an object that keeps catalog
// order.
type propertyMap []numbers.Result

func (m propertyMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, res := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(res.Property.Label()))
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatBool(res.Holds))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m propertyMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, res := range m {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: res.Property.Label()},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(res.Holds)},
		)
	}
	return node, nil
}

// Single writes every property of c.
func (r *Renderer) Single(c *numbers.Classifier) error {
	report := c.Report()
	if r.format != FormatText {
		return r.encode(singleView{Number: c.String(), Properties: propertyMap(report)})
	}

	var b strings.Builder
	b.WriteString(r.palette.Title("Properties of "+c.String()) + "\n")
	for _, res := range report {
		value := strconv.FormatBool(res.Holds)
		if res.Holds {
			value = r.palette.Success(value)
		} else {
			value = r.palette.Subtle(value)
		}
		fmt.Fprintf(&b, "%s: %s\n", res.Property.Label(), value)
	}
	return r.write(b.String())
}

// Member writes c as one line of a listing: the number and the properties
// that hold for it.
func (r *Renderer) Member(c *numbers.Classifier) error {
	holding := c.Holding()
	if r.format != FormatText {
		return r.encode(memberView{Number: c.String(), Properties: holding})
	}

	labels := make([]string, len(holding))
	for i, p := range holding {
		labels[i] = p.Label()
	}
	return r.write(fmt.Sprintf("%s is %s\n", r.palette.Title(c.String()), strings.Join(labels, ", ")))
}

// Error writes a request error in user-facing form.
func (r *Renderer) Error(err error) error {
	var (
		formatErr   *request.FormatError
		unknownErr  *filter.UnknownPropertyError
		conflictErr *filter.ConflictError
	)

	switch {
	case errors.As(err, &formatErr):
		return r.FormatError(formatErr)
	case errors.As(err, &unknownErr):
		return r.Unknown(unknownErr)
	case errors.As(err, &conflictErr):
		return r.Conflicts(conflictErr)
	default:
		return r.write(r.palette.Error(err.Error()) + "\n")
	}
}

// FormatError explains which numeric parameters were malformed.
func (r *Renderer) FormatError(err *request.FormatError) error {
	var b strings.Builder
	if err.Start {
		b.WriteString(r.palette.Error("The first parameter should be a natural number or zero.") + "\n")
	}
	if err.Count {
		b.WriteString(r.palette.Error("The second parameter should be a natural number.") + "\n")
	}
	return r.write(b.String())
}

// Unknown lists unrecognized property names alongside the catalog.
func (r *Renderer) Unknown(err *filter.UnknownPropertyError) error {
	msg := fmt.Sprintf("The property [%s] is wrong.", err.Names[0])
	if len(err.Names) > 1 {
		msg = fmt.Sprintf("The properties [%s] are wrong.", strings.Join(err.Names, ", "))
	}

	return r.write(r.palette.Error(msg) + "\n" +
		r.palette.Info(fmt.Sprintf("Available properties: [%s]", strings.Join(numbers.Names(), ", "))) + "\n")
}

// Conflicts writes one explanation per mutually exclusive combination.
func (r *Renderer) Conflicts(err *filter.ConflictError) error {
	var b strings.Builder
	for _, c := range err.Conflicts {
		b.WriteString(r.palette.Error("The request contains mutually exclusive properties: "+c.String()) + "\n")
		b.WriteString(r.palette.Info("There are no numbers with these properties.") + "\n")
	}
	return r.write(b.String())
}

// Catalog writes a table of every property and its exclusivity wiring.
func (r *Renderer) Catalog() error {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
		r.palette.Header("PROPERTY"),
		r.palette.Header("EXCLUSIVE WITH"),
		r.palette.Header("COMPLETE")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range numbers.All() {
		partner := "-"
		if other, ok := p.Exclusive(); ok {
			partner = other.String()
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%t\n", p, partner, p.Complete()); err != nil {
			return fmt.Errorf("failed to write property row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}

// Tally writes how many numbers of a range hold each property.
func (r *Renderer) Tally(t engine.Tally) error {
	if r.format != FormatText {
		return r.encode(t)
	}

	title := fmt.Sprintf("Properties of %d numbers from %d", t.Total, t.Start)
	if err := r.write(r.palette.Title(title) + "\n"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, pc := range t.Counts {
		share := 0.0
		if t.Total > 0 {
			share = float64(pc.Count) / float64(t.Total) * 100
		}
		if _, err := fmt.Fprintf(tw, "%s:\t%d\t%.1f%%\t\n", pc.Property.Label(), pc.Count, share); err != nil {
			return fmt.Errorf("failed to write tally row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}

// Println writes a line of plain text.
func (r *Renderer) Println(text string) error {
	return r.write(text + "\n")
}

func (r *Renderer) encode(v any) error {
	switch r.format {
	case FormatJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return r.write(string(data) + "\n")
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if r.documents > 0 {
			data = append([]byte("---\n"), data...)
		}
		r.documents++
		return r.write(string(data))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.w, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadpath/core"
)

// Load opens path, parses it and closes it on every return path.
func Load(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Parse reads the whole of r and returns the graph it describes.
//
// The returned graph is not validated; a file without a cities section yields
// a graph that fails core.Graph.Validate.
func Parse(r io.Reader, opts ...Option) (*core.Graph, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &parser{
		lines: &lineReader{sc: bufio.NewScanner(r)},
		g:     core.NewGraph(cfg.GraphOptions...),
		cfg:   cfg,
	}
	if err := p.run(); err != nil {
		return nil, err
	}

	return p.g, nil
}

type parser struct {
	lines *lineReader
	g     *core.Graph
	cfg   Options

	citiesDone      bool
	connectionsDone bool
}

func (p *parser) run() error {
	for {
		line, err := p.lines.next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch marker := strings.ToLower(strings.TrimSpace(line)); {
		case marker == CitiesMarker && !p.citiesDone:
			p.citiesDone = true
			if err = p.readCities(); err != nil {
				return err
			}
		case marker == ConnectionsMarker && !p.connectionsDone:
			p.connectionsDone = true
			if err = p.readConnections(); err != nil {
				return err
			}
		}
	}
}

func (p *parser) readCities() error {
	n, err := p.readCount("city")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		name, err := p.lines.mustNext("city name")
		if err != nil {
			return err
		}
		if i == 0 {
			p.g.SetStartingPoint(name)
		}
		if i == n-1 {
			p.g.SetDestination(name)
		}
		if err = p.g.AddCity(name); err != nil {
			return fmt.Errorf("line %d: %w", p.lines.line, err)
		}
	}
	if p.cfg.Logger != nil {
		p.cfg.Logger.Debug("input: cities parsed", "count", n,
			"start", p.g.StartingPoint(), "destination", p.g.Destination())
	}

	return nil
}

func (p *parser) readConnections() error {
	n, err := p.readCount("connection")
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		line, err := p.lines.mustNext("connection")
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fmt.Errorf("%w: line %d: want \"<from> <to> <distance>\", got %q",
				ErrMalformedInput, p.lines.line, line)
		}
		distance, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: distance %q is not an integer",
				ErrMalformedInput, p.lines.line, fields[2])
		}
		if err = p.g.AddConnection(fields[0], fields[1], distance); err != nil {
			return fmt.Errorf("line %d: %w", p.lines.line, err)
		}
		if !p.cfg.Directed {
			if err = p.g.AddConnection(fields[1], fields[0], distance); err != nil {
				return fmt.Errorf("line %d: %w", p.lines.line, err)
			}
		}
	}
	if p.cfg.Logger != nil {
		p.cfg.Logger.Debug("input: connections parsed", "count", n, "directed", p.cfg.Directed)
	}

	return nil
}

// readCount reads the non-negative count line that opens a section.
func (p *parser) readCount(what string) (int, error) {
	line, err := p.lines.mustNext(what + " count")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: line %d: %s count %q is not a non-negative integer",
			ErrMalformedInput, p.lines.line, what, line)
	}

	return n, nil
}

// lineReader tracks the 1-based number of the last line returned.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

// next returns the next line, io.EOF at the end, or the scanner's error.
func (l *lineReader) next() (string, error) {
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return "", fmt.Errorf("input: read: %w", err)
		}

		return "", io.EOF
	}
	l.line++

	return l.sc.Text(), nil
}

// mustNext is next with end of input reported as a truncated section.
func (l *lineReader) mustNext(what string) (string, error) {
	s, err := l.next()
	if err == io.EOF {
		return "", fmt.Errorf("%w: line %d: unexpected end of input, expected %s",
			ErrMalformedInput, l.line+1, what)
	}

	return s, err
}

package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/shlex"

	"github.com/darkfeline/chronoplot/internal/core/model"
	"github.com/darkfeline/chronoplot/internal/util"
)

// FieldCount is the number of tokens on an event line: start stop group title
const FieldCount = 4

var ErrInvalidLine = errors.New("parse error")

// ParseError identifies the input line that could not be turned into an event
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser reads timeline files. Each non-blank line holds shell-quoted fields
// "start stop group title"; lines starting with # are comments.
type Parser struct {
	skipInvalid bool
	logger      util.LoggerInterface
}

// ParseResult is a parsed timeline plus the lines that were skipped
type ParseResult struct {
	Timeline *model.Timeline
	Skipped  []*ParseError
	Lines    int
}

// NewParser creates a Parser. With skipInvalid, bad lines are logged and
// collected in ParseResult.Skipped instead of aborting the parse.
func NewParser(skipInvalid bool, logger util.LoggerInterface) *Parser {
	if logger == nil {
		logger = util.NewNopLogger()
	}
	return &Parser{
		skipInvalid: skipInvalid,
		logger:      logger,
	}
}

// ParseLine turns one line into an event. ok is false for blank and comment
// lines.
func ParseLine(line string) (event model.Event, ok bool, err error) {
	fields, err := shlex.Split(line)
	if err != nil {
		return model.Event{}, false, fmt.Errorf("%w: %v", ErrInvalidLine, err)
	}
	if len(fields) == 0 {
		return model.Event{}, false, nil
	}
	if len(fields) != FieldCount {
		return model.Event{}, false, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidLine, FieldCount, len(fields))
	}

	start, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return model.Event{}, false, fmt.Errorf("%w: start %q is not a number", ErrInvalidLine, fields[0])
	}
	stop, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return model.Event{}, false, fmt.Errorf("%w: stop %q is not a number", ErrInvalidLine, fields[1])
	}

	event = model.Event{
		Start: start,
		Stop:  stop,
		Group: fields[2],
		Text:  fields[3],
	}
	if err := event.Validate(); err != nil {
		return model.Event{}, false, fmt.Errorf("%w: %w", ErrInvalidLine, err)
	}
	return event, true, nil
}

// Parse reads every line of r into a timeline
func (p *Parser) Parse(r io.Reader) (*ParseResult, error) {
	result := &ParseResult{Timeline: model.NewTimeline()}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for scanner.Scan() {
		result.Lines++
		text := scanner.Text()

		event, ok, err := ParseLine(text)
		if err != nil {
			perr := &ParseError{Line: result.Lines, Text: text, Err: err}
			if !p.skipInvalid {
				return nil, perr
			}
			p.logger.Warn("Skip invalid line", util.F("line", perr.Line), util.F("error", err.Error()))
			result.Skipped = append(result.Skipped, perr)
			continue
		}
		if !ok {
			continue
		}

		if err := result.Timeline.AddEvent(event); err != nil {
			return nil, &ParseError{Line: result.Lines, Text: text, Err: fmt.Errorf("%w: %w", ErrInvalidLine, err)}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read timeline: %w", err)
	}

	p.logger.Debug("Parsed timeline",
		util.F("lines", result.Lines),
		util.F("events", result.Timeline.Len()),
		util.F("skipped", len(result.Skipped)))
	return result, nil
}

// ParseFile parses the timeline file at path
func (p *Parser) ParseFile(path string) (*ParseResult, error) {
	p.logger.Debug(fmt.Sprintf("Start parsing file: %s", path))

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return p.Parse(file)
}

package ledger

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"fjacquet/stmt-ledger/internal/models"
)

var (
	// Single-digit days are accepted too; some extractions drop the leading zero.
	anchorPattern  = regexp.MustCompile(`^(\d{1,2})-([A-Za-z]{3})-(\d{2})`)
	openingPattern = regexp.MustCompile(`(?i)opening\s+balance`)
)

var monthAbbrev = map[string]bool{
	"jan": true, "feb": true, "mar": true, "apr": true, "may": true, "jun": true,
	"jul": true, "aug": true, "sep": true, "oct": true, "nov": true, "dec": true,
}

// Block is one transaction: an anchor line followed by its continuation lines.
type Block struct {
	// Line is the zero-based input index of the anchor line.
	Line  int
	Lines []string
}

// Anchor returns the block's first line.
func (b Block) Anchor() string {
	if len(b.Lines) == 0 {
		return ""
	}
	return b.Lines[0]
}

// Continuation returns the lines after the anchor.
func (b Block) Continuation() []string {
	if len(b.Lines) < 2 {
		return nil
	}
	return b.Lines[1:]
}

// Text is the full block text, lines joined with " | ".
func (b Block) Text() string {
	return strings.Join(b.Lines, " | ")
}

// Date returns the anchor's DD-Mon-YY token, or "" when the prefix looks like
// a date but does not name a real day and month.
func (b Block) Date() string {
	m := anchorPattern.FindStringSubmatch(b.Anchor())
	if m == nil {
		return ""
	}
	day, err := strconv.Atoi(m[1])
	if err != nil || day < 1 || day > 31 {
		return ""
	}
	if !monthAbbrev[strings.ToLower(m[2])] {
		return ""
	}
	return m[0]
}

// EventType tells segment events apart.
type EventType int

const (
	// EventBlock carries a transaction block.
	EventBlock EventType = iota
	// EventOpening carries an opening balance read from a marker line.
	EventOpening
)

func (t EventType) String() string {
	switch t {
	case EventBlock:
		return "block"
	case EventOpening:
		return "opening"
	default:
		return "unknown"
	}
}

// Event is one segmentation result. A block is emitted when the next anchor
// or the end of input closes it. An opening balance is emitted immediately,
// or right after the block that was open when its marker line appeared.
type Event struct {
	Type    EventType
	Line    int
	Block   Block
	Opening decimal.Decimal
}

// IsAnchor reports whether line starts a new transaction block.
func IsAnchor(line string) bool {
	return anchorPattern.MatchString(strings.TrimSpace(line))
}

// IsOpeningBalance reports whether line carries an opening balance marker.
func IsOpeningBalance(line string) bool {
	return openingPattern.MatchString(line)
}

// Segment splits lines into blocks and opening balance events. Opening
// balance lines never join a block, whether or not they carry a date, and do
// not close the block being collected: the block keeps its continuation lines
// and is reconciled before the new baseline. A marker line without an amount
// is dropped. Lines before the first anchor are discarded.
func Segment(lines []string) []Event {
	var (
		events   []Event
		open     *Block
		deferred []Event
	)

	flush := func() {
		if open != nil && len(open.Lines) > 0 {
			events = append(events, Event{Type: EventBlock, Line: open.Line, Block: *open})
		}
		open = nil
		events = append(events, deferred...)
		deferred = nil
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if IsOpeningBalance(line) {
			amounts := models.FindAmounts(line)
			if len(amounts) == 0 {
				continue
			}
			ev := Event{
				Type:    EventOpening,
				Line:    i,
				Opening: models.ParseAmount(amounts[len(amounts)-1]),
			}
			if open != nil {
				deferred = append(deferred, ev)
			} else {
				events = append(events, ev)
			}
			continue
		}

		if anchorPattern.MatchString(line) {
			flush()
			open = &Block{Line: i, Lines: []string{line}}
			continue
		}

		if open != nil {
			open.Lines = append(open.Lines, line)
		}
	}
	flush()

	return events
}

// Package seqscript parses and applies line-oriented edit scripts against a
// forwardlist sequence. A script is a list of front and positional edits,
// one per line; positions are counted from the before-begin anchor, so
// position 0 addresses the front of the sequence.
//
// Grammar, one operation per line (blank lines and lines starting with #
// are skipped):
//
//	push <value>       prepend value
//	pop                remove the front element (no-op when empty)
//	insert <i> <value> splice value in after position i (0 = before-begin)
//	erase <i>          remove the element after position i
//	clear              remove everything
package seqscript

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-forwardlist/pkg/forwardlist"
)

// Kind identifies one script operation.
type Kind string

const (
	KindPush   Kind = "push"
	KindPop    Kind = "pop"
	KindInsert Kind = "insert"
	KindErase  Kind = "erase"
	KindClear  Kind = "clear"
)

// Op is one parsed script operation. Line is kept for error reporting
// during Apply.
type Op struct {
	Kind  Kind
	Index int    // insert/erase position, counted from before-begin
	Value string // push/insert payload
	Line  int
}

// Parse reads a script. limit caps the number of operations accepted;
// a limit of zero or less means no cap.
func Parse(r io.Reader, limit int) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		op, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		if limit > 0 && len(ops) > limit {
			return nil, fmt.Errorf("line %d: script exceeds operation limit of %d", lineNo, limit)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return ops, nil
}

func parseLine(line string, lineNo int) (Op, error) {
	fields := strings.Fields(line)
	op := Op{Kind: Kind(fields[0]), Line: lineNo}

	switch op.Kind {
	case KindPush:
		if len(fields) < 2 {
			return Op{}, fmt.Errorf("line %d: push needs a value", lineNo)
		}
		op.Value = strings.Join(fields[1:], " ")

	case KindPop, KindClear:
		if len(fields) != 1 {
			return Op{}, fmt.Errorf("line %d: %s takes no arguments", lineNo, op.Kind)
		}

	case KindInsert:
		if len(fields) < 3 {
			return Op{}, fmt.Errorf("line %d: insert needs a position and a value", lineNo)
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return Op{}, fmt.Errorf("line %d: bad insert position %q: %w", lineNo, fields[1], err)
		}
		op.Index = idx
		op.Value = strings.Join(fields[2:], " ")

	case KindErase:
		if len(fields) != 2 {
			return Op{}, fmt.Errorf("line %d: erase needs exactly one position", lineNo)
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return Op{}, fmt.Errorf("line %d: bad erase position %q: %w", lineNo, fields[1], err)
		}
		op.Index = idx

	default:
		return Op{}, fmt.Errorf("line %d: unknown operation %q", lineNo, fields[0])
	}
	return op, nil
}

// Apply runs ops against l in order. Positions are validated against the
// live list before any splice, so a bad script reports an error instead of
// violating a list precondition. On error the already-applied prefix of the
// script remains applied.
func Apply(l *forwardlist.List[string], ops []Op) error {
	for _, op := range ops {
		switch op.Kind {
		case KindPush:
			l.PushFront(op.Value)

		case KindPop:
			l.PopFront()

		case KindClear:
			l.Clear()

		case KindInsert:
			if op.Index < 0 || op.Index > l.Len() {
				return fmt.Errorf("line %d: insert position %d out of range for list of %d", op.Line, op.Index, l.Len())
			}
			l.InsertAfter(anchorAt(l, op.Index), op.Value)

		case KindErase:
			if op.Index < 0 || op.Index >= l.Len() {
				return fmt.Errorf("line %d: erase position %d has no successor in list of %d", op.Line, op.Index, l.Len())
			}
			l.EraseAfter(anchorAt(l, op.Index))

		default:
			return fmt.Errorf("line %d: unknown operation %q", op.Line, op.Kind)
		}
	}
	return nil
}

// anchorAt walks the before-begin anchor forward to position i. i must be
// in [0, l.Len()].
func anchorAt(l *forwardlist.List[string], i int) forwardlist.Iterator[string] {
	it := l.BeforeBegin()
	for ; i > 0; i-- {
		it = it.Next()
	}
	return it
}

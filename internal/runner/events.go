package runner

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"time"
)

// Event is one line of `go test -json` output.
type Event struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`
}

// Actions that end a test.
const (
	ActionPass = "pass"
	ActionFail = "fail"
	ActionSkip = "skip"
)

// IsTopLevel reports whether the event belongs to a top-level test rather
// than a subtest or the package.
func (e Event) IsTopLevel() bool {
	return e.Test != "" && !strings.Contains(e.Test, "/")
}

// IsFinal reports whether the event ends a test.
func (e Event) IsFinal() bool {
	switch e.Action {
	case ActionPass, ActionFail, ActionSkip:
		return e.Test != ""
	}
	return false
}

// ReadEvents decodes a test2json stream, copying every raw line to sink and
// calling fn for each decoded event. Lines that are not JSON, such as build
// errors, are copied but not decoded.
func ReadEvents(r io.Reader, sink io.Writer, fn func(Event)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if sink != nil {
			if _, err := sink.Write(append(line, '\n')); err != nil {
				return err
			}
		}
		if len(bytes.TrimSpace(line)) == 0 || line[0] != '{' {
			continue
		}
		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			continue
		}
		fn(ev)
	}
	return scanner.Err()
}

// ParseTestList returns the test names printed by `go test -list`.
func ParseTestList(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "Test") && !strings.ContainsAny(line, " \t") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}

package tuitest

import (
	"bytes"
	"io"
)

// terminalQuery is a request the program writes to its terminal together
// with the answer a real xterm would send back on stdin.
type terminalQuery struct {
	query []byte
	reply []byte
}

// termenv and bubbletea query the cursor position and the default colours at
// startup and block until the terminal answers.
var terminalQueries = []terminalQuery{
	{query: []byte("\x1b[6n"), reply: []byte("\x1b[1;1R")},
	{query: []byte("\x1b]10;?\x07"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{query: []byte("\x1b]10;?\x1b\\"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{query: []byte("\x1b]11;?\x07"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{query: []byte("\x1b]11;?\x1b\\"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

// queryResponder answers terminalQueries found in the output stream. It keeps
// only as many trailing bytes as a query can span across two writes.
type queryResponder struct {
	w       io.Writer
	pending []byte
	keep    int
}

func newQueryResponder(w io.Writer) *queryResponder {
	longest := 0
	for _, q := range terminalQueries {
		longest = max(longest, len(q.query))
	}
	return &queryResponder{w: w, keep: longest - 1}
}

// observe scans chunk in order and writes one reply per query seen.
func (r *queryResponder) observe(chunk []byte) {
	if r == nil || r.w == nil {
		return
	}
	r.pending = append(r.pending, chunk...)
	for {
		at, q := r.earliest()
		if at < 0 {
			break
		}
		_, _ = r.w.Write(q.reply)
		r.pending = r.pending[at+len(q.query):]
	}
	if len(r.pending) > r.keep {
		r.pending = append([]byte(nil), r.pending[len(r.pending)-r.keep:]...)
	}
}

func (r *queryResponder) earliest() (int, terminalQuery) {
	at := -1
	var found terminalQuery
	for _, q := range terminalQueries {
		idx := bytes.Index(r.pending, q.query)
		if idx >= 0 && (at < 0 || idx < at) {
			at = idx
			found = q
		}
	}
	return at, found
}

package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Dumper records raw documents flowing through a run, for debugging.
type Dumper interface {
	// Dump records data. in=true marks input read by the generator,
	// in=false marks generated output.
	Dump(in bool, name string, data []byte)
}

// dumper implements Dumper with thread-safe writes.
type dumper struct {
	w  io.Writer
	mu sync.Mutex
}

// NewDumper creates a new Dumper. If writer is nil, returns a no-op dumper.
func NewDumper(w io.Writer) Dumper {
	return &dumper{w: w}
}

// Dump writes a header line with timestamp, direction, name and size
// followed by the data itself.
func (d *dumper) Dump(in bool, name string, data []byte) {
	if len(data) == 0 {
		return
	}
	if d.w == nil {
		return
	}

	dir := "out"
	if in {
		dir = "in"
	}

	header := fmt.Sprintf("%s %-3s %s: %d bytes\n",
		time.Now().Format("2006/01/02 15:04:05"),
		dir,
		name,
		len(data))

	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = io.WriteString(d.w, header)
	_, _ = d.w.Write(data)
	if data[len(data)-1] != '\n' {
		_, _ = io.WriteString(d.w, "\n")
	}
}

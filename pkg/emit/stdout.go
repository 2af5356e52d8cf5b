package emit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-blitmask/pkg/orchestrator"
)

// StdoutName identifies the stream emitter.
const StdoutName = "stdout"

// Stream writes every artifact to a writer, each preceded by a
// "// file: <path>" marker line.
type Stream struct {
	out io.Writer
}

// NewStream returns a stream emitter. A nil writer means os.Stdout.
func NewStream(out io.Writer) *Stream {
	if out == nil {
		out = os.Stdout
	}
	return &Stream{out: out}
}

func (s *Stream) Name() string {
	return StdoutName
}

// Emit renders the whole batch before issuing a single write.
func (s *Stream) Emit(ctx context.Context, batch orchestrator.Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var buf bytes.Buffer
	for i, a := range batch.Artifacts {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "// file: %s\n", a.Path)
		buf.Write(a.Code)
	}
	if _, err := s.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("emit: write batch: %w", err)
	}
	return nil
}

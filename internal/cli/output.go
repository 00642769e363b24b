package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// emit writes v as indented JSON, or calls pretty for the human format.
func (ws *workspaceCtx) emit(v any, pretty func(w io.Writer)) error {
	return writeFormatted(ws.out, ws.format, v, pretty)
}

func writeFormatted(w io.Writer, format string, v any, pretty func(w io.Writer)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "pretty", "":
		pretty(w)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

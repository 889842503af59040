package debug

import (
	"fmt"
	"os"

	"github.com/embedkit/jsonwire/value"
)

// Wire wraps a value so Logf renders it in its debug form.
type Wire struct{ *value.Value }

func (w Wire) String() string {
	return w.Value.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *value.Value:
			args[i] = Wire{x}
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Output is where Echo writes, stderr unless changed.
var Output io.Writer = os.Stderr

// Fatal will Echo the message and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(1)
}

// Echo will emit the given message to Output without any logging formatting.
func Echo(msg string, args ...any) {
	EchoTo(Output, msg, args...)
}

// EchoTo is Echo for a specific writer, such as a command's stdout.
func EchoTo(w io.Writer, msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(w, msg, args...)
}

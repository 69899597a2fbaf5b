package scan_test

import (
	"bytes"
	"fmt"

	"github.com/birkland/mimedb/scan"
)

// Creates a scan.Sniffer that recognizes shell scripts by their interpreter line
func ExampleSnifferFunc() {
	var sniffer scan.Sniffer = scan.SnifferFunc(func(head []byte) string {
		if bytes.HasPrefix(head, []byte("#!/bin/sh")) {
			return "application/x-sh"
		}
		return ""
	})
	fmt.Println(sniffer.Sniff([]byte("#!/bin/sh\necho hello\n")))
	// Output: application/x-sh
}

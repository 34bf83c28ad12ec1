package whatsapp

import (
	"bufio"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/leadlens/leadlens-cli/internal/parse"
)

// LoadNumbers reads phone numbers from CSV-ish input: one number per
// line, optionally followed by a comma and further columns, which are
// ignored. Lines that do not clean up to valid E.164 are dropped; it is
// an error only when nothing valid remains.
func LoadNumbers(r io.Reader) ([]string, error) {
	var numbers []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		first, _, _ := strings.Cut(line, ",")
		n := parse.CleanNumber(first)
		if parse.ValidE164(n) {
			numbers = append(numbers, n)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, eris.Wrap(err, "whatsapp: read numbers")
	}
	if len(numbers) == 0 {
		return nil, eris.New("whatsapp: no valid phone numbers in input")
	}
	return numbers, nil
}
